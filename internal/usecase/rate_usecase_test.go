package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/iho/voucherpost/internal/domain"
	"github.com/iho/voucherpost/internal/usecase"
	"github.com/iho/voucherpost/internal/usecase/mocks"
)

var asOf = time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

func TestRateUseCase_ResolveRate_Identity(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRateRepository(ctrl)
	uc := usecase.NewRateUseCase(repo, nil, 0, nil)

	for _, c := range []string{"GHS", "USD", "EUR"} {
		r, err := uc.ResolveRate(context.Background(), c, c, asOf)
		require.NoError(t, err)
		assert.True(t, r.Rate.Equal(decimal.NewFromInt(1)), c)
		assert.Equal(t, domain.RateSourceIdentity, r.Source)
	}
}

func TestRateUseCase_ResolveRate_PicksLatestDirect(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRateRepository(ctrl)
	repo.EXPECT().GetRates(gomock.Any(), "USD", "GHS", domain.EndOfDay(asOf)).Return([]domain.CurrencyRate{
		{FromCurrencyID: "USD", ToCurrencyID: "GHS", RateDate: asOf.AddDate(0, -1, 0), Rate: dec("11.8")},
		{FromCurrencyID: "USD", ToCurrencyID: "GHS", RateDate: asOf, Rate: dec("12.1")},
	}, nil)

	uc := usecase.NewRateUseCase(repo, nil, 0, nil)

	r, err := uc.ResolveRate(context.Background(), "USD", "GHS", asOf)
	require.NoError(t, err)
	assert.True(t, r.Rate.Equal(dec("12.1")))
	assert.Equal(t, domain.RateSourceDirect, r.Source)
}

func TestRateUseCase_ResolveRate_DirectionInvariant(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRateRepository(ctrl)

	seeded := []domain.CurrencyRate{
		{FromCurrencyID: "USD", ToCurrencyID: "GHS", RateDate: asOf.AddDate(0, 0, -2), Rate: dec("12.5")},
	}
	repo.EXPECT().GetRates(gomock.Any(), "USD", "GHS", gomock.Any()).Return(seeded, nil)
	repo.EXPECT().GetRates(gomock.Any(), "GHS", "USD", gomock.Any()).Return(nil, nil)

	uc := usecase.NewRateUseCase(repo, nil, 0, nil)

	forward, err := uc.ResolveRate(context.Background(), "USD", "GHS", asOf)
	require.NoError(t, err)

	repo.EXPECT().GetRates(gomock.Any(), "USD", "GHS", gomock.Any()).Return(seeded, nil)
	backward, err := uc.ResolveRate(context.Background(), "GHS", "USD", asOf)
	require.NoError(t, err)

	assert.Equal(t, domain.RateSourceInverse, backward.Source)
	assert.True(t, backward.Rate.Equal(decimal.NewFromInt(1).Div(forward.Rate)))
	assert.True(t, backward.Rate.Equal(dec("0.08")))
}

func TestRateUseCase_ResolveRate_Unresolved(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRateRepository(ctrl)
	repo.EXPECT().GetRates(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).Times(4)

	uc := usecase.NewRateUseCase(repo, nil, 0, nil)

	_, err := uc.ResolveRate(context.Background(), "EUR", "GHS", asOf)
	var rateErr *domain.RateUnresolvedError
	require.ErrorAs(t, err, &rateErr)
	assert.Equal(t, "EUR", rateErr.FromCurrencyID)
	assert.Equal(t, "GHS", rateErr.ToCurrencyID)

	r, err := uc.ResolveRateWithDefault(context.Background(), "EUR", "GHS", asOf, decimal.NewFromInt(1))
	require.NoError(t, err)
	assert.Equal(t, domain.RateSourceDefault, r.Source)
	assert.True(t, r.Rate.Equal(decimal.NewFromInt(1)))
}

func TestRateUseCase_ResolveRate_IgnoresFutureRates(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRateRepository(ctrl)
	repo.EXPECT().GetRates(gomock.Any(), "USD", "GHS", gomock.Any()).Return([]domain.CurrencyRate{
		{RateDate: asOf.AddDate(0, 0, 1), Rate: dec("13")},
	}, nil)
	repo.EXPECT().GetRates(gomock.Any(), "GHS", "USD", gomock.Any()).Return(nil, nil)

	uc := usecase.NewRateUseCase(repo, nil, 0, nil)

	_, err := uc.ResolveRate(context.Background(), "USD", "GHS", asOf)
	assert.ErrorIs(t, err, domain.ErrRateUnresolved)
}

func TestRateUseCase_ResolveRate_Cache(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRateRepository(ctrl)
	cache := mocks.NewMockCache(ctrl)
	metrics := mocks.NewMockMetrics(ctrl)

	var stored []byte
	key := "rate:USD:GHS:2024-06-30"

	gomock.InOrder(
		cache.EXPECT().Get(gomock.Any(), key).Return(nil, usecase.ErrCacheMiss),
		cache.EXPECT().Set(gomock.Any(), key, gomock.Any(), 2*time.Minute).
			DoAndReturn(func(_ context.Context, _ string, v []byte, _ time.Duration) error {
				stored = v
				return nil
			}),
		cache.EXPECT().Get(gomock.Any(), key).DoAndReturn(func(context.Context, string) ([]byte, error) {
			return stored, nil
		}),
	)
	repo.EXPECT().GetRates(gomock.Any(), "USD", "GHS", gomock.Any()).
		Return([]domain.CurrencyRate{{RateDate: asOf, Rate: dec("12.25")}}, nil).Times(1)
	metrics.EXPECT().RateResolved("direct").Times(1)

	uc := usecase.NewRateUseCase(repo, cache, 2*time.Minute, metrics)

	first, err := uc.ResolveRate(context.Background(), "USD", "GHS", asOf)
	require.NoError(t, err)
	second, err := uc.ResolveRate(context.Background(), "USD", "GHS", asOf)
	require.NoError(t, err)

	assert.True(t, first.Rate.Equal(second.Rate))
	assert.Equal(t, domain.RateSourceDirect, second.Source)
}
