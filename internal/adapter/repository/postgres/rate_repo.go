package postgres

import (
	"context"
	"time"

	"github.com/iho/voucherpost/internal/domain"
	"github.com/iho/voucherpost/internal/infrastructure/postgres/generated"
)

// RateRepository implements usecase.RateRepository.
type RateRepository struct {
	queries *generated.Queries
}

// NewRateRepository creates a new RateRepository.
func NewRateRepository(db generated.DBTX) *RateRepository {
	return &RateRepository{
		queries: generated.New(db),
	}
}

// GetRates returns rates for the pair dated on or before asOf, latest first.
func (r *RateRepository) GetRates(ctx context.Context, fromCurrencyID, toCurrencyID string, asOf time.Time) ([]domain.CurrencyRate, error) {
	rows, err := r.queries.GetCurrencyRates(ctx, generated.GetCurrencyRatesParams{
		FromCurrencyID: fromCurrencyID,
		ToCurrencyID:   toCurrencyID,
		RateDate:       timeToPgDate(asOf),
	})
	if err != nil {
		return nil, err
	}

	rates := make([]domain.CurrencyRate, 0, len(rows))
	for _, row := range rows {
		rates = append(rates, domain.CurrencyRate{
			ID:             row.ID,
			FromCurrencyID: row.FromCurrencyID,
			ToCurrencyID:   row.ToCurrencyID,
			RateDate:       row.RateDate.Time,
			Rate:           numericToDecimal(row.Rate),
		})
	}

	return rates, nil
}
