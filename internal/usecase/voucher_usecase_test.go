package usecase_test

import (
	"context"
	"errors"
	"regexp"
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

var voucherDate = time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

type voucherFixture struct {
	vouchers *mocks.MockVoucherRepository
	seq      *mocks.MockSequenceRepository
	accounts *mocks.MockAccountDirectory
	bills    *mocks.MockBillRepository
	outbox   *mocks.MockOutboxRepository
	rates    *mocks.MockRateResolver
	taxes    *mocks.MockTaxCalculator
	txm      *mocks.FakeTransactionManager
	retrier  *mocks.FakeRetrier
	uc       *usecase.VoucherUseCase
}

func newVoucherFixture(t *testing.T, opts ...func(*usecase.VoucherDeps)) *voucherFixture {
	ctrl := gomock.NewController(t)

	f := &voucherFixture{
		vouchers: mocks.NewMockVoucherRepository(ctrl),
		seq:      mocks.NewMockSequenceRepository(ctrl),
		accounts: mocks.NewMockAccountDirectory(ctrl),
		bills:    mocks.NewMockBillRepository(ctrl),
		outbox:   mocks.NewMockOutboxRepository(ctrl),
		rates:    mocks.NewMockRateResolver(ctrl),
		taxes:    mocks.NewMockTaxCalculator(ctrl),
		txm:      mocks.NewFakeTransactionManager(),
		retrier: mocks.NewFakeRetrier(3, func(err error) bool {
			return errors.Is(err, domain.ErrNumberingConflict)
		}),
	}

	deps := usecase.VoucherDeps{
		TxManager:      f.txm,
		Retrier:        f.retrier,
		Vouchers:       f.vouchers,
		Sequences:      f.seq,
		Accounts:       f.accounts,
		Bills:          f.bills,
		Outbox:         f.outbox,
		Rates:          f.rates,
		Taxes:          f.taxes,
		IDGen:          mocks.NewSequentialIDGenerator("id"),
		BaseCurrencyID: "GHS",
	}
	for _, opt := range opts {
		opt(&deps)
	}
	f.uc = usecase.NewVoucherUseCase(deps)

	return f
}

func (f *voucherFixture) knownAccounts(ids ...string) {
	accounts := make([]*domain.Account, 0, len(ids))
	for _, id := range ids {
		accounts = append(accounts, &domain.Account{ID: id, CurrencyID: "GHS"})
	}
	f.accounts.EXPECT().ListAccounts(gomock.Any(), domain.AccountFilter{IDs: ids}).Return(accounts, nil)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type decimalMatcher struct{ want decimal.Decimal }

func (m decimalMatcher) Matches(x any) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decimalMatcher) String() string { return "is decimal " + m.want.String() }

func eqDec(s string) gomock.Matcher {
	return decimalMatcher{want: dec(s)}
}

func journalLines() []domain.VoucherLine {
	return []domain.VoucherLine{
		domain.DebitLine("501", "rent", dec("300"), ""),
		domain.CreditLine("101", "rent", dec("300"), ""),
	}
}

func TestVoucherUseCase_SubmitForm_ContraEndToEnd(t *testing.T) {
	f := newVoucherFixture(t)
	f.knownAccounts("101", "201")
	f.seq.EXPECT().Next(gomock.Any(), gomock.Any(), domain.VoucherTypeContra).Return(int64(42), nil)

	var created *domain.Voucher
	f.vouchers.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ usecase.Transaction, v *domain.Voucher) error {
			created = v
			return nil
		})
	f.outbox.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ usecase.Transaction, e *domain.OutboxEvent) error {
			assert.Equal(t, domain.EventTypeVoucherPosted, e.EventType)
			assert.Equal(t, "500.00", e.Payload["total"])
			return nil
		})

	form := domain.VoucherForm{
		CounterAccountID: "201",
		FromAccountID:    "101",
		Items:            []domain.FormItem{{Description: "cash deposit", Amount: dec("500")}},
	}

	lines, err := f.uc.BuildLines(context.Background(), usecase.BuildLinesInput{Type: domain.VoucherTypeContra, Form: form})
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "201", lines[0].AccountID)
	assert.True(t, lines[0].Debit.Equal(dec("500")))
	assert.Equal(t, "101", lines[1].AccountID)
	assert.True(t, lines[1].Credit.Equal(dec("500")))
	require.NoError(t, f.uc.Validate(lines))

	v, err := f.uc.SubmitForm(context.Background(), usecase.SubmitFormInput{
		VoucherHeader: usecase.VoucherHeader{
			Type:         domain.VoucherTypeContra,
			Date:         voucherDate,
			FiscalYearID: "fy-2024",
			Narration:    "bank deposit",
		},
		Form: form,
	})
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^CV-\d{6}$`), v.VoucherNo)
	assert.Equal(t, "CV-000042", v.VoucherNo)
	assert.Equal(t, domain.VoucherStatusDraft, v.Status)
	assert.Equal(t, "GHS", v.CurrencyID)
	assert.True(t, v.ExchangeRate.Equal(decimal.NewFromInt(1)))
	assert.Same(t, created, v)
	assert.Equal(t, 1, f.txm.Committed)
}

func TestVoucherUseCase_PostVoucher_RejectsInvalidLines(t *testing.T) {
	tests := []struct {
		name    string
		lines   []domain.VoucherLine
		wantErr error
	}{
		{
			name: "unbalanced",
			lines: []domain.VoucherLine{
				domain.DebitLine("501", "", dec("300"), ""),
				domain.CreditLine("101", "", dec("299.99"), ""),
			},
			wantErr: domain.ErrUnbalanced,
		},
		{
			name:    "single line",
			lines:   []domain.VoucherLine{domain.DebitLine("501", "", dec("300"), "")},
			wantErr: domain.ErrInvalidStructure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newVoucherFixture(t)

			_, err := f.uc.PostVoucher(context.Background(), usecase.PostVoucherInput{
				VoucherHeader: usecase.VoucherHeader{Type: domain.VoucherTypeJournal, Date: voucherDate},
				Lines:         tt.lines,
			})

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, f.txm.Begun)
		})
	}
}

func TestVoucherUseCase_PostVoucher_UnknownAccount(t *testing.T) {
	f := newVoucherFixture(t)
	f.accounts.EXPECT().ListAccounts(gomock.Any(), gomock.Any()).
		Return([]*domain.Account{{ID: "101"}}, nil)

	_, err := f.uc.PostVoucher(context.Background(), usecase.PostVoucherInput{
		VoucherHeader: usecase.VoucherHeader{Type: domain.VoucherTypeJournal, Date: voucherDate},
		Lines:         journalLines(),
	})

	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	assert.Zero(t, f.txm.Begun)
}

func TestVoucherUseCase_PostVoucher_RetriesNumberingConflict(t *testing.T) {
	f := newVoucherFixture(t)
	f.knownAccounts("101", "501")

	gomock.InOrder(
		f.seq.EXPECT().Next(gomock.Any(), gomock.Any(), domain.VoucherTypeJournal).Return(int64(1), nil),
		f.vouchers.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&domain.NumberingConflictError{VoucherNo: "JV-000001"}),
		f.seq.EXPECT().Next(gomock.Any(), gomock.Any(), domain.VoucherTypeJournal).Return(int64(2), nil),
		f.vouchers.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
	)
	f.outbox.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	v, err := f.uc.PostVoucher(context.Background(), usecase.PostVoucherInput{
		VoucherHeader: usecase.VoucherHeader{Type: domain.VoucherTypeJournal, Date: voucherDate},
		Lines:         journalLines(),
	})
	require.NoError(t, err)

	assert.Equal(t, "JV-000002", v.VoucherNo)
	assert.Equal(t, 2, f.retrier.Attempts)
	assert.Equal(t, 2, f.txm.Begun)
	assert.Equal(t, 1, f.txm.RolledBack)
	assert.Equal(t, 1, f.txm.Committed)
}

func TestVoucherUseCase_PostVoucher_ExchangeRate(t *testing.T) {
	header := usecase.VoucherHeader{Type: domain.VoucherTypeJournal, Date: voucherDate, CurrencyID: "USD"}

	t.Run("resolved into base currency", func(t *testing.T) {
		f := newVoucherFixture(t)
		f.rates.EXPECT().ResolveRate(gomock.Any(), "USD", "GHS", voucherDate).
			Return(domain.ResolvedRate{Rate: dec("12.5"), Source: domain.RateSourceDirect}, nil)
		f.knownAccounts("101", "501")
		f.seq.EXPECT().Next(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
		f.vouchers.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.outbox.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		v, err := f.uc.PostVoucher(context.Background(), usecase.PostVoucherInput{VoucherHeader: header, Lines: journalLines()})
		require.NoError(t, err)
		assert.True(t, v.ExchangeRate.Equal(dec("12.5")))
		assert.True(t, v.BaseAmount().Equal(dec("3750")))
	})

	t.Run("unresolved blocks posting", func(t *testing.T) {
		f := newVoucherFixture(t)
		f.rates.EXPECT().ResolveRate(gomock.Any(), "USD", "GHS", voucherDate).
			Return(domain.ResolvedRate{}, &domain.RateUnresolvedError{FromCurrencyID: "USD", ToCurrencyID: "GHS", AsOf: voucherDate})

		_, err := f.uc.PostVoucher(context.Background(), usecase.PostVoucherInput{VoucherHeader: header, Lines: journalLines()})

		var rateErr *domain.RateUnresolvedError
		require.ErrorAs(t, err, &rateErr)
		assert.Equal(t, "USD", rateErr.FromCurrencyID)
		assert.Zero(t, f.txm.Begun)
	})

	t.Run("manual rate skips lookup", func(t *testing.T) {
		f := newVoucherFixture(t)
		f.knownAccounts("101", "501")
		f.seq.EXPECT().Next(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
		f.vouchers.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.outbox.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		manual := header
		rate := dec("11")
		manual.ExchangeRate = &rate

		v, err := f.uc.PostVoucher(context.Background(), usecase.PostVoucherInput{VoucherHeader: manual, Lines: journalLines()})
		require.NoError(t, err)
		assert.True(t, v.ExchangeRate.Equal(dec("11")))
	})
}

func TestVoucherUseCase_PostVoucher_KnockOff(t *testing.T) {
	bills := []domain.OutstandingBill{
		{ID: "b1", BillNo: "INV-001", Total: dec("200"), Outstanding: dec("200"), PaymentStatus: domain.PaymentStatusUnpaid},
		{ID: "b2", BillNo: "INV-002", Total: dec("300"), Outstanding: dec("300"), PaymentStatus: domain.PaymentStatusUnpaid},
	}
	lines := []domain.VoucherLine{
		domain.DebitLine("201", "", dec("350"), ""),
		domain.CreditLine("401", "", dec("350"), ""),
	}

	t.Run("applies allocations under sorted row locks", func(t *testing.T) {
		f := newVoucherFixture(t)
		f.knownAccounts("201", "401")
		f.seq.EXPECT().Next(gomock.Any(), gomock.Any(), domain.VoucherTypeReceipt).Return(int64(9), nil)
		f.vouchers.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.bills.EXPECT().GetByIDsForUpdate(gomock.Any(), gomock.Any(), []string{"b1", "b2"}).Return(bills, nil)
		f.bills.EXPECT().ApplyPayment(gomock.Any(), gomock.Any(), "b2", eqDec("150"), domain.PaymentStatusPartial, gomock.Any()).Return(nil)
		f.bills.EXPECT().ApplyPayment(gomock.Any(), gomock.Any(), "b1", eqDec("0"), domain.PaymentStatusPaid, gomock.Any()).Return(nil)
		f.bills.EXPECT().RecordApplication(gomock.Any(), gomock.Any(), "id-1", gomock.Any(), gomock.Any()).Return(nil).Times(2)
		f.outbox.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, err := f.uc.PostVoucher(context.Background(), usecase.PostVoucherInput{
			VoucherHeader: usecase.VoucherHeader{Type: domain.VoucherTypeReceipt, Date: voucherDate},
			Lines:         lines,
			Allocations: []domain.Allocation{
				{BillID: "b2", Amount: dec("150")},
				{BillID: "b1", Amount: dec("200")},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, f.txm.Committed)
	})

	t.Run("over-allocation rolls back", func(t *testing.T) {
		f := newVoucherFixture(t)
		f.knownAccounts("201", "401")
		f.seq.EXPECT().Next(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(10), nil)
		f.vouchers.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.bills.EXPECT().GetByIDsForUpdate(gomock.Any(), gomock.Any(), []string{"b1"}).Return(bills[:1], nil)

		_, err := f.uc.PostVoucher(context.Background(), usecase.PostVoucherInput{
			VoucherHeader: usecase.VoucherHeader{Type: domain.VoucherTypeReceipt, Date: voucherDate},
			Lines:         lines,
			Allocations:   []domain.Allocation{{BillID: "b1", Amount: dec("250")}},
		})

		assert.ErrorIs(t, err, domain.ErrOverAllocation)
		assert.Zero(t, f.txm.Committed)
		assert.Equal(t, 1, f.txm.RolledBack)
	})

	t.Run("allocations above the voucher total are rejected up front", func(t *testing.T) {
		f := newVoucherFixture(t)

		_, err := f.uc.PostVoucher(context.Background(), usecase.PostVoucherInput{
			VoucherHeader: usecase.VoucherHeader{Type: domain.VoucherTypeReceipt, Date: voucherDate},
			Lines:         lines,
			Allocations:   []domain.Allocation{{BillID: "b1", Amount: dec("200")}, {BillID: "b2", Amount: dec("200")}},
		})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Zero(t, f.txm.Begun)
	})
}

func TestVoucherUseCase_BuildLines_WithTax(t *testing.T) {
	f := newVoucherFixture(t)
	f.taxes.EXPECT().ComputeTax(gomock.Any(), eqDec("1000"), "vat").Return(domain.TaxBreakdown{
		TaxCodeID: "vat",
		AccountID: "250",
		Subtotal:  dec("1000"),
		Total:     dec("150"),
	}, nil)

	lines, err := f.uc.BuildLines(context.Background(), usecase.BuildLinesInput{
		Type:      domain.VoucherTypePayment,
		TaxCodeID: "vat",
		Form: domain.VoucherForm{
			CounterAccountID: "101",
			PaymentMethod:    "Cheque",
			Items: []domain.FormItem{
				{AccountID: "601", Amount: dec("600")},
				{AccountID: "602", Amount: dec("400")},
			},
		},
	})
	require.NoError(t, err)

	require.Len(t, lines, 4)
	assert.Equal(t, "250", lines[2].AccountID)
	assert.True(t, lines[2].Debit.Equal(dec("150")))
	assert.True(t, lines[3].Credit.Equal(dec("1150")))
	assert.NoError(t, f.uc.Validate(lines))
}

func TestVoucherUseCase_BuildLines_TaxOnJournalRejected(t *testing.T) {
	f := newVoucherFixture(t)

	_, err := f.uc.BuildLines(context.Background(), usecase.BuildLinesInput{
		Type:      domain.VoucherTypeJournal,
		TaxCodeID: "vat",
	})

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "tax_code_id", ve.Field)
}

func TestVoucherUseCase_PostVoucher_UsesPostingLock(t *testing.T) {
	ctrl := gomock.NewController(t)
	locker := mocks.NewMockPostingLocker(ctrl)
	metrics := mocks.NewMockMetrics(ctrl)

	f := newVoucherFixture(t, func(d *usecase.VoucherDeps) {
		d.Locker = locker
		d.Metrics = metrics
	})

	released := false
	locker.EXPECT().Acquire(gomock.Any(), "posting:JV").Return(func() { released = true }, nil)
	metrics.EXPECT().VoucherPosted("JV", gomock.Any())
	f.knownAccounts("101", "501")
	f.seq.EXPECT().Next(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(3), nil)
	f.vouchers.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.outbox.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	_, err := f.uc.PostVoucher(context.Background(), usecase.PostVoucherInput{
		VoucherHeader: usecase.VoucherHeader{Type: domain.VoucherTypeJournal, Date: voucherDate},
		Lines:         journalLines(),
	})
	require.NoError(t, err)
	assert.True(t, released)
}

func TestVoucherUseCase_PostVoucher_RecordsFailureMetric(t *testing.T) {
	ctrl := gomock.NewController(t)
	metrics := mocks.NewMockMetrics(ctrl)
	f := newVoucherFixture(t, func(d *usecase.VoucherDeps) { d.Metrics = metrics })

	metrics.EXPECT().PostingFailed("JV", "unbalanced")

	_, err := f.uc.PostVoucher(context.Background(), usecase.PostVoucherInput{
		VoucherHeader: usecase.VoucherHeader{Type: domain.VoucherTypeJournal, Date: voucherDate},
		Lines: []domain.VoucherLine{
			domain.DebitLine("501", "", dec("10"), ""),
			domain.CreditLine("101", "", dec("9"), ""),
		},
	})
	assert.ErrorIs(t, err, domain.ErrUnbalanced)
}

func TestVoucherUseCase_ListVouchers(t *testing.T) {
	f := newVoucherFixture(t)
	f.vouchers.EXPECT().List(gomock.Any(), domain.VoucherTypePayment, 100, 0).
		Return([]*domain.Voucher{{ID: "v1"}}, nil)

	out, err := f.uc.ListVouchers(context.Background(), usecase.ListVouchersInput{Type: domain.VoucherTypePayment, Limit: 1000, Offset: -5})
	require.NoError(t, err)
	assert.Len(t, out, 1)

	_, err = f.uc.ListVouchers(context.Background(), usecase.ListVouchersInput{Type: "ZZ"})
	assert.ErrorIs(t, err, domain.ErrInvalidVoucherType)
}
