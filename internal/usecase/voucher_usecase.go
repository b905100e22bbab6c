package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/voucherpost/internal/domain"
)

// VoucherDeps groups the collaborators of VoucherUseCase.
type VoucherDeps struct {
	TxManager TransactionManager
	Retrier   Retrier
	Vouchers  VoucherRepository
	Sequences SequenceRepository
	Accounts  AccountDirectory
	Bills     BillRepository
	Outbox    OutboxRepository
	Rates     RateResolver
	Taxes     TaxCalculator
	IDGen     IDGenerator
	// Locker is optional; without it numbering relies on the sequence row lock.
	Locker  PostingLocker
	Metrics Metrics

	BaseCurrencyID string
}

// VoucherUseCase builds, validates and posts vouchers.
type VoucherUseCase struct {
	deps VoucherDeps
}

// NewVoucherUseCase creates a new VoucherUseCase.
func NewVoucherUseCase(deps VoucherDeps) *VoucherUseCase {
	if deps.Metrics == nil {
		deps.Metrics = NopMetrics{}
	}
	return &VoucherUseCase{deps: deps}
}

// BuildLinesInput represents a voucher form to turn into lines.
type BuildLinesInput struct {
	Type      domain.VoucherType
	Form      domain.VoucherForm
	TaxCodeID string
}

// BuildLines maps a type-specific form into canonical voucher lines.
func (uc *VoucherUseCase) BuildLines(ctx context.Context, input BuildLinesInput) ([]domain.VoucherLine, error) {
	form, err := uc.applyTax(ctx, input.Type, input.Form, input.TaxCodeID)
	if err != nil {
		return nil, err
	}
	return domain.BuildLines(input.Type, form)
}

// Validate checks the double-entry invariants of lines.
func (uc *VoucherUseCase) Validate(lines []domain.VoucherLine) error {
	return domain.ValidateLines(lines)
}

// VoucherHeader holds the fields shared by every way of posting.
type VoucherHeader struct {
	Type         domain.VoucherType
	Date         time.Time
	FiscalYearID string
	Narration    string
	CurrencyID   string
	// ExchangeRate, when set, is used instead of looking up a rate.
	ExchangeRate *decimal.Decimal
}

// PostVoucherInput represents pre-built lines to post.
type PostVoucherInput struct {
	VoucherHeader
	Lines       []domain.VoucherLine
	Allocations []domain.Allocation
}

// SubmitFormInput represents a raw voucher form to build and post.
type SubmitFormInput struct {
	VoucherHeader
	Form        domain.VoucherForm
	TaxCodeID   string
	Allocations []domain.Allocation
}

// PostVoucher validates lines and persists them as a DRAFT voucher.
func (uc *VoucherUseCase) PostVoucher(ctx context.Context, input PostVoucherInput) (*domain.Voucher, error) {
	draft := uc.newDraft(input.VoucherHeader).
		WithLines(input.Lines).
		WithAllocations(input.Allocations)

	return uc.post(ctx, draft, input.ExchangeRate)
}

// SubmitForm builds lines from a form and posts them.
func (uc *VoucherUseCase) SubmitForm(ctx context.Context, input SubmitFormInput) (*domain.Voucher, error) {
	form, err := uc.applyTax(ctx, input.Type, input.Form, input.TaxCodeID)
	if err != nil {
		return nil, err
	}

	draft, err := uc.newDraft(input.VoucherHeader).WithForm(form).Build()
	if err != nil {
		return nil, err
	}

	return uc.post(ctx, draft.WithAllocations(input.Allocations), input.ExchangeRate)
}

// GetVoucher retrieves a voucher by ID.
func (uc *VoucherUseCase) GetVoucher(ctx context.Context, id string) (*domain.Voucher, error) {
	return uc.deps.Vouchers.GetByID(ctx, id)
}

// ListVouchersInput represents input for listing vouchers.
type ListVouchersInput struct {
	Type   domain.VoucherType
	Limit  int
	Offset int
}

// ListVouchers lists vouchers, newest first, optionally filtered by type.
func (uc *VoucherUseCase) ListVouchers(ctx context.Context, input ListVouchersInput) ([]*domain.Voucher, error) {
	if input.Type != "" && !input.Type.IsValid() {
		return nil, domain.ErrInvalidVoucherType
	}
	if input.Offset < 0 {
		input.Offset = 0
	}
	return uc.deps.Vouchers.List(ctx, input.Type, clampLimit(input.Limit), input.Offset)
}

func (uc *VoucherUseCase) newDraft(h VoucherHeader) domain.VoucherDraft {
	currency := strings.TrimSpace(h.CurrencyID)
	if currency == "" {
		currency = uc.deps.BaseCurrencyID
	}
	return domain.NewVoucherDraft(h.Type, h.Date, h.FiscalYearID, h.Narration, currency)
}

func (uc *VoucherUseCase) applyTax(ctx context.Context, t domain.VoucherType, form domain.VoucherForm, taxCodeID string) (domain.VoucherForm, error) {
	if strings.TrimSpace(taxCodeID) == "" {
		return form, nil
	}
	if t != domain.VoucherTypePayment && t != domain.VoucherTypeReceipt {
		return form, domain.NewValidationError("tax_code_id", "tax applies to payment and receipt vouchers only")
	}
	if uc.deps.Taxes == nil {
		return form, domain.ErrTaxCodeNotFound
	}

	tax, err := uc.deps.Taxes.ComputeTax(ctx, form.ItemsTotal(), taxCodeID)
	if err != nil {
		return form, err
	}
	form.Tax = &tax
	return form, nil
}

func (uc *VoucherUseCase) post(ctx context.Context, draft domain.VoucherDraft, manualRate *decimal.Decimal) (*domain.Voucher, error) {
	start := time.Now()
	typ := string(draft.Type())

	voucher, err := uc.postDraft(ctx, draft, manualRate)
	if err != nil {
		uc.deps.Metrics.PostingFailed(typ, failureReason(err))
		return nil, err
	}

	uc.deps.Metrics.VoucherPosted(typ, time.Since(start))
	return voucher, nil
}

func (uc *VoucherUseCase) postDraft(ctx context.Context, draft domain.VoucherDraft, manualRate *decimal.Decimal) (*domain.Voucher, error) {
	// 1. Validate structure and balance before touching storage
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	// 2. Resolve the exchange rate into base currency
	draft, err := uc.withExchangeRate(ctx, draft, manualRate)
	if err != nil {
		return nil, err
	}

	// 3. Every line must reference a known account
	if err := uc.checkAccounts(ctx, draft.Lines()); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	// 4. Serialize postings of the same type across instances
	if uc.deps.Locker != nil {
		release, err := uc.deps.Locker.Acquire(ctx, "posting:"+string(draft.Type()))
		if err != nil {
			return nil, err
		}
		defer release()
	}

	// 5. Persist in one transaction; numbering conflicts re-run with a fresh number
	var voucher *domain.Voucher
	err = uc.deps.Retrier.Retry(ctx, func() error {
		v, err := uc.persist(ctx, draft)
		if err != nil {
			return err
		}
		voucher = v
		return nil
	})
	if err != nil {
		return nil, err
	}

	return voucher, nil
}

func (uc *VoucherUseCase) withExchangeRate(ctx context.Context, draft domain.VoucherDraft, manualRate *decimal.Decimal) (domain.VoucherDraft, error) {
	if manualRate != nil {
		if !manualRate.IsPositive() {
			return draft, domain.NewValidationError("exchange_rate", "must be positive")
		}
		return draft.WithExchangeRate(*manualRate), nil
	}

	base := uc.deps.BaseCurrencyID
	if base == "" || draft.CurrencyID() == base {
		return draft.WithExchangeRate(decimal.NewFromInt(1)), nil
	}

	rate, err := uc.deps.Rates.ResolveRate(ctx, draft.CurrencyID(), base, draft.Date())
	if err != nil {
		return draft, err
	}
	return draft.WithExchangeRate(rate.Rate), nil
}

func (uc *VoucherUseCase) checkAccounts(ctx context.Context, lines []domain.VoucherLine) error {
	ids := uniqueAccountIDs(domain.PostableLines(lines))

	accounts, err := uc.deps.Accounts.ListAccounts(ctx, domain.AccountFilter{IDs: ids})
	if err != nil {
		return err
	}

	known := make(map[string]bool, len(accounts))
	for _, a := range accounts {
		known[a.ID] = true
	}
	for _, id := range ids {
		if !known[id] {
			return fmt.Errorf("%w: %s", domain.ErrAccountNotFound, id)
		}
	}
	return nil
}

func (uc *VoucherUseCase) persist(ctx context.Context, draft domain.VoucherDraft) (*domain.Voucher, error) {
	tx, err := uc.deps.TxManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	seq, err := uc.deps.Sequences.Next(ctx, tx, draft.Type())
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	voucher := draft.ToVoucher(uc.deps.IDGen.Generate(), domain.FormatVoucherNo(draft.Type(), seq), now)

	if err := uc.deps.Vouchers.Create(ctx, tx, voucher); err != nil {
		return nil, err
	}

	if err := uc.knockOff(ctx, tx, voucher.ID, draft.Allocations(), now); err != nil {
		return nil, err
	}

	event := &domain.OutboxEvent{
		ID:            uc.deps.IDGen.Generate(),
		AggregateID:   voucher.ID,
		AggregateType: domain.AggregateTypeVoucher,
		EventType:     domain.EventTypeVoucherPosted,
		Payload: domain.Payload(domain.VoucherPostedEvent{
			VoucherID: voucher.ID,
			VoucherNo: voucher.VoucherNo,
			Type:      string(voucher.Type),
			Total:     voucher.GrandTotal().StringFixed(2),
			Currency:  voucher.CurrencyID,
			Date:      voucher.Date.Format(time.DateOnly),
		}),
		CreatedAt: now,
	}
	if err := uc.deps.Outbox.Create(ctx, tx, event); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return voucher, nil
}

// knockOff applies allocations to bills locked in sorted ID order.
func (uc *VoucherUseCase) knockOff(ctx context.Context, tx Transaction, voucherID string, allocations []domain.Allocation, now time.Time) error {
	var applied []domain.Allocation
	for i, a := range allocations {
		if !a.Amount.IsPositive() {
			continue
		}
		if a.BillID == "" {
			return domain.NewValidationError(fmt.Sprintf("allocations[%d].bill_id", i), "bill is required")
		}
		applied = append(applied, a)
	}
	if len(applied) == 0 {
		return nil
	}

	ids := make([]string, 0, len(applied))
	seen := make(map[string]bool, len(applied))
	for _, a := range applied {
		if !seen[a.BillID] {
			seen[a.BillID] = true
			ids = append(ids, a.BillID)
		}
	}
	sort.Strings(ids)

	bills, err := uc.deps.Bills.GetByIDsForUpdate(ctx, tx, ids)
	if err != nil {
		return err
	}
	if len(bills) != len(ids) {
		return domain.ErrBillNotFound
	}

	byID := make(map[string]*domain.OutstandingBill, len(bills))
	for i := range bills {
		byID[bills[i].ID] = &bills[i]
	}

	for _, a := range applied {
		bill := byID[a.BillID]
		remaining, status, err := bill.ApplyPayment(a.Amount)
		if err != nil {
			return err
		}

		if err := uc.deps.Bills.ApplyPayment(ctx, tx, bill.ID, remaining, status, now); err != nil {
			return err
		}
		bill.Outstanding = remaining
		bill.PaymentStatus = status

		if a.BillNo == "" {
			a.BillNo = bill.BillNo
		}
		if err := uc.deps.Bills.RecordApplication(ctx, tx, voucherID, a, now); err != nil {
			return err
		}
	}

	return nil
}

func uniqueAccountIDs(lines []domain.VoucherLine) []string {
	seen := make(map[string]bool)

	var ids []string
	for _, l := range lines {
		if !seen[l.AccountID] {
			seen[l.AccountID] = true
			ids = append(ids, l.AccountID)
		}
	}

	sort.Strings(ids)
	return ids
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidStructure):
		return "structure"
	case errors.Is(err, domain.ErrUnbalanced):
		return "unbalanced"
	case errors.Is(err, domain.ErrRateUnresolved):
		return "rate_unresolved"
	case errors.Is(err, domain.ErrNumberingConflict):
		return "numbering_conflict"
	case errors.Is(err, domain.ErrPostingBusy):
		return "busy"
	case errors.Is(err, domain.ErrAccountNotFound):
		return "account_not_found"
	case errors.Is(err, domain.ErrOverAllocation), errors.Is(err, domain.ErrBillNotFound):
		return "knock_off"
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidVoucherType):
		return "validation"
	default:
		return "internal"
	}
}
