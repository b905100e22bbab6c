package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// VoucherDraft is an immutable voucher under construction. Every With*
// method returns a new draft; the receiver is never modified.
type VoucherDraft struct {
	typ          VoucherType
	date         time.Time
	fiscalYearID string
	narration    string
	currencyID   string
	exchangeRate decimal.Decimal
	form         VoucherForm
	lines        []VoucherLine
	allocations  []Allocation
}

// NewVoucherDraft starts a draft with an identity exchange rate.
func NewVoucherDraft(t VoucherType, date time.Time, fiscalYearID, narration, currencyID string) VoucherDraft {
	return VoucherDraft{
		typ:          t,
		date:         date,
		fiscalYearID: fiscalYearID,
		narration:    narration,
		currencyID:   currencyID,
		exchangeRate: decimal.NewFromInt(1),
	}
}

func (d VoucherDraft) Type() VoucherType             { return d.typ }
func (d VoucherDraft) Date() time.Time               { return d.date }
func (d VoucherDraft) FiscalYearID() string          { return d.fiscalYearID }
func (d VoucherDraft) Narration() string             { return d.narration }
func (d VoucherDraft) CurrencyID() string            { return d.currencyID }
func (d VoucherDraft) ExchangeRate() decimal.Decimal { return d.exchangeRate }
func (d VoucherDraft) Form() VoucherForm             { return d.form }

// Lines returns a copy of the built lines.
func (d VoucherDraft) Lines() []VoucherLine {
	return append([]VoucherLine(nil), d.lines...)
}

// Allocations returns a copy of the proposed bill allocations.
func (d VoucherDraft) Allocations() []Allocation {
	return append([]Allocation(nil), d.allocations...)
}

// Total is the debit total of the built lines.
func (d VoucherDraft) Total() decimal.Decimal {
	return sumDebit(d.lines)
}

// WithForm replaces the form and clears previously built lines.
func (d VoucherDraft) WithForm(form VoucherForm) VoucherDraft {
	form.Items = append([]FormItem(nil), form.Items...)
	form.Rows = append([]JournalRow(nil), form.Rows...)
	d.form = form
	d.lines = nil
	return d
}

// WithTax attaches a tax breakdown to the form.
func (d VoucherDraft) WithTax(tax TaxBreakdown) VoucherDraft {
	form := d.form
	form.Tax = &tax
	return d.WithForm(form)
}

// WithExchangeRate records the rate into base currency.
func (d VoucherDraft) WithExchangeRate(rate decimal.Decimal) VoucherDraft {
	d.exchangeRate = rate
	return d
}

// WithLines sets the lines directly.
func (d VoucherDraft) WithLines(lines []VoucherLine) VoucherDraft {
	d.lines = append([]VoucherLine(nil), lines...)
	return d
}

// WithAllocations records proposed bill allocations.
func (d VoucherDraft) WithAllocations(allocations []Allocation) VoucherDraft {
	d.allocations = append([]Allocation(nil), allocations...)
	return d
}

// Build runs the type's builder over the form.
func (d VoucherDraft) Build() (VoucherDraft, error) {
	lines, err := BuildLines(d.typ, d.form)
	if err != nil {
		return d, err
	}
	return d.WithLines(lines), nil
}

// Validate checks header fields, lines and allocations.
func (d VoucherDraft) Validate() error {
	if !d.typ.IsValid() {
		return ErrInvalidVoucherType
	}
	if d.date.IsZero() {
		return NewValidationError("date", "voucher date is required")
	}
	if err := ValidateNarration(d.narration); err != nil {
		return err
	}
	if !d.exchangeRate.IsPositive() {
		return NewValidationError("exchange_rate", "must be positive")
	}
	if err := ValidateLines(d.lines); err != nil {
		return err
	}

	allocated := decimal.Zero
	for _, a := range d.allocations {
		if a.Amount.IsNegative() {
			return NewValidationError("allocations", "allocation must not be negative")
		}
		allocated = allocated.Add(a.Amount)
	}
	if allocated.GreaterThan(d.Total()) {
		return NewValidationError("allocations", "allocated amount exceeds voucher total")
	}

	return nil
}

// ToVoucher materializes the draft as a DRAFT voucher.
func (d VoucherDraft) ToVoucher(id, voucherNo string, now time.Time) *Voucher {
	return &Voucher{
		ID:           id,
		Type:         d.typ,
		VoucherNo:    voucherNo,
		Date:         d.date,
		FiscalYearID: d.fiscalYearID,
		Narration:    d.narration,
		CurrencyID:   d.currencyID,
		ExchangeRate: d.exchangeRate,
		Lines:        PostableLines(d.lines),
		Status:       VoucherStatusDraft,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
