package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FormItem is one entered row of a payment/receipt/contra form.
type FormItem struct {
	Description string
	AccountID   string
	Amount      decimal.Decimal
	ReferenceNo string
}

// JournalRow is one user-entered debit/credit pair of a JV/DN/CN form.
type JournalRow struct {
	AccountID   string
	Description string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	ReferenceNo string
}

// VoucherForm carries the raw fields of every voucher form. Builders read
// only the fields that apply to their type.
type VoucherForm struct {
	// PartyAccountID is the payer (RV) or payee (PV) account.
	PartyAccountID string
	PaymentMethod  string
	// CounterAccountID is the payment account (PV), deposit account (RV)
	// or transfer-to account (CV).
	CounterAccountID string
	// FromAccountID is the transfer-from account of a contra voucher.
	FromAccountID string
	Items         []FormItem
	Rows          []JournalRow
	// Tax, when set with a positive total, adds a tax line on Tax.AccountID.
	Tax *TaxBreakdown
}

// ItemsTotal sums items with a positive amount.
func (f VoucherForm) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range f.Items {
		if it.Amount.IsPositive() {
			total = total.Add(it.Amount)
		}
	}
	return total
}

// VoucherLineBuilder maps a type-specific form into canonical voucher lines.
type VoucherLineBuilder interface {
	Type() VoucherType
	Build(form VoucherForm) ([]VoucherLine, error)
}

// BuilderFor selects the builder strategy for a voucher type.
func BuilderFor(t VoucherType) (VoucherLineBuilder, error) {
	switch t {
	case VoucherTypeJournal, VoucherTypeDebitNote, VoucherTypeCreditNote:
		return journalBuilder{typ: t}, nil
	case VoucherTypePayment:
		return paymentBuilder{}, nil
	case VoucherTypeReceipt:
		return receiptBuilder{}, nil
	case VoucherTypeContra:
		return contraBuilder{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidVoucherType, t)
	}
}

// BuildLines is shorthand for BuilderFor(t).Build(form).
func BuildLines(t VoucherType, form VoucherForm) ([]VoucherLine, error) {
	b, err := BuilderFor(t)
	if err != nil {
		return nil, err
	}
	return b.Build(form)
}

// journalBuilder takes user rows verbatim, dropping rows that are entirely empty.
type journalBuilder struct {
	typ VoucherType
}

func (b journalBuilder) Type() VoucherType { return b.typ }

func (b journalBuilder) Build(form VoucherForm) ([]VoucherLine, error) {
	lines := make([]VoucherLine, 0, len(form.Rows))
	for _, r := range form.Rows {
		if strings.TrimSpace(r.AccountID) == "" && r.Debit.IsZero() && r.Credit.IsZero() {
			continue
		}
		lines = append(lines, VoucherLine{
			AccountID:   r.AccountID,
			Description: r.Description,
			Debit:       r.Debit,
			Credit:      r.Credit,
			ReferenceNo: r.ReferenceNo,
		})
	}
	if len(lines) == 0 {
		return nil, NewValidationError("rows", "no journal rows entered")
	}
	return lines, nil
}

// qualifyingItems returns items with an account and a positive amount.
func qualifyingItems(items []FormItem) ([]FormItem, error) {
	out := make([]FormItem, 0, len(items))
	for i, it := range items {
		if !it.Amount.IsPositive() {
			continue
		}
		if strings.TrimSpace(it.AccountID) == "" {
			return nil, NewValidationError(fmt.Sprintf("items[%d].account_id", i), "account is required")
		}
		out = append(out, it)
	}
	if len(out) == 0 {
		return nil, NewValidationError("items", "at least one item with a positive amount is required")
	}
	return out, nil
}

func taxAmount(tax *TaxBreakdown) decimal.Decimal {
	if tax == nil || !tax.Total.IsPositive() {
		return decimal.Zero
	}
	return tax.Total
}

func requireTaxAccount(tax *TaxBreakdown) error {
	if taxAmount(tax).IsPositive() && strings.TrimSpace(tax.AccountID) == "" {
		return NewValidationError("tax.account_id", "tax code has no account")
	}
	return nil
}

// paymentBuilder: debit each item, one aggregate credit on the payment account.
type paymentBuilder struct{}

func (paymentBuilder) Type() VoucherType { return VoucherTypePayment }

func (paymentBuilder) Build(form VoucherForm) ([]VoucherLine, error) {
	if strings.TrimSpace(form.CounterAccountID) == "" {
		return nil, NewValidationError("payment_account_id", "payment account is required")
	}
	items, err := qualifyingItems(form.Items)
	if err != nil {
		return nil, err
	}
	if err := requireTaxAccount(form.Tax); err != nil {
		return nil, err
	}

	lines := make([]VoucherLine, 0, len(items)+2)
	total := decimal.Zero
	for _, it := range items {
		lines = append(lines, DebitLine(it.AccountID, it.Description, it.Amount, it.ReferenceNo))
		total = total.Add(it.Amount)
	}
	if tax := taxAmount(form.Tax); tax.IsPositive() {
		lines = append(lines, DebitLine(form.Tax.AccountID, "Tax", tax, ""))
		total = total.Add(tax)
	}
	lines = append(lines, CreditLine(form.CounterAccountID, form.PaymentMethod, total, ""))

	return lines, nil
}

// receiptBuilder mirrors paymentBuilder: debit the deposit account, credit each item.
type receiptBuilder struct{}

func (receiptBuilder) Type() VoucherType { return VoucherTypeReceipt }

func (receiptBuilder) Build(form VoucherForm) ([]VoucherLine, error) {
	if strings.TrimSpace(form.CounterAccountID) == "" {
		return nil, NewValidationError("deposit_account_id", "deposit account is required")
	}
	items, err := qualifyingItems(form.Items)
	if err != nil {
		return nil, err
	}
	if err := requireTaxAccount(form.Tax); err != nil {
		return nil, err
	}

	credits := make([]VoucherLine, 0, len(items)+1)
	total := decimal.Zero
	for _, it := range items {
		credits = append(credits, CreditLine(it.AccountID, it.Description, it.Amount, it.ReferenceNo))
		total = total.Add(it.Amount)
	}
	if tax := taxAmount(form.Tax); tax.IsPositive() {
		credits = append(credits, CreditLine(form.Tax.AccountID, "Tax", tax, ""))
		total = total.Add(tax)
	}

	lines := make([]VoucherLine, 0, len(credits)+1)
	lines = append(lines, DebitLine(form.CounterAccountID, form.PaymentMethod, total, ""))
	lines = append(lines, credits...)

	return lines, nil
}

// contraBuilder synthesizes exactly two lines between two liquid accounts.
type contraBuilder struct{}

func (contraBuilder) Type() VoucherType { return VoucherTypeContra }

func (contraBuilder) Build(form VoucherForm) ([]VoucherLine, error) {
	to := strings.TrimSpace(form.CounterAccountID)
	from := strings.TrimSpace(form.FromAccountID)
	if to == "" {
		return nil, NewValidationError("to_account_id", "transfer-to account is required")
	}
	if from == "" {
		return nil, NewValidationError("from_account_id", "transfer-from account is required")
	}
	if to == from {
		return nil, NewValidationError("to_account_id", "transfer-from and transfer-to accounts must differ")
	}

	total := decimal.Zero
	description := ""
	for _, it := range form.Items {
		if it.Amount.IsPositive() {
			total = total.Add(it.Amount)
			if description == "" {
				description = it.Description
			}
		}
	}
	if !total.IsPositive() {
		return nil, NewValidationError("items", "transfer amount must be positive")
	}

	return []VoucherLine{
		DebitLine(to, description, total, ""),
		CreditLine(from, description, total, ""),
	}, nil
}
