package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/voucherpost/internal/domain"
	"github.com/iho/voucherpost/internal/usecase"
)

// LineRequest is one debit or credit row.
type LineRequest struct {
	AccountID   string `json:"account_id"`
	Description string `json:"description"   validate:"max=255"`
	Debit       string `json:"debit"`
	Credit      string `json:"credit"`
	ReferenceNo string `json:"reference_no"  validate:"max=64"`
}

// VoucherHeaderRequest holds the header fields shared by posting requests.
type VoucherHeaderRequest struct {
	VoucherType  string  `json:"voucher_type"             validate:"required,oneof=JV PV RV CV DN CN"`
	VoucherDate  string  `json:"voucher_date"             validate:"required,datetime=2006-01-02"`
	FiscalYearID string  `json:"fiscal_year_id"`
	Narration    string  `json:"narration"                validate:"max=500"`
	CurrencyID   string  `json:"currency_id"              validate:"omitempty,len=3"`
	ExchangeRate *string `json:"exchange_rate,omitempty"`
}

// AllocationRequest applies part of the voucher to a bill.
type AllocationRequest struct {
	BillID string `json:"bill_id" validate:"required"`
	BillNo string `json:"bill_no"`
	Amount string `json:"amount"  validate:"required"`
}

// PostVoucherRequest posts pre-built lines.
type PostVoucherRequest struct {
	VoucherHeaderRequest
	Lines       []LineRequest       `json:"lines"       validate:"required,dive"`
	Allocations []AllocationRequest `json:"allocations" validate:"dive"`
}

// ToUseCaseInput converts to use case input.
func (r *PostVoucherRequest) ToUseCaseInput() (usecase.PostVoucherInput, error) {
	header, err := r.VoucherHeaderRequest.toHeader()
	if err != nil {
		return usecase.PostVoucherInput{}, err
	}
	lines, err := linesFromRequest(r.Lines)
	if err != nil {
		return usecase.PostVoucherInput{}, err
	}
	allocations, err := allocationsFromRequest(r.Allocations)
	if err != nil {
		return usecase.PostVoucherInput{}, err
	}

	return usecase.PostVoucherInput{
		VoucherHeader: header,
		Lines:         lines,
		Allocations:   allocations,
	}, nil
}

// FormItemRequest is one item of a payment, receipt or note form.
type FormItemRequest struct {
	Description string `json:"description"  validate:"max=255"`
	AccountID   string `json:"account_id"`
	Amount      string `json:"amount"`
	ReferenceNo string `json:"reference_no" validate:"max=64"`
}

// VoucherFormRequest mirrors the per-type voucher entry forms.
type VoucherFormRequest struct {
	PartyAccountID   string            `json:"party_account_id"`
	PaymentMethod    string            `json:"payment_method"`
	CounterAccountID string            `json:"counter_account_id"`
	FromAccountID    string            `json:"from_account_id"`
	Items            []FormItemRequest `json:"items" validate:"dive"`
	Rows             []LineRequest     `json:"rows"  validate:"dive"`
}

func (f VoucherFormRequest) toDomain() (domain.VoucherForm, error) {
	form := domain.VoucherForm{
		PartyAccountID:   f.PartyAccountID,
		PaymentMethod:    f.PaymentMethod,
		CounterAccountID: f.CounterAccountID,
		FromAccountID:    f.FromAccountID,
	}

	for i, it := range f.Items {
		amount, err := parseAmount(fmt.Sprintf("items[%d].amount", i), it.Amount)
		if err != nil {
			return domain.VoucherForm{}, err
		}
		form.Items = append(form.Items, domain.FormItem{
			Description: it.Description,
			AccountID:   it.AccountID,
			Amount:      amount,
			ReferenceNo: it.ReferenceNo,
		})
	}

	for i, row := range f.Rows {
		debit, err := parseAmount(fmt.Sprintf("rows[%d].debit", i), row.Debit)
		if err != nil {
			return domain.VoucherForm{}, err
		}
		credit, err := parseAmount(fmt.Sprintf("rows[%d].credit", i), row.Credit)
		if err != nil {
			return domain.VoucherForm{}, err
		}
		form.Rows = append(form.Rows, domain.JournalRow{
			AccountID:   row.AccountID,
			Description: row.Description,
			Debit:       debit,
			Credit:      credit,
			ReferenceNo: row.ReferenceNo,
		})
	}

	return form, nil
}

// SubmitFormRequest builds lines from a form and posts them.
type SubmitFormRequest struct {
	VoucherHeaderRequest
	Form        VoucherFormRequest  `json:"form"`
	TaxCodeID   string              `json:"tax_code_id"`
	Allocations []AllocationRequest `json:"allocations" validate:"dive"`
}

// ToUseCaseInput converts to use case input.
func (r *SubmitFormRequest) ToUseCaseInput() (usecase.SubmitFormInput, error) {
	header, err := r.VoucherHeaderRequest.toHeader()
	if err != nil {
		return usecase.SubmitFormInput{}, err
	}
	form, err := r.Form.toDomain()
	if err != nil {
		return usecase.SubmitFormInput{}, err
	}
	allocations, err := allocationsFromRequest(r.Allocations)
	if err != nil {
		return usecase.SubmitFormInput{}, err
	}

	return usecase.SubmitFormInput{
		VoucherHeader: header,
		Form:          form,
		TaxCodeID:     strings.TrimSpace(r.TaxCodeID),
		Allocations:   allocations,
	}, nil
}

// BuildLinesRequest previews the lines a form produces.
type BuildLinesRequest struct {
	VoucherType string             `json:"voucher_type" validate:"required,oneof=JV PV RV CV DN CN"`
	Form        VoucherFormRequest `json:"form"`
	TaxCodeID   string             `json:"tax_code_id"`
}

// ToUseCaseInput converts to use case input.
func (r *BuildLinesRequest) ToUseCaseInput() (usecase.BuildLinesInput, error) {
	form, err := r.Form.toDomain()
	if err != nil {
		return usecase.BuildLinesInput{}, err
	}
	return usecase.BuildLinesInput{
		Type:      domain.VoucherType(r.VoucherType),
		Form:      form,
		TaxCodeID: strings.TrimSpace(r.TaxCodeID),
	}, nil
}

// ValidateLinesRequest checks lines without posting them.
type ValidateLinesRequest struct {
	Lines []LineRequest `json:"lines" validate:"dive"`
}

// ToDomain converts the lines.
func (r *ValidateLinesRequest) ToDomain() ([]domain.VoucherLine, error) {
	return linesFromRequest(r.Lines)
}

// ForwardRequest forwards a voucher for approval.
type ForwardRequest struct {
	AssigneeID  string `json:"assignee_id"`
	ForwardedBy string `json:"forwarded_by" validate:"required"`
}

// ToUseCaseInput converts to use case input.
func (r *ForwardRequest) ToUseCaseInput(voucherID string) usecase.ForwardInput {
	return usecase.ForwardInput{
		VoucherID:   voucherID,
		AssigneeID:  r.AssigneeID,
		ForwardedBy: r.ForwardedBy,
	}
}

// DecisionRequest records an approver's decision.
type DecisionRequest struct {
	ApproverID     string `json:"approver_id"      validate:"required"`
	Decision       string `json:"decision"         validate:"required,oneof=approve reject return"`
	NextAssigneeID string `json:"next_assignee_id"`
	Comment        string `json:"comment"          validate:"max=1000"`
}

// ToUseCaseInput converts to use case input.
func (r *DecisionRequest) ToUseCaseInput(voucherID string) usecase.DecisionInput {
	return usecase.DecisionInput{
		VoucherID:      voucherID,
		ApproverID:     r.ApproverID,
		Decision:       domain.VoucherEvent(r.Decision),
		NextAssigneeID: r.NextAssigneeID,
		Comment:        r.Comment,
	}
}

// ComputeTaxRequest applies a tax code to a subtotal.
type ComputeTaxRequest struct {
	Subtotal  string `json:"subtotal"    validate:"required"`
	TaxCodeID string `json:"tax_code_id"`
}

// ParseSubtotal parses the subtotal.
func (r *ComputeTaxRequest) ParseSubtotal() (decimal.Decimal, error) {
	return parseAmount("subtotal", r.Subtotal)
}

// AllocateBillsRequest proposes a knock-off against a party's bills.
type AllocateBillsRequest struct {
	PartyID     string   `json:"party_id"      validate:"required"`
	BillIDs     []string `json:"bill_ids"      validate:"dive,required"`
	Total       string   `json:"total"         validate:"required"`
	OrderByDate bool     `json:"order_by_date"`
}

// ToUseCaseInput converts to use case input.
func (r *AllocateBillsRequest) ToUseCaseInput() (usecase.AllocateBillsInput, error) {
	total, err := parseAmount("total", r.Total)
	if err != nil {
		return usecase.AllocateBillsInput{}, err
	}
	return usecase.AllocateBillsInput{
		PartyID:     r.PartyID,
		BillIDs:     r.BillIDs,
		Total:       total,
		OrderByDate: r.OrderByDate,
	}, nil
}

func (h VoucherHeaderRequest) toHeader() (usecase.VoucherHeader, error) {
	date, err := time.Parse(time.DateOnly, h.VoucherDate)
	if err != nil {
		return usecase.VoucherHeader{}, domain.NewValidationError("voucher_date", "expected YYYY-MM-DD")
	}

	header := usecase.VoucherHeader{
		Type:         domain.VoucherType(h.VoucherType),
		Date:         date,
		FiscalYearID: h.FiscalYearID,
		Narration:    h.Narration,
		CurrencyID:   strings.ToUpper(strings.TrimSpace(h.CurrencyID)),
	}

	if h.ExchangeRate != nil && strings.TrimSpace(*h.ExchangeRate) != "" {
		rate, err := decimal.NewFromString(strings.TrimSpace(*h.ExchangeRate))
		if err != nil || !rate.IsPositive() {
			return usecase.VoucherHeader{}, domain.NewValidationError("exchange_rate", "must be a positive number")
		}
		header.ExchangeRate = &rate
	}

	return header, nil
}

func linesFromRequest(in []LineRequest) ([]domain.VoucherLine, error) {
	lines := make([]domain.VoucherLine, 0, len(in))
	for i, l := range in {
		debit, err := parseAmount(fmt.Sprintf("lines[%d].debit", i), l.Debit)
		if err != nil {
			return nil, err
		}
		credit, err := parseAmount(fmt.Sprintf("lines[%d].credit", i), l.Credit)
		if err != nil {
			return nil, err
		}
		lines = append(lines, domain.VoucherLine{
			AccountID:   l.AccountID,
			Description: l.Description,
			Debit:       debit,
			Credit:      credit,
			ReferenceNo: l.ReferenceNo,
		})
	}
	return lines, nil
}

func allocationsFromRequest(in []AllocationRequest) ([]domain.Allocation, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make([]domain.Allocation, 0, len(in))
	for i, a := range in {
		amount, err := parseAmount(fmt.Sprintf("allocations[%d].amount", i), a.Amount)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.Allocation{BillID: a.BillID, BillNo: a.BillNo, Amount: amount})
	}
	return out, nil
}

// parseAmount treats an empty string as zero. Amounts are stored in whole
// cents, so finer precision is rejected rather than rounded.
func parseAmount(field, s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, domain.NewValidationError(field, "invalid amount")
	}
	if !domain.IsWholeCents(d) {
		return decimal.Zero, domain.NewValidationError(field, "at most two decimal places allowed")
	}
	return d, nil
}
