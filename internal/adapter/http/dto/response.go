package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/voucherpost/internal/domain"
	"github.com/iho/voucherpost/internal/usecase"
)

// Money amounts are rendered with two decimals; rates keep full precision.
func money(d decimal.Decimal) string { return d.StringFixed(2) }

func moneyPtr(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := money(*d)
	return &s
}

// LineResponse represents a voucher line in API responses.
type LineResponse struct {
	AccountID   string `json:"account_id"`
	Description string `json:"description,omitempty"`
	Debit       string `json:"debit"`
	Credit      string `json:"credit"`
	ReferenceNo string `json:"reference_no,omitempty"`
}

// LinesFromDomain converts voucher lines to responses.
func LinesFromDomain(lines []domain.VoucherLine) []LineResponse {
	result := make([]LineResponse, len(lines))
	for i, l := range lines {
		result[i] = LineResponse{
			AccountID:   l.AccountID,
			Description: l.Description,
			Debit:       money(l.Debit),
			Credit:      money(l.Credit),
			ReferenceNo: l.ReferenceNo,
		}
	}
	return result
}

// VoucherResponse represents a voucher in API responses.
type VoucherResponse struct {
	ID           string         `json:"id"`
	VoucherType  string         `json:"voucher_type"`
	VoucherNo    string         `json:"voucher_no"`
	VoucherDate  string         `json:"voucher_date"`
	FiscalYearID string         `json:"fiscal_year_id,omitempty"`
	Narration    string         `json:"narration,omitempty"`
	CurrencyID   string         `json:"currency_id"`
	ExchangeRate string         `json:"exchange_rate"`
	TotalDebit   string         `json:"total_debit"`
	TotalCredit  string         `json:"total_credit"`
	BaseAmount   string         `json:"base_amount"`
	Status       string         `json:"status"`
	WorkflowID   *string        `json:"workflow_id,omitempty"`
	Lines        []LineResponse `json:"lines"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// VoucherFromDomain converts a domain voucher to response.
func VoucherFromDomain(v *domain.Voucher) *VoucherResponse {
	return &VoucherResponse{
		ID:           v.ID,
		VoucherType:  string(v.Type),
		VoucherNo:    v.VoucherNo,
		VoucherDate:  v.Date.Format(time.DateOnly),
		FiscalYearID: v.FiscalYearID,
		Narration:    v.Narration,
		CurrencyID:   v.CurrencyID,
		ExchangeRate: v.ExchangeRate.String(),
		TotalDebit:   money(v.TotalDebit()),
		TotalCredit:  money(v.TotalCredit()),
		BaseAmount:   money(v.BaseAmount()),
		Status:       string(v.Status),
		WorkflowID:   v.WorkflowID,
		Lines:        LinesFromDomain(v.Lines),
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

// VouchersFromDomain converts domain vouchers to responses.
func VouchersFromDomain(vouchers []*domain.Voucher) []*VoucherResponse {
	result := make([]*VoucherResponse, len(vouchers))
	for i, v := range vouchers {
		result[i] = VoucherFromDomain(v)
	}
	return result
}

// BuiltLinesResponse is the preview of lines a form produces.
type BuiltLinesResponse struct {
	Lines       []LineResponse `json:"lines"`
	TotalDebit  string         `json:"total_debit"`
	TotalCredit string         `json:"total_credit"`
}

// BuiltLinesFromDomain converts built lines to response.
func BuiltLinesFromDomain(lines []domain.VoucherLine) *BuiltLinesResponse {
	debit, credit := decimal.Zero, decimal.Zero
	for _, l := range lines {
		debit = debit.Add(l.Debit)
		credit = credit.Add(l.Credit)
	}
	return &BuiltLinesResponse{
		Lines:       LinesFromDomain(lines),
		TotalDebit:  money(debit),
		TotalCredit: money(credit),
	}
}

// ValidationResponse reports whether lines satisfy double entry.
type ValidationResponse struct {
	Valid       bool    `json:"valid"`
	Error       string  `json:"error,omitempty"`
	Line        *int    `json:"line,omitempty"`
	TotalDebit  *string `json:"total_debit,omitempty"`
	TotalCredit *string `json:"total_credit,omitempty"`
	Delta       *string `json:"delta,omitempty"`
}

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID         string `json:"id"`
	Code       string `json:"code"`
	Name       string `json:"name"`
	CurrencyID string `json:"currency_id"`
	Group      string `json:"group"`
}

// AccountFromDomain converts domain account to response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:         a.ID,
		Code:       a.Code,
		Name:       a.Name,
		CurrencyID: a.CurrencyID,
		Group:      string(a.Group),
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []*domain.Account) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}
	return result
}

// RateResponse represents a resolved exchange rate.
type RateResponse struct {
	FromCurrencyID string `json:"from_currency_id"`
	ToCurrencyID   string `json:"to_currency_id"`
	AsOf           string `json:"as_of"`
	Rate           string `json:"rate"`
	Source         string `json:"source"`
}

// RateFromDomain converts a resolved rate to response.
func RateFromDomain(r domain.ResolvedRate) *RateResponse {
	return &RateResponse{
		FromCurrencyID: r.FromCurrencyID,
		ToCurrencyID:   r.ToCurrencyID,
		AsOf:           r.AsOf.Format(time.DateOnly),
		Rate:           r.Rate.String(),
		Source:         string(r.Source),
	}
}

// TaxComponentResponse is one component of a tax breakdown.
type TaxComponentResponse struct {
	Name   string `json:"name"`
	Rate   string `json:"rate"`
	Amount string `json:"amount,omitempty"`
}

// TaxBreakdownResponse represents computed tax.
type TaxBreakdownResponse struct {
	TaxCodeID  string                 `json:"tax_code_id,omitempty"`
	AccountID  string                 `json:"account_id,omitempty"`
	Subtotal   string                 `json:"subtotal"`
	Components []TaxComponentResponse `json:"components"`
	Total      string                 `json:"total"`
	GrandTotal string                 `json:"grand_total"`
}

// TaxBreakdownFromDomain converts a tax breakdown to response.
func TaxBreakdownFromDomain(b domain.TaxBreakdown) *TaxBreakdownResponse {
	components := make([]TaxComponentResponse, len(b.Components))
	for i, c := range b.Components {
		components[i] = TaxComponentResponse{Name: c.Name, Rate: c.Rate.String(), Amount: money(c.Amount)}
	}
	return &TaxBreakdownResponse{
		TaxCodeID:  b.TaxCodeID,
		AccountID:  b.AccountID,
		Subtotal:   money(b.Subtotal),
		Components: components,
		Total:      money(b.Total),
		GrandTotal: money(b.GrandTotal()),
	}
}

// TaxCodeResponse represents a tax code and its components.
type TaxCodeResponse struct {
	ID            string                 `json:"id"`
	Code          string                 `json:"code"`
	Name          string                 `json:"name"`
	AccountID     string                 `json:"account_id"`
	EffectiveRate string                 `json:"effective_rate"`
	Components    []TaxComponentResponse `json:"components"`
}

// TaxCodeFromDomain converts a tax code to response. Component amounts are
// left empty.
func TaxCodeFromDomain(c *domain.TaxCode) *TaxCodeResponse {
	components := make([]TaxComponentResponse, len(c.Components))
	for i, comp := range c.Components {
		components[i] = TaxComponentResponse{Name: comp.Name, Rate: comp.RatePercent.String()}
	}
	return &TaxCodeResponse{
		ID:            c.ID,
		Code:          c.Code,
		Name:          c.Name,
		AccountID:     c.AccountID,
		EffectiveRate: c.EffectiveRate().String(),
		Components:    components,
	}
}

// BillResponse represents an outstanding bill.
type BillResponse struct {
	ID            string `json:"id"`
	BillNo        string `json:"bill_no"`
	PartyID       string `json:"party_id"`
	BillDate      string `json:"bill_date"`
	Total         string `json:"total"`
	Outstanding   string `json:"outstanding"`
	PaymentStatus string `json:"payment_status"`
}

// BillsFromDomain converts bills to responses.
func BillsFromDomain(bills []domain.OutstandingBill) []BillResponse {
	result := make([]BillResponse, len(bills))
	for i, b := range bills {
		result[i] = BillResponse{
			ID:            b.ID,
			BillNo:        b.BillNo,
			PartyID:       b.PartyID,
			BillDate:      b.BillDate.Format(time.DateOnly),
			Total:         money(b.Total),
			Outstanding:   money(b.Outstanding),
			PaymentStatus: string(b.PaymentStatus),
		}
	}
	return result
}

// AllocationResponse is one bill's share of a knock-off.
type AllocationResponse struct {
	BillID string `json:"bill_id"`
	BillNo string `json:"bill_no"`
	Amount string `json:"amount"`
}

// AllocationResultResponse represents a knock-off proposal.
type AllocationResultResponse struct {
	Allocations []AllocationResponse `json:"allocations"`
	Allocated   string               `json:"allocated"`
	Unallocated string               `json:"unallocated"`
}

// AllocationResultFromDomain converts an allocation result to response.
func AllocationResultFromDomain(r domain.AllocationResult) *AllocationResultResponse {
	allocations := make([]AllocationResponse, len(r.Allocations))
	for i, a := range r.Allocations {
		allocations[i] = AllocationResponse{BillID: a.BillID, BillNo: a.BillNo, Amount: money(a.Amount)}
	}
	return &AllocationResultResponse{
		Allocations: allocations,
		Allocated:   money(r.Allocated),
		Unallocated: money(r.Unallocated),
	}
}

// WorkflowStepResponse represents one approval level.
type WorkflowStepResponse struct {
	StepOrder       int      `json:"step_order"`
	ApproverUserIDs []string `json:"approver_user_ids"`
	ApprovalLimit   *string  `json:"approval_limit,omitempty"`
}

func stepFromDomain(s domain.WorkflowStep) WorkflowStepResponse {
	approvers := s.ApproverUserIDs
	if approvers == nil {
		approvers = []string{}
	}
	return WorkflowStepResponse{
		StepOrder:       s.StepOrder,
		ApproverUserIDs: approvers,
		ApprovalLimit:   moneyPtr(s.ApprovalLimit),
	}
}

// WorkflowResponse represents a workflow definition.
type WorkflowResponse struct {
	ID            string                 `json:"id"`
	Name          string                 `json:"name"`
	DocumentRoute string                 `json:"document_route"`
	DocumentType  string                 `json:"document_type,omitempty"`
	MinAmount     *string                `json:"min_amount,omitempty"`
	MaxAmount     *string                `json:"max_amount,omitempty"`
	IsActive      bool                   `json:"is_active"`
	Steps         []WorkflowStepResponse `json:"steps,omitempty"`
}

// WorkflowFromDomain converts a workflow definition to response.
func WorkflowFromDomain(w *domain.WorkflowDefinition) *WorkflowResponse {
	resp := &WorkflowResponse{
		ID:            w.ID,
		Name:          w.Name,
		DocumentRoute: w.DocumentRoute,
		DocumentType:  string(w.DocumentType),
		MinAmount:     moneyPtr(w.MinAmount),
		MaxAmount:     moneyPtr(w.MaxAmount),
		IsActive:      w.IsActive,
	}
	for _, s := range w.Steps {
		resp.Steps = append(resp.Steps, stepFromDomain(s))
	}
	return resp
}

// WorkflowsFromDomain converts workflow definitions to responses.
func WorkflowsFromDomain(defs []*domain.WorkflowDefinition) []*WorkflowResponse {
	result := make([]*WorkflowResponse, len(defs))
	for i, d := range defs {
		result[i] = WorkflowFromDomain(d)
	}
	return result
}

// WorkflowProposalResponse is the workflow a forward would attach.
type WorkflowProposalResponse struct {
	VoucherID         string                `json:"voucher_id"`
	Matched           bool                  `json:"matched"`
	Workflow          *WorkflowResponse     `json:"workflow,omitempty"`
	FirstStep         *WorkflowStepResponse `json:"first_step,omitempty"`
	DefaultApproverID string                `json:"default_approver_id,omitempty"`
}

// WorkflowProposalFromDomain converts a proposal to response.
func WorkflowProposalFromDomain(p *usecase.WorkflowProposal) *WorkflowProposalResponse {
	resp := &WorkflowProposalResponse{VoucherID: p.VoucherID}
	if p.Workflow == nil {
		return resp
	}
	step := stepFromDomain(p.Step)
	resp.Matched = true
	resp.Workflow = WorkflowFromDomain(p.Workflow)
	resp.FirstStep = &step
	resp.DefaultApproverID = p.DefaultApproverID
	return resp
}

// ForwardResponse is the voucher's state after forwarding.
type ForwardResponse struct {
	VoucherID          string  `json:"voucher_id"`
	Status             string  `json:"status"`
	WorkflowID         *string `json:"workflow_id,omitempty"`
	AssignedApproverID *string `json:"assigned_approver_id,omitempty"`
	StepOrder          int     `json:"step_order,omitempty"`
}

// ForwardFromDomain converts a forward result to response.
func ForwardFromDomain(r *usecase.ForwardResult) *ForwardResponse {
	return &ForwardResponse{
		VoucherID:          r.VoucherID,
		Status:             string(r.Status),
		WorkflowID:         r.WorkflowID,
		AssignedApproverID: r.AssignedApproverID,
		StepOrder:          r.StepOrder,
	}
}

// ApprovalStateResponse is where a voucher stands in its workflow.
type ApprovalStateResponse struct {
	VoucherID          string  `json:"voucher_id"`
	Status             string  `json:"status"`
	WorkflowID         *string `json:"workflow_id,omitempty"`
	StepOrder          int     `json:"step_order,omitempty"`
	AssignedApproverID string  `json:"assigned_approver_id,omitempty"`
	InstanceStatus     string  `json:"instance_status,omitempty"`
}

// ApprovalStateFromDomain converts an approval state to response.
func ApprovalStateFromDomain(s *usecase.ApprovalState) *ApprovalStateResponse {
	return &ApprovalStateResponse{
		VoucherID:          s.VoucherID,
		Status:             string(s.Status),
		WorkflowID:         s.WorkflowID,
		StepOrder:          s.StepOrder,
		AssignedApproverID: s.AssignedApproverID,
		InstanceStatus:     string(s.InstanceStatus),
	}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}
