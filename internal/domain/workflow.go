package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// documentTypeInfo is the canonical route and the label synonyms that
// workflow definitions may use for a voucher type.
type documentTypeInfo struct {
	Route  string
	Labels []string
}

var documentTypes = map[VoucherType]documentTypeInfo{
	VoucherTypeJournal:    {Route: "/finance/journal-voucher", Labels: []string{"JV", "Journal Voucher", "JOURNAL_VOUCHER", "Journal"}},
	VoucherTypePayment:    {Route: "/finance/payment-voucher", Labels: []string{"PV", "Payment Voucher", "PAYMENT_VOUCHER", "Payment"}},
	VoucherTypeReceipt:    {Route: "/finance/receipt-voucher", Labels: []string{"RV", "Receipt Voucher", "RECEIPT_VOUCHER", "Receipt"}},
	VoucherTypeContra:     {Route: "/finance/contra-voucher", Labels: []string{"CV", "Contra Voucher", "CONTRA_VOUCHER", "Contra"}},
	VoucherTypeDebitNote:  {Route: "/finance/debit-note", Labels: []string{"DN", "Debit Note", "DEBIT_NOTE"}},
	VoucherTypeCreditNote: {Route: "/finance/credit-note", Labels: []string{"CN", "Credit Note", "CREDIT_NOTE"}},
}

// labelIndex maps a normalized label to its voucher type. Built once.
var labelIndex = func() map[string]VoucherType {
	idx := make(map[string]VoucherType)
	for t, info := range documentTypes {
		for _, l := range info.Labels {
			idx[normalizeLabel(l)] = t
		}
	}
	return idx
}()

func normalizeLabel(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	s = strings.NewReplacer(" ", "_", "-", "_").Replace(s)
	return s
}

// ParseDocumentType resolves a workflow document_type label to a voucher type.
func ParseDocumentType(label string) (VoucherType, bool) {
	t, ok := labelIndex[normalizeLabel(label)]
	return t, ok
}

// DocumentRoute returns the canonical route of a voucher type.
func DocumentRoute(t VoucherType) string {
	return documentTypes[t].Route
}

// WorkflowStep is one approval level.
type WorkflowStep struct {
	StepOrder       int
	ApproverUserIDs []string
	ApprovalLimit   *decimal.Decimal
}

// WorkflowDefinition configures approval routing for a document route/type.
type WorkflowDefinition struct {
	ID                string
	Name              string
	DocumentRoute     string
	DocumentTypeLabel string
	// DocumentType is resolved from DocumentTypeLabel when definitions are loaded.
	DocumentType VoucherType
	MinAmount    *decimal.Decimal
	MaxAmount    *decimal.Decimal
	IsActive     bool
	Steps        []WorkflowStep
}

// ResolveDocumentType fills DocumentType from the label. It reports false
// when the label is unknown.
func (w *WorkflowDefinition) ResolveDocumentType() bool {
	t, ok := ParseDocumentType(w.DocumentTypeLabel)
	if ok {
		w.DocumentType = t
	}
	return ok
}

// Covers reports whether amount falls within [MinAmount, MaxAmount].
// A nil bound is unbounded; a nil amount is covered by any definition.
func (w *WorkflowDefinition) Covers(amount *decimal.Decimal) bool {
	if amount == nil {
		return true
	}
	if w.MinAmount != nil && amount.LessThan(*w.MinAmount) {
		return false
	}
	if w.MaxAmount != nil && amount.GreaterThan(*w.MaxAmount) {
		return false
	}
	return true
}

// WorkflowDetail is a definition with its ordered steps.
type WorkflowDetail struct {
	Definition *WorkflowDefinition
	Steps      []WorkflowStep
}

// Step returns the step with the given order.
func (wd *WorkflowDetail) Step(order int) (WorkflowStep, bool) {
	for _, s := range wd.Steps {
		if s.StepOrder == order {
			return s, true
		}
	}
	return WorkflowStep{}, false
}

// FirstStep returns the lowest-ordered step.
func (wd *WorkflowDetail) FirstStep() (WorkflowStep, bool) {
	var (
		first WorkflowStep
		found bool
	)
	for _, s := range wd.Steps {
		if !found || s.StepOrder < first.StepOrder {
			first = s
			found = true
		}
	}
	return first, found
}

// NextStep returns the step following order.
func (wd *WorkflowDetail) NextStep(order int) (WorkflowStep, bool) {
	var (
		next  WorkflowStep
		found bool
	)
	for _, s := range wd.Steps {
		if s.StepOrder > order && (!found || s.StepOrder < next.StepOrder) {
			next = s
			found = true
		}
	}
	return next, found
}

// WorkflowQuery describes the document being routed.
type WorkflowQuery struct {
	Route  string
	Type   VoucherType
	Amount *decimal.Decimal
}

// SelectWorkflow picks the applicable definition.
//
// Route-matched active definitions are tried first, in listed order, taking
// the first whose amount interval covers the query amount. If none is
// selected, definitions whose document type resolves to the query type are
// tried the same way. The result is a *WorkflowNotFoundError when nothing matches.
func SelectWorkflow(defs []*WorkflowDefinition, q WorkflowQuery) (*WorkflowDefinition, error) {
	var byRoute, byType []*WorkflowDefinition
	for _, w := range defs {
		if !w.IsActive {
			continue
		}
		if q.Route != "" && strings.EqualFold(strings.TrimSpace(w.DocumentRoute), q.Route) {
			byRoute = append(byRoute, w)
		}
		if q.Type != "" && w.DocumentType == q.Type {
			byType = append(byType, w)
		}
	}

	if w := firstCovering(byRoute, q.Amount); w != nil {
		return w, nil
	}
	if w := firstCovering(byType, q.Amount); w != nil {
		return w, nil
	}

	return nil, &WorkflowNotFoundError{Route: q.Route, DocumentType: q.Type}
}

func firstCovering(defs []*WorkflowDefinition, amount *decimal.Decimal) *WorkflowDefinition {
	for _, w := range defs {
		if w.Covers(amount) {
			return w
		}
	}
	return nil
}

// InstanceStatus of a document workflow instance.
type InstanceStatus string

const (
	InstanceStatusPending  InstanceStatus = "PENDING"
	InstanceStatusApproved InstanceStatus = "APPROVED"
	InstanceStatusRejected InstanceStatus = "REJECTED"
	InstanceStatusReturned InstanceStatus = "RETURNED"
)

// DocumentWorkflowInstance tracks a voucher's progress through a workflow.
type DocumentWorkflowInstance struct {
	ID                 string
	DocumentID         string
	WorkflowID         string
	CurrentStepOrder   int
	Status             InstanceStatus
	AssignedApproverID string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// IsOpen reports whether the instance still awaits a decision.
func (i *DocumentWorkflowInstance) IsOpen() bool {
	return i.Status == InstanceStatusPending
}

// Contains reports whether userID is one of the step's approvers.
func (s WorkflowStep) Contains(userID string) bool {
	for _, id := range s.ApproverUserIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// DefaultApprover is the first listed approver, if any.
func (s WorkflowStep) DefaultApprover() (string, bool) {
	if len(s.ApproverUserIDs) == 0 {
		return "", false
	}
	return s.ApproverUserIDs[0], true
}

// CanFinalize reports whether approving amount at this step completes the
// workflow regardless of later steps.
func (s WorkflowStep) CanFinalize(amount decimal.Decimal) bool {
	return s.ApprovalLimit != nil && amount.LessThanOrEqual(*s.ApprovalLimit)
}
