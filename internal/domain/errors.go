package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// Voucher errors
	ErrVoucherNotFound     = errors.New("voucher not found")
	ErrInvalidVoucherType  = errors.New("invalid voucher type")
	ErrInvalidTransition   = errors.New("invalid voucher status transition")
	ErrInvalidStructure    = errors.New("invalid voucher line structure")
	ErrUnbalanced          = errors.New("voucher is not balanced")
	ErrInvalidInput        = errors.New("invalid voucher input")
	ErrNumberingConflict   = errors.New("voucher number already taken")
	ErrAccountNotFound     = errors.New("account not found")
	ErrRateUnresolved      = errors.New("currency rate unresolved")
	ErrTaxCodeNotFound     = errors.New("tax code not found")
	ErrBillNotFound        = errors.New("bill not found")
	ErrOverAllocation      = errors.New("allocation exceeds bill outstanding")
	ErrWorkflowNotFound    = errors.New("no applicable workflow")
	ErrWorkflowHasNoSteps  = errors.New("workflow has no steps")
	ErrInstanceNotFound    = errors.New("workflow instance not found")
	ErrNotAssignedApprover = errors.New("user is not the assigned approver")
	ErrApprovalLimit       = errors.New("amount exceeds approval limit of final step")
	ErrPostingBusy         = errors.New("another posting of this voucher type is in progress")
)

// ValidationError reports malformed or incomplete input. Field names the
// offending input so callers can surface it next to the form control.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation failed: %s", e.Reason)
	}
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// NewValidationError creates a ValidationError.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// StructureError reports a line list that cannot form a voucher.
type StructureError struct {
	Line   int // -1 when the error concerns the whole list
	Reason string
}

func (e *StructureError) Error() string {
	if e.Line < 0 {
		return fmt.Sprintf("invalid voucher lines: %s", e.Reason)
	}
	return fmt.Sprintf("invalid voucher line %d: %s", e.Line+1, e.Reason)
}

func (e *StructureError) Unwrap() error { return ErrInvalidStructure }

// BalanceError reports debit != credit together with the delta.
type BalanceError struct {
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
}

// Delta returns debit minus credit.
func (e *BalanceError) Delta() decimal.Decimal {
	return e.TotalDebit.Sub(e.TotalCredit)
}

func (e *BalanceError) Error() string {
	return fmt.Sprintf("debits (%s) != credits (%s), delta %s",
		e.TotalDebit.StringFixed(2), e.TotalCredit.StringFixed(2), e.Delta().StringFixed(2))
}

func (e *BalanceError) Unwrap() error { return ErrUnbalanced }

// RateUnresolvedError means neither a direct nor an inverse rate exists.
type RateUnresolvedError struct {
	FromCurrencyID string
	ToCurrencyID   string
	AsOf           time.Time
}

func (e *RateUnresolvedError) Error() string {
	return fmt.Sprintf("no rate %s->%s on or before %s",
		e.FromCurrencyID, e.ToCurrencyID, e.AsOf.Format(time.DateOnly))
}

func (e *RateUnresolvedError) Unwrap() error { return ErrRateUnresolved }

// NumberingConflictError is returned when an issued voucher number collides
// with an existing one. It is retryable: the next attempt fetches a new number.
type NumberingConflictError struct {
	VoucherNo string
}

func (e *NumberingConflictError) Error() string {
	return fmt.Sprintf("voucher number %s already taken", e.VoucherNo)
}

func (e *NumberingConflictError) Unwrap() error { return ErrNumberingConflict }

// WorkflowNotFoundError is non-fatal; forwarding proceeds per policy.
type WorkflowNotFoundError struct {
	Route        string
	DocumentType VoucherType
}

func (e *WorkflowNotFoundError) Error() string {
	return fmt.Sprintf("no active workflow for route %q or type %s", e.Route, e.DocumentType)
}

func (e *WorkflowNotFoundError) Unwrap() error { return ErrWorkflowNotFound }
