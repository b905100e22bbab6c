package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// VoucherType identifies the kind of accounting document.
type VoucherType string

const (
	VoucherTypeJournal    VoucherType = "JV"
	VoucherTypePayment    VoucherType = "PV"
	VoucherTypeReceipt    VoucherType = "RV"
	VoucherTypeContra     VoucherType = "CV"
	VoucherTypeDebitNote  VoucherType = "DN"
	VoucherTypeCreditNote VoucherType = "CN"
)

const voucherSequenceDigits = 6

// VoucherTypes lists every supported type in display order.
var VoucherTypes = []VoucherType{
	VoucherTypeJournal,
	VoucherTypePayment,
	VoucherTypeReceipt,
	VoucherTypeContra,
	VoucherTypeDebitNote,
	VoucherTypeCreditNote,
}

// IsValid checks if the type is supported.
func (t VoucherType) IsValid() bool {
	for _, v := range VoucherTypes {
		if v == t {
			return true
		}
	}
	return false
}

// ParseVoucherType parses a type code such as "pv" or "PV".
func ParseVoucherType(s string) (VoucherType, error) {
	t := VoucherType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidVoucherType, s)
	}
	return t, nil
}

// FormatVoucherNo renders a sequence as {type}-{zero padded sequence}.
func FormatVoucherNo(t VoucherType, seq int64) string {
	return fmt.Sprintf("%s-%0*d", t, voucherSequenceDigits, seq)
}

// VoucherStatus is the approval state of a voucher.
type VoucherStatus string

const (
	VoucherStatusDraft           VoucherStatus = "DRAFT"
	VoucherStatusPendingApproval VoucherStatus = "PENDING_APPROVAL"
	VoucherStatusApproved        VoucherStatus = "APPROVED"
	VoucherStatusRejected        VoucherStatus = "REJECTED"
	VoucherStatusReturned        VoucherStatus = "RETURNED"
)

// CanForward reports whether a voucher in this status may be forwarded.
func (s VoucherStatus) CanForward() bool {
	return s == VoucherStatusDraft || s == VoucherStatusReturned
}

// IsFinal reports whether the approval lifecycle has ended.
func (s VoucherStatus) IsFinal() bool {
	return s == VoucherStatusApproved || s == VoucherStatusRejected
}

// VoucherEvent drives the approval state machine.
type VoucherEvent string

const (
	EventForward VoucherEvent = "forward"
	EventApprove VoucherEvent = "approve"
	EventReject  VoucherEvent = "reject"
	EventReturn  VoucherEvent = "return"

	// EventAutoApprove approves a forwardable voucher that no workflow covers.
	EventAutoApprove VoucherEvent = "auto_approve"
)

// NextStatus applies an event to a status. finalStep only matters for approve:
// approving the last step completes the workflow, any other step keeps the
// voucher pending.
func NextStatus(current VoucherStatus, event VoucherEvent, finalStep bool) (VoucherStatus, error) {
	switch event {
	case EventForward:
		if current.CanForward() {
			return VoucherStatusPendingApproval, nil
		}
	case EventApprove:
		if current == VoucherStatusPendingApproval {
			if finalStep {
				return VoucherStatusApproved, nil
			}
			return VoucherStatusPendingApproval, nil
		}
	case EventReject:
		if current == VoucherStatusPendingApproval {
			return VoucherStatusRejected, nil
		}
	case EventReturn:
		if current == VoucherStatusPendingApproval {
			return VoucherStatusReturned, nil
		}
	case EventAutoApprove:
		if current.CanForward() {
			return VoucherStatusApproved, nil
		}
	}
	return current, fmt.Errorf("%w: %s from %s", ErrInvalidTransition, event, current)
}

// VoucherLine is a single debit or credit line.
type VoucherLine struct {
	AccountID   string
	Description string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	ReferenceNo string
}

// DebitLine creates a debit line.
func DebitLine(accountID, description string, amount decimal.Decimal, referenceNo string) VoucherLine {
	return VoucherLine{AccountID: accountID, Description: description, Debit: amount, Credit: decimal.Zero, ReferenceNo: referenceNo}
}

// CreditLine creates a credit line.
func CreditLine(accountID, description string, amount decimal.Decimal, referenceNo string) VoucherLine {
	return VoucherLine{AccountID: accountID, Description: description, Debit: decimal.Zero, Credit: amount, ReferenceNo: referenceNo}
}

// IsBlank reports whether the line carries no account or no amount.
func (l VoucherLine) IsBlank() bool {
	return strings.TrimSpace(l.AccountID) == "" || (l.Debit.IsZero() && l.Credit.IsZero())
}

// Amount returns the nonzero side of the line.
func (l VoucherLine) Amount() decimal.Decimal {
	if !l.Debit.IsZero() {
		return l.Debit
	}
	return l.Credit
}

// Voucher is a posted accounting document.
type Voucher struct {
	ID           string
	Type         VoucherType
	VoucherNo    string
	Date         time.Time
	FiscalYearID string
	Narration    string
	CurrencyID   string
	ExchangeRate decimal.Decimal
	Lines        []VoucherLine
	Status       VoucherStatus
	WorkflowID   *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TotalDebit sums all debit lines.
func (v *Voucher) TotalDebit() decimal.Decimal {
	return sumDebit(v.Lines)
}

// TotalCredit sums all credit lines.
func (v *Voucher) TotalCredit() decimal.Decimal {
	return sumCredit(v.Lines)
}

// GrandTotal is the amount used for workflow routing.
func (v *Voucher) GrandTotal() decimal.Decimal {
	return v.TotalDebit()
}

// BaseAmount converts the grand total into base currency.
func (v *Voucher) BaseAmount() decimal.Decimal {
	if v.ExchangeRate.IsZero() {
		return v.GrandTotal()
	}
	return v.GrandTotal().Mul(v.ExchangeRate).Round(2)
}

func sumDebit(lines []VoucherLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Debit)
	}
	return total
}

func sumCredit(lines []VoucherLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Credit)
	}
	return total
}

// Transition applies event to the voucher status and stamps UpdatedAt.
func (v *Voucher) Transition(event VoucherEvent, finalStep bool, at time.Time) error {
	next, err := NextStatus(v.Status, event, finalStep)
	if err != nil {
		return err
	}
	v.Status = next
	v.UpdatedAt = at
	return nil
}
