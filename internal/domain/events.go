package domain

import "time"

// Event types
const (
	EventTypeVoucherPosted    = "voucher.posted"
	EventTypeVoucherForwarded = "voucher.forwarded"
	EventTypeVoucherDecided   = "voucher.decided"
	EventTypeBillKnockedOff   = "bill.knocked_off"
)

// Aggregate types
const (
	AggregateTypeVoucher = "voucher"
	AggregateTypeBill    = "bill"
)

// OutboxEvent represents an event to be published
type OutboxEvent struct {
	ID            string
	AggregateID   string
	AggregateType string
	EventType     string
	Payload       map[string]any
	CreatedAt     time.Time
	PublishedAt   *time.Time
	Published     bool
}

// VoucherPostedEvent payload
type VoucherPostedEvent struct {
	VoucherID string `json:"voucher_id"`
	VoucherNo string `json:"voucher_no"`
	Type      string `json:"type"`
	Total     string `json:"total"`
	Currency  string `json:"currency"`
	Date      string `json:"date"`
}

// VoucherForwardedEvent payload
type VoucherForwardedEvent struct {
	VoucherID  string `json:"voucher_id"`
	WorkflowID string `json:"workflow_id"`
	ApproverID string `json:"approver_id"`
	Step       int    `json:"step"`
}

// VoucherDecidedEvent payload
type VoucherDecidedEvent struct {
	VoucherID string `json:"voucher_id"`
	Decision  string `json:"decision"`
	DecidedBy string `json:"decided_by"`
	Status    string `json:"status"`
	Step      int    `json:"step"`
}

// Payload converts an event payload struct to the generic outbox form.
func Payload(v any) map[string]any {
	switch p := v.(type) {
	case VoucherPostedEvent:
		return map[string]any{
			"voucher_id": p.VoucherID, "voucher_no": p.VoucherNo, "type": p.Type,
			"total": p.Total, "currency": p.Currency, "date": p.Date,
		}
	case VoucherForwardedEvent:
		return map[string]any{
			"voucher_id": p.VoucherID, "workflow_id": p.WorkflowID,
			"approver_id": p.ApproverID, "step": p.Step,
		}
	case VoucherDecidedEvent:
		return map[string]any{
			"voucher_id": p.VoucherID, "decision": p.Decision, "decided_by": p.DecidedBy,
			"status": p.Status, "step": p.Step,
		}
	default:
		return nil
	}
}
