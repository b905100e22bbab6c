package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/voucherpost/internal/domain"
	"github.com/iho/voucherpost/internal/usecase"
)

func TestVoucherFromDomain(t *testing.T) {
	now := time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)
	v := &domain.Voucher{
		ID:           "v-1",
		Type:         domain.VoucherTypeReceipt,
		VoucherNo:    "RV-000003",
		Date:         now,
		CurrencyID:   "USD",
		ExchangeRate: decimal.RequireFromString("12.5"),
		Lines: []domain.VoucherLine{
			domain.DebitLine("bank", "", decimal.NewFromInt(10), ""),
			domain.CreditLine("debtor", "", decimal.NewFromInt(10), "INV-1"),
		},
		Status:    domain.VoucherStatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}

	resp := VoucherFromDomain(v)
	if resp.VoucherDate != "2024-03-05" || resp.TotalDebit != "10.00" || resp.BaseAmount != "125.00" {
		t.Fatalf("unexpected voucher response: %+v", resp)
	}
	if resp.Lines[1].Credit != "10.00" || resp.Lines[1].Debit != "0.00" {
		t.Fatalf("unexpected line response: %+v", resp.Lines[1])
	}

	list := VouchersFromDomain([]*domain.Voucher{v})
	if len(list) != 1 || list[0].ID != "v-1" {
		t.Fatalf("VouchersFromDomain returned %+v", list)
	}
}

func TestWorkflowProposalFromDomain(t *testing.T) {
	unmatched := WorkflowProposalFromDomain(&usecase.WorkflowProposal{VoucherID: "v-1"})
	if unmatched.Matched || unmatched.Workflow != nil {
		t.Fatalf("expected unmatched proposal, got %+v", unmatched)
	}

	limit := decimal.NewFromInt(5000)
	matched := WorkflowProposalFromDomain(&usecase.WorkflowProposal{
		VoucherID:         "v-1",
		Workflow:          &domain.WorkflowDefinition{ID: "wf-1", Name: "Payments", DocumentType: domain.VoucherTypePayment},
		Step:              domain.WorkflowStep{StepOrder: 1, ApproverUserIDs: []string{"u1", "u2"}, ApprovalLimit: &limit},
		DefaultApproverID: "u1",
	})
	if !matched.Matched || matched.Workflow.ID != "wf-1" || *matched.FirstStep.ApprovalLimit != "5000.00" {
		t.Fatalf("unexpected proposal: %+v", matched)
	}
}

func TestTaxBreakdownFromDomain(t *testing.T) {
	b := domain.TaxBreakdown{
		TaxCodeID:  "std",
		AccountID:  "250",
		Subtotal:   decimal.NewFromInt(1000),
		Components: []domain.TaxComponentAmount{{Name: "VAT", Rate: decimal.RequireFromString("12.5"), Amount: decimal.NewFromInt(125)}},
		Total:      decimal.NewFromInt(125),
	}

	resp := TaxBreakdownFromDomain(b)
	if resp.GrandTotal != "1125.00" || resp.Components[0].Rate != "12.5" {
		t.Fatalf("unexpected tax response: %+v", resp)
	}
}

func TestAllocationResultJSON(t *testing.T) {
	res := domain.AllocationResult{
		Allocations: []domain.Allocation{{BillID: "b1", BillNo: "INV-1", Amount: decimal.NewFromInt(40)}},
		Allocated:   decimal.NewFromInt(40),
		Unallocated: decimal.NewFromInt(10),
	}

	raw, err := json.Marshal(AllocationResultFromDomain(res))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"allocations":[{"bill_id":"b1","bill_no":"INV-1","amount":"40.00"}],"allocated":"40.00","unallocated":"10.00"}`
	if string(raw) != want {
		t.Fatalf("unexpected JSON:\n got %s\nwant %s", raw, want)
	}
}
