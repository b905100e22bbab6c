package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/voucherpost/internal/adapter/http/dto"
	"github.com/iho/voucherpost/internal/domain"
	"github.com/iho/voucherpost/internal/usecase"
)

// BillService defines the behavior needed by BillHandler.
type BillService interface {
	ListOutstanding(ctx context.Context, partyID string) ([]domain.OutstandingBill, error)
	AllocateBills(ctx context.Context, input usecase.AllocateBillsInput) (domain.AllocationResult, error)
}

// BillHandler serves outstanding bills and knock-off proposals.
type BillHandler struct {
	billUC BillService
}

// NewBillHandler creates a new BillHandler.
func NewBillHandler(billUC BillService) *BillHandler {
	return &BillHandler{billUC: billUC}
}

// ListByParty lists a party's bills with an open balance.
func (h *BillHandler) ListByParty(w http.ResponseWriter, r *http.Request) {
	bills, err := h.billUC.ListOutstanding(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, "failed to list bills", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.BillsFromDomain(bills))
}

// Allocate proposes how a payment total is spread across bills.
func (h *BillHandler) Allocate(w http.ResponseWriter, r *http.Request) {
	var req dto.AllocateBillsRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeDomainError(w, "invalid allocation request", err)
		return
	}

	result, err := h.billUC.AllocateBills(r.Context(), input)
	if err != nil {
		writeDomainError(w, "failed to allocate", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.AllocationResultFromDomain(result))
}
