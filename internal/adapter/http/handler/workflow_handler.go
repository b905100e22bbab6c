package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/voucherpost/internal/adapter/http/dto"
	"github.com/iho/voucherpost/internal/domain"
	"github.com/iho/voucherpost/internal/usecase"
)

// WorkflowService defines the behavior needed by WorkflowHandler.
type WorkflowService interface {
	ListActiveWorkflows(ctx context.Context) ([]*domain.WorkflowDefinition, error)
	ProposeWorkflow(ctx context.Context, voucherID string) (*usecase.WorkflowProposal, error)
	ForwardForApproval(ctx context.Context, input usecase.ForwardInput) (*usecase.ForwardResult, error)
	GetApprovalState(ctx context.Context, voucherID string) (*usecase.ApprovalState, error)
	RecordDecision(ctx context.Context, input usecase.DecisionInput) (*usecase.ApprovalState, error)
}

// WorkflowHandler handles approval routing requests.
type WorkflowHandler struct {
	workflowUC WorkflowService
}

// NewWorkflowHandler creates a new WorkflowHandler.
func NewWorkflowHandler(workflowUC WorkflowService) *WorkflowHandler {
	return &WorkflowHandler{workflowUC: workflowUC}
}

// List lists active workflow definitions.
func (h *WorkflowHandler) List(w http.ResponseWriter, r *http.Request) {
	defs, err := h.workflowUC.ListActiveWorkflows(r.Context())
	if err != nil {
		writeDomainError(w, "failed to list workflows", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.WorkflowsFromDomain(defs))
}

// Propose shows which workflow and approver a forward would use.
func (h *WorkflowHandler) Propose(w http.ResponseWriter, r *http.Request) {
	proposal, err := h.workflowUC.ProposeWorkflow(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, "failed to select workflow", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.WorkflowProposalFromDomain(proposal))
}

// Forward sends a voucher into its approval workflow.
func (h *WorkflowHandler) Forward(w http.ResponseWriter, r *http.Request) {
	var req dto.ForwardRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	result, err := h.workflowUC.ForwardForApproval(r.Context(), req.ToUseCaseInput(chi.URLParam(r, "id")))
	if err != nil {
		writeDomainError(w, "failed to forward voucher", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ForwardFromDomain(result))
}

// ApprovalState returns where a voucher stands in its workflow.
func (h *WorkflowHandler) ApprovalState(w http.ResponseWriter, r *http.Request) {
	state, err := h.workflowUC.GetApprovalState(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, "failed to get approval state", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ApprovalStateFromDomain(state))
}

// Decide records approve, reject or return on the current step.
func (h *WorkflowHandler) Decide(w http.ResponseWriter, r *http.Request) {
	var req dto.DecisionRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	state, err := h.workflowUC.RecordDecision(r.Context(), req.ToUseCaseInput(chi.URLParam(r, "id")))
	if err != nil {
		writeDomainError(w, "failed to record decision", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ApprovalStateFromDomain(state))
}
