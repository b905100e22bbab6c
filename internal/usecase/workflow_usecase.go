package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/voucherpost/internal/domain"
)

// WorkflowUseCase routes vouchers through approval workflows.
type WorkflowUseCase struct {
	txManager TransactionManager
	vouchers  VoucherRepository
	instances WorkflowInstanceRepository
	outbox    OutboxRepository
	catalog   *WorkflowCatalog
	idGen     IDGenerator
	policy    UnmatchedWorkflowPolicy
	metrics   Metrics
	logger    zerolog.Logger
}

// NewWorkflowUseCase creates a new WorkflowUseCase.
func NewWorkflowUseCase(
	txManager TransactionManager,
	vouchers VoucherRepository,
	instances WorkflowInstanceRepository,
	outbox OutboxRepository,
	catalog *WorkflowCatalog,
	idGen IDGenerator,
	policy UnmatchedWorkflowPolicy,
	metrics Metrics,
	logger zerolog.Logger,
) *WorkflowUseCase {
	if policy == "" {
		policy = PolicyHold
	}
	if metrics == nil {
		metrics = NopMetrics{}
	}
	return &WorkflowUseCase{
		txManager: txManager,
		vouchers:  vouchers,
		instances: instances,
		outbox:    outbox,
		catalog:   catalog,
		idGen:     idGen,
		policy:    policy,
		metrics:   metrics,
		logger:    logger.With().Str("component", "workflow").Logger(),
	}
}

// WorkflowProposal is the workflow and assignee a forward would use.
// Workflow is nil when no definition applies.
type WorkflowProposal struct {
	VoucherID         string
	Workflow          *domain.WorkflowDefinition
	Step              domain.WorkflowStep
	DefaultApproverID string
}

// ListActiveWorkflows returns the active definitions with resolved document types.
func (uc *WorkflowUseCase) ListActiveWorkflows(ctx context.Context) ([]*domain.WorkflowDefinition, error) {
	return uc.catalog.Active(ctx)
}

// ProposeWorkflow selects the workflow for a voucher without changing it.
func (uc *WorkflowUseCase) ProposeWorkflow(ctx context.Context, voucherID string) (*WorkflowProposal, error) {
	v, err := uc.vouchers.GetByID(ctx, voucherID)
	if err != nil {
		return nil, err
	}
	return uc.propose(ctx, v)
}

func (uc *WorkflowUseCase) propose(ctx context.Context, v *domain.Voucher) (*WorkflowProposal, error) {
	amount := v.BaseAmount()

	def, err := uc.catalog.Select(ctx, domain.WorkflowQuery{
		Route:  domain.DocumentRoute(v.Type),
		Type:   v.Type,
		Amount: &amount,
	})
	if errors.Is(err, domain.ErrWorkflowNotFound) {
		return &WorkflowProposal{VoucherID: v.ID}, nil
	}
	if err != nil {
		return nil, err
	}

	detail, err := uc.catalog.Detail(ctx, def.ID)
	if err != nil {
		return nil, err
	}
	step, ok := detail.FirstStep()
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrWorkflowHasNoSteps, def.ID)
	}
	approver, _ := step.DefaultApprover()

	return &WorkflowProposal{
		VoucherID:         v.ID,
		Workflow:          def,
		Step:              step,
		DefaultApproverID: approver,
	}, nil
}

// ForwardInput represents input for forwarding a voucher.
type ForwardInput struct {
	VoucherID string
	// AssigneeID overrides the proposed approver; it must be listed on the first step.
	AssigneeID  string
	ForwardedBy string
}

// ForwardResult is the voucher's approval state after forwarding.
type ForwardResult struct {
	VoucherID          string
	Status             domain.VoucherStatus
	WorkflowID         *string
	AssignedApproverID *string
	StepOrder          int
}

// ForwardForApproval attaches a workflow and moves the voucher to
// PENDING_APPROVAL. When no workflow applies the outcome follows the
// configured policy; with PolicyHold the voucher is returned unchanged.
func (uc *WorkflowUseCase) ForwardForApproval(ctx context.Context, input ForwardInput) (*ForwardResult, error) {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	v, err := uc.vouchers.GetByIDForUpdate(ctx, tx, input.VoucherID)
	if err != nil {
		return nil, err
	}
	if !v.Status.CanForward() {
		return nil, fmt.Errorf("%w: cannot forward voucher in status %s", domain.ErrInvalidTransition, v.Status)
	}

	proposal, err := uc.propose(ctx, v)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	if proposal.Workflow == nil {
		return uc.forwardUnmatched(ctx, tx, v, input, now)
	}

	assignee := proposal.DefaultApproverID
	if input.AssigneeID != "" {
		if !proposal.Step.Contains(input.AssigneeID) {
			return nil, fmt.Errorf("%w: %s is not an approver of step %d", domain.ErrNotAssignedApprover, input.AssigneeID, proposal.Step.StepOrder)
		}
		assignee = input.AssigneeID
	}
	if assignee == "" {
		return nil, domain.NewValidationError("assignee_id", "workflow step has no approvers")
	}

	instance := &domain.DocumentWorkflowInstance{
		ID:                 uc.idGen.Generate(),
		DocumentID:         v.ID,
		WorkflowID:         proposal.Workflow.ID,
		CurrentStepOrder:   proposal.Step.StepOrder,
		Status:             domain.InstanceStatusPending,
		AssignedApproverID: assignee,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.instances.Create(ctx, tx, instance); err != nil {
		return nil, err
	}

	if err := v.Transition(domain.EventForward, false, now); err != nil {
		return nil, err
	}
	workflowID := proposal.Workflow.ID
	if err := uc.vouchers.UpdateStatus(ctx, tx, v.ID, v.Status, &workflowID, now); err != nil {
		return nil, err
	}

	if err := uc.writeEvent(ctx, tx, v.ID, domain.EventTypeVoucherForwarded, domain.VoucherForwardedEvent{
		VoucherID:  v.ID,
		WorkflowID: workflowID,
		ApproverID: assignee,
		Step:       instance.CurrentStepOrder,
	}, now); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	uc.metrics.VoucherForwarded("forwarded")
	uc.logger.Info().
		Str("voucher_id", v.ID).
		Str("workflow_id", workflowID).
		Str("assignee_id", assignee).
		Str("forwarded_by", input.ForwardedBy).
		Msg("voucher forwarded for approval")

	return &ForwardResult{
		VoucherID:          v.ID,
		Status:             v.Status,
		WorkflowID:         &workflowID,
		AssignedApproverID: &assignee,
		StepOrder:          instance.CurrentStepOrder,
	}, nil
}

func (uc *WorkflowUseCase) forwardUnmatched(ctx context.Context, tx Transaction, v *domain.Voucher, input ForwardInput, now time.Time) (*ForwardResult, error) {
	if uc.policy != PolicyAutoApprove {
		uc.metrics.VoucherForwarded("unmatched")
		uc.logger.Info().
			Str("voucher_id", v.ID).
			Str("type", string(v.Type)).
			Msg("no workflow applies, voucher left unchanged")
		return &ForwardResult{VoucherID: v.ID, Status: v.Status}, nil
	}

	if err := v.Transition(domain.EventAutoApprove, false, now); err != nil {
		return nil, err
	}
	if err := uc.vouchers.UpdateStatus(ctx, tx, v.ID, v.Status, nil, now); err != nil {
		return nil, err
	}
	if err := uc.writeEvent(ctx, tx, v.ID, domain.EventTypeVoucherDecided, domain.VoucherDecidedEvent{
		VoucherID: v.ID,
		Decision:  string(domain.EventAutoApprove),
		DecidedBy: input.ForwardedBy,
		Status:    string(v.Status),
	}, now); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	uc.metrics.VoucherForwarded("auto_approved")
	uc.logger.Info().Str("voucher_id", v.ID).Msg("no workflow applies, voucher auto-approved")

	return &ForwardResult{VoucherID: v.ID, Status: v.Status}, nil
}

// ApprovalState exposes where a voucher stands in its workflow.
type ApprovalState struct {
	VoucherID          string
	Status             domain.VoucherStatus
	WorkflowID         *string
	StepOrder          int
	AssignedApproverID string
	InstanceStatus     domain.InstanceStatus
}

// GetApprovalState returns the voucher status with its latest workflow instance.
func (uc *WorkflowUseCase) GetApprovalState(ctx context.Context, voucherID string) (*ApprovalState, error) {
	v, err := uc.vouchers.GetByID(ctx, voucherID)
	if err != nil {
		return nil, err
	}

	state := &ApprovalState{VoucherID: v.ID, Status: v.Status, WorkflowID: v.WorkflowID}

	instance, err := uc.instances.GetLatestByDocument(ctx, voucherID)
	if errors.Is(err, domain.ErrInstanceNotFound) {
		return state, nil
	}
	if err != nil {
		return nil, err
	}

	state.StepOrder = instance.CurrentStepOrder
	state.AssignedApproverID = instance.AssignedApproverID
	state.InstanceStatus = instance.Status
	return state, nil
}

// DecisionInput represents an approver's decision on the current step.
type DecisionInput struct {
	VoucherID  string
	ApproverID string
	Decision   domain.VoucherEvent
	// NextAssigneeID picks the approver of the next step; defaults to its first approver.
	NextAssigneeID string
	Comment        string
}

// RecordDecision applies approve, reject or return to the open instance.
// Approving advances to the next step unless the step's approval limit
// covers the voucher amount or no step remains.
func (uc *WorkflowUseCase) RecordDecision(ctx context.Context, input DecisionInput) (*ApprovalState, error) {
	switch input.Decision {
	case domain.EventApprove, domain.EventReject, domain.EventReturn:
	default:
		return nil, domain.NewValidationError("decision", "must be approve, reject or return")
	}

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	v, err := uc.vouchers.GetByIDForUpdate(ctx, tx, input.VoucherID)
	if err != nil {
		return nil, err
	}
	instance, err := uc.instances.GetOpenByDocumentForUpdate(ctx, tx, input.VoucherID)
	if err != nil {
		return nil, err
	}
	if instance.AssignedApproverID != input.ApproverID {
		return nil, domain.ErrNotAssignedApprover
	}

	detail, err := uc.catalog.Detail(ctx, instance.WorkflowID)
	if err != nil {
		return nil, err
	}
	step, ok := detail.Step(instance.CurrentStepOrder)
	if !ok {
		return nil, fmt.Errorf("%w: step %d of %s", domain.ErrWorkflowHasNoSteps, instance.CurrentStepOrder, instance.WorkflowID)
	}

	now := time.Now().UTC()

	switch input.Decision {
	case domain.EventApprove:
		if err := uc.approve(v, instance, detail, step, input.NextAssigneeID, now); err != nil {
			return nil, err
		}
	case domain.EventReject:
		if err := v.Transition(domain.EventReject, false, now); err != nil {
			return nil, err
		}
		instance.Status = domain.InstanceStatusRejected
	case domain.EventReturn:
		if err := v.Transition(domain.EventReturn, false, now); err != nil {
			return nil, err
		}
		instance.Status = domain.InstanceStatusReturned
	}
	instance.UpdatedAt = now

	if err := uc.instances.Update(ctx, tx, instance); err != nil {
		return nil, err
	}
	if err := uc.vouchers.UpdateStatus(ctx, tx, v.ID, v.Status, v.WorkflowID, now); err != nil {
		return nil, err
	}
	if err := uc.writeEvent(ctx, tx, v.ID, domain.EventTypeVoucherDecided, domain.VoucherDecidedEvent{
		VoucherID: v.ID,
		Decision:  string(input.Decision),
		DecidedBy: input.ApproverID,
		Status:    string(v.Status),
		Step:      step.StepOrder,
	}, now); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	uc.logger.Info().
		Str("voucher_id", v.ID).
		Str("decision", string(input.Decision)).
		Str("approver_id", input.ApproverID).
		Int("step", step.StepOrder).
		Str("status", string(v.Status)).
		Str("comment", input.Comment).
		Msg("approval decision recorded")

	return &ApprovalState{
		VoucherID:          v.ID,
		Status:             v.Status,
		WorkflowID:         v.WorkflowID,
		StepOrder:          instance.CurrentStepOrder,
		AssignedApproverID: instance.AssignedApproverID,
		InstanceStatus:     instance.Status,
	}, nil
}

func (uc *WorkflowUseCase) approve(
	v *domain.Voucher,
	instance *domain.DocumentWorkflowInstance,
	detail *domain.WorkflowDetail,
	step domain.WorkflowStep,
	nextAssignee string,
	now time.Time,
) error {
	amount := v.BaseAmount()
	next, hasNext := detail.NextStep(step.StepOrder)

	if !hasNext && step.ApprovalLimit != nil && amount.GreaterThan(*step.ApprovalLimit) {
		return fmt.Errorf("%w: %s exceeds %s", domain.ErrApprovalLimit, amount.StringFixed(2), step.ApprovalLimit.StringFixed(2))
	}

	if !hasNext || step.CanFinalize(amount) {
		if err := v.Transition(domain.EventApprove, true, now); err != nil {
			return err
		}
		instance.Status = domain.InstanceStatusApproved
		return nil
	}

	assignee, _ := next.DefaultApprover()
	if nextAssignee != "" {
		if !next.Contains(nextAssignee) {
			return fmt.Errorf("%w: %s is not an approver of step %d", domain.ErrNotAssignedApprover, nextAssignee, next.StepOrder)
		}
		assignee = nextAssignee
	}
	if assignee == "" {
		return domain.NewValidationError("next_assignee_id", "next workflow step has no approvers")
	}

	if err := v.Transition(domain.EventApprove, false, now); err != nil {
		return err
	}
	instance.CurrentStepOrder = next.StepOrder
	instance.AssignedApproverID = assignee
	return nil
}

func (uc *WorkflowUseCase) writeEvent(ctx context.Context, tx Transaction, voucherID, eventType string, payload any, now time.Time) error {
	return uc.outbox.Create(ctx, tx, &domain.OutboxEvent{
		ID:            uc.idGen.Generate(),
		AggregateID:   voucherID,
		AggregateType: domain.AggregateTypeVoucher,
		EventType:     eventType,
		Payload:       domain.Payload(payload),
		CreatedAt:     now,
	})
}
