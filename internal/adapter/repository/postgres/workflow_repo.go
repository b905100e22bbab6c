package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/iho/voucherpost/internal/domain"
	"github.com/iho/voucherpost/internal/infrastructure/postgres/generated"
	"github.com/iho/voucherpost/internal/usecase"
)

// WorkflowRepository implements usecase.WorkflowRepository.
type WorkflowRepository struct {
	queries *generated.Queries
}

// NewWorkflowRepository creates a new WorkflowRepository.
func NewWorkflowRepository(db generated.DBTX) *WorkflowRepository {
	return &WorkflowRepository{
		queries: generated.New(db),
	}
}

// ListWorkflows returns workflow headers in creation order. Steps are not loaded.
func (r *WorkflowRepository) ListWorkflows(ctx context.Context, filter usecase.WorkflowFilter) ([]*domain.WorkflowDefinition, error) {
	rows, err := r.queries.ListWorkflows(ctx, generated.ListWorkflowsParams{
		Route:      filter.Route,
		ActiveOnly: filter.ActiveOnly,
	})
	if err != nil {
		return nil, err
	}

	defs := make([]*domain.WorkflowDefinition, 0, len(rows))
	for _, row := range rows {
		defs = append(defs, rowToWorkflow(row))
	}

	return defs, nil
}

// GetWorkflowDetail returns a definition with its ordered steps.
func (r *WorkflowRepository) GetWorkflowDetail(ctx context.Context, id string) (*domain.WorkflowDetail, error) {
	row, err := r.queries.GetWorkflow(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrWorkflowNotFound
		}

		return nil, err
	}

	stepRows, err := r.queries.GetWorkflowSteps(ctx, id)
	if err != nil {
		return nil, err
	}

	steps := make([]domain.WorkflowStep, 0, len(stepRows))
	for _, s := range stepRows {
		steps = append(steps, domain.WorkflowStep{
			StepOrder:       int(s.StepOrder),
			ApproverUserIDs: s.ApproverUserIds,
			ApprovalLimit:   numericToDecimalPtr(s.ApprovalLimit),
		})
	}

	def := rowToWorkflow(row)
	def.Steps = steps

	return &domain.WorkflowDetail{Definition: def, Steps: steps}, nil
}

func rowToWorkflow(row generated.Workflow) *domain.WorkflowDefinition {
	return &domain.WorkflowDefinition{
		ID:                row.ID,
		Name:              row.Name,
		DocumentRoute:     row.DocumentRoute,
		DocumentTypeLabel: row.DocumentType,
		MinAmount:         numericToDecimalPtr(row.MinAmount),
		MaxAmount:         numericToDecimalPtr(row.MaxAmount),
		IsActive:          row.IsActive,
	}
}

// WorkflowInstanceRepository implements usecase.WorkflowInstanceRepository.
type WorkflowInstanceRepository struct {
	queries *generated.Queries
}

// NewWorkflowInstanceRepository creates a new WorkflowInstanceRepository.
func NewWorkflowInstanceRepository(db generated.DBTX) *WorkflowInstanceRepository {
	return &WorkflowInstanceRepository{
		queries: generated.New(db),
	}
}

// Create inserts a workflow instance within a transaction.
func (r *WorkflowInstanceRepository) Create(ctx context.Context, tx usecase.Transaction, instance *domain.DocumentWorkflowInstance) error {
	return txQueries(tx).CreateWorkflowInstance(ctx, generated.CreateWorkflowInstanceParams{
		ID:                 instance.ID,
		DocumentID:         instance.DocumentID,
		WorkflowID:         instance.WorkflowID,
		CurrentStepOrder:   int32(instance.CurrentStepOrder),
		Status:             string(instance.Status),
		AssignedApproverID: instance.AssignedApproverID,
		CreatedAt:          timeToPgTimestamptz(instance.CreatedAt),
		UpdatedAt:          timeToPgTimestamptz(instance.UpdatedAt),
	})
}

// GetOpenByDocumentForUpdate locks the pending instance of a document.
func (r *WorkflowInstanceRepository) GetOpenByDocumentForUpdate(ctx context.Context, tx usecase.Transaction, documentID string) (*domain.DocumentWorkflowInstance, error) {
	row, err := txQueries(tx).GetOpenWorkflowInstanceForUpdate(ctx, documentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInstanceNotFound
		}

		return nil, err
	}

	return rowToInstance(row), nil
}

// GetLatestByDocument returns the most recent instance of a document.
func (r *WorkflowInstanceRepository) GetLatestByDocument(ctx context.Context, documentID string) (*domain.DocumentWorkflowInstance, error) {
	row, err := r.queries.GetLatestWorkflowInstance(ctx, documentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInstanceNotFound
		}

		return nil, err
	}

	return rowToInstance(row), nil
}

// Update stores the step, status and assignee of an instance.
func (r *WorkflowInstanceRepository) Update(ctx context.Context, tx usecase.Transaction, instance *domain.DocumentWorkflowInstance) error {
	n, err := txQueries(tx).UpdateWorkflowInstance(ctx, generated.UpdateWorkflowInstanceParams{
		ID:                 instance.ID,
		CurrentStepOrder:   int32(instance.CurrentStepOrder),
		Status:             string(instance.Status),
		AssignedApproverID: instance.AssignedApproverID,
		UpdatedAt:          timeToPgTimestamptz(instance.UpdatedAt),
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrInstanceNotFound
	}

	return nil
}

func rowToInstance(row generated.DocumentWorkflowInstance) *domain.DocumentWorkflowInstance {
	return &domain.DocumentWorkflowInstance{
		ID:                 row.ID,
		DocumentID:         row.DocumentID,
		WorkflowID:         row.WorkflowID,
		CurrentStepOrder:   int(row.CurrentStepOrder),
		Status:             domain.InstanceStatus(row.Status),
		AssignedApproverID: row.AssignedApproverID,
		CreatedAt:          row.CreatedAt.Time,
		UpdatedAt:          row.UpdatedAt.Time,
	}
}
