package usecase

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"

	"github.com/iho/voucherpost/internal/domain"
)

const activeWorkflowsKey = "workflows:active"

// WorkflowCatalog keeps active workflow definitions in process memory.
// Document type labels are resolved once, when definitions are loaded.
type WorkflowCatalog struct {
	repo   WorkflowRepository
	cache  *gocache.Cache
	logger zerolog.Logger
}

// NewWorkflowCatalog creates a catalog that reloads definitions after ttl.
func NewWorkflowCatalog(repo WorkflowRepository, ttl time.Duration, logger zerolog.Logger) *WorkflowCatalog {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &WorkflowCatalog{
		repo:   repo,
		cache:  gocache.New(ttl, 2*ttl),
		logger: logger.With().Str("component", "workflow_catalog").Logger(),
	}
}

// Active returns active definitions in listed order.
func (c *WorkflowCatalog) Active(ctx context.Context) ([]*domain.WorkflowDefinition, error) {
	if v, ok := c.cache.Get(activeWorkflowsKey); ok {
		return v.([]*domain.WorkflowDefinition), nil
	}

	defs, err := c.repo.ListWorkflows(ctx, WorkflowFilter{ActiveOnly: true})
	if err != nil {
		return nil, err
	}
	for _, w := range defs {
		c.resolve(w)
	}

	c.cache.SetDefault(activeWorkflowsKey, defs)
	c.logger.Debug().Int("count", len(defs)).Msg("workflow definitions loaded")

	return defs, nil
}

// Select picks the definition applying to q.
func (c *WorkflowCatalog) Select(ctx context.Context, q domain.WorkflowQuery) (*domain.WorkflowDefinition, error) {
	defs, err := c.Active(ctx)
	if err != nil {
		return nil, err
	}
	return domain.SelectWorkflow(defs, q)
}

// Detail returns a definition with its steps.
func (c *WorkflowCatalog) Detail(ctx context.Context, id string) (*domain.WorkflowDetail, error) {
	key := "workflows:detail:" + id
	if v, ok := c.cache.Get(key); ok {
		return v.(*domain.WorkflowDetail), nil
	}

	detail, err := c.repo.GetWorkflowDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	if detail.Definition != nil {
		c.resolve(detail.Definition)
	}

	c.cache.SetDefault(key, detail)
	return detail, nil
}

// Invalidate drops every cached definition.
func (c *WorkflowCatalog) Invalidate() {
	c.cache.Flush()
}

func (c *WorkflowCatalog) resolve(w *domain.WorkflowDefinition) {
	if w.DocumentTypeLabel == "" {
		return
	}
	if !w.ResolveDocumentType() {
		c.logger.Warn().
			Str("workflow_id", w.ID).
			Str("document_type", w.DocumentTypeLabel).
			Msg("unknown document type label, definition only matches by route")
	}
}
