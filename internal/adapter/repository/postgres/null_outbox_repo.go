package postgres

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/voucherpost/internal/domain"
	"github.com/iho/voucherpost/internal/usecase"
)

// NullOutboxRepository drops voucher events instead of storing them. The
// server uses it when OUTBOX_ENABLED is false; each dropped event is logged
// at debug level so postings stay traceable.
type NullOutboxRepository struct {
	logger zerolog.Logger
}

// NewNullOutboxRepository creates a new NullOutboxRepository.
func NewNullOutboxRepository(logger zerolog.Logger) *NullOutboxRepository {
	return &NullOutboxRepository{logger: logger}
}

func (r *NullOutboxRepository) Create(ctx context.Context, tx usecase.Transaction, event *domain.OutboxEvent) error {
	r.logger.Debug().
		Str("event_type", event.EventType).
		Str("aggregate_id", event.AggregateID).
		Msg("outbox disabled, event dropped")
	return nil
}

func (r *NullOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]*domain.OutboxEvent, error) {
	return nil, nil
}

func (r *NullOutboxRepository) MarkPublished(ctx context.Context, id string, publishedAt time.Time) error {
	return nil
}
