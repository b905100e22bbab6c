package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/voucherpost/internal/domain"
)

// ErrCacheMiss is returned by Cache.Get when the key does not exist.
var ErrCacheMiss = errors.New("cache miss")

// AccountDirectory is the read-only account lookup owned by setup.
type AccountDirectory interface {
	ListAccounts(ctx context.Context, filter domain.AccountFilter) ([]*domain.Account, error)
}

// VoucherRepository defines data access for vouchers and their lines.
type VoucherRepository interface {
	Create(ctx context.Context, tx Transaction, voucher *domain.Voucher) error
	GetByID(ctx context.Context, id string) (*domain.Voucher, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.Voucher, error)
	UpdateStatus(ctx context.Context, tx Transaction, id string, status domain.VoucherStatus, workflowID *string, updatedAt time.Time) error
	List(ctx context.Context, voucherType domain.VoucherType, limit, offset int) ([]*domain.Voucher, error)
}

// SequenceRepository allocates voucher numbers.
type SequenceRepository interface {
	// Next atomically increments and returns the sequence of a voucher type.
	Next(ctx context.Context, tx Transaction, voucherType domain.VoucherType) (int64, error)
}

// RateRepository reads currency rates.
type RateRepository interface {
	// GetRates returns rates for the pair with RateDate <= asOf, latest first.
	GetRates(ctx context.Context, fromCurrencyID, toCurrencyID string, asOf time.Time) ([]domain.CurrencyRate, error)
}

// TaxRepository reads tax codes.
type TaxRepository interface {
	GetTaxCode(ctx context.Context, id string) (*domain.TaxCode, error)
	GetTaxComponents(ctx context.Context, taxCodeID string) ([]domain.TaxComponent, error)
}

// BillRepository defines data access for outstanding bills.
type BillRepository interface {
	ListOutstanding(ctx context.Context, partyID string) ([]domain.OutstandingBill, error)
	GetByIDsForUpdate(ctx context.Context, tx Transaction, ids []string) ([]domain.OutstandingBill, error)
	ApplyPayment(ctx context.Context, tx Transaction, billID string, outstanding decimal.Decimal, status domain.PaymentStatus, updatedAt time.Time) error
	RecordApplication(ctx context.Context, tx Transaction, voucherID string, allocation domain.Allocation, createdAt time.Time) error
}

// WorkflowRepository reads workflow definitions.
type WorkflowRepository interface {
	ListWorkflows(ctx context.Context, filter WorkflowFilter) ([]*domain.WorkflowDefinition, error)
	GetWorkflowDetail(ctx context.Context, id string) (*domain.WorkflowDetail, error)
}

// WorkflowFilter narrows ListWorkflows.
type WorkflowFilter struct {
	Route      string
	ActiveOnly bool
}

// WorkflowInstanceRepository defines data access for document workflow instances.
type WorkflowInstanceRepository interface {
	Create(ctx context.Context, tx Transaction, instance *domain.DocumentWorkflowInstance) error
	GetOpenByDocumentForUpdate(ctx context.Context, tx Transaction, documentID string) (*domain.DocumentWorkflowInstance, error)
	GetLatestByDocument(ctx context.Context, documentID string) (*domain.DocumentWorkflowInstance, error)
	Update(ctx context.Context, tx Transaction, instance *domain.DocumentWorkflowInstance) error
}

// OutboxRepository defines data access for outbox events.
type OutboxRepository interface {
	Create(ctx context.Context, tx Transaction, event *domain.OutboxEvent) error
	GetUnpublished(ctx context.Context, limit int) ([]*domain.OutboxEvent, error)
	MarkPublished(ctx context.Context, id string, publishedAt time.Time) error
}

// RateResolver resolves exchange rates; implemented by RateUseCase.
type RateResolver interface {
	ResolveRate(ctx context.Context, from, to string, asOf time.Time) (domain.ResolvedRate, error)
}

// TaxCalculator computes tax for a subtotal; implemented by TaxUseCase.
type TaxCalculator interface {
	ComputeTax(ctx context.Context, subtotal decimal.Decimal, taxCodeID string) (domain.TaxBreakdown, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// Retrier re-runs an operation on retryable failures.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// PostingLocker serializes postings of the same voucher type across instances.
type PostingLocker interface {
	// Acquire obtains the lock and returns its release function.
	Acquire(ctx context.Context, key string) (release func(), err error)
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

// Metrics records domain-level measurements.
type Metrics interface {
	VoucherPosted(voucherType string, duration time.Duration)
	PostingFailed(voucherType, reason string)
	VoucherForwarded(outcome string)
	RateResolved(source string)
}

// NopMetrics discards all measurements.
type NopMetrics struct{}

func (NopMetrics) VoucherPosted(string, time.Duration) {}
func (NopMetrics) PostingFailed(string, string)        {}
func (NopMetrics) VoucherForwarded(string)             {}
func (NopMetrics) RateResolved(string)                 {}
