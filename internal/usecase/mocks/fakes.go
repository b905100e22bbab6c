package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/iho/voucherpost/internal/usecase"
)

// FakeTransactionManager hands out in-memory transactions and counts outcomes.
type FakeTransactionManager struct {
	mu         sync.Mutex
	Begun      int
	Committed  int
	RolledBack int

	BeginErr  error
	CommitErr error
}

func NewFakeTransactionManager() *FakeTransactionManager {
	return &FakeTransactionManager{}
}

func (m *FakeTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.BeginErr != nil {
		return nil, m.BeginErr
	}
	m.Begun++
	return &FakeTransaction{manager: m}, nil
}

// FakeTransaction is a transaction of FakeTransactionManager. Rollback after
// Commit is a no-op, as with pgx.
type FakeTransaction struct {
	manager *FakeTransactionManager
	done    bool
}

func (t *FakeTransaction) Commit(ctx context.Context) error {
	t.manager.mu.Lock()
	defer t.manager.mu.Unlock()
	if t.manager.CommitErr != nil {
		return t.manager.CommitErr
	}
	t.done = true
	t.manager.Committed++
	return nil
}

func (t *FakeTransaction) Rollback(ctx context.Context) error {
	t.manager.mu.Lock()
	defer t.manager.mu.Unlock()
	if t.done {
		return nil
	}
	t.done = true
	t.manager.RolledBack++
	return nil
}

// SequentialIDGenerator returns prefix-1, prefix-2, ...
type SequentialIDGenerator struct {
	mu     sync.Mutex
	prefix string
	n      int
}

func NewSequentialIDGenerator(prefix string) *SequentialIDGenerator {
	return &SequentialIDGenerator{prefix: prefix}
}

func (g *SequentialIDGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("%s-%d", g.prefix, g.n)
}

// FakeRetrier re-runs an operation immediately while Retryable reports true.
type FakeRetrier struct {
	MaxAttempts int
	Retryable   func(error) bool
	Attempts    int
}

func NewFakeRetrier(maxAttempts int, retryable func(error) bool) *FakeRetrier {
	return &FakeRetrier{MaxAttempts: maxAttempts, Retryable: retryable}
}

func (r *FakeRetrier) Retry(ctx context.Context, operation func() error) error {
	var err error
	for r.Attempts = 1; ; r.Attempts++ {
		err = operation()
		if err == nil || r.Retryable == nil || !r.Retryable(err) || r.Attempts >= r.MaxAttempts {
			return err
		}
	}
}
