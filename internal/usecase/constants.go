package usecase

import "time"

const (
	// DefaultTransactionTimeout is the maximum duration for a posting transaction
	DefaultTransactionTimeout = 10 * time.Second

	// DefaultRateCacheTTL is how long resolved currency rates are cached
	DefaultRateCacheTTL = 10 * time.Minute

	// DefaultTaxCacheTTL is how long tax codes are cached
	DefaultTaxCacheTTL = 30 * time.Minute

	// IdempotencyKeyTTL is how long idempotency keys are cached
	IdempotencyKeyTTL = 24 * time.Hour

	defaultListLimit = 20
	maxListLimit     = 100
)

// UnmatchedWorkflowPolicy decides what forwarding does when no workflow applies.
type UnmatchedWorkflowPolicy string

const (
	// PolicyHold leaves the voucher in its current status.
	PolicyHold UnmatchedWorkflowPolicy = "hold"
	// PolicyAutoApprove approves the voucher without a workflow.
	PolicyAutoApprove UnmatchedWorkflowPolicy = "auto_approve"
)

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}
