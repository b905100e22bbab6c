package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/voucherpost/internal/domain"
)

// RateUseCase resolves point-in-time exchange rates.
type RateUseCase struct {
	rateRepo RateRepository
	cache    Cache
	cacheTTL time.Duration
	metrics  Metrics
}

// NewRateUseCase creates a new RateUseCase. cache may be nil.
func NewRateUseCase(rateRepo RateRepository, cache Cache, cacheTTL time.Duration, metrics Metrics) *RateUseCase {
	if cacheTTL <= 0 {
		cacheTTL = DefaultRateCacheTTL
	}
	if metrics == nil {
		metrics = NopMetrics{}
	}
	return &RateUseCase{
		rateRepo: rateRepo,
		cache:    cache,
		cacheTTL: cacheTTL,
		metrics:  metrics,
	}
}

type cachedRate struct {
	Rate   string            `json:"rate"`
	Source domain.RateSource `json:"source"`
}

// ResolveRate returns the rate converting one unit of from into to as of asOf.
//
// The direct pair is tried first, then the reverse pair (returning 1/rate).
// When neither exists the result is a *domain.RateUnresolvedError.
func (uc *RateUseCase) ResolveRate(ctx context.Context, from, to string, asOf time.Time) (domain.ResolvedRate, error) {
	out := domain.ResolvedRate{FromCurrencyID: from, ToCurrencyID: to, AsOf: asOf}

	if from == "" || to == "" {
		return out, domain.NewValidationError("currency_id", "both currencies are required")
	}

	if from == to {
		out.Rate = decimal.NewFromInt(1)
		out.Source = domain.RateSourceIdentity
		uc.metrics.RateResolved(string(out.Source))
		return out, nil
	}

	key := rateCacheKey(from, to, asOf)
	if cached, ok := uc.fromCache(ctx, key); ok {
		out.Rate = cached.rate
		out.Source = cached.source
		return out, nil
	}

	direct, err := uc.rateRepo.GetRates(ctx, from, to, domain.EndOfDay(asOf))
	if err != nil {
		return out, fmt.Errorf("get rates %s/%s: %w", from, to, err)
	}
	if r, ok := domain.PickLatestRate(direct, asOf); ok {
		out.Rate = r.Rate
		out.Source = domain.RateSourceDirect
		uc.store(ctx, key, out)
		return out, nil
	}

	reverse, err := uc.rateRepo.GetRates(ctx, to, from, domain.EndOfDay(asOf))
	if err != nil {
		return out, fmt.Errorf("get rates %s/%s: %w", to, from, err)
	}
	if r, ok := domain.PickLatestRate(reverse, asOf); ok {
		out.Rate = domain.InverseRate(r.Rate)
		out.Source = domain.RateSourceInverse
		uc.store(ctx, key, out)
		return out, nil
	}

	return out, &domain.RateUnresolvedError{FromCurrencyID: from, ToCurrencyID: to, AsOf: asOf}
}

// ResolveRateWithDefault behaves like ResolveRate but returns def when the
// rate cannot be resolved.
func (uc *RateUseCase) ResolveRateWithDefault(ctx context.Context, from, to string, asOf time.Time, def decimal.Decimal) (domain.ResolvedRate, error) {
	r, err := uc.ResolveRate(ctx, from, to, asOf)
	if errors.Is(err, domain.ErrRateUnresolved) {
		r.Rate = def
		r.Source = domain.RateSourceDefault
		uc.metrics.RateResolved(string(r.Source))
		return r, nil
	}
	return r, err
}

type rateHit struct {
	rate   decimal.Decimal
	source domain.RateSource
}

func (uc *RateUseCase) fromCache(ctx context.Context, key string) (rateHit, bool) {
	if uc.cache == nil {
		return rateHit{}, false
	}
	raw, err := uc.cache.Get(ctx, key)
	if err != nil {
		return rateHit{}, false
	}
	var c cachedRate
	if err := json.Unmarshal(raw, &c); err != nil {
		return rateHit{}, false
	}
	rate, err := decimal.NewFromString(c.Rate)
	if err != nil || !rate.IsPositive() {
		return rateHit{}, false
	}
	return rateHit{rate: rate, source: c.Source}, true
}

func (uc *RateUseCase) store(ctx context.Context, key string, r domain.ResolvedRate) {
	uc.metrics.RateResolved(string(r.Source))
	if uc.cache == nil {
		return
	}
	raw, err := json.Marshal(cachedRate{Rate: r.Rate.String(), Source: r.Source})
	if err != nil {
		return
	}
	// Best effort: a failed write only costs a later lookup.
	_ = uc.cache.Set(ctx, key, raw, uc.cacheTTL)
}

func rateCacheKey(from, to string, asOf time.Time) string {
	return fmt.Sprintf("rate:%s:%s:%s", from, to, asOf.Format(time.DateOnly))
}
