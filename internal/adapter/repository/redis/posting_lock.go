package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/iho/voucherpost/internal/domain"
)

// PostingLocker implements usecase.PostingLocker with a Redis lock, so
// postings of one voucher type are serialized across API instances.
type PostingLocker struct {
	locker  *redislock.Client
	ttl     time.Duration
	retries int
	backoff time.Duration
	logger  zerolog.Logger
}

// NewPostingLocker creates a PostingLocker. ttl bounds how long a crashed
// holder can block others.
func NewPostingLocker(client *redis.Client, ttl time.Duration, logger zerolog.Logger) *PostingLocker {
	if ttl <= 0 {
		ttl = 10 * time.Second
	}
	return &PostingLocker{
		locker:  redislock.New(client),
		ttl:     ttl,
		retries: 40,
		backoff: 50 * time.Millisecond,
		logger:  logger,
	}
}

// Acquire obtains the lock for key, waiting with linear backoff. It returns
// domain.ErrPostingBusy when the lock stays held.
func (l *PostingLocker) Acquire(ctx context.Context, key string) (func(), error) {
	lock, err := l.locker.Obtain(ctx, "voucherpost:lock:"+key, l.ttl, &redislock.Options{
		RetryStrategy: redislock.LimitRetry(redislock.LinearBackoff(l.backoff), l.retries),
	})
	if err != nil {
		if errors.Is(err, redislock.ErrNotObtained) {
			return nil, fmt.Errorf("%w: %s", domain.ErrPostingBusy, key)
		}
		return nil, err
	}

	release := func() {
		// The posting context may already be cancelled; release on a fresh one.
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		if err := lock.Release(ctx); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
			l.logger.Warn().Err(err).Str("key", key).Msg("failed to release posting lock")
		}
	}

	return release, nil
}
