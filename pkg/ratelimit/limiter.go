package ratelimit

import (
	"context"
	"time"
)

// Result contains the outcome of a rate limit check.
type Result struct {
	// Allowed indicates whether the attempt was admitted and recorded.
	Allowed bool

	// Limit is the maximum number of attempts allowed in the window.
	Limit int

	// Remaining is the number of attempts left in the current window.
	Remaining int

	// ResetAt is when the oldest recorded attempt leaves the window.
	ResetAt time.Time
}

// RetryAfter returns how long to wait before the next attempt can succeed.
// Returns 0 if the attempt was allowed or no attempts are recorded.
func (r *Result) RetryAfter() time.Duration {
	if r.Allowed {
		return 0
	}
	return max(0, time.Until(r.ResetAt))
}

// Store is the storage backend for sliding-window state. Implementations
// must prune-and-record atomically in Allow.
type Store interface {
	// Allow prunes timestamps older than now-window for the key, then
	// either records now (when under the limit) or leaves state untouched.
	// It returns whether the attempt was recorded, the surviving count
	// (including the new attempt when recorded) and the oldest surviving
	// timestamp (zero when none).
	Allow(ctx context.Context, key string, limit int, window time.Duration, now time.Time) (allowed bool, count int64, oldest time.Time, err error)

	// Window returns the surviving count and oldest timestamp for the key
	// without recording an attempt.
	Window(ctx context.Context, key string, window time.Duration, now time.Time) (count int64, oldest time.Time, err error)

	// Reset removes all recorded attempts for the key.
	Reset(ctx context.Context, key string) error
}

// Limiter is a sliding-window rate limiter. Safe for concurrent use when the
// underlying store is.
type Limiter struct {
	store  Store
	limit  int
	window time.Duration
	prefix string
}

// Option configures a Limiter.
type Option func(*Limiter)

// WithKeyPrefix namespaces all keys with the given prefix so that features
// sharing a store cannot collide on key names.
func WithKeyPrefix(prefix string) Option {
	return func(l *Limiter) {
		l.prefix = prefix
	}
}

// New creates a sliding-window limiter allowing at most limit attempts per
// trailing window.
func New(store Store, limit int, window time.Duration, opts ...Option) (*Limiter, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}
	if window <= 0 {
		return nil, ErrInvalidInterval
	}

	l := &Limiter{
		store:  store,
		limit:  limit,
		window: window,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Allow checks whether one more attempt is admitted for the key, recording
// it when admitted. Denied attempts are not recorded.
func (l *Limiter) Allow(ctx context.Context, key string) (*Result, error) {
	if key == "" {
		return nil, ErrKeyRequired
	}

	now := time.Now()
	allowed, count, oldest, err := l.store.Allow(ctx, l.key(key), l.limit, l.window, now)
	if err != nil {
		return nil, err
	}

	return l.result(allowed, count, oldest, now), nil
}

// Status reports the current state for the key without consuming an attempt.
func (l *Limiter) Status(ctx context.Context, key string) (*Result, error) {
	if key == "" {
		return nil, ErrKeyRequired
	}

	now := time.Now()
	count, oldest, err := l.store.Window(ctx, l.key(key), l.window, now)
	if err != nil {
		return nil, err
	}

	return l.result(count < int64(l.limit), count, oldest, now), nil
}

// Reset clears all recorded attempts for the key.
func (l *Limiter) Reset(ctx context.Context, key string) error {
	if key == "" {
		return ErrKeyRequired
	}
	return l.store.Reset(ctx, l.key(key))
}

func (l *Limiter) key(key string) string {
	if l.prefix == "" {
		return key
	}
	return l.prefix + ":" + key
}

func (l *Limiter) result(allowed bool, count int64, oldest time.Time, now time.Time) *Result {
	resetAt := now
	if count > 0 && !oldest.IsZero() {
		resetAt = oldest.Add(l.window)
	}

	return &Result{
		Allowed:   allowed,
		Limit:     l.limit,
		Remaining: max(0, l.limit-int(count)),
		ResetAt:   resetAt,
	}
}
