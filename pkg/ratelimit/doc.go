// Package ratelimit implements sliding-window rate limiting keyed by action
// identifiers ("form_submission", "newsletter", ...).
//
// A Limiter tracks individual attempt timestamps inside a trailing time
// window. Each Allow call prunes timestamps older than the window; if the
// surviving count has reached the limit the attempt is denied and NOT
// recorded, otherwise the current instant is appended. Result.RetryAfter
// reports how long until the oldest surviving attempt falls out of the
// window.
//
// Two stores are provided: MemoryStore for per-process state and RedisStore
// for state shared between processes. Memory state resets on restart, which
// is acceptable here: this limiter is an anti-abuse deterrent, not an
// authoritative control. An authoritative limit must be enforced by the
// backend service itself; nothing in this package substitutes for that.
//
// # Usage
//
//	store := ratelimit.NewMemoryStore()
//	defer store.Close()
//
//	limiter, err := ratelimit.New(store, 5, time.Minute,
//		ratelimit.WithKeyPrefix("form_submission"))
//	if err != nil { ... }
//
//	res, err := limiter.Allow(ctx, userKey)
//	if err != nil { ... }
//	if !res.Allowed {
//		cooldown := res.RetryAfter()
//		...
//	}
package ratelimit
