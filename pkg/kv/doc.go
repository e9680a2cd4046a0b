// Package kv defines a minimal string key-value store used for
// session-scoped state: CSRF tokens, cooldown markers and similar
// short-lived flags.
//
// The Store interface abstracts the storage target so callers never touch a
// concrete backend directly. MemoryStore keeps values in process memory and
// vanishes on restart, which matches session semantics for a single
// process. RedisStore shares values between processes with a TTL standing
// in for session end. SecureStore decorates any Store with AES-GCM
// encryption for values that should not be readable at rest.
package kv
