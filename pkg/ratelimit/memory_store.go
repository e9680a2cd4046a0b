package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps sliding-window state in process memory. Entries are
// created lazily on first use and expired windows are swept periodically.
type MemoryStore struct {
	mu      sync.Mutex
	windows map[string][]time.Time

	// maxWindow is the widest window observed so far. Cleanup uses it as
	// the retention horizon for keys that are never touched again.
	maxWindow time.Duration

	cleanupInterval time.Duration
	stopCleanup     chan struct{}
	cleanupOnce     sync.Once
}

// MemoryStoreOption configures a MemoryStore.
type MemoryStoreOption func(*MemoryStore)

// WithCleanupInterval sets how often fully expired windows are removed.
func WithCleanupInterval(interval time.Duration) MemoryStoreOption {
	return func(s *MemoryStore) {
		if interval > 0 {
			s.cleanupInterval = interval
		}
	}
}

// NewMemoryStore creates an in-memory store with background cleanup.
func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	s := &MemoryStore{
		windows:         make(map[string][]time.Time),
		cleanupInterval: time.Minute,
		stopCleanup:     make(chan struct{}),
	}

	for _, opt := range opts {
		opt(s)
	}

	go s.cleanupLoop()

	return s
}

func (s *MemoryStore) Allow(ctx context.Context, key string, limit int, window time.Duration, now time.Time) (bool, int64, time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if window > s.maxWindow {
		s.maxWindow = window
	}

	surviving := prune(s.windows[key], now.Add(-window))

	if len(surviving) >= limit {
		s.windows[key] = surviving
		return false, int64(len(surviving)), surviving[0], nil
	}

	surviving = append(surviving, now)
	s.windows[key] = surviving
	return true, int64(len(surviving)), surviving[0], nil
}

func (s *MemoryStore) Window(ctx context.Context, key string, window time.Duration, now time.Time) (int64, time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	surviving := prune(s.windows[key], now.Add(-window))
	if len(surviving) == 0 {
		delete(s.windows, key)
		return 0, time.Time{}, nil
	}

	s.windows[key] = surviving
	return int64(len(surviving)), surviving[0], nil
}

func (s *MemoryStore) Reset(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.windows, key)
	return nil
}

// Close stops the cleanup goroutine. Safe to call more than once.
func (s *MemoryStore) Close() error {
	s.cleanupOnce.Do(func() {
		close(s.stopCleanup)
	})
	return nil
}

// prune drops timestamps at or before the cutoff. Timestamps are appended in
// order, so the result stays sorted with the oldest first.
func prune(timestamps []time.Time, cutoff time.Time) []time.Time {
	surviving := timestamps[:0]
	for _, ts := range timestamps {
		if ts.After(cutoff) {
			surviving = append(surviving, ts)
		}
	}
	return surviving
}

func (s *MemoryStore) cleanupLoop() {
	ticker := time.NewTicker(s.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopCleanup:
			return
		}
	}
}

// cleanup prunes every key against the widest observed window and drops
// keys left empty, so abandoned keys do not hold expired timestamps
// indefinitely.
func (s *MemoryStore) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-s.maxWindow)
	for key, timestamps := range s.windows {
		surviving := prune(timestamps, cutoff)
		if len(surviving) == 0 {
			delete(s.windows, key)
			continue
		}
		s.windows[key] = surviving
	}
}
