package csrf

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/maxwellbruno/abstractchainai/pkg/kv"
)

const (
	// defaultStorageKey is the fixed key the active token lives under.
	defaultStorageKey = "csrf_token"

	// tokenBytes is the entropy of a generated token. Rendered as hex the
	// token is twice this length.
	tokenBytes = 32
)

var ErrStoreRequired = errors.New("csrf: store is required")

// Manager generates, stores and verifies anti-forgery tokens.
type Manager struct {
	store      kv.Store
	random     io.Reader
	storageKey string
}

// Option configures a Manager.
type Option func(*Manager)

// WithRandSource overrides the secure random source. Intended for tests.
func WithRandSource(r io.Reader) Option {
	return func(m *Manager) {
		if r != nil {
			m.random = r
		}
	}
}

// WithStorageKey changes the storage key, allowing independent tokens for
// multiple protected forms sharing one store.
func WithStorageKey(key string) Option {
	return func(m *Manager) {
		if key != "" {
			m.storageKey = key
		}
	}
}

// New creates a Manager backed by the given session-scoped store.
func New(store kv.Store, opts ...Option) (*Manager, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}

	m := &Manager{
		store:      store,
		random:     rand.Reader,
		storageKey: defaultStorageKey,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Generate produces a fresh hex-encoded random token and stores it,
// overwriting any prior token.
func (m *Manager) Generate(ctx context.Context) (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := io.ReadFull(m.random, buf); err != nil {
		return "", fmt.Errorf("csrf: read random source: %w", err)
	}

	token := hex.EncodeToString(buf)
	if err := m.store.Set(ctx, m.storageKey, token); err != nil {
		return "", fmt.Errorf("csrf: store token: %w", err)
	}
	return token, nil
}

// Validate reports whether candidate matches the stored token. The
// comparison is constant time. A missing stored token is not an error; it
// simply validates nothing.
func (m *Manager) Validate(ctx context.Context, candidate string) (bool, error) {
	stored, err := m.store.Get(ctx, m.storageKey)
	if errors.Is(err, kv.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("csrf: load token: %w", err)
	}

	if len(candidate) != len(stored) {
		return false, nil
	}
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(stored)) == 1, nil
}

// Rotate invalidates the current token and issues a new one. Call after
// every successful submission.
func (m *Manager) Rotate(ctx context.Context) (string, error) {
	return m.Generate(ctx)
}

// Clear removes the stored token entirely.
func (m *Manager) Clear(ctx context.Context) error {
	if err := m.store.Delete(ctx, m.storageKey); err != nil {
		return fmt.Errorf("csrf: clear token: %w", err)
	}
	return nil
}
