package newsletter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/maxwellbruno/abstractchainai/pkg/ratelimit"
	"github.com/maxwellbruno/abstractchainai/pkg/sanitizer"
	"github.com/maxwellbruno/abstractchainai/pkg/supabase"
	"github.com/maxwellbruno/abstractchainai/pkg/validator"
)

const subscribersTable = "newsletter_subscribers"

// Signup rate limit: 3 attempts per hour per key.
const (
	DefaultLimit  = 3
	DefaultWindow = time.Hour
)

var (
	// ErrAlreadySubscribed is returned when the address is already on the list.
	ErrAlreadySubscribed = errors.New("newsletter: email already subscribed")

	// ErrRateLimited is returned when the signup rate limit is exhausted.
	ErrRateLimited = errors.New("newsletter: rate limit exceeded")
)

// SubscriberStore persists newsletter signups.
type SubscriberStore interface {
	InsertSubscriber(ctx context.Context, email string) error
}

// SupabaseStore is the SubscriberStore backed by the hosted REST API.
type SupabaseStore struct {
	client *supabase.Client
}

func NewSupabaseStore(client *supabase.Client) *SupabaseStore {
	return &SupabaseStore{client: client}
}

func (s *SupabaseStore) InsertSubscriber(ctx context.Context, email string) error {
	return s.client.Insert(ctx, subscribersTable, map[string]string{"email": email})
}

// Service validates and stores newsletter signups.
type Service struct {
	store     SubscriberStore
	limiter   *ratelimit.Limiter
	sanitizer *sanitizer.Sanitizer
	log       *slog.Logger
}

// New creates a signup service. The limiter should be configured with the
// newsletter key prefix so signup attempts do not share a bucket with other
// limited actions.
func New(store SubscriberStore, limiter *ratelimit.Limiter, san *sanitizer.Sanitizer, log *slog.Logger) (*Service, error) {
	if store == nil || limiter == nil || san == nil {
		return nil, errors.New("newsletter: store, limiter and sanitizer are required")
	}
	if log == nil {
		log = slog.Default()
	}
	return &Service{store: store, limiter: limiter, sanitizer: san, log: log}, nil
}

// Subscribe adds the address to the mailing list. The key identifies the
// subscriber for rate limiting, typically a session or client identifier.
func (s *Service) Subscribe(ctx context.Context, key, email string) error {
	email = s.sanitizer.Strip(email)

	if err := validator.Apply(
		validator.Required("email", email),
		validator.ValidEmail("email", email),
	); err != nil {
		return err
	}

	res, err := s.limiter.Allow(ctx, key)
	if err != nil {
		return fmt.Errorf("check signup rate limit: %w", err)
	}
	if !res.Allowed {
		return fmt.Errorf("%w: retry after %s", ErrRateLimited, res.RetryAfter().Round(time.Second))
	}

	if err := s.store.InsertSubscriber(ctx, email); err != nil {
		if errors.Is(err, supabase.ErrDuplicate) {
			return fmt.Errorf("%w: %w", ErrAlreadySubscribed, err)
		}
		return fmt.Errorf("insert subscriber: %w", err)
	}

	s.log.InfoContext(ctx, "newsletter signup", slog.String("key", key))
	return nil
}
