package directory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/maxwellbruno/abstractchainai/pkg/blob"
	"github.com/maxwellbruno/abstractchainai/pkg/csrf"
	"github.com/maxwellbruno/abstractchainai/pkg/ratelimit"
	"github.com/maxwellbruno/abstractchainai/pkg/sanitizer"
	"github.com/maxwellbruno/abstractchainai/pkg/supabase"
	"github.com/maxwellbruno/abstractchainai/pkg/upload"
	"github.com/maxwellbruno/abstractchainai/pkg/validator"
)

// Field length bounds for submissions.
const (
	NameMinLen        = 3
	NameMaxLen        = 100
	DescriptionMinLen = 10
	DescriptionMaxLen = 5000
)

// submissionRateKey scopes the rate limit to the submission form.
const submissionRateKey = "form_submission"

// SubmissionConfig controls submission policy.
type SubmissionConfig struct {
	// RequireImage rejects submissions without an attached image.
	RequireImage bool `env:"SUBMISSION_REQUIRE_IMAGE" envDefault:"true"`

	// AllowAnonymous accepts submissions without an authenticated identity,
	// stamping them with a random placeholder user id.
	AllowAnonymous bool `env:"SUBMISSION_ALLOW_ANONYMOUS" envDefault:"true"`

	// MaxImageSize caps the cover image in bytes. Zero keeps the default
	// 5 MiB limit.
	MaxImageSize int64 `env:"SUBMISSION_MAX_IMAGE_SIZE" envDefault:"0"`
}

// SubmissionInput carries one user submission through the pipeline.
type SubmissionInput struct {
	Name        string
	Description string
	Website     string
	Features    []string
	Category    Category

	// Image is the optional cover image. Required when the service is
	// configured with RequireImage.
	Image *upload.Candidate

	// CSRFToken is the token echoed back by the form. Validated only when
	// non-empty, since not every caller issues one.
	CSRFToken string

	// AccessToken identifies the authenticated user, if any.
	AccessToken string

	// RateKey distinguishes submitters for rate limiting, typically a
	// session or client identifier. Empty means a shared bucket.
	RateKey string
}

// SubmissionService runs the submission pipeline: validate, rate-limit,
// check the image, upload it, sanitize free text, resolve identity, and
// persist the record with approved=false. Each stage is a hard gate; the
// first failure aborts and no partial submission is persisted. The rate
// limit and CSRF checks here protect the client flow only; the
// authoritative enforcement lives behind the hosted API's policies.
type SubmissionService struct {
	cfg       SubmissionConfig
	store     ProjectStore
	identity  IdentityResolver
	sanitizer *sanitizer.Sanitizer
	limiter   *ratelimit.Limiter
	tokens    *csrf.Manager
	storage   blob.Storage
	uploadCfg upload.Config
	log       *slog.Logger

	inFlight atomic.Bool
}

// NewSubmissionService wires the pipeline's dependencies. The sanitizer,
// limiter, token manager and storage are all required; identity may be nil
// only when the config allows anonymous submissions.
func NewSubmissionService(
	cfg SubmissionConfig,
	store ProjectStore,
	identity IdentityResolver,
	san *sanitizer.Sanitizer,
	limiter *ratelimit.Limiter,
	tokens *csrf.Manager,
	storage blob.Storage,
	log *slog.Logger,
) (*SubmissionService, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	if san == nil || limiter == nil || tokens == nil || storage == nil {
		return nil, errors.New("directory: sanitizer, limiter, token manager and storage are required")
	}
	if identity == nil && !cfg.AllowAnonymous {
		return nil, errors.New("directory: identity resolver is required when anonymous submission is disabled")
	}
	if log == nil {
		log = slog.Default()
	}
	uploadCfg := upload.DefaultConfig()
	if cfg.MaxImageSize > 0 {
		uploadCfg.MaxSize = cfg.MaxImageSize
	}
	return &SubmissionService{
		cfg:       cfg,
		store:     store,
		identity:  identity,
		sanitizer: san,
		limiter:   limiter,
		tokens:    tokens,
		storage:   storage,
		uploadCfg: uploadCfg,
		log:       log,
	}, nil
}

// Submit runs the full pipeline for one submission and returns the stored
// record on success. A second call while one is still running returns
// ErrSubmissionInFlight without touching any dependency. On success the
// session's CSRF token is rotated.
func (s *SubmissionService) Submit(ctx context.Context, in SubmissionInput) (*ProjectRecord, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, s.fail(ctx, "guard", in.RateKey, ErrSubmissionInFlight)
	}
	defer s.inFlight.Store(false)

	if err := s.validate(in); err != nil {
		return nil, s.fail(ctx, "validate", in.RateKey, err)
	}

	if in.CSRFToken != "" {
		ok, err := s.tokens.Validate(ctx, in.CSRFToken)
		if err != nil {
			return nil, s.fail(ctx, "csrf", in.RateKey, fmt.Errorf("validate csrf token: %w", err))
		}
		if !ok {
			return nil, s.fail(ctx, "csrf", in.RateKey, ErrCSRFMismatch)
		}
	}

	res, err := s.limiter.Allow(ctx, submissionRateKey+":"+in.RateKey)
	if err != nil {
		return nil, s.fail(ctx, "rate_limit", in.RateKey, fmt.Errorf("check rate limit: %w", err))
	}
	if !res.Allowed {
		return nil, s.fail(ctx, "rate_limit", in.RateKey, &RateLimitError{RetryAfter: res.RetryAfter()})
	}

	imageKey, imageURL, err := s.uploadImage(ctx, in.Image)
	if err != nil {
		return nil, s.fail(ctx, "upload", in.RateKey, err)
	}

	record := ProjectRecord{
		Name:        s.sanitizer.Strip(in.Name),
		Description: s.sanitizer.Sanitize(in.Description),
		Website:     s.sanitizer.Strip(in.Website),
		Features:    s.stripFeatures(in.Features),
		Category:    in.Category,
		ImageURL:    imageURL,
		Approved:    false,
	}

	record.UserID, err = s.resolveIdentity(ctx, in.AccessToken)
	if err != nil {
		s.discardImage(ctx, imageKey)
		return nil, s.fail(ctx, "identity", in.RateKey, err)
	}

	if err := s.store.InsertProject(ctx, record); err != nil {
		s.discardImage(ctx, imageKey)
		return nil, s.fail(ctx, "persist", in.RateKey, classifyPersistError(err))
	}

	if _, err := s.tokens.Rotate(ctx); err != nil {
		// The submission itself succeeded; a stale token only affects the
		// next form.
		s.log.WarnContext(ctx, "failed to rotate csrf token", slog.Any("error", err))
	}

	s.log.InfoContext(ctx, "project submitted",
		slog.String("project", record.Name),
		slog.String("user_id", record.UserID),
	)
	return &record, nil
}

// fail logs a rejected submission at the pipeline boundary and passes the
// error through. Only the stage name and the rate key are logged, never
// field content.
func (s *SubmissionService) fail(ctx context.Context, op, key string, err error) error {
	s.log.ErrorContext(ctx, "submission rejected",
		slog.String("operation", op),
		slog.String("key", key),
		slog.Any("error", err),
	)
	return err
}

func (s *SubmissionService) validate(in SubmissionInput) error {
	rules := []validator.Rule{
		validator.Required("name", in.Name),
		validator.Required("description", in.Description),
		validator.Required("category", string(in.Category)),
	}
	if len(in.Features) == 0 || strings.TrimSpace(strings.Join(in.Features, "")) == "" {
		rules = append(rules, validator.Rule{
			Check: func() bool { return false },
			Error: validator.ValidationError{Field: "features", Message: "at least one feature is required"},
		})
	}
	rules = append(rules,
		validator.LenBetween("name", in.Name, NameMinLen, NameMaxLen),
		validator.LenBetween("description", in.Description, DescriptionMinLen, DescriptionMaxLen),
		validator.OneOf("category", in.Category, Categories()),
	)
	if in.Website != "" {
		rules = append(rules, validator.ValidURLWithScheme("website", in.Website, "http", "https"))
	}
	return validator.Apply(rules...)
}

// uploadImage validates and stores the cover image, returning the object
// key and public URL. Both are empty when no image was provided and none is
// required.
func (s *SubmissionService) uploadImage(ctx context.Context, img *upload.Candidate) (string, string, error) {
	if img == nil {
		if s.cfg.RequireImage {
			return "", "", ErrImageRequired
		}
		return "", "", nil
	}

	content, err := img.Validate(s.uploadCfg)
	if err != nil {
		return "", "", classifyImageError(err)
	}

	key := upload.ObjectKey(img.Filename)
	if err := s.storage.Upload(ctx, key, content, img.Size, img.MIMEType); err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}
	return key, s.storage.PublicURL(key), nil
}

// discardImage removes an uploaded blob after a later pipeline stage
// failed, so aborted submissions leave no orphans. Best effort.
func (s *SubmissionService) discardImage(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := s.storage.Delete(ctx, key); err != nil {
		s.log.WarnContext(ctx, "failed to delete orphaned upload",
			slog.String("key", key),
			slog.Any("error", err),
		)
	}
}

func (s *SubmissionService) resolveIdentity(ctx context.Context, accessToken string) (string, error) {
	if accessToken != "" && s.identity != nil {
		user, err := s.identity.CurrentUser(ctx, accessToken)
		if err == nil {
			return user.ID, nil
		}
		if !errors.Is(err, supabase.ErrNoSession) {
			return "", fmt.Errorf("resolve identity: %w", err)
		}
	}
	if !s.cfg.AllowAnonymous {
		return "", ErrAuthRequired
	}
	return uuid.NewString(), nil
}

func (s *SubmissionService) stripFeatures(features []string) string {
	cleaned := make([]string, 0, len(features))
	for _, f := range features {
		if f = s.sanitizer.Strip(f); f != "" {
			cleaned = append(cleaned, f)
		}
	}
	return strings.Join(cleaned, ",")
}

func classifyImageError(err error) error {
	switch {
	case errors.Is(err, upload.ErrNoFile):
		return ErrImageRequired
	case errors.Is(err, upload.ErrFileTooLarge):
		return fmt.Errorf("%w: %w", ErrImageTooLarge, err)
	case errors.Is(err, upload.ErrTypeNotAllowed):
		return fmt.Errorf("%w: %w", ErrImageType, err)
	case errors.Is(err, upload.ErrSignatureMismatch):
		return fmt.Errorf("%w: %w", ErrImageSignature, err)
	default:
		return err
	}
}

func classifyPersistError(err error) error {
	switch {
	case errors.Is(err, supabase.ErrDuplicate):
		return fmt.Errorf("%w: %w", ErrDuplicateProject, err)
	case errors.Is(err, supabase.ErrInvalidReference):
		return fmt.Errorf("%w: %w", ErrInvalidReference, err)
	case errors.Is(err, supabase.ErrPermissionDenied):
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	default:
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
}
