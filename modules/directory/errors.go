package directory

import (
	"errors"
	"fmt"
	"time"

	"github.com/maxwellbruno/abstractchainai/pkg/validator"
)

var (
	// ErrStoreRequired is returned when a constructor receives a nil store.
	ErrStoreRequired = errors.New("directory: store is required")

	// ErrRateLimited is returned when the submission rate limit is exhausted.
	ErrRateLimited = errors.New("directory: rate limit exceeded")

	// ErrCSRFMismatch is returned when the submitted token does not match
	// the one issued to the session.
	ErrCSRFMismatch = errors.New("directory: csrf token mismatch")

	// ErrImageRequired is returned when no image is attached and the
	// service is configured to require one.
	ErrImageRequired = errors.New("directory: project image is required")

	// ErrImageTooLarge is returned when the image exceeds the size limit.
	ErrImageTooLarge = errors.New("directory: project image too large")

	// ErrImageType is returned when the declared MIME type is not allowed.
	ErrImageType = errors.New("directory: image type not allowed")

	// ErrImageSignature is returned when the file's leading bytes do not
	// match its declared type.
	ErrImageSignature = errors.New("directory: image signature mismatch")

	// ErrUploadFailed is returned when blob storage rejects the image.
	ErrUploadFailed = errors.New("directory: image upload failed")

	// ErrDuplicateProject is returned when a project with the same name
	// already exists.
	ErrDuplicateProject = errors.New("directory: project already exists")

	// ErrInvalidReference is returned when the record points at a row that
	// does not exist.
	ErrInvalidReference = errors.New("directory: invalid reference in project data")

	// ErrPermissionDenied is returned when the backend refuses the write.
	ErrPermissionDenied = errors.New("directory: permission denied")

	// ErrPersist is returned for any other insert failure.
	ErrPersist = errors.New("directory: failed to persist project")

	// ErrAuthRequired is returned when anonymous submission is disabled and
	// no authenticated identity is available.
	ErrAuthRequired = errors.New("directory: authentication required")

	// ErrSubmissionInFlight is returned when Submit is called while another
	// submission is still running.
	ErrSubmissionInFlight = errors.New("directory: submission already in progress")
)

// RateLimitError wraps ErrRateLimited with the remaining cooldown.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("directory: rate limit exceeded, retry after %s", e.RetryAfter.Round(time.Second))
}

func (e *RateLimitError) Unwrap() error { return ErrRateLimited }

// Severity classifies a user-facing message.
type Severity string

const (
	// SeverityWarning marks problems the user can fix by adjusting input
	// or waiting.
	SeverityWarning Severity = "warning"

	// SeverityError marks failures outside the user's control.
	SeverityError Severity = "error"
)

// UserMessage maps any submission pipeline error to a short user-facing
// message and a severity flag. Internal details never leak through it.
func UserMessage(err error) (string, Severity) {
	var rle *RateLimitError
	switch {
	case err == nil:
		return "", ""
	case validator.IsValidationError(err):
		return validator.ExtractValidationErrors(err).Error(), SeverityWarning
	case errors.As(err, &rle):
		return fmt.Sprintf("Too many submissions. Please try again in %s.", rle.RetryAfter.Round(time.Second)), SeverityWarning
	case errors.Is(err, ErrRateLimited):
		return "Too many submissions. Please try again later.", SeverityWarning
	case errors.Is(err, ErrCSRFMismatch):
		return "Your session has expired. Please refresh the page and try again.", SeverityError
	case errors.Is(err, ErrImageRequired):
		return "Please attach a project image.", SeverityWarning
	case errors.Is(err, ErrImageTooLarge):
		return "The image is too large. Maximum size is 5 MB.", SeverityWarning
	case errors.Is(err, ErrImageType):
		return "Unsupported image type. Use JPEG, PNG, WebP, or GIF.", SeverityWarning
	case errors.Is(err, ErrImageSignature):
		return "The file does not appear to be a valid image.", SeverityWarning
	case errors.Is(err, ErrUploadFailed):
		return "Failed to upload the image. Please try again.", SeverityError
	case errors.Is(err, ErrDuplicateProject):
		return "A project with this name already exists.", SeverityWarning
	case errors.Is(err, ErrInvalidReference):
		return "Invalid reference in project data.", SeverityError
	case errors.Is(err, ErrPermissionDenied):
		return "Permission denied. You may not have the required access rights.", SeverityError
	case errors.Is(err, ErrAuthRequired):
		return "Please sign in to submit a project.", SeverityWarning
	case errors.Is(err, ErrSubmissionInFlight):
		return "Your submission is already being processed.", SeverityWarning
	default:
		return "Failed to submit the project. Please try again.", SeverityError
	}
}
