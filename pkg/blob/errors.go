package blob

import "errors"

var (
	ErrInvalidConfig      = errors.New("invalid storage configuration")
	ErrInvalidKey         = errors.New("invalid object key")
	ErrKeyExists          = errors.New("object key already exists")
	ErrObjectNotFound     = errors.New("object not found")
	ErrBucketNotFound     = errors.New("bucket not found")
	ErrAccessDenied       = errors.New("access denied")
	ErrServiceUnavailable = errors.New("storage temporarily unavailable")
	ErrOperationTimeout   = errors.New("storage operation timed out")
	ErrOperationCanceled  = errors.New("storage operation canceled")
	ErrFailedToLoadConfig = errors.New("failed to load AWS config")
)
