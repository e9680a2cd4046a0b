package upload

import "errors"

var (
	ErrNoFile            = errors.New("no file provided")
	ErrFileTooLarge      = errors.New("file size exceeds maximum allowed size")
	ErrTypeNotAllowed    = errors.New("file type is not allowed")
	ErrSignatureMismatch = errors.New("file content does not match declared type")
)
