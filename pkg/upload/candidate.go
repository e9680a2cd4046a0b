package upload

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"
)

// DefaultMaxSize caps uploads at 5 MiB.
const DefaultMaxSize = 5 << 20

// DefaultAllowedTypes lists the image types accepted for project covers.
var DefaultAllowedTypes = []string{"image/jpeg", "image/png", "image/webp", "image/gif"}

// Candidate is a file offered for upload: transient, validated once, then
// either streamed to storage or discarded.
type Candidate struct {
	Filename string
	MIMEType string
	Size     int64
	Data     io.Reader
}

// Config bounds what Validate accepts.
type Config struct {
	MaxSize      int64
	AllowedTypes []string
}

// DefaultConfig returns the standard image upload policy.
func DefaultConfig() Config {
	return Config{
		MaxSize:      DefaultMaxSize,
		AllowedTypes: DefaultAllowedTypes,
	}
}

// Validate checks the candidate against the config: size cap, declared MIME
// type allow-list and leading-byte signature. On success it returns a
// reader yielding the complete file content, with the bytes consumed for
// the signature check stitched back in front. A failed or short read is
// treated as an invalid file, never a panic.
func (c *Candidate) Validate(cfg Config) (io.Reader, error) {
	if c == nil || c.Data == nil {
		return nil, ErrNoFile
	}

	if cfg.MaxSize > 0 && c.Size > cfg.MaxSize {
		return nil, fmt.Errorf("%w: %d bytes over %d limit", ErrFileTooLarge, c.Size, cfg.MaxSize)
	}

	if len(cfg.AllowedTypes) > 0 && !slices.Contains(cfg.AllowedTypes, c.MIMEType) {
		return nil, fmt.Errorf("%w: %s", ErrTypeNotAllowed, c.MIMEType)
	}

	head := make([]byte, MaxSignatureBytes)
	n, err := io.ReadFull(c.Data, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, errors.Join(ErrSignatureMismatch, err)
	}
	head = head[:n]

	if !MatchesSignature(head, c.MIMEType) {
		return nil, fmt.Errorf("%w: declared %s", ErrSignatureMismatch, c.MIMEType)
	}

	return io.MultiReader(bytes.NewReader(head), c.Data), nil
}
