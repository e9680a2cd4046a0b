package kv

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
)

// SecureStore decorates a Store with AES-256-GCM encryption so that values
// are unreadable at rest. Ciphertext layout: nonce + sealed data, base64
// encoded. A fresh random key is generated per store unless one is
// supplied, so values do not survive the process by default.
type SecureStore struct {
	inner Store
	aead  cipher.AEAD
}

// NewSecureStore wraps inner with encryption. key must be 32 bytes; pass
// nil to generate an ephemeral key.
func NewSecureStore(inner Store, key []byte) (*SecureStore, error) {
	if inner == nil {
		return nil, ErrStoreNil
	}

	if key == nil {
		key = make([]byte, 32)
		if _, err := io.ReadFull(rand.Reader, key); err != nil {
			return nil, fmt.Errorf("kv: generate key: %w", err)
		}
	}
	if len(key) != 32 {
		return nil, errors.New("kv: encryption key must be 32 bytes")
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("kv: create cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("kv: create gcm: %w", err)
	}

	return &SecureStore{inner: inner, aead: aead}, nil
}

func (s *SecureStore) Get(ctx context.Context, key string) (string, error) {
	sealed, err := s.inner.Get(ctx, key)
	if err != nil {
		return "", err
	}

	raw, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return "", errors.Join(ErrDecryptValue, err)
	}
	if len(raw) < s.aead.NonceSize() {
		return "", ErrDecryptValue
	}

	nonce, ciphertext := raw[:s.aead.NonceSize()], raw[s.aead.NonceSize():]
	plaintext, err := s.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", errors.Join(ErrDecryptValue, err)
	}
	return string(plaintext), nil
}

func (s *SecureStore) Set(ctx context.Context, key, value string) error {
	nonce := make([]byte, s.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return fmt.Errorf("kv: generate nonce: %w", err)
	}

	sealed := s.aead.Seal(nonce, nonce, []byte(value), nil)
	return s.inner.Set(ctx, key, base64.StdEncoding.EncodeToString(sealed))
}

func (s *SecureStore) Delete(ctx context.Context, key string) error {
	return s.inner.Delete(ctx, key)
}
