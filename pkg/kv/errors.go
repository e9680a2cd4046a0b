package kv

import "errors"

var (
	ErrNotFound     = errors.New("key not found")
	ErrKeyRequired  = errors.New("key is required")
	ErrStoreNil     = errors.New("store is required")
	ErrDecryptValue = errors.New("failed to decrypt stored value")
)
