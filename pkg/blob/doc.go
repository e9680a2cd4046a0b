// Package blob abstracts the object storage backend used for uploaded
// project images.
//
// Storage is intentionally small: upload bytes under a caller-chosen key,
// resolve the public URL for a key, delete a key. Upload never overwrites
// an existing key; the S3 implementation enforces this with a conditional
// put, so a duplicate key is an error rather than a silent replace.
//
// S3Storage talks to Amazon S3 or any S3-compatible service (Supabase
// Storage, MinIO, R2) via a custom endpoint and path-style addressing.
// MemoryStorage is an in-process double for tests and local development.
package blob
