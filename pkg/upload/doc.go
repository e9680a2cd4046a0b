// Package upload validates user-supplied image files before they are handed
// to object storage.
//
// Validation is defense in depth against content-type spoofing: beyond the
// size cap and declared MIME type allow-list, the leading bytes of the file
// must carry the magic-number signature of the declared type, so an
// executable renamed to .png with a forged Content-Type is rejected. Only
// the first 8 bytes are inspected.
//
// ObjectKey derives a collision-resistant storage key (random UUID, a
// timestamp and the sanitized original extension) so uploads never clash
// and original filenames never reach the storage backend.
package upload
