package upload

import "bytes"

// MaxSignatureBytes is the most that signature matching ever inspects.
const MaxSignatureBytes = 8

// signatures maps declared MIME types to their accepted leading-byte
// patterns. A type absent from this map has no known signature and never
// matches.
var signatures = map[string][][]byte{
	"image/jpeg": {{0xFF, 0xD8, 0xFF}},
	"image/jpg":  {{0xFF, 0xD8, 0xFF}},
	"image/png":  {{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}},
	"image/gif":  {[]byte("GIF87a"), []byte("GIF89a")},
	"image/webp": {[]byte("RIFF")},
}

// MatchesSignature reports whether head begins with one of the known
// signatures for the declared MIME type. Unknown types and short heads
// yield false; the function never panics.
func MatchesSignature(head []byte, mimeType string) bool {
	candidates, ok := signatures[mimeType]
	if !ok {
		return false
	}

	for _, sig := range candidates {
		if len(head) >= len(sig) && bytes.Equal(head[:len(sig)], sig) {
			return true
		}
	}
	return false
}
