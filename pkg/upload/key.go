package upload

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var extPattern = regexp.MustCompile(`^[a-z0-9]{1,10}$`)

// ObjectKey derives a fresh collision-resistant storage key for the given
// original filename: a random UUID plus a millisecond timestamp, keeping
// only the sanitized extension. The original name never reaches storage.
func ObjectKey(filename string) string {
	key := fmt.Sprintf("%s-%d", uuid.NewString(), time.Now().UnixMilli())
	if ext := sanitizeExtension(filename); ext != "" {
		key += "." + ext
	}
	return key
}

// sanitizeExtension extracts a safe lowercase extension, dropping anything
// that is not short plain alphanumeric. Path components and null bytes in
// the incoming name are ignored entirely.
func sanitizeExtension(filename string) string {
	filename = strings.ReplaceAll(filename, "\\", "/")
	filename = strings.ReplaceAll(filename, "\x00", "")
	filename = filepath.Base(filename)

	// A dotfile is all extension to filepath.Ext; treat it as having none.
	if strings.HasPrefix(filename, ".") {
		return ""
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if !extPattern.MatchString(ext) {
		return ""
	}
	return ext
}
