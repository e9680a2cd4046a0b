package sanitizer

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// allowedTags is the minimal inline-formatting set permitted in rich-text
// fields. Everything else is stripped.
var allowedTags = []string{
	"a", "b", "br", "code", "div", "em", "i", "li", "ol", "p", "pre",
	"span", "strong", "u", "ul",
}

// Sanitizer strips disallowed markup and attributes from user-supplied
// strings. The zero value is not usable; construct with New.
type Sanitizer struct {
	html   *bluemonday.Policy
	strict *bluemonday.Policy
}

// New returns a Sanitizer with the fixed content policy.
func New() *Sanitizer {
	p := bluemonday.NewPolicy()

	p.AllowElements(allowedTags...)
	p.AllowAttrs("class").Globally()
	p.AllowAttrs("href", "target", "rel").OnElements("a")

	// http/https only. Relative URLs are rejected so that every surviving
	// anchor is fully qualified and picks up the forced target/rel pair
	// below. javascript: and data: URIs never parse through this.
	p.AllowURLSchemes("http", "https")
	p.RequireParseableURLs(true)
	p.AllowRelativeURLs(false)

	// Force target="_blank" and rel="noopener noreferrer" on every link,
	// regardless of what the input carried.
	p.AddTargetBlankToFullyQualifiedLinks(true)
	p.RequireNoReferrerOnLinks(true)

	return &Sanitizer{
		html:   p,
		strict: bluemonday.StrictPolicy(),
	}
}

// Sanitize returns input with all markup outside the allow-list removed.
// The input is never mutated and the policy is never reconfigured per call.
func (s *Sanitizer) Sanitize(input string) string {
	return s.html.Sanitize(input)
}

// Strip removes all markup, returning plain text. Intended for fields that
// must not contain any HTML at all (names, tag lists, URLs).
func (s *Sanitizer) Strip(input string) string {
	return strings.TrimSpace(s.strict.Sanitize(input))
}
