// Package sanitizer provides allow-list based HTML sanitization for
// user-supplied content.
//
// The package wraps bluemonday with a fixed policy tuned for short-form
// project descriptions: a minimal inline-formatting tag set, a handful of
// safe attributes, and http/https URLs only. Dangerous constructs (script,
// style, iframe, object, embed, form, on* event handlers) are removed even
// when nested inside otherwise allowed markup, because the input is fully
// re-parsed rather than pattern-matched. This also defends against
// mutation-based bypasses where sanitized output is re-parsed by a browser
// and reassembles a dangerous construct.
//
// Every anchor that survives sanitization carries target="_blank" together
// with rel="noopener noreferrer".
//
// # Usage
//
//	s := sanitizer.New()
//
//	safe := s.Sanitize(`<p>hello <script>alert(1)</script>world</p>`)
//	// "<p>hello world</p>"
//
//	plain := s.Strip(`<b>DeFi</b> toolkit`)
//	// "DeFi toolkit"
//
// A Sanitizer is configured once at construction and is safe for concurrent
// use; there is no per-call configuration to mutate.
package sanitizer
