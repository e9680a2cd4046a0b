package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxwellbruno/abstractchainai/pkg/sanitizer"
)

func TestSanitize_RemovesExecutableMarkup(t *testing.T) {
	t.Parallel()

	s := sanitizer.New()

	tests := []struct {
		name  string
		input string
	}{
		{"script tag", `<p>hello</p><script>alert(1)</script>`},
		{"img onerror", `<img src="x" onerror="alert(1)">`},
		{"nested script", `<div><b><script>alert(1)</script></b></div>`},
		{"iframe", `<iframe src="https://evil.example"></iframe>`},
		{"object embed", `<object data="x"></object><embed src="x">`},
		{"form", `<form action="https://evil.example"><input></form>`},
		{"style", `<style>body{display:none}</style>`},
		{"event handler on allowed tag", `<p onclick="alert(1)">text</p>`},
		{"obfuscated nesting", `<scr<script>ipt>alert(1)</scr</script>ipt>`},
		{"javascript href", `<a href="javascript:alert(1)">x</a>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out := s.Sanitize(tt.input)
			assert.NotContains(t, out, "<script")
			assert.NotContains(t, out, "onerror")
			assert.NotContains(t, out, "onclick")
			assert.NotContains(t, out, "javascript:")
			assert.NotContains(t, out, "<iframe")
			assert.NotContains(t, out, "<object")
			assert.NotContains(t, out, "<embed")
			assert.NotContains(t, out, "<form")
			assert.NotContains(t, out, "<style")
		})
	}
}

func TestSanitize_KeepsAllowedFormatting(t *testing.T) {
	t.Parallel()

	s := sanitizer.New()

	out := s.Sanitize(`<p>An <em>AI</em> project with <strong>on-chain</strong> data:</p><ul><li>fast</li></ul>`)
	assert.Contains(t, out, "<em>AI</em>")
	assert.Contains(t, out, "<strong>on-chain</strong>")
	assert.Contains(t, out, "<li>fast</li>")
}

func TestSanitize_ForcesAnchorTargetAndRel(t *testing.T) {
	t.Parallel()

	s := sanitizer.New()

	tests := []struct {
		name  string
		input string
	}{
		{"plain link", `<a href="https://example.com">site</a>`},
		{"link with own target", `<a href="https://example.com" target="_self">site</a>`},
		{"link with own rel", `<a href="https://example.com" rel="opener">site</a>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out := s.Sanitize(tt.input)
			require.Contains(t, out, "<a ")
			assert.Contains(t, out, `target="_blank"`)
			assert.Contains(t, out, "noopener")
			assert.Contains(t, out, "noreferrer")
		})
	}
}

func TestSanitize_DropsDisallowedAttributes(t *testing.T) {
	t.Parallel()

	s := sanitizer.New()

	out := s.Sanitize(`<p id="x" data-track="1" class="note">ok</p>`)
	assert.NotContains(t, out, "id=")
	assert.NotContains(t, out, "data-track")
	assert.Contains(t, out, `class="note"`)
}

func TestStrip(t *testing.T) {
	t.Parallel()

	s := sanitizer.New()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text untouched", "DeFi toolkit", "DeFi toolkit"},
		{"tags removed", "<b>DeFi</b> toolkit", "DeFi toolkit"},
		{"script removed with content", "name<script>alert(1)</script>", "name"},
		{"whitespace trimmed", "  padded  ", "padded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, s.Strip(tt.input))
		})
	}
}

func TestSanitize_ConcurrentUse(t *testing.T) {
	t.Parallel()

	s := sanitizer.New()
	done := make(chan struct{})

	for range 8 {
		go func() {
			defer func() { done <- struct{}{} }()
			for range 100 {
				out := s.Sanitize(`<a href="https://example.com" onclick="x()">link</a>`)
				if strings.Contains(out, "onclick") {
					t.Error("policy leaked a forbidden attribute")
					return
				}
			}
		}()
	}
	for range 8 {
		<-done
	}
}
