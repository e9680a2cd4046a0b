package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxwellbruno/abstractchainai/pkg/validator"
)

func TestIsEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		email string
		want  bool
	}{
		{"user@example.com", true},
		{"first.last@example.co.uk", true},
		{"user+tag@example.com", true},
		{"o'brien@example.com", true},
		{"us!#$%&'*+/=?^_`{|}~-er@example.com", true},
		{"", false},
		{"plainaddress", false},
		{"@example.com", false},
		{"user@", false},
		{"user@localhost", false}, // domain without a dot
		{"user@.example.com", false},
		{"user@example..com", false},
		{"user@-example.com", false},
		{"user name@example.com", false},
		{"user@exam ple.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, validator.IsEmail(tt.email))
		})
	}
}

func TestIsURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		url  string
		want bool
	}{
		{"https://example.com", true},
		{"http://example.com/path?q=1", true},
		{"javascript:alert(1)", false},
		{"ftp://example.com", false},
		{"data:text/html,<script>alert(1)</script>", false},
		{"not a url", false},
		{"//example.com", false},
		{"example.com", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, validator.IsURL(tt.url))
		})
	}
}

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("all rules pass", func(t *testing.T) {
		t.Parallel()

		err := validator.Apply(
			validator.Required("name", "My Project"),
			validator.LenBetween("name", "My Project", 3, 100),
			validator.ValidEmail("email", "user@example.com"),
		)
		assert.NoError(t, err)
	})

	t.Run("collects all failures", func(t *testing.T) {
		t.Parallel()

		err := validator.Apply(
			validator.Required("name", "  "),
			validator.LenBetween("description", "short", 10, 5000),
			validator.ValidURLWithScheme("website", "javascript:alert(1)", "http", "https"),
		)
		require.Error(t, err)

		ve := validator.ExtractValidationErrors(err)
		require.Len(t, ve, 3)
		assert.True(t, ve.Has("name"))
		assert.True(t, ve.Has("description"))
		assert.True(t, ve.Has("website"))
		assert.Equal(t, []string{"name", "description", "website"}, ve.Fields())
	})

	t.Run("length bounds are inclusive", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, validator.Apply(validator.LenBetween("name", "abc", 3, 100)))
		assert.Error(t, validator.Apply(validator.LenBetween("name", "ab", 3, 100)))
	})

	t.Run("one of", func(t *testing.T) {
		t.Parallel()

		cats := []string{"defi", "gaming"}
		assert.NoError(t, validator.Apply(validator.OneOf("category", "defi", cats)))
		assert.Error(t, validator.Apply(validator.OneOf("category", "other", cats)))
	})
}

func TestIsValidationError(t *testing.T) {
	t.Parallel()

	err := validator.Apply(validator.Required("name", ""))
	assert.True(t, validator.IsValidationError(err))
	assert.False(t, validator.IsValidationError(nil))
	assert.False(t, validator.IsValidationError(assert.AnError))
}
