package validator

import (
	"fmt"
	"net/url"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"
)

// emailRegex approximates the RFC 5322 addr-spec grammar for typical web
// use: the printable special characters are allowed in the local part, and
// the domain is a sequence of labels of 1-63 alphanumeric characters with
// internal hyphens.
var emailRegex = regexp.MustCompile(
	`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`,
)

// IsEmail reports whether s is a syntactically valid email address.
// The domain must contain at least one dot.
func IsEmail(s string) bool {
	if !emailRegex.MatchString(s) {
		return false
	}

	at := strings.LastIndex(s, "@")
	if at <= 0 {
		return false
	}
	return strings.Contains(s[at+1:], ".")
}

// IsURL reports whether s parses as an absolute URL with one of the given
// schemes. With no schemes supplied, http and https are assumed. It never
// panics; any parse failure yields false.
func IsURL(s string, schemes ...string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	if len(schemes) == 0 {
		schemes = []string{"http", "https"}
	}

	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	if u.Host == "" || !slices.Contains(schemes, u.Scheme) {
		return false
	}
	return true
}

// Required fails when the value is empty or whitespace only.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool { return strings.TrimSpace(value) != "" },
		Error: ValidationError{
			Field:   field,
			Message: "is required",
		},
	}
}

// LenBetween fails when the value's length in runes is outside [min, max].
func LenBetween(field, value string, min, max int) Rule {
	return Rule{
		Check: func() bool {
			n := utf8.RuneCountInString(value)
			return n >= min && n <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be between %d and %d characters", min, max),
		},
	}
}

// ValidEmail fails when the value is not a syntactically valid email address.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool { return IsEmail(value) },
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid email address",
		},
	}
}

// ValidURLWithScheme fails when the value is not an absolute URL with one of
// the given schemes.
func ValidURLWithScheme(field, value string, schemes ...string) Rule {
	return Rule{
		Check: func() bool { return IsURL(value, schemes...) },
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid URL",
		},
	}
}

// OneOf fails when the value is not among the allowed options.
func OneOf[T comparable](field string, value T, options []T) Rule {
	return Rule{
		Check: func() bool { return slices.Contains(options, value) },
		Error: ValidationError{
			Field:   field,
			Message: "must be one of the allowed values",
		},
	}
}
