// Package username decides membership in the valid-username set.
//
// A username is valid when its rune count lies within the configured
// length bounds (3–12 inclusive by default) and every rune is a letter,
// a digit, or an underscore. Validation is pure and total: for a fixed
// configuration the same input always yields the same answer, and no
// input is an error.
package username

import "unicode"

// Default length bounds, chosen so that names stay readable on screen
// and short enough to mention inside a post.
const (
	DefaultMinLength = 3
	DefaultMaxLength = 12
)

// Validator checks candidate usernames against length bounds and the
// allowed character class. The zero value is not ready for use; obtain
// instances through New.
type Validator struct {
	minLength int
	maxLength int
}

// Option configures a Validator before creation.
type Option func(*Validator)

// WithMinLength overrides the minimum rune count. Non-positive values
// are ignored and the default is kept.
func WithMinLength(n int) Option {
	return func(v *Validator) {
		if n > 0 {
			v.minLength = n
		}
	}
}

// WithMaxLength overrides the maximum rune count. Non-positive values
// are ignored and the default is kept.
func WithMaxLength(n int) Option {
	return func(v *Validator) {
		if n > 0 {
			v.maxLength = n
		}
	}
}

// New returns a Validator with the given options applied over the
// default 3–12 bounds.
// Complexity: O(len(opts))
func New(opts ...Option) Validator {
	v := Validator{
		minLength: DefaultMinLength,
		maxLength: DefaultMaxLength,
	}
	for _, opt := range opts {
		opt(&v)
	}

	return v
}

// IsValid reports whether candidate satisfies the validator's rules.
// Complexity: O(len(candidate))
func (v Validator) IsValid(candidate string) bool {
	length := 0
	for _, r := range candidate {
		if !allowedRune(r) {
			return false
		}
		length++
	}

	return length >= v.minLength && length <= v.maxLength
}

// IsValid checks candidate against the default rules (3–12 runes,
// letters, digits, underscore). Shorthand for New().IsValid(candidate).
func IsValid(candidate string) bool {
	return defaultValidator.IsValid(candidate)
}

var defaultValidator = New()

// allowedRune reports whether r may appear in a username.
func allowedRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
