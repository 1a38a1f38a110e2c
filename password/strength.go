package password

import (
	"fmt"
	"strings"
	"unicode"
)

// SpecialChars is the set of characters that satisfy the special-character
// strength rule.
const SpecialChars = "@$!%*?&"

// ValidationResult reports the outcome of a strength check. Errors lists
// every violated rule; it is never truncated to the first failure.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// StrengthChecker validates plaintext passwords against a fixed rule set.
type StrengthChecker struct {
	minLength int
}

// StrengthOption configures the strength checker.
type StrengthOption func(*StrengthChecker)

// WithMinLength sets the minimum password length (default: 8).
func WithMinLength(n int) StrengthOption {
	return func(c *StrengthChecker) {
		if n > 0 {
			c.minLength = n
		}
	}
}

// NewStrengthChecker creates a strength checker with the default rules:
// minimum 8 characters, at least one lowercase letter, one uppercase
// letter, one digit, and one of SpecialChars.
func NewStrengthChecker(opts ...StrengthOption) *StrengthChecker {
	c := &StrengthChecker{minLength: 8}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Check evaluates every rule and reports all violations at once.
func (c *StrengthChecker) Check(password string) ValidationResult {
	var violations []string

	if len(password) < c.minLength {
		violations = append(violations, fmt.Sprintf("must be at least %d characters long", c.minLength))
	}

	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(SpecialChars, r):
			hasSpecial = true
		}
	}

	if !hasLower {
		violations = append(violations, "must contain at least one lowercase letter")
	}
	if !hasUpper {
		violations = append(violations, "must contain at least one uppercase letter")
	}
	if !hasDigit {
		violations = append(violations, "must contain at least one digit")
	}
	if !hasSpecial {
		violations = append(violations, fmt.Sprintf("must contain at least one special character (%s)", SpecialChars))
	}

	return ValidationResult{
		Valid:  len(violations) == 0,
		Errors: violations,
	}
}
