package password

import (
	"strings"
	"testing"
)

func TestStrengthChecker_ValidPassword(t *testing.T) {
	res := NewStrengthChecker().Check("Str0ng!Pw")
	if !res.Valid {
		t.Errorf("expected valid, got violations: %v", res.Errors)
	}
	if len(res.Errors) != 0 {
		t.Errorf("expected no errors, got %v", res.Errors)
	}
}

func TestStrengthChecker_SingleRuleViolations(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantRule string
	}{
		{"missing lowercase", "STR0NG!PW", "lowercase"},
		{"missing uppercase", "str0ng!pw", "uppercase"},
		{"missing digit", "Strong!Pw", "digit"},
		{"missing special", "Str0ngPwd", "special"},
		{"too short", "S0r!aghjkA"[:7], "at least 8 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := NewStrengthChecker().Check(tt.password)
			if res.Valid {
				t.Fatalf("expected invalid for %q", tt.password)
			}
			found := false
			for _, e := range res.Errors {
				if strings.Contains(e, tt.wantRule) {
					found = true
				}
			}
			if !found {
				t.Errorf("expected a violation mentioning %q, got %v", tt.wantRule, res.Errors)
			}
		})
	}
}

func TestStrengthChecker_ReportsAllViolationsAtOnce(t *testing.T) {
	// Violates every rule: short, no lower, no upper, no digit, no special.
	res := NewStrengthChecker().Check("----")
	if res.Valid {
		t.Fatal("expected invalid")
	}
	if len(res.Errors) != 5 {
		t.Errorf("expected 5 violations, got %d: %v", len(res.Errors), res.Errors)
	}
}

func TestStrengthChecker_NeverZeroErrorsWhenInvalid(t *testing.T) {
	for _, pw := range []string{"", "a", "password", "PASSWORD1", "Pass word 1"} {
		res := NewStrengthChecker().Check(pw)
		if !res.Valid && len(res.Errors) == 0 {
			t.Errorf("invalid password %q reported zero errors", pw)
		}
	}
}

func TestStrengthChecker_SpecialCharSet(t *testing.T) {
	// Each member of the fixed set satisfies the special-char rule.
	for _, c := range SpecialChars {
		pw := "Passw0rd" + string(c)
		res := NewStrengthChecker().Check(pw)
		if !res.Valid {
			t.Errorf("expected %q to be valid, got %v", pw, res.Errors)
		}
	}
	// A special character outside the set does not.
	res := NewStrengthChecker().Check("Passw0rd#")
	if res.Valid {
		t.Error("expected '#' to not satisfy the special-character rule")
	}
}

func TestStrengthChecker_WithMinLength(t *testing.T) {
	res := NewStrengthChecker(WithMinLength(12)).Check("Str0ng!Pw")
	if res.Valid {
		t.Error("expected 9-char password to fail a 12-char minimum")
	}
}
