package validator

import (
	"regexp"
	"strings"
)

var (
	uppercaseRegex = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex = regexp.MustCompile(`[a-z]`)
	digitRegex     = regexp.MustCompile(`[0-9]`)

	// Frequently compromised passwords, compared case-insensitively.
	commonPasswords = map[string]bool{
		"password":    true,
		"password1":   true,
		"password123": true,
		"123456":      true,
		"12345678":    true,
		"123456789":   true,
		"1234567890":  true,
		"qwerty":      true,
		"qwerty123":   true,
		"qwertyuiop":  true,
		"abc123":      true,
		"abcd1234":    true,
		"admin":       true,
		"admin123":    true,
		"letmein":     true,
		"welcome":     true,
		"iloveyou":    true,
		"monkey":      true,
		"dragon":      true,
		"sunshine":    true,
		"football":    true,
		"baseball":    true,
		"trustno1":    true,
		"1q2w3e4r":    true,
		"1qaz2wsx":    true,
		"zaq12wsx":    true,
		"111111":      true,
		"000000":      true,
	}
)

func PasswordUppercase(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return uppercaseRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "Password must contain at least one uppercase letter",
		},
	}
}

func PasswordLowercase(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return lowercaseRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "Password must contain at least one lowercase letter",
		},
	}
}

func PasswordDigit(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return digitRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "Password must contain at least one digit",
		},
	}
}

func NotCommonPassword(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return !commonPasswords[strings.ToLower(value)]
		},
		Error: ValidationError{
			Field:   field,
			Message: "Password is too common, please choose a different one",
		},
	}
}

// PasswordPolicy returns the sign-up policy as composable rules:
// minimum length 8, then lowercase, uppercase and digit. Pass it to Apply to
// collect every unmet requirement or to First for the one CheckPassword reports.
func PasswordPolicy(field, value string) []Rule {
	return []Rule{
		{
			Check: func() bool { return len([]rune(value)) >= 8 },
			Error: ValidationError{Field: field, Message: "Password must be at least 8 characters long"},
		},
		PasswordLowercase(field, value),
		PasswordUppercase(field, value),
		PasswordDigit(field, value),
	}
}
