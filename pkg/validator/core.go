package validator

import (
	"errors"
	"slices"
	"strings"
)

// ValidationError is one failed rule: the field it belongs to and the text
// shown to the user.
type ValidationError struct {
	Field   string
	Message string
}

// ValidationErrors lists failures in the order the rules ran. A failed
// submit carries it to the error handler, which answers 422.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	var b strings.Builder
	b.WriteString("validation failed")
	for i, e := range ve {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		b.WriteString(e.Field)
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Fields returns each failing field once, in order of its first failure.
func (ve ValidationErrors) Fields() []string {
	fields := make([]string, 0, len(ve))
	for _, e := range ve {
		if !slices.Contains(fields, e.Field) {
			fields = append(fields, e.Field)
		}
	}
	return fields
}

// Messages returns every message in report order.
func (ve ValidationErrors) Messages() []string {
	msgs := make([]string, len(ve))
	for i, e := range ve {
		msgs[i] = e.Message
	}
	return msgs
}

// ByField groups the messages under their field names.
func (ve ValidationErrors) ByField() map[string][]string {
	m := make(map[string][]string, len(ve))
	for _, e := range ve {
		m[e.Field] = append(m[e.Field], e.Message)
	}
	return m
}

// Rule pairs a check with the error reported when it returns false.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// WithMessage returns a copy of r that reports message instead.
func (r Rule) WithMessage(message string) Rule {
	r.Error.Message = message
	return r
}

// Apply runs every rule and returns the failures as ValidationErrors, or nil.
func Apply(rules ...Rule) error {
	var errs ValidationErrors
	for _, rule := range rules {
		if !rule.Check() {
			errs = append(errs, rule.Error)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// First returns the error of the first rule that fails, in argument order.
// Later rules are not evaluated.
func First(rules ...Rule) (ValidationError, bool) {
	for _, rule := range rules {
		if !rule.Check() {
			return rule.Error, true
		}
	}
	return ValidationError{}, false
}

// ExtractValidationErrors finds ValidationErrors in err's chain, or nil.
func ExtractValidationErrors(err error) ValidationErrors {
	var errs ValidationErrors
	if errors.As(err, &errs) {
		return errs
	}
	return nil
}
