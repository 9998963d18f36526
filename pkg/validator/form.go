package validator

import (
	"iter"
	"net/url"
	"strings"
)

// Predicate reports whether a trimmed, non-empty field value is acceptable.
// Predicates must be pure for Validate to be deterministic.
type Predicate func(value string) bool

// FieldRule is the declarative constraint set for a single form field.
//
// Recognized options and their defaults:
//   - Required:  false, the field may be left empty
//   - Label:     "", the field name is used in messages
//   - MinLength: 0, no minimum (counted in runes)
//   - Validate:  nil, no custom check
//   - Message:   "", "{label} is invalid" is used when Validate fails
type FieldRule struct {
	Required  bool
	Label     string
	MinLength int
	Validate  Predicate
	Message   string
}

// DisplayName returns the label used in messages for the given field.
func (r FieldRule) DisplayName(field string) string {
	if r.Label != "" {
		return r.Label
	}
	return field
}

// Check applies the rule to a single value and returns the first failure message.
// The value is trimmed before any check runs.
func (r FieldRule) Check(field, value string) (string, bool) {
	if failed, ok := First(r.Rules(field, value)...); ok {
		return failed.Message, false
	}
	return "", true
}

// Rules expands the rule into checks for value, in evaluation order. Errors
// are keyed by field and worded with the display name. An empty optional
// value yields no rules.
func (r FieldRule) Rules(field, value string) []Rule {
	value = strings.TrimSpace(value)
	if value == "" && !r.Required {
		return nil
	}

	name := r.DisplayName(field)
	rules := []Rule{RequiredString(field, value).WithMessage(requiredMessage(name))}
	if r.Validate != nil {
		message := r.Message
		if message == "" {
			message = name + " is invalid"
		}
		rules = append(rules, Rule{
			Check: func() bool { return r.Validate(value) },
			Error: ValidationError{Field: field, Message: message},
		})
	}
	if r.MinLength > 0 {
		rules = append(rules, MinLenString(field, value, r.MinLength).WithMessage(minLenMessage(name, r.MinLength)))
	}
	return rules
}

// RuleSet is an ordered mapping of field name to FieldRule.
// Insertion order defines evaluation order and therefore message order.
type RuleSet struct {
	order []string
	rules map[string]FieldRule
}

// NewRuleSet returns an empty rule set.
func NewRuleSet() *RuleSet {
	return &RuleSet{rules: make(map[string]FieldRule)}
}

// Add appends a rule for field. Re-adding a field replaces its rule and keeps
// its original position.
func (s *RuleSet) Add(field string, rule FieldRule) *RuleSet {
	if s.rules == nil {
		s.rules = make(map[string]FieldRule)
	}
	if _, ok := s.rules[field]; !ok {
		s.order = append(s.order, field)
	}
	s.rules[field] = rule
	return s
}

// Get returns the rule registered for field.
func (s *RuleSet) Get(field string) (FieldRule, bool) {
	if s == nil {
		return FieldRule{}, false
	}
	rule, ok := s.rules[field]
	return rule, ok
}

// Fields returns a copy of the field names in evaluation order.
func (s *RuleSet) Fields() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.order...)
}

func (s *RuleSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// All iterates over the rules in evaluation order.
func (s *RuleSet) All() iter.Seq2[string, FieldRule] {
	return func(yield func(string, FieldRule) bool) {
		if s == nil {
			return
		}
		for _, field := range s.order {
			if !yield(field, s.rules[field]) {
				return
			}
		}
	}
}

// Values is a snapshot of submitted field values.
type Values map[string]string

// FromForm takes the first value of every key in a parsed form.
func FromForm(form url.Values) Values {
	values := make(Values, len(form))
	for key, vals := range form {
		if len(vals) > 0 {
			values[key] = vals[0]
		}
	}
	return values
}

// Outcome is the result of one validation pass.
// Errors and Fields are parallel: Errors[i] belongs to Fields[i].
type Outcome struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
	Fields []string `json:"fields"`
}

// Has reports whether field failed validation.
func (o Outcome) Has(field string) bool {
	for _, f := range o.Fields {
		if f == field {
			return true
		}
	}
	return false
}

// First returns the first failing field, the one that should receive focus.
func (o Outcome) First() (string, bool) {
	if len(o.Fields) == 0 {
		return "", false
	}
	return o.Fields[0], true
}

// Err converts a failed outcome into ValidationErrors, or nil when valid.
func (o Outcome) Err() error {
	if o.Valid {
		return nil
	}
	errs := make(ValidationErrors, 0, len(o.Errors))
	for i, msg := range o.Errors {
		errs = append(errs, ValidationError{Field: o.Fields[i], Message: msg})
	}
	return errs
}

// Validate evaluates every rule in rules against values and reports all
// violations in rule order. A field missing from values is treated as empty.
// Validate never fails; a panicking predicate propagates to the caller.
func Validate(values Values, rules *RuleSet) Outcome {
	return validate(values, rules, false)
}

// ValidatePresent is like Validate but skips rules whose field is absent from
// values, the way a rule naming a control that is not on the page is ignored.
func ValidatePresent(values Values, rules *RuleSet) Outcome {
	return validate(values, rules, true)
}

func validate(values Values, rules *RuleSet, skipMissing bool) Outcome {
	out := Outcome{Errors: []string{}, Fields: []string{}}

	for field, rule := range rules.All() {
		value, ok := values[field]
		if !ok && skipMissing {
			continue
		}
		if msg, ok := rule.Check(field, value); !ok {
			out.Errors = append(out.Errors, msg)
			out.Fields = append(out.Fields, field)
		}
	}

	out.Valid = len(out.Errors) == 0
	return out
}
