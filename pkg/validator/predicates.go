package validator

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	govalidator "github.com/go-playground/validator/v10"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// IsEmail reports whether s looks like a deliverable email address.
func IsEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// CheckPassword applies the sign-up password policy and returns the message
// for the first unmet requirement.
func CheckPassword(password string) (bool, string) {
	if failed, ok := First(PasswordPolicy("password", password)...); ok {
		return false, failed.Message
	}
	return true, "Password is strong"
}

// IsPassword is the Predicate form of CheckPassword.
func IsPassword(password string) bool {
	ok, _ := CheckPassword(password)
	return ok
}

func isUncommonPassword(password string) bool {
	_, failed := First(NotCommonPassword("password", password))
	return !failed
}

// TagPrefix marks predicate names that are evaluated as validator tag
// expressions, e.g. "tag:url" or "tag:numeric,max=5".
const TagPrefix = "tag:"

// PredicateRegistry resolves predicate names used in declarative rule sets.
// It is safe for concurrent use.
type PredicateRegistry struct {
	mu    sync.RWMutex
	named map[string]Predicate
	tags  *govalidator.Validate
}

// NewPredicateRegistry returns a registry with the built-in "email",
// "password" and "uncommon_password" predicates and tag expression support.
func NewPredicateRegistry() *PredicateRegistry {
	r := &PredicateRegistry{
		named: make(map[string]Predicate),
		tags:  govalidator.New(govalidator.WithRequiredStructEnabled()),
	}
	r.named["email"] = IsEmail
	r.named["password"] = IsPassword
	r.named["uncommon_password"] = isUncommonPassword
	return r
}

// Register adds or replaces a named predicate.
func (r *PredicateRegistry) Register(name string, p Predicate) error {
	name = strings.TrimSpace(name)
	if name == "" || p == nil || strings.HasPrefix(name, TagPrefix) {
		return fmt.Errorf("%w: %q", ErrInvalidPredicate, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.named[name] = p
	return nil
}

// Lookup resolves name to a predicate. Tag expressions are checked eagerly so
// that a misspelled tag fails at load time instead of on the first request.
func (r *PredicateRegistry) Lookup(name string) (Predicate, error) {
	if expr, ok := strings.CutPrefix(name, TagPrefix); ok {
		return r.tagPredicate(expr)
	}

	r.mu.RLock()
	p, ok := r.named[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPredicate, name)
	}
	return p, nil
}

func (r *PredicateRegistry) tagPredicate(expr string) (Predicate, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, fmt.Errorf("%w: empty tag expression", ErrInvalidPredicate)
	}

	if err := r.compileTag(expr); err != nil {
		return nil, err
	}

	tags := r.tags
	return func(value string) bool {
		return tags.Var(value, expr) == nil
	}, nil
}

// compileTag parses expr once so an undefined tag is reported now. The tag
// engine panics on undefined tags instead of returning an error, and the
// validation result of the empty value is irrelevant here.
func (r *PredicateRegistry) compileTag(expr string) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: tag %q: %v", ErrInvalidPredicate, expr, rec)
		}
	}()
	_ = r.tags.Var("", expr)
	return nil
}
