// Package validator validates submitted form values against declarative,
// ordered rule sets and scores password strength.
//
// The package is centred on RuleSet, an ordered mapping from field name to
// FieldRule. Validate evaluates every rule in insertion order and reports all
// violations, not only the first, so a form can highlight every failing field
// at once. Each field is checked in a fixed sequence and stops at its first
// failure:
//
//  1. required: the trimmed value is empty
//  2. custom predicate: the value is non-empty and Validate returns false
//  3. minimum length: the value is non-empty and shorter than MinLength runes
//
// Validation failures are data. Validate always returns an Outcome; use
// Outcome.Err to turn a failed outcome into ValidationErrors when an error
// return is more convenient.
//
// # Usage
//
//	rules := validator.NewRuleSet().
//	    Add("email", validator.FieldRule{Required: true, Validate: validator.IsEmail, Message: "bad email"}).
//	    Add("password", validator.FieldRule{Required: true, MinLength: 8})
//
//	out := validator.Validate(validator.FromForm(r.PostForm), rules)
//	if !out.Valid {
//	    field, _ := out.First() // focus target
//	    // render out.Errors
//	}
//
// Rule sets can also be declared in YAML and loaded with LoadRuleSets. Named
// predicates are resolved through a PredicateRegistry; names prefixed with
// "tag:" are evaluated as go-playground validator tag expressions.
//
// # Rule builders
//
// FieldRule.Check and CheckPassword are built from Rule values
// (RequiredString, MinLenString, PasswordPolicy, ...). First returns the first
// failing rule; Apply collects every failure as ValidationErrors for ad hoc
// checks that do not fit a declarative rule set.
//
// # Password strength
//
// ScorePassword rates a password on an additive 0-100 scale and labels it
// Empty, Weak, Medium or Strong. It is a pure function; rendering the meter is
// left to the ui package.
package validator
