package validator

import "errors"

var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")

	// ErrUnknownPredicate is returned when a rule references a predicate name
	// that is not registered.
	ErrUnknownPredicate = errors.New("unknown predicate")

	// ErrInvalidPredicate is returned when registering an empty name or a nil predicate,
	// or when a tag expression is rejected by the tag engine.
	ErrInvalidPredicate = errors.New("invalid predicate")

	// ErrUnknownOption is returned when a rule set file uses an unrecognized field option.
	ErrUnknownOption = errors.New("unknown rule option")

	// ErrInvalidRuleSet is returned when a rule set document is malformed.
	ErrInvalidRuleSet = errors.New("invalid rule set")
)
