package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestCheckPassword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		password string
		ok       bool
		message  string
	}{
		{"Ab1", false, "Password must be at least 8 characters long"},
		{"ABCDEFGH1", false, "Password must contain at least one lowercase letter"},
		{"abcdefgh1", false, "Password must contain at least one uppercase letter"},
		{"Abcdefghi", false, "Password must contain at least one digit"},
		{"Abcdefgh1", true, "Password is strong"},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			ok, msg := validator.CheckPassword(tt.password)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.message, msg)
			assert.Equal(t, tt.ok, validator.IsPassword(tt.password))
		})
	}
}

func TestPasswordCharacterRules(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validator.Apply(validator.PasswordUppercase("p", "aB")))
	assert.Error(t, validator.Apply(validator.PasswordUppercase("p", "ab")))
	assert.NoError(t, validator.Apply(validator.PasswordLowercase("p", "aB")))
	assert.Error(t, validator.Apply(validator.PasswordLowercase("p", "AB")))
	assert.NoError(t, validator.Apply(validator.PasswordDigit("p", "a1")))
	assert.Error(t, validator.Apply(validator.PasswordDigit("p", "ab")))
}

func TestNotCommonPassword(t *testing.T) {
	t.Parallel()

	assert.Error(t, validator.Apply(validator.NotCommonPassword("p", "Password123")))
	assert.Error(t, validator.Apply(validator.NotCommonPassword("p", "qwerty")))
	assert.NoError(t, validator.Apply(validator.NotCommonPassword("p", "c0rrect-h0rse")))
}

func TestPasswordPolicy(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validator.Apply(validator.PasswordPolicy("password", "Abcdefgh1")...))

	err := validator.Apply(validator.PasswordPolicy("password", "abc")...)
	errs := validator.ExtractValidationErrors(err)
	require.Len(t, errs, 3)
	assert.Equal(t, []string{
		"Password must be at least 8 characters long",
		"Password must contain at least one uppercase letter",
		"Password must contain at least one digit",
	}, errs.ByField()["password"])
}
