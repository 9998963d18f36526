package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestRequiredString(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validator.Apply(validator.RequiredString("name", "Jane")))
	assert.Error(t, validator.Apply(validator.RequiredString("name", "")))
	assert.Error(t, validator.Apply(validator.RequiredString("name", " \t\n")))

	errs := validator.ExtractValidationErrors(validator.Apply(validator.RequiredString("name", "")))
	assert.Equal(t, []string{"name is required"}, errs.ByField()["name"])
}

func TestMinLenString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rule    validator.Rule
		wantErr bool
	}{
		{"exact", validator.MinLenString("f", "abcd", 4), false},
		{"short", validator.MinLenString("f", "abc", 4), true},
		{"counts runes", validator.MinLenString("f", "héllo", 5), false},
		{"multibyte short", validator.MinLenString("f", "日本語", 4), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.Apply(tt.rule)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMinLenString_Message(t *testing.T) {
	t.Parallel()

	errs := validator.ExtractValidationErrors(validator.Apply(validator.MinLenString("password", "short", 8)))
	assert.Equal(t, []string{"password must be at least 8 characters"}, errs.ByField()["password"])
}
