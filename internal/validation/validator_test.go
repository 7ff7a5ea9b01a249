package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Username string `validate:"required"`
	Email    string `validate:"omitempty,email"`
	Price    string `validate:"required,price"`
	Format   string `validate:"omitempty,oneof=json text"`
}

func TestValidateStruct(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.Empty(t, ValidateStruct(sample{Username: "testUser", Email: "test@google.com", Price: "12.99"}))
	})

	t.Run("optional email may be empty", func(t *testing.T) {
		assert.Empty(t, ValidateStruct(sample{Username: "testUser", Price: "0"}))
	})

	tests := []struct {
		name    string
		in      sample
		field   string
		message string
	}{
		{"missing username", sample{Price: "1"}, "username", "Username is required"},
		{"bad email", sample{Username: "u", Email: "nope", Price: "1"}, "email", "Email must be a valid email address"},
		{"negative price", sample{Username: "u", Price: "-1.50"}, "price", "Price must be a non-negative decimal"},
		{"unparsable price", sample{Username: "u", Price: "cheap"}, "price", "Price must be a non-negative decimal"},
		{"unknown format", sample{Username: "u", Price: "1", Format: "xml"}, "format", "Format must be one of [json text]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fieldErrors := ValidateStruct(tt.in)
			require.Len(t, fieldErrors, 1)
			assert.Equal(t, tt.field, fieldErrors[0].Field)
			assert.Equal(t, tt.message, fieldErrors[0].Message)
		})
	}
}

func TestStruct(t *testing.T) {
	assert.NoError(t, Struct(sample{Username: "u", Price: "1"}))

	err := Struct(sample{Price: "-1"})
	require.Error(t, err)

	var vErr *Error
	require.True(t, errors.As(err, &vErr))
	assert.Len(t, vErr.Fields, 2)
	assert.Contains(t, err.Error(), "username: Username is required")
}
