package validator

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type credentials struct {
	Username string  `json:"username" validate:"required,min=3,max=150"`
	Password string  `json:"password" validate:"required,min=6,max=72"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
}

func TestValidator(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&credentials{Username: "alice", Password: "s3cret!"}))

	bad := "not-an-email"
	err := v.Validate(&credentials{Username: "al", Email: &bad})

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.ElementsMatch(t, []FieldError{
		{Field: "username", Rule: "min", Param: "3"},
		{Field: "password", Rule: "required"},
		{Field: "email", Rule: "email"},
	}, verr.Fields)
	assert.Contains(t, verr.Error(), "username failed on min")
}
