package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registrationForm struct {
	Username string `json:"username" validate:"min=3,max=30,alphanum_underscore"`
	Email    string `json:"email" validate:"email"`
	Password string `json:"password" validate:"min=6"`
	Role     string `json:"role" validate:"is-user-role"`
}

func TestValidateAccepts(t *testing.T) {
	v := New()

	err := v.Validate(&registrationForm{
		Username: "jane_doe99",
		Email:    "jane@example.com",
		Password: "secret123",
		Role:     "creative",
	})
	assert.NoError(t, err)
}

func TestValidateReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&registrationForm{
		Username: "ok_name",
		Email:    "not-an-email",
		Password: "secret123",
		Role:     "client",
	})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "email")
	assert.Equal(t, "Must be a valid email address", vErr.Errors["email"])
}

func TestValidateUserRoleRule(t *testing.T) {
	v := New()

	for _, role := range []string{"creative", "client"} {
		err := v.Validate(&registrationForm{
			Username: "jane", Email: "jane@example.com", Password: "secret123", Role: role,
		})
		assert.NoError(t, err, "role %s should be accepted", role)
	}

	// Admin accounts are seeded, never self-registered.
	err := v.Validate(&registrationForm{
		Username: "jane", Email: "jane@example.com", Password: "secret123", Role: "admin",
	})
	require.Error(t, err)
	vErr := err.(*ValidationError)
	assert.Contains(t, vErr.Errors, "role")
}

func TestValidateUsernameCharset(t *testing.T) {
	v := New()

	err := v.Validate(&registrationForm{
		Username: "jane doe", Email: "jane@example.com", Password: "secret123", Role: "client",
	})
	require.Error(t, err)
	vErr := err.(*ValidationError)
	assert.Equal(t, "Only letters, digits and underscores are allowed", vErr.Errors["username"])
}

func TestValidatePasswordLength(t *testing.T) {
	v := New()

	err := v.Validate(&registrationForm{
		Username: "jane", Email: "jane@example.com", Password: "abc", Role: "client",
	})
	require.Error(t, err)
	vErr := err.(*ValidationError)
	assert.Contains(t, vErr.Errors, "password")
}
