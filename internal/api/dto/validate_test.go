package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_CollectsAllFieldErrors(t *testing.T) {
	messages := Validate(LoginRequest{Email: "not-an-email", Password: ""})

	require.Len(t, messages, 2)
	assert.Contains(t, messages, "email must be a valid email address")
	assert.Contains(t, messages, "password is required")
}

func TestValidate_ValidRequestReturnsNil(t *testing.T) {
	messages := Validate(LoginRequest{Email: "jane@example.com", Password: "hunter22222"})
	assert.Nil(t, messages)
}

func TestValidate_RegisterPasswordLength(t *testing.T) {
	messages := Validate(RegisterRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Password:  "short",
	})

	require.Len(t, messages, 1)
	assert.Equal(t, "password must be at least 8 characters", messages[0])
}

func TestValidate_LeadStatusOneOf(t *testing.T) {
	messages := Validate(LeadStatusRequest{Status: "ARCHIVED"})

	require.Len(t, messages, 1)
	assert.Equal(t, "status must be one of: NEW CONTACTED CLOSED", messages[0])
}
