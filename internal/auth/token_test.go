package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/business-site-service/internal/domain"
)

func TestTokenManager_AdminToken(t *testing.T) {
	tm := NewTokenManager("test-secret", 7, 30)

	token, exp, err := tm.GenerateToken("admin-1", "owner@example.com", domain.AccountKindAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), exp, 5*time.Second)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims.AccountID)
	assert.Equal(t, "owner@example.com", claims.Email)
	assert.Equal(t, domain.AccountKindAdmin, claims.Kind)
}

func TestTokenManager_CustomerTokenLongerLived(t *testing.T) {
	tm := NewTokenManager("test-secret", 7, 30)

	_, adminExp, err := tm.GenerateToken("a", "a@example.com", domain.AccountKindAdmin)
	require.NoError(t, err)
	token, customerExp, err := tm.GenerateToken("c", "c@example.com", domain.AccountKindCustomer)
	require.NoError(t, err)

	assert.True(t, customerExp.After(adminExp), "customer tokens must outlive admin tokens")
	assert.WithinDuration(t, time.Now().Add(30*24*time.Hour), customerExp, 5*time.Second)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, domain.AccountKindCustomer, claims.Kind)
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	tm := NewTokenManager("secret-a", 7, 30)
	other := NewTokenManager("secret-b", 7, 30)

	token, _, err := tm.GenerateToken("admin-1", "owner@example.com", domain.AccountKindAdmin)
	require.NoError(t, err)

	_, err = other.ParseToken(token)
	assert.Error(t, err)
}

func TestTokenManager_RejectsGarbage(t *testing.T) {
	tm := NewTokenManager("test-secret", 7, 30)

	_, err := tm.ParseToken("not-a-token")
	assert.Error(t, err)
}

func TestTokenManager_DefaultTTLs(t *testing.T) {
	tm := NewTokenManager("test-secret", 0, 0)

	_, adminExp, err := tm.GenerateToken("a", "a@example.com", domain.AccountKindAdmin)
	require.NoError(t, err)
	_, customerExp, err := tm.GenerateToken("c", "c@example.com", domain.AccountKindCustomer)
	require.NoError(t, err)

	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), adminExp, 5*time.Second)
	assert.WithinDuration(t, time.Now().Add(30*24*time.Hour), customerExp, 5*time.Second)
}
