package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"roomstay-backend/internal/domain"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret-0123456789abcdef0123456789", 60)

	customerID := int32(7)
	user := &domain.User{ID: 2, Email: "cust@test.com", Role: domain.RoleCustomer, CustomerID: &customerID}

	token, err := tm.GenerateAccessToken(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := tm.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, int32(2), claims.UserID)
	assert.Equal(t, domain.RoleCustomer, claims.Role)
	assert.NotNil(t, claims.CustomerID)
	assert.Equal(t, int32(7), *claims.CustomerID)
}

func TestTokenManager_InvalidToken(t *testing.T) {
	tm := NewTokenManager("test-secret-0123456789abcdef0123456789", 60)

	_, err := tm.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	tm := NewTokenManager("test-secret-0123456789abcdef0123456789", 60)
	other := NewTokenManager("another-secret-0123456789abcdef01234567", 60)

	token, err := other.GenerateAccessToken(&domain.User{ID: 1, Role: domain.RoleAdmin})
	assert.NoError(t, err)

	_, err = tm.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_Expired(t *testing.T) {
	tm := &tokenManager{secret: []byte("test-secret-0123456789abcdef0123456789"), expiry: -time.Minute}

	token, err := tm.GenerateAccessToken(&domain.User{ID: 1, Role: domain.RoleAdmin})
	assert.NoError(t, err)

	_, err = tm.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}
