package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/business-site-service/internal/domain"
)

// TokenManager handles issuing and validating JWT tokens. Tokens are
// self-contained: validity lives entirely in the signature and expiry,
// nothing is stored server-side.
type TokenManager struct {
	secret      []byte
	adminTTL    time.Duration
	customerTTL time.Duration
}

// NewTokenManager builds a new manager with per-kind token lifetimes.
func NewTokenManager(secret string, adminTTLDays, customerTTLDays int) *TokenManager {
	if adminTTLDays <= 0 {
		adminTTLDays = 7
	}
	if customerTTLDays <= 0 {
		customerTTLDays = 30
	}
	return &TokenManager{
		secret:      []byte(secret),
		adminTTL:    time.Duration(adminTTLDays) * 24 * time.Hour,
		customerTTL: time.Duration(customerTTLDays) * 24 * time.Hour,
	}
}

// Claims describes the JWT payload: subject id, email and account kind.
type Claims struct {
	AccountID string             `json:"id"`
	Email     string             `json:"email"`
	Kind      domain.AccountKind `json:"type"`
	jwt.RegisteredClaims
}

// GenerateToken builds and signs a JWT for the account. The expiry depends
// on the account kind: admin tokens are shorter-lived than customer tokens.
func (tm *TokenManager) GenerateToken(accountID, email string, kind domain.AccountKind) (string, time.Time, error) {
	ttl := tm.customerTTL
	if kind == domain.AccountKindAdmin {
		ttl = tm.adminTTL
	}

	expiresAt := time.Now().Add(ttl)
	claims := &Claims{
		AccountID: accountID,
		Email:     email,
		Kind:      kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// ParseToken validates and returns claims.
func (tm *TokenManager) ParseToken(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return tm.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
