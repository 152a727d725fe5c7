// Package auth provides token issuance/verification and password hashing.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	errs "github.com/tonsuimining/platform/internal/domain/error"
	"github.com/tonsuimining/platform/internal/domain/port/core"
	"github.com/tonsuimining/platform/internal/infrastructure/config"
)

// Claims carries the authenticated identity inside the signed token
type Claims struct {
	UserID uint64 `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager issues and parses HS256 bearer tokens
type TokenManager struct {
	secret       []byte
	issuer       string
	expiry       time.Duration
	timeProvider core.TimeProvider
}

// NewTokenManager creates a token manager from auth configuration
func NewTokenManager(cfg *config.AuthConfig, timeProvider core.TimeProvider) *TokenManager {
	return &TokenManager{
		secret:       []byte(cfg.Secret),
		issuer:       cfg.Issuer,
		expiry:       cfg.TokenExpiry,
		timeProvider: timeProvider,
	}
}

// Issue signs a new token for the given user
func (m *TokenManager) Issue(userID uint64, role string) (string, error) {
	now := m.timeProvider.Now()
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    m.issuer,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Parse validates a token string and returns its claims
func (m *TokenManager) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, errs.ErrUnauthenticated
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errs.ErrUnauthenticated
	}
	return claims, nil
}
