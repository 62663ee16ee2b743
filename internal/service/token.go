package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"kinblog/internal/config"
)

// TokenManager issues and verifies the stateless session tokens. Tokens are
// self-contained; logout is purely client-side deletion.
type TokenManager struct {
	signingKey []byte
	ttl        time.Duration
}

func NewTokenManager(cfg config.Auth) *TokenManager {
	return &TokenManager{
		signingKey: []byte(cfg.SigningKey),
		ttl:        cfg.TokenTTL,
	}
}

// Issue produces a signed token whose subject is the user id.
func (m *TokenManager) Issue(userID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	})
	return token.SignedString(m.signingKey)
}

// Parse verifies the token and returns its subject. Expiry, malformed input
// and signature mismatch all surface as ErrInvalidToken to callers.
func (m *TokenManager) Parse(accessToken string) (string, error) {
	token, err := jwt.ParseWithClaims(accessToken, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.signingKey, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
