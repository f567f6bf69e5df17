package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// TokenService mints and verifies admin session tokens. Validity is
// entirely signature plus expiry; nothing is persisted server-side, so a
// leaked token stays valid until it expires.
type TokenService struct {
	secretKey []byte
	ttl       time.Duration
}

// NewTokenService creates a TokenService with an explicitly injected
// secret. Callers are responsible for refusing to start without one in
// production.
func NewTokenService(secret []byte, ttl time.Duration) *TokenService {
	return &TokenService{secretKey: secret, ttl: ttl}
}

// Issue produces a signed token asserting an admin session for userID.
func (s *TokenService) Issue(userID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": "admin",
		"iat":  now.Unix(),
		"exp":  now.Add(s.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

// Verify checks signature and expiry. Malformed tokens, bad signatures, and
// expired tokens are all indistinguishable to the caller.
func (s *TokenService) Verify(tokenStr string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return s.secretKey, nil
	})

	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid or expired token")
	}
	return claims, nil
}
