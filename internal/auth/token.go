// Package auth issues and verifies the bearer tokens that carry a request's
// identity. Tokens are stateless HS256 JWTs; logout is a client-side
// credential discard.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taskforge/task-api/internal/core/domain"
)

// Verification failure reasons. The middleware reports all of them as 401,
// but callers and tests can distinguish them.
var (
	ErrTokenMalformed   = errors.New("token malformed")
	ErrSignatureInvalid = errors.New("token signature invalid")
	ErrTokenExpired     = errors.New("token expired")
)

// Claims is the token payload: identity plus the registered iat/exp pair.
type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies tokens with a server-held secret.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Issue mints a signed token for the principal, valid for the configured TTL.
func (tm *TokenManager) Issue(p domain.Principal) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		UserID: p.UserID,
		Role:   p.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tm.secret)
}

// Verify checks the signature first, then expiry, and returns the embedded
// principal. Claims are never trusted unless the signature check passes.
func (tm *TokenManager) Verify(tokenString string) (domain.Principal, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return tm.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return domain.Principal{}, ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return domain.Principal{}, ErrSignatureInvalid
		case errors.Is(err, jwt.ErrTokenExpired):
			return domain.Principal{}, ErrTokenExpired
		default:
			return domain.Principal{}, ErrTokenMalformed
		}
	}
	if !tkn.Valid {
		return domain.Principal{}, ErrSignatureInvalid
	}
	return domain.Principal{UserID: claims.UserID, Role: claims.Role}, nil
}
