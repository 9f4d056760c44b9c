package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for any token that cannot be trusted:
// bad signature, wrong signing method, malformed payload, or expired.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims represents the access token payload
type Claims struct {
	jwt.RegisteredClaims
}

// Manager handles token issuance and verification
type Manager struct {
	secret []byte
	ttl    time.Duration
	method jwt.SigningMethod
}

// NewManager creates a JWT manager. Only the HMAC family is supported;
// algorithm is one of HS256, HS384, HS512 (defaults to HS256).
func NewManager(secret, algorithm string, ttl time.Duration) (*Manager, error) {
	if secret == "" {
		return nil, errors.New("jwt: signing secret is required")
	}

	var method jwt.SigningMethod
	switch algorithm {
	case "", "HS256":
		method = jwt.SigningMethodHS256
	case "HS384":
		method = jwt.SigningMethodHS384
	case "HS512":
		method = jwt.SigningMethodHS512
	default:
		return nil, fmt.Errorf("jwt: unsupported signing algorithm %q", algorithm)
	}

	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
		method: method,
	}, nil
}

// Generate issues a signed access token with the given subject identifier
// and an expiry of now + configured TTL.
func (m *Manager) Generate(subjectID string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(m.method, claims)
	return token.SignedString(m.secret)
}

// Verify validates the token signature and expiry and returns the encoded
// subject identifier. Every failure mode collapses into ErrInvalidToken.
func (m *Manager) Verify(tokenString string) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})

	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	if claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}

// TTL reports the configured token lifetime.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}
