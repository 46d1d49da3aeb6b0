// Package session issues and verifies signed guest session tokens.
//
// The storefront has no user accounts; a browser is identified by an
// opaque session id carried in a signed cookie, which keys its cart in
// Redis. Signing stops clients from forging someone else's session id.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CookieName is the cookie the session token travels in.
const CookieName = "voltshop_session"

var ErrInvalidToken = errors.New("invalid session token")

// Claims holds the JWT claims for a guest session
type Claims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// Manager issues and verifies session tokens
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager creates a session manager. ttl bounds how long an idle
// cart survives; it matches the cart key TTL in Redis.
func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured session lifetime.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Issue creates a fresh session id and returns it with its signed token.
func (m *Manager) Issue() (token string, sessionID string, err error) {
	sessionID = uuid.New().String()

	now := time.Now()
	claims := Claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return token, sessionID, nil
}

// Verify parses a token and returns the session id it carries.
func (m *Manager) Verify(token string) (string, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}
	if claims.SessionID == "" {
		return "", ErrInvalidToken
	}
	return claims.SessionID, nil
}
