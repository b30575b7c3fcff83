// Package token issues and verifies the signed session tokens that carry a
// user's identity between requests. Tokens are stateless bearer credentials:
// there is no server-side revocation, a token stays valid until its expiry.
package token

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/techforing/jobboard/internal/errs"
)

// Claims binds a user identity to a token.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// UserID returns the numeric subject of the claims.
func (c *Claims) UserID() (int64, error) {
	return strconv.ParseInt(c.Subject, 10, 64)
}

// Manager signs and verifies HS256 session tokens.
type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewManager creates a Manager with the process-wide signing key and token lifetime.
func NewManager(secret []byte, ttl time.Duration) *Manager {
	return &Manager{secret: secret, ttl: ttl, now: time.Now}
}

// Issue signs a token for the given user, expiring at now+ttl.
func (m *Manager) Issue(userID int64, email string) (string, time.Time, error) {
	now := m.now()
	expires := now.Add(m.ttl)
	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	return signed, expires, err
}

// Verify parses and validates a token. Every failure mode (bad signature,
// malformed structure, expiry) collapses into the same unauthenticated error
// so callers cannot be used as an oracle.
func (m *Manager) Verify(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{},
		func(*jwt.Token) (interface{}, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !parsed.Valid {
		return nil, errs.ErrUnauthenticated
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return nil, errs.ErrUnauthenticated
	}
	return claims, nil
}
