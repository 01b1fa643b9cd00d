package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionTTL is the default lifetime for session tokens. The demo the
// service models never expired sessions at all; 24h keeps the "reload and
// stay logged in" behaviour without letting tokens live forever.
const DefaultSessionTTL = 24 * time.Hour

// Claims are the session-token claims. The role travels in the token so the
// route guard can gate navigation without a directory lookup; the session ID
// (sid) ties the token to a revocable database row.
type Claims struct {
	jwt.RegisteredClaims

	// SID is the durable session record backing this token. Logout revokes
	// the record, which invalidates the token regardless of its expiry.
	SID string `json:"sid,omitempty"`

	// Role is the access level, "Admin" or "User".
	Role string `json:"role,omitempty"`

	// Username of the authenticated user.
	Username string `json:"username,omitempty"`
}

// NewSessionClaims builds minimally-correct claims for a session token.
// A non-positive ttl issues a token without an expiry claim.
func NewSessionClaims(
	subject, sid, role, username string,
	ttl time.Duration,
	issuer string,
	now time.Time,
) Claims {
	c := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ID:        sid,
		},
		SID:      sid,
		Role:     role,
		Username: username,
	}

	if ttl > 0 {
		c.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}

	return c
}

// ValidateIssuer checks the issuer matches the expected value. An empty
// expectation enforces nothing.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected != "" && c.Issuer != expected {
		return ErrIssuer
	}
	return nil
}

// ValidateExpiry ensures the token hasn't expired (exp) and isn't used
// before it is valid (nbf).
func (c *Claims) ValidateExpiry() error {
	now := time.Now().UTC()

	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Time) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrNotYetValid
	}

	return nil
}
