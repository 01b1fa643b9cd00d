package domain

import "time"

// Session is the durable record of an authenticated login. The bearer token
// carries the session ID; revoking the record invalidates the token even
// before its expiry. ExpiresAt is nil when sessions are configured to never
// expire.
type Session struct {
	ID        string
	UserID    string
	Revoked   bool
	ExpiresAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Live reports whether the session is neither revoked nor expired at t.
func (s Session) Live(t time.Time) bool {
	if s.Revoked {
		return false
	}
	if s.ExpiresAt != nil && t.After(*s.ExpiresAt) {
		return false
	}
	return true
}
