package domain

import "time"

// Role is the enumerated access level gating which sections and operations a
// session may reach.
type Role string

const (
	RoleAdmin Role = "Admin"
	RoleUser  Role = "User"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

type User struct {
	ID           string
	Username     string // unique, compared case-insensitively on writes
	PasswordHash string // argon2id encoded
	Role         Role
	Active       bool
	Email        string
	Phone        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
