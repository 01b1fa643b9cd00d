package service

import "errors"

var (
	// ErrInvalidCredentials means the username is unknown or the password is
	// wrong. Callers must not distinguish the two cases to the client.
	ErrInvalidCredentials = errors.New("service: invalid credentials")

	// ErrUserInactive means the username exists but the user is deactivated.
	// This is checked before the password so a deactivated user sees the
	// right message regardless of what they type.
	ErrUserInactive = errors.New("service: user is inactive")

	// ErrSessionDead means the session is revoked, expired or unknown.
	ErrSessionDead = errors.New("service: session revoked or expired")

	// ErrNotFound means the referenced user or account does not exist.
	ErrNotFound = errors.New("service: not found")

	// ErrUsernameTaken means a create or edit collides with an existing
	// username under case-insensitive comparison.
	ErrUsernameTaken = errors.New("service: username already taken")

	// ErrAccountNoTaken means an account create collides with an existing
	// account number.
	ErrAccountNoTaken = errors.New("service: account number already taken")

	// ErrInvalidInput means a field failed validation.
	ErrInvalidInput = errors.New("service: invalid input")

	// ErrInsufficientFunds means the source balance cannot cover a transfer.
	ErrInsufficientFunds = errors.New("service: insufficient funds")

	// ErrSameAccount means source and destination of a transfer are equal.
	ErrSameAccount = errors.New("service: source and destination are the same account")

	// ErrNotAccountOwner means a non-admin tried to move funds out of an
	// account they do not own.
	ErrNotAccountOwner = errors.New("service: caller does not own the source account")
)
