package store

import (
	"context"
	"errors"

	"github.com/securebank/bankd/internal/bank/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement it. Sub-repositories keep concerns tidy; routing every mutation
// through them is what removed the original app's ambient shared state.
type Store interface {
	Users() Users
	Accounts() Accounts
	Transactions() Transactions
	Sessions() Sessions

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. This is the
	// recommended way to run multi-step operations that must be atomic
	// (the fund transfer in particular).
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByUsername looks up a user by exact username. Login uses this.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// FindUserByUsernameFold looks a user up by username ignoring case.
	// The admin uniqueness check uses this so "Admin" cannot shadow "admin".
	FindUserByUsernameFold(ctx context.Context, username string) (domain.User, error)

	// ListUsers returns the full directory, newest-first.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// CreateUser inserts a new user (id is provided by the app via ULID).
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateUser rewrites the mutable fields and bumps updated_at.
	UpdateUser(ctx context.Context, u domain.User) error

	// SetUserActive flips the active flag.
	SetUserActive(ctx context.Context, userID string, active bool) error

	// DeleteUser removes by id; sessions cascade per schema. Accounts are
	// deliberately left untouched (no referential cascade in this system).
	DeleteUser(ctx context.Context, userID string) error

	// IsEmpty reports whether the directory holds no users. The demo seed
	// uses this on startup.
	IsEmpty(ctx context.Context) (bool, error)
}

type Accounts interface {
	// GetAccountByNo fetches an account by its user-facing account number.
	GetAccountByNo(ctx context.Context, accountNo string) (domain.Account, error)

	// GetAccountByUserID resolves a user to their single account.
	GetAccountByUserID(ctx context.Context, userID string) (domain.Account, error)

	// ListAccounts returns all accounts, newest-first.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// CreateAccount inserts a new account.
	CreateAccount(ctx context.Context, a domain.Account) error

	// SetBalance writes an absolute balance and bumps updated_at. Callers
	// must hold a transaction when pairing two of these.
	SetBalance(ctx context.Context, accountNo string, balance float64) error
}

type Transactions interface {
	// CreateTransaction appends a ledger entry. Entries are never updated
	// or deleted afterwards.
	CreateTransaction(ctx context.Context, t domain.Transaction) error

	// ListTransactionsByAccountNo returns entries where the account appears
	// as source or destination, newest-first. limit <= 0 means no limit.
	ListTransactionsByAccountNo(ctx context.Context, accountNo string, limit int) ([]domain.Transaction, error)
}

type Sessions interface {
	// CreateSession stores a new session record.
	CreateSession(ctx context.Context, s domain.Session) error

	// GetSessionByID returns the session record, revoked or not.
	GetSessionByID(ctx context.Context, id string) (domain.Session, error)

	// RevokeSession flips revoked=1 and bumps updated_at.
	RevokeSession(ctx context.Context, id string) error

	// RevokeUserSessions bulk-revokes every session of a user (deactivation,
	// password change).
	RevokeUserSessions(ctx context.Context, userID string) error

	// DeleteDeadSessions removes revoked and expired sessions. Housekeeping.
	DeleteDeadSessions(ctx context.Context) error
}
