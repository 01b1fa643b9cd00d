package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/securebank/bankd/internal/bank/domain"
)

func newFileStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(FileDSN(filepath.Join(t.TempDir(), "bank.db")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func TestFileDSNPragmasApplyToEveryConnection(t *testing.T) {
	ctx := context.Background()
	s := newFileStore(t)

	// Hold several connections at once so the pool cannot hand the same
	// one back, then check each was configured on open.
	var conns []*sql.Conn
	for range 4 {
		conn, err := s.db.Conn(ctx)
		require.NoError(t, err)
		conns = append(conns, conn)
	}
	defer func() {
		for _, conn := range conns {
			_ = conn.Close()
		}
	}()

	for _, conn := range conns {
		var mode string
		require.NoError(t, conn.QueryRowContext(ctx, `PRAGMA journal_mode`).Scan(&mode))
		require.Equal(t, "wal", mode)

		var timeout int
		require.NoError(t, conn.QueryRowContext(ctx, `PRAGMA busy_timeout`).Scan(&timeout))
		require.Equal(t, 5000, timeout)

		var fk int
		require.NoError(t, conn.QueryRowContext(ctx, `PRAGMA foreign_keys`).Scan(&fk))
		require.Equal(t, 1, fk)
	}
}

func TestSessionCascadeOnFileStore(t *testing.T) {
	ctx := context.Background()
	s := newFileStore(t)

	now := time.Now().UTC()
	user := domain.User{
		ID:           "user-cascade",
		Username:     "cascade",
		PasswordHash: "x",
		Role:         domain.RoleUser,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, s.Users().CreateUser(ctx, user))
	require.NoError(t, s.Sessions().CreateSession(ctx, domain.Session{
		ID:        "sess-cascade",
		UserID:    user.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}))

	// Churn the pool so the delete is unlikely to reuse the connection
	// that wrote the rows; the cascade must hold regardless.
	var conns []*sql.Conn
	for range 3 {
		conn, err := s.db.Conn(ctx)
		require.NoError(t, err)
		conns = append(conns, conn)
	}
	for _, conn := range conns {
		require.NoError(t, conn.Close())
	}

	require.NoError(t, s.Users().DeleteUser(ctx, user.ID))

	_, err := s.Sessions().GetSessionByID(ctx, "sess-cascade")
	require.Error(t, err)
}
