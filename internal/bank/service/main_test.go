package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/securebank/bankd/internal/bank/domain"
	"github.com/securebank/bankd/internal/bank/store"
	"github.com/securebank/bankd/internal/bank/store/drivers/sqlite"
	"github.com/securebank/bankd/pkg/cryptox"
	"github.com/securebank/bankd/pkg/idx"
	"github.com/securebank/bankd/pkg/jwtx"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func newTestSigner(t *testing.T) *jwtx.Signer {
	t.Helper()

	signer, err := jwtx.NewEphemeralSigner()
	require.NoError(t, err)
	return signer
}

func seedUser(t *testing.T, s store.Store, username, password string, role domain.Role, active bool) domain.User {
	t.Helper()

	hash, err := cryptox.HashPassword(password)
	require.NoError(t, err)

	now := time.Now().UTC()
	u := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		Active:       active,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, s.Users().CreateUser(context.Background(), u))
	return u
}

func seedAccount(t *testing.T, s store.Store, accountNo string, typ domain.AccountType, balance float64, userID string) domain.Account {
	t.Helper()

	now := time.Now().UTC()
	a := domain.Account{
		ID:        idx.New().String(),
		AccountNo: accountNo,
		Type:      typ,
		Balance:   balance,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, s.Accounts().CreateAccount(context.Background(), a))
	return a
}
