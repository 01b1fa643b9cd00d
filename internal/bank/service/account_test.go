package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/securebank/bankd/internal/bank/domain"
)

func TestAccountService_CreateAccount(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	accounts := NewAccountService(st)

	carol := seedUser(t, st, "carol", "pw", domain.RoleUser, true)

	t.Run("creates an account for an existing user", func(t *testing.T) {
		a, err := accounts.CreateAccount(ctx, "2002-0000-0001", domain.AccountSavings, 100.00, carol.ID)
		require.NoError(t, err)
		require.Equal(t, "2002-0000-0001", a.AccountNo)
		require.InDelta(t, 100.00, a.Balance, 1e-9)

		got, err := accounts.GetOwnAccount(ctx, carol.ID)
		require.NoError(t, err)
		require.Equal(t, a.ID, got.ID)
	})

	t.Run("duplicate account number is a conflict", func(t *testing.T) {
		_, err := accounts.CreateAccount(ctx, "2002-0000-0001", domain.AccountCurrent, 0, carol.ID)
		require.ErrorIs(t, err, ErrAccountNoTaken)
	})

	t.Run("unknown owner", func(t *testing.T) {
		_, err := accounts.CreateAccount(ctx, "2002-0000-0002", domain.AccountSavings, 0, "no-such-user")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("invalid input", func(t *testing.T) {
		_, err := accounts.CreateAccount(ctx, "   ", domain.AccountSavings, 0, carol.ID)
		require.ErrorIs(t, err, ErrInvalidInput)

		_, err = accounts.CreateAccount(ctx, "2002-0000-0003", domain.AccountType("Cheque"), 0, carol.ID)
		require.ErrorIs(t, err, ErrInvalidInput)

		_, err = accounts.CreateAccount(ctx, "2002-0000-0003", domain.AccountSavings, -1, carol.ID)
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}
