package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/securebank/bankd/internal/bank/domain"
)

func TestTransferService_Transfer(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	transfers := NewTransferService(st)

	alice := seedUser(t, st, "alice", "pw-alice", domain.RoleUser, true)
	bob := seedUser(t, st, "bob", "pw-bob", domain.RoleUser, true)
	seedAccount(t, st, "1001-2233-4455", domain.AccountSavings, 2500.00, alice.ID)
	seedAccount(t, st, "1001-9988-7766", domain.AccountCurrent, 4200.50, bob.ID)

	t.Run("debits source and credits destination atomically", func(t *testing.T) {
		res, err := transfers.Transfer(ctx,
			"1001-2233-4455", "1001-9988-7766", 500.00, "rent",
			alice.ID, domain.RoleUser)
		require.NoError(t, err)
		require.InDelta(t, 2000.00, res.SourceBalance, 1e-9)

		from, err := st.Accounts().GetAccountByNo(ctx, "1001-2233-4455")
		require.NoError(t, err)
		require.InDelta(t, 2000.00, from.Balance, 1e-9)

		to, err := st.Accounts().GetAccountByNo(ctx, "1001-9988-7766")
		require.NoError(t, err)
		require.InDelta(t, 4700.50, to.Balance, 1e-9)
	})

	t.Run("writes exactly one ledger entry visible to both parties", func(t *testing.T) {
		fromEntries, err := st.Transactions().ListTransactionsByAccountNo(ctx, "1001-2233-4455", 0)
		require.NoError(t, err)
		require.Len(t, fromEntries, 1)

		toEntries, err := st.Transactions().ListTransactionsByAccountNo(ctx, "1001-9988-7766", 0)
		require.NoError(t, err)
		require.Len(t, toEntries, 1)

		require.Equal(t, fromEntries[0].ID, toEntries[0].ID)
		require.Equal(t, domain.TransactionDebit, fromEntries[0].Type)
		require.Equal(t, "1001-2233-4455", fromEntries[0].FromAccountNo)
		require.Equal(t, "1001-9988-7766", fromEntries[0].ToAccountNo)
		require.InDelta(t, 500.00, fromEntries[0].Amount, 1e-9)
	})

	t.Run("insufficient funds leaves balances and ledger untouched", func(t *testing.T) {
		_, err := transfers.Transfer(ctx,
			"1001-2233-4455", "1001-9988-7766", 1_000_000, "too much",
			alice.ID, domain.RoleUser)
		require.ErrorIs(t, err, ErrInsufficientFunds)

		from, err := st.Accounts().GetAccountByNo(ctx, "1001-2233-4455")
		require.NoError(t, err)
		require.InDelta(t, 2000.00, from.Balance, 1e-9)

		entries, err := st.Transactions().ListTransactionsByAccountNo(ctx, "1001-2233-4455", 0)
		require.NoError(t, err)
		require.Len(t, entries, 1)
	})

	t.Run("same source and destination rejected", func(t *testing.T) {
		_, err := transfers.Transfer(ctx,
			"1001-2233-4455", "1001-2233-4455", 10, "",
			alice.ID, domain.RoleUser)
		require.ErrorIs(t, err, ErrSameAccount)
	})

	t.Run("non-positive amounts rejected", func(t *testing.T) {
		_, err := transfers.Transfer(ctx,
			"1001-2233-4455", "1001-9988-7766", 0, "",
			alice.ID, domain.RoleUser)
		require.ErrorIs(t, err, ErrInvalidInput)

		_, err = transfers.Transfer(ctx,
			"1001-2233-4455", "1001-9988-7766", -5, "",
			alice.ID, domain.RoleUser)
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown accounts rejected", func(t *testing.T) {
		_, err := transfers.Transfer(ctx,
			"0000-0000-0000", "1001-9988-7766", 10, "",
			alice.ID, domain.RoleUser)
		require.ErrorIs(t, err, ErrNotFound)

		_, err = transfers.Transfer(ctx,
			"1001-2233-4455", "0000-0000-0000", 10, "",
			alice.ID, domain.RoleUser)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("caller must own the source account", func(t *testing.T) {
		_, err := transfers.Transfer(ctx,
			"1001-2233-4455", "1001-9988-7766", 10, "",
			bob.ID, domain.RoleUser)
		require.ErrorIs(t, err, ErrNotAccountOwner)
	})

	t.Run("admins may move funds from any account", func(t *testing.T) {
		admin := seedUser(t, st, "root", "pw-root", domain.RoleAdmin, true)

		res, err := transfers.Transfer(ctx,
			"1001-2233-4455", "1001-9988-7766", 100, "adjustment",
			admin.ID, domain.RoleAdmin)
		require.NoError(t, err)
		require.InDelta(t, 1900.00, res.SourceBalance, 1e-9)
	})
}
