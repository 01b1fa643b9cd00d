package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/securebank/bankd/internal/bank/domain"
	"github.com/securebank/bankd/internal/bank/store"
	"github.com/securebank/bankd/pkg/idx"
)

func appendEntry(t *testing.T, st store.Store, from, to string, amount float64) domain.Transaction {
	t.Helper()
	entry := domain.Transaction{
		ID:            idx.New().String(),
		FromAccountNo: from,
		ToAccountNo:   to,
		Amount:        amount,
		Type:          domain.TransactionDebit,
		CreatedAt:     time.Now().UTC(),
	}
	require.NoError(t, st.Transactions().CreateTransaction(context.Background(), entry))
	return entry
}

func TestTransactionService_ListForAccount(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	txns := NewTransactionService(st)

	alice := seedUser(t, st, "alice", "pw", domain.RoleUser, true)
	bob := seedUser(t, st, "bob", "pw", domain.RoleUser, true)
	seedAccount(t, st, "AAA", domain.AccountSavings, 100, alice.ID)
	seedAccount(t, st, "BBB", domain.AccountCurrent, 100, bob.ID)
	seedAccount(t, st, "CCC", domain.AccountCurrent, 100, bob.ID)

	e1 := appendEntry(t, st, "AAA", "BBB", 10) // AAA as source
	e2 := appendEntry(t, st, "BBB", "CCC", 20) // AAA absent
	e3 := appendEntry(t, st, "CCC", "AAA", 30) // AAA as destination

	t.Run("matches source or destination only", func(t *testing.T) {
		got, err := txns.ListForAccount(ctx, "AAA", 0, "")
		require.NoError(t, err)
		require.Len(t, got, 2)

		ids := []string{got[0].ID, got[1].ID}
		require.Contains(t, ids, e1.ID)
		require.Contains(t, ids, e3.ID)
		require.NotContains(t, ids, e2.ID)
	})

	t.Run("newest first", func(t *testing.T) {
		got, err := txns.ListForAccount(ctx, "BBB", 0, "")
		require.NoError(t, err)
		require.Len(t, got, 2)
		require.Equal(t, e2.ID, got[0].ID)
		require.Equal(t, e1.ID, got[1].ID)
	})

	t.Run("limit caps the result", func(t *testing.T) {
		got, err := txns.ListForAccount(ctx, "AAA", 1, "")
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, e3.ID, got[0].ID)
	})

	t.Run("owner may read their own history", func(t *testing.T) {
		got, err := txns.ListForAccount(ctx, "AAA", 0, alice.ID)
		require.NoError(t, err)
		require.Len(t, got, 2)
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		_, err := txns.ListForAccount(ctx, "AAA", 0, bob.ID)
		require.ErrorIs(t, err, ErrNotAccountOwner)
	})

	t.Run("unknown account", func(t *testing.T) {
		_, err := txns.ListForAccount(ctx, "ZZZ", 0, "")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("blank account number", func(t *testing.T) {
		_, err := txns.ListForAccount(ctx, "   ", 0, "")
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}
