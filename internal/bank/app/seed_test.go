package app

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/securebank/bankd/internal/bank/domain"
	"github.com/securebank/bankd/internal/bank/store/drivers/sqlite"
	"github.com/securebank/bankd/pkg/cryptox"
)

func newSeedApp(t *testing.T) *Application {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	return &Application{
		cfg:   Config{SeedDemo: true},
		log:   slog.Default(),
		store: st,
	}
}

func TestSeedDemoData(t *testing.T) {
	ctx := context.Background()
	a := newSeedApp(t)

	require.NoError(t, a.seedDemoData(ctx))

	t.Run("seeds the demo directory", func(t *testing.T) {
		users, err := a.store.Users().ListUsers(ctx)
		require.NoError(t, err)
		require.Len(t, users, 3)

		byName := make(map[string]domain.User, len(users))
		for _, u := range users {
			byName[u.Username] = u
		}

		require.Equal(t, domain.RoleAdmin, byName["admin"].Role)
		require.True(t, byName["admin"].Active)
		require.NoError(t, cryptox.VerifyPassword("admin123", byName["admin"].PasswordHash))

		require.Equal(t, domain.RoleUser, byName["user1"].Role)
		require.True(t, byName["user1"].Active)
		require.NoError(t, cryptox.VerifyPassword("user123", byName["user1"].PasswordHash))

		require.False(t, byName["m_smith"].Active)
		require.NoError(t, cryptox.VerifyPassword("pw", byName["m_smith"].PasswordHash))
	})

	t.Run("seeds the demo accounts at their published balances", func(t *testing.T) {
		savings, err := a.store.Accounts().GetAccountByNo(ctx, "1001-2233-4455")
		require.NoError(t, err)
		require.Equal(t, domain.AccountSavings, savings.Type)
		require.InDelta(t, 2500.00, savings.Balance, 1e-9)

		current, err := a.store.Accounts().GetAccountByNo(ctx, "1001-9988-7766")
		require.NoError(t, err)
		require.Equal(t, domain.AccountCurrent, current.Type)
		require.InDelta(t, 4200.50, current.Balance, 1e-9)
	})

	t.Run("opening entry reconciles with the balances", func(t *testing.T) {
		entries, err := a.store.Transactions().ListTransactionsByAccountNo(ctx, "1001-2233-4455", 0)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		require.Equal(t, "1001-9988-7766", entries[0].FromAccountNo)
		require.Equal(t, "1001-2233-4455", entries[0].ToAccountNo)
		require.InDelta(t, 150.00, entries[0].Amount, 1e-9)

		// The seeded balances already include this movement: destination
		// holds opening + amount, source holds opening - amount.
		mirror, err := a.store.Transactions().ListTransactionsByAccountNo(ctx, "1001-9988-7766", 0)
		require.NoError(t, err)
		require.Len(t, mirror, 1)
		require.Equal(t, entries[0].ID, mirror[0].ID)
	})

	t.Run("second run is a no-op", func(t *testing.T) {
		require.NoError(t, a.seedDemoData(ctx))

		users, err := a.store.Users().ListUsers(ctx)
		require.NoError(t, err)
		require.Len(t, users, 3)

		entries, err := a.store.Transactions().ListTransactionsByAccountNo(ctx, "1001-2233-4455", 0)
		require.NoError(t, err)
		require.Len(t, entries, 1)
	})
}

func TestInitDatabaseHonoursSeedToggle(t *testing.T) {
	ctx := context.Background()

	a := &Application{
		cfg: Config{
			DatabaseFile: filepath.Join(t.TempDir(), "bank.db"),
			SeedDemo:     false,
		},
		log: slog.Default(),
	}
	require.NoError(t, a.initDatabase())
	t.Cleanup(func() { _ = a.store.Close() })

	empty, err := a.store.Users().IsEmpty(ctx)
	require.NoError(t, err)
	require.True(t, empty)
}
