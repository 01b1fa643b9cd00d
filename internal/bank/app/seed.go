package app

import (
	"context"
	"time"

	"github.com/securebank/bankd/internal/bank/domain"
	"github.com/securebank/bankd/internal/bank/store"
	"github.com/securebank/bankd/pkg/cryptox"
	"github.com/securebank/bankd/pkg/idx"
)

// seedDemoData populates an empty database with the demo directory: an
// admin, an active customer with a funded account, and a deactivated
// customer whose login path exercises the inactive branch. Runs only when
// the users table is empty, so an existing database is never touched.
func (a *Application) seedDemoData(ctx context.Context) error {
	empty, err := a.store.Users().IsEmpty(ctx)
	if err != nil {
		return err
	}
	if !empty {
		return nil
	}

	type seedUser struct {
		username, password string
		role               domain.Role
		active             bool
		email, phone       string
	}
	type seedAccount struct {
		owner     string // username
		accountNo string
		typ       domain.AccountType
		balance   float64
	}

	users := []seedUser{
		{"admin", "admin123", domain.RoleAdmin, true, "admin@securebank.example", ""},
		{"user1", "user123", domain.RoleUser, true, "user1@securebank.example", "555-0101"},
		{"m_smith", "pw", domain.RoleUser, false, "m.smith@securebank.example", ""},
	}

	// Opening balances before the seeded credit below; after it is applied
	// the accounts land on the demo's well-known figures (2500.00 and
	// 4200.50), with the ledger and balances agreeing.
	const openingAmount = 150.00
	accounts := []seedAccount{
		{"user1", "1001-2233-4455", domain.AccountSavings, 2500.00 - openingAmount},
		{"m_smith", "1001-9988-7766", domain.AccountCurrent, 4200.50 + openingAmount},
	}

	return a.store.WithTx(ctx, func(tx store.Tx) error {
		now := time.Now().UTC()
		ids := make(map[string]string, len(users))

		for _, su := range users {
			hash, err := cryptox.HashPassword(su.password)
			if err != nil {
				return err
			}

			u := domain.User{
				ID:           idx.New().String(),
				Username:     su.username,
				PasswordHash: hash,
				Role:         su.role,
				Active:       su.active,
				Email:        su.email,
				Phone:        su.phone,
				CreatedAt:    now,
				UpdatedAt:    now,
			}
			if err := tx.Users().CreateUser(ctx, u); err != nil {
				return err
			}
			ids[su.username] = u.ID
		}

		for _, sa := range accounts {
			if err := tx.Accounts().CreateAccount(ctx, domain.Account{
				ID:        idx.New().String(),
				AccountNo: sa.accountNo,
				Type:      sa.typ,
				Balance:   sa.balance,
				UserID:    ids[sa.owner],
				CreatedAt: now,
				UpdatedAt: now,
			}); err != nil {
				return err
			}
		}

		// One opening credit so a fresh install has something to show in
		// the transaction history. Applied to the balances as well so the
		// ledger reconciles with what the accounts hold.
		if err := tx.Transactions().CreateTransaction(ctx, domain.Transaction{
			ID:            idx.New().String(),
			FromAccountNo: "1001-9988-7766",
			ToAccountNo:   "1001-2233-4455",
			Amount:        openingAmount,
			Description:   "opening credit",
			Type:          domain.TransactionCredit,
			CreatedAt:     now,
		}); err != nil {
			return err
		}
		if err := tx.Accounts().SetBalance(ctx, "1001-2233-4455", 2500.00); err != nil {
			return err
		}
		if err := tx.Accounts().SetBalance(ctx, "1001-9988-7766", 4200.50); err != nil {
			return err
		}

		a.log.Info("seeded demo data", "users", len(users), "accounts", len(accounts))
		return nil
	})
}
