package domain

import "time"

// AccountType distinguishes the two product kinds the bank offers.
type AccountType string

const (
	AccountSavings AccountType = "Savings"
	AccountCurrent AccountType = "Current"
)

// Valid reports whether t is one of the known account types.
func (t AccountType) Valid() bool {
	return t == AccountSavings || t == AccountCurrent
}

// Account holds a single customer balance. Balances are only ever mutated by
// the transfer routine, inside a store transaction.
type Account struct {
	ID        string
	AccountNo string // unique, user-facing account number
	Type      AccountType
	Balance   float64
	UserID    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
