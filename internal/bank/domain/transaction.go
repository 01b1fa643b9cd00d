package domain

import "time"

// TransactionType marks which side of a money movement an entry records.
type TransactionType string

const (
	TransactionDebit  TransactionType = "Debit"
	TransactionCredit TransactionType = "Credit"
)

// Transaction is one ledger entry: a money movement between two accounts.
// Entries are append-only and never mutated or deleted. A transfer writes
// exactly one Debit entry naming both accounts; both parties see it because
// reads filter on source or destination.
type Transaction struct {
	ID            string
	FromAccountNo string
	ToAccountNo   string
	Amount        float64
	Description   string
	Type          TransactionType
	CreatedAt     time.Time
}
