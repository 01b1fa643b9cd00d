package sqlite

import (
	"context"

	"github.com/securebank/bankd/internal/bank/domain"
)

const transactionColumns = `id, from_account_no, to_account_no, amount, description, tx_type, created_at`

type transactionsRepo struct {
	q querier
}

func scanTransaction(row interface{ Scan(...any) error }) (domain.Transaction, error) {
	var t domain.Transaction
	err := row.Scan(
		&t.ID,
		&t.FromAccountNo,
		&t.ToAccountNo,
		&t.Amount,
		&t.Description,
		&t.Type,
		&t.CreatedAt,
	)
	return t, err
}

func (r *transactionsRepo) CreateTransaction(ctx context.Context, t domain.Transaction) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO transactions (id, from_account_no, to_account_no, amount, description, tx_type, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.FromAccountNo, t.ToAccountNo, t.Amount, t.Description, t.Type, t.CreatedAt,
	)
	return mapConflict(err)
}

func (r *transactionsRepo) ListTransactionsByAccountNo(
	ctx context.Context,
	accountNo string,
	limit int,
) ([]domain.Transaction, error) {
	// ULIDs embed the creation time, so ordering by id descending is
	// newest-first even when two entries share a timestamp.
	query := `SELECT ` + transactionColumns + `
		 FROM transactions
		 WHERE from_account_no = ? OR to_account_no = ?
		 ORDER BY id DESC`

	args := []any{accountNo, accountNo}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, t)
	}
	return entries, rows.Err()
}
