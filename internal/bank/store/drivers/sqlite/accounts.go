package sqlite

import (
	"context"
	"time"

	"github.com/securebank/bankd/internal/bank/domain"
)

const accountColumns = `id, account_no, account_type, balance, user_id, created_at, updated_at`

type accountsRepo struct {
	q querier
}

func scanAccount(row interface{ Scan(...any) error }) (domain.Account, error) {
	var a domain.Account
	err := row.Scan(
		&a.ID,
		&a.AccountNo,
		&a.Type,
		&a.Balance,
		&a.UserID,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	return a, err
}

func (r *accountsRepo) GetAccountByNo(ctx context.Context, accountNo string) (domain.Account, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE account_no = ?`, accountNo)

	a, err := scanAccount(row)
	if err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	return a, nil
}

func (r *accountsRepo) GetAccountByUserID(ctx context.Context, userID string) (domain.Account, error) {
	// Each user owns at most one account in this system; take the oldest if
	// the data ever disagrees.
	row := r.q.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE user_id = ? ORDER BY id ASC LIMIT 1`, userID)

	a, err := scanAccount(row)
	if err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	return a, nil
}

func (r *accountsRepo) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+accountColumns+` FROM accounts ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

func (r *accountsRepo) CreateAccount(ctx context.Context, a domain.Account) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO accounts (id, account_no, account_type, balance, user_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.AccountNo, a.Type, a.Balance, a.UserID, a.CreatedAt, a.UpdatedAt,
	)
	return mapConflict(err)
}

func (r *accountsRepo) SetBalance(ctx context.Context, accountNo string, balance float64) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE accounts SET balance = ?, updated_at = ? WHERE account_no = ?`,
		balance, time.Now().UTC(), accountNo,
	)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}
