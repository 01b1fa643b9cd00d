package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/securebank/bankd/internal/bank/domain"
	"github.com/securebank/bankd/internal/bank/store"
	"github.com/securebank/bankd/pkg/idx"
	"github.com/securebank/bankd/pkg/slogx"
)

// TransferService moves funds between accounts. The whole movement runs in
// one store transaction so a crash or validation failure mid-way leaves no
// half-applied state, and SQLite's writer lock serialises concurrent
// transfers touching the same accounts.
type TransferService struct {
	store store.Store
}

// TransferResult reports a committed transfer: the ledger entry written and
// the source account's balance after the debit.
type TransferResult struct {
	Entry         domain.Transaction
	SourceBalance float64
}

func NewTransferService(s store.Store) *TransferService {
	return &TransferService{store: s}
}

// Transfer debits from one account and credits another atomically. A
// transfer writes exactly one Debit ledger entry naming both accounts; both
// parties see it in their histories because reads match source or
// destination. callerUserID must own the source account unless callerRole
// is Admin.
func (s *TransferService) Transfer(
	ctx context.Context,
	fromAccountNo, toAccountNo string,
	amount float64,
	description string,
	callerUserID string,
	callerRole domain.Role,
) (TransferResult, error) {
	fromAccountNo = strings.TrimSpace(fromAccountNo)
	toAccountNo = strings.TrimSpace(toAccountNo)
	description = strings.TrimSpace(description)

	if fromAccountNo == "" || toAccountNo == "" {
		return TransferResult{}, ErrInvalidInput
	}
	if amount <= 0 {
		return TransferResult{}, ErrInvalidInput
	}
	if fromAccountNo == toAccountNo {
		return TransferResult{}, ErrSameAccount
	}

	var result TransferResult
	err := s.store.WithTx(ctx, func(tx store.Tx) error {
		from, err := tx.Accounts().GetAccountByNo(ctx, fromAccountNo)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrNotFound
			}
			return err
		}
		to, err := tx.Accounts().GetAccountByNo(ctx, toAccountNo)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrNotFound
			}
			return err
		}

		if callerRole != domain.RoleAdmin && from.UserID != callerUserID {
			return ErrNotAccountOwner
		}

		// The balance check is mandatory and happens inside the same
		// transaction that applies the debit, so no interleaved transfer
		// can drive the balance negative.
		if from.Balance < amount {
			return ErrInsufficientFunds
		}

		newFromBalance := from.Balance - amount
		if err := tx.Accounts().SetBalance(ctx, from.AccountNo, newFromBalance); err != nil {
			return err
		}
		if err := tx.Accounts().SetBalance(ctx, to.AccountNo, to.Balance+amount); err != nil {
			return err
		}

		entry := domain.Transaction{
			ID:            idx.New().String(),
			FromAccountNo: from.AccountNo,
			ToAccountNo:   to.AccountNo,
			Amount:        amount,
			Description:   description,
			Type:          domain.TransactionDebit,
			CreatedAt:     time.Now().UTC(),
		}
		if err := tx.Transactions().CreateTransaction(ctx, entry); err != nil {
			return err
		}

		result = TransferResult{Entry: entry, SourceBalance: newFromBalance}
		return nil
	})
	if err != nil {
		return TransferResult{}, err
	}

	slogx.FromContext(ctx).Info("transfer committed",
		"from", fromAccountNo, "to", toAccountNo, "amount", amount)
	return result, nil
}
