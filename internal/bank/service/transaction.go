package service

import (
	"context"
	"errors"
	"strings"

	"github.com/securebank/bankd/internal/bank/domain"
	"github.com/securebank/bankd/internal/bank/store"
)

// TransactionService lists ledger entries. Writing entries is the transfer
// routine's job; nothing else appends to the ledger.
type TransactionService struct {
	store store.Store
}

func NewTransactionService(s store.Store) *TransactionService {
	return &TransactionService{store: s}
}

// ListForAccount returns entries where the account appears as source or
// destination, newest-first. Non-admin callers may only read their own
// account's history; ownerUserID carries the caller's id, empty for admins.
func (s *TransactionService) ListForAccount(
	ctx context.Context,
	accountNo string,
	limit int,
	ownerUserID string,
) ([]domain.Transaction, error) {
	accountNo = strings.TrimSpace(accountNo)
	if accountNo == "" {
		return nil, ErrInvalidInput
	}

	account, err := s.store.Accounts().GetAccountByNo(ctx, accountNo)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if ownerUserID != "" && account.UserID != ownerUserID {
		return nil, ErrNotAccountOwner
	}

	return s.store.Transactions().ListTransactionsByAccountNo(ctx, accountNo, limit)
}
