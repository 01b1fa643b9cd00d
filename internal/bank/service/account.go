package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/securebank/bankd/internal/bank/domain"
	"github.com/securebank/bankd/internal/bank/store"
	"github.com/securebank/bankd/pkg/idx"
)

// AccountService reads accounts and, for admins, opens new ones. Balance
// mutation lives in TransferService only.
type AccountService struct {
	store store.Store
}

func NewAccountService(s store.Store) *AccountService {
	return &AccountService{store: s}
}

// GetOwnAccount resolves the caller to their account.
func (s *AccountService) GetOwnAccount(ctx context.Context, userID string) (domain.Account, error) {
	a, err := s.store.Accounts().GetAccountByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Account{}, ErrNotFound
		}
		return domain.Account{}, err
	}
	return a, nil
}

// GetAccountByNo fetches an account by its account number.
func (s *AccountService) GetAccountByNo(ctx context.Context, accountNo string) (domain.Account, error) {
	a, err := s.store.Accounts().GetAccountByNo(ctx, accountNo)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Account{}, ErrNotFound
		}
		return domain.Account{}, err
	}
	return a, nil
}

// ListAccounts returns every account, newest-first.
func (s *AccountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return s.store.Accounts().ListAccounts(ctx)
}

// CreateAccount opens an account for an existing user. The opening balance
// may be zero but never negative.
func (s *AccountService) CreateAccount(
	ctx context.Context,
	accountNo string,
	accountType domain.AccountType,
	balance float64,
	userID string,
) (domain.Account, error) {
	accountNo = strings.TrimSpace(accountNo)
	if accountNo == "" || !accountType.Valid() || balance < 0 {
		return domain.Account{}, ErrInvalidInput
	}

	if _, err := s.store.Users().GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Account{}, ErrNotFound
		}
		return domain.Account{}, err
	}

	now := time.Now().UTC()
	a := domain.Account{
		ID:        idx.New().String(),
		AccountNo: accountNo,
		Type:      accountType,
		Balance:   balance,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.Accounts().CreateAccount(ctx, a); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Account{}, ErrAccountNoTaken
		}
		return domain.Account{}, err
	}
	return a, nil
}
