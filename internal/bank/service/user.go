package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/securebank/bankd/internal/bank/domain"
	"github.com/securebank/bankd/internal/bank/store"
	"github.com/securebank/bankd/pkg/cryptox"
	"github.com/securebank/bankd/pkg/idx"
	"github.com/securebank/bankd/pkg/slogx"
)

// UserService is the admin-facing user directory: list, create, edit,
// activate/deactivate and delete. Usernames are unique ignoring case, so
// "Admin" cannot be created alongside "admin".
type UserService struct {
	store store.Store
}

// UserUpdate carries the mutable fields of a user edit. Nil means leave
// unchanged.
type UserUpdate struct {
	Username *string
	Password *string
	Role     *domain.Role
	Email    *string
	Phone    *string
}

func NewUserService(s store.Store) *UserService {
	return &UserService{store: s}
}

// ListUsers returns the whole directory, newest-first.
func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.store.Users().ListUsers(ctx)
}

// GetUser fetches one user by id.
func (s *UserService) GetUser(ctx context.Context, id string) (domain.User, error) {
	u, err := s.store.Users().GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrNotFound
		}
		return domain.User{}, err
	}
	return u, nil
}

// CreateUser adds a user to the directory. New users start active.
func (s *UserService) CreateUser(
	ctx context.Context,
	username, password string,
	role domain.Role,
	email, phone string,
) (domain.User, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" || !role.Valid() {
		return domain.User{}, ErrInvalidInput
	}

	if err := s.checkUsernameFree(ctx, username, ""); err != nil {
		return domain.User{}, err
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, err
	}

	now := time.Now().UTC()
	u := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		Active:       true,
		Email:        strings.TrimSpace(email),
		Phone:        strings.TrimSpace(phone),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.store.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrUsernameTaken
		}
		return domain.User{}, err
	}

	slogx.FromContext(ctx).Info("user created", "user_id", u.ID, "role", u.Role)
	return u, nil
}

// UpdateUser applies a partial edit. A password change revokes the user's
// live sessions.
func (s *UserService) UpdateUser(ctx context.Context, id string, upd UserUpdate) (domain.User, error) {
	u, err := s.GetUser(ctx, id)
	if err != nil {
		return domain.User{}, err
	}

	if upd.Username != nil {
		name := strings.TrimSpace(*upd.Username)
		if name == "" {
			return domain.User{}, ErrInvalidInput
		}
		if err := s.checkUsernameFree(ctx, name, u.ID); err != nil {
			return domain.User{}, err
		}
		u.Username = name
	}
	if upd.Role != nil {
		if !upd.Role.Valid() {
			return domain.User{}, ErrInvalidInput
		}
		u.Role = *upd.Role
	}
	if upd.Email != nil {
		u.Email = strings.TrimSpace(*upd.Email)
	}
	if upd.Phone != nil {
		u.Phone = strings.TrimSpace(*upd.Phone)
	}

	passwordChanged := false
	if upd.Password != nil {
		pw := strings.TrimSpace(*upd.Password)
		if pw == "" {
			return domain.User{}, ErrInvalidInput
		}
		hash, err := cryptox.HashPassword(pw)
		if err != nil {
			return domain.User{}, err
		}
		u.PasswordHash = hash
		passwordChanged = true
	}

	u.UpdatedAt = time.Now().UTC()
	if err := s.store.Users().UpdateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrUsernameTaken
		}
		return domain.User{}, err
	}

	if passwordChanged {
		if err := s.store.Sessions().RevokeUserSessions(ctx, u.ID); err != nil {
			return domain.User{}, err
		}
	}

	return u, nil
}

// SetUserStatus activates or deactivates a user. Deactivation revokes the
// user's live sessions so an in-flight token dies with the flag.
func (s *UserService) SetUserStatus(ctx context.Context, id string, active bool) error {
	if _, err := s.GetUser(ctx, id); err != nil {
		return err
	}

	if err := s.store.Users().SetUserActive(ctx, id, active); err != nil {
		return err
	}

	if !active {
		if err := s.store.Sessions().RevokeUserSessions(ctx, id); err != nil {
			return err
		}
	}

	slogx.FromContext(ctx).Info("user status changed", "user_id", id, "active", active)
	return nil
}

// DeleteUser removes a user. Their sessions cascade away with the row;
// accounts are left in place so ledger history stays intact.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	if err := s.store.Users().DeleteUser(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	slogx.FromContext(ctx).Info("user deleted", "user_id", id)
	return nil
}

// checkUsernameFree fails with ErrUsernameTaken when another user already
// holds the name under case folding. selfID exempts the user being edited.
func (s *UserService) checkUsernameFree(ctx context.Context, username, selfID string) error {
	existing, err := s.store.Users().FindUserByUsernameFold(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return err
	}
	if existing.ID == selfID {
		return nil
	}
	return ErrUsernameTaken
}
