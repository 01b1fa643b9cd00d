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
	"github.com/securebank/bankd/pkg/jwtx"
	"github.com/securebank/bankd/pkg/slogx"
)

// AuthService authenticates users and manages their sessions. Every login
// creates a durable session row; the signed token carries its id so logout
// and deactivation can kill the token before it expires.
type AuthService struct {
	store      store.Store
	signer     *jwtx.Signer
	issuer     string
	sessionTTL time.Duration
}

// LoginResult is what a successful login hands back to the HTTP layer.
type LoginResult struct {
	Token     string
	ExpiresIn int64 // seconds, 0 when sessions never expire
	User      domain.User
}

func NewAuthService(s store.Store, signer *jwtx.Signer, issuer string, sessionTTL time.Duration) *AuthService {
	return &AuthService{
		store:      s,
		signer:     signer,
		issuer:     issuer,
		sessionTTL: sessionTTL,
	}
}

// Login validates a username and password and issues a session token.
// Inputs are trimmed of surrounding whitespace before any comparison. An
// inactive user is reported as inactive even when the password is wrong;
// every other failure collapses into ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (LoginResult, error) {
	log := slogx.FromContext(ctx)

	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return LoginResult{}, ErrInvalidCredentials
	}

	user, err := s.store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, err
	}

	// The inactive check comes before the password check. A deactivated
	// user is told their account is disabled, not that their password is
	// wrong.
	if !user.Active {
		log.Info("login rejected for inactive user", "user_id", user.ID)
		return LoginResult{}, ErrUserInactive
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		return LoginResult{}, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	sess := domain.Session{
		ID:        idx.New().String(),
		UserID:    user.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if s.sessionTTL > 0 {
		exp := now.Add(s.sessionTTL)
		sess.ExpiresAt = &exp
	}

	if err := s.store.Sessions().CreateSession(ctx, sess); err != nil {
		return LoginResult{}, err
	}

	claims := jwtx.NewSessionClaims(
		user.ID, sess.ID, string(user.Role), user.Username,
		s.sessionTTL, s.issuer, now,
	)
	token, err := s.signer.Sign(claims)
	if err != nil {
		return LoginResult{}, err
	}

	// Fingerprint rather than the raw token so logs never hold a usable
	// credential.
	log.Info("user logged in",
		"user_id", user.ID,
		"session_id", sess.ID,
		"token_fp", cryptox.FingerprintToken(token))

	res := LoginResult{Token: token, User: user}
	if s.sessionTTL > 0 {
		res.ExpiresIn = int64(s.sessionTTL.Seconds())
	}
	return res, nil
}

// Logout revokes the session behind the current token. Idempotent in effect;
// revoking an already-revoked session is not an error.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if err := s.store.Sessions().RevokeSession(ctx, sessionID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrSessionDead
		}
		return err
	}
	slogx.FromContext(ctx).Info("session revoked", "session_id", sessionID)
	return nil
}

// GetSession returns the durable session record, failing if it is dead.
func (s *AuthService) GetSession(ctx context.Context, sessionID string) (domain.Session, error) {
	sess, err := s.store.Sessions().GetSessionByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Session{}, ErrSessionDead
		}
		return domain.Session{}, err
	}
	if !sess.Live(time.Now().UTC()) {
		return domain.Session{}, ErrSessionDead
	}
	return sess, nil
}

// CheckSession implements httpx.SessionChecker. It is how the authn
// middleware notices revocation between token issue and token expiry.
func (s *AuthService) CheckSession(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return ErrSessionDead
	}
	_, err := s.GetSession(ctx, sessionID)
	return err
}
