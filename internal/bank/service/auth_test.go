package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/securebank/bankd/internal/bank/domain"
)

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	auth := NewAuthService(st, newTestSigner(t), "bankd-test", time.Hour)

	seedUser(t, st, "user1", "user123", domain.RoleUser, true)
	seedUser(t, st, "m_smith", "pw", domain.RoleUser, false)

	t.Run("valid credentials issue a token and session", func(t *testing.T) {
		res, err := auth.Login(ctx, "user1", "user123")
		require.NoError(t, err)
		require.NotEmpty(t, res.Token)
		require.Equal(t, "user1", res.User.Username)
		require.Equal(t, int64(3600), res.ExpiresIn)
	})

	t.Run("inputs are trimmed before comparison", func(t *testing.T) {
		res, err := auth.Login(ctx, "  user1  ", "  user123  ")
		require.NoError(t, err)
		require.Equal(t, "user1", res.User.Username)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := auth.Login(ctx, "nobody", "user123")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := auth.Login(ctx, "user1", "wrong")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := auth.Login(ctx, "", "")
		require.ErrorIs(t, err, ErrInvalidCredentials)

		_, err = auth.Login(ctx, "   ", "   ")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("inactive user reported inactive even with correct password", func(t *testing.T) {
		_, err := auth.Login(ctx, "m_smith", "pw")
		require.ErrorIs(t, err, ErrUserInactive)
	})

	t.Run("inactive user reported inactive with wrong password too", func(t *testing.T) {
		_, err := auth.Login(ctx, "m_smith", "totally-wrong")
		require.ErrorIs(t, err, ErrUserInactive)
	})
}

func TestAuthService_SessionLifecycle(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	signer := newTestSigner(t)
	auth := NewAuthService(st, signer, "bankd-test", time.Hour)

	seedUser(t, st, "user1", "user123", domain.RoleUser, true)

	res, err := auth.Login(ctx, "user1", "user123")
	require.NoError(t, err)

	verifier := signer.NewVerifier("bankd-test")
	claims, err := verifier.Verify(res.Token)
	require.NoError(t, err)
	require.NotEmpty(t, claims.SID)
	require.Equal(t, "User", claims.Role)

	t.Run("fresh session passes the check", func(t *testing.T) {
		require.NoError(t, auth.CheckSession(ctx, claims.SID))
	})

	t.Run("logout revokes the session", func(t *testing.T) {
		require.NoError(t, auth.Logout(ctx, claims.SID))
		require.ErrorIs(t, auth.CheckSession(ctx, claims.SID), ErrSessionDead)
	})

	t.Run("unknown session is dead", func(t *testing.T) {
		require.ErrorIs(t, auth.CheckSession(ctx, "no-such-session"), ErrSessionDead)
	})

	t.Run("empty session id is dead", func(t *testing.T) {
		require.ErrorIs(t, auth.CheckSession(ctx, ""), ErrSessionDead)
	})
}

func TestAuthService_NoExpirySessions(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	signer := newTestSigner(t)
	auth := NewAuthService(st, signer, "bankd-test", 0)

	seedUser(t, st, "user1", "user123", domain.RoleUser, true)

	res, err := auth.Login(ctx, "user1", "user123")
	require.NoError(t, err)
	require.Zero(t, res.ExpiresIn)

	claims, err := signer.NewVerifier("bankd-test").Verify(res.Token)
	require.NoError(t, err)
	require.Nil(t, claims.ExpiresAt)

	sess, err := auth.GetSession(ctx, claims.SID)
	require.NoError(t, err)
	require.Nil(t, sess.ExpiresAt)
}
