package service

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/securebank/bankd/internal/bank/domain"
)

func TestHousekeepingService_SweepsDeadSessions(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	carol := seedUser(t, st, "carol", "pw", domain.RoleUser, true)

	now := time.Now().UTC()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	revoked := domain.Session{ID: "dead-revoked", UserID: carol.ID, Revoked: true, CreatedAt: now, UpdatedAt: now}
	expired := domain.Session{ID: "dead-expired", UserID: carol.ID, ExpiresAt: &past, CreatedAt: now, UpdatedAt: now}
	live := domain.Session{ID: "live", UserID: carol.ID, ExpiresAt: &future, CreatedAt: now, UpdatedAt: now}

	require.NoError(t, st.Sessions().CreateSession(ctx, revoked))
	require.NoError(t, st.Sessions().CreateSession(ctx, expired))
	require.NoError(t, st.Sessions().CreateSession(ctx, live))

	hk := NewHousekeepingService(st, slog.Default(), time.Hour)
	hk.Start(ctx)
	hk.Stop()

	_, err := st.Sessions().GetSessionByID(ctx, "dead-revoked")
	require.Error(t, err)

	_, err = st.Sessions().GetSessionByID(ctx, "dead-expired")
	require.Error(t, err)

	_, err = st.Sessions().GetSessionByID(ctx, "live")
	require.NoError(t, err)
}
