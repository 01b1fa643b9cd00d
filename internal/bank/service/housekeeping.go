package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/securebank/bankd/internal/bank/store"
)

// HousekeepingService periodically deletes revoked and expired session rows
// so the table stays small. Logout and deactivation only flip flags; this is
// the process that actually reclaims the rows.
type HousekeepingService struct {
	store    store.Store
	log      *slog.Logger
	interval time.Duration

	cancel context.CancelFunc
	done   chan struct{}
}

func NewHousekeepingService(s store.Store, log *slog.Logger, interval time.Duration) *HousekeepingService {
	return &HousekeepingService{
		store:    s,
		log:      log.With("component", "housekeeping"),
		interval: interval,
	}
}

// Start launches the background sweep loop. It runs one sweep immediately
// and then on every tick until Stop is called.
func (s *HousekeepingService) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.sweep(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.sweep(ctx)
			}
		}
	}()

	s.log.Info("housekeeping started", "interval", s.interval)
}

// Stop cancels the loop and waits for the in-flight sweep to finish.
func (s *HousekeepingService) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.log.Info("housekeeping stopped")
}

func (s *HousekeepingService) sweep(ctx context.Context) {
	if err := s.store.Sessions().DeleteDeadSessions(ctx); err != nil {
		s.log.Error("session sweep failed", "err", err)
	}
}
