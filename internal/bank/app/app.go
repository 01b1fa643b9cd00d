package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	bankhttp "github.com/securebank/bankd/internal/bank/http"
	"github.com/securebank/bankd/internal/bank/service"
	"github.com/securebank/bankd/internal/bank/store"
	"github.com/securebank/bankd/internal/bank/store/drivers/sqlite"
	"github.com/securebank/bankd/pkg/cryptox"
	"github.com/securebank/bankd/pkg/jwtx"
	"github.com/securebank/bankd/pkg/slogx"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

// Application assembles the store, services and HTTP server and runs them
// until a shutdown signal arrives.
type Application struct {
	cfg Config
	log *slog.Logger

	store        store.Store
	signer       *jwtx.Signer
	housekeeping *service.HousekeepingService
	server       *http.Server
}

func New(cfg Config) (*Application, error) {
	log := slogx.New(slogx.Config{
		Service: "bankd",
		Version: Version,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})

	a := &Application{cfg: cfg, log: log}

	if cfg.PepperFile != "" {
		cryptox.SetPepperPath(cfg.PepperFile)
	}

	if err := a.initDatabase(); err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}

	signer, err := jwtx.NewEphemeralSigner()
	if err != nil {
		return nil, fmt.Errorf("init signer: %w", err)
	}
	a.signer = signer

	a.initHTTP()
	return a, nil
}

func (a *Application) initDatabase() error {
	st, err := sqlite.NewStore(sqlite.FileDSN(a.cfg.DatabaseFile))
	if err != nil {
		return err
	}
	a.store = st

	if err := st.ApplyMigrations(); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	if a.cfg.SeedDemo {
		if err := a.seedDemoData(context.Background()); err != nil {
			return fmt.Errorf("seed demo data: %w", err)
		}
	}

	return nil
}

func (a *Application) initHTTP() {
	auth := service.NewAuthService(a.store, a.signer, a.cfg.Issuer, a.cfg.SessionTTL)

	router := bankhttp.NewRouter(bankhttp.RouterConfig{
		Auth:         auth,
		Accounts:     service.NewAccountService(a.store),
		Transactions: service.NewTransactionService(a.store),
		Transfers:    service.NewTransferService(a.store),
		Users:        service.NewUserService(a.store),
		Store:        a.store,
		Signer:       a.signer,
		Verifier:     a.signer.NewVerifier(a.cfg.Issuer),
		Logger:       a.log,
		Version:      Version,
	})

	a.housekeeping = service.NewHousekeepingService(a.store, a.log, a.cfg.HousekeepingInterval)

	a.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", a.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// Run starts the server and blocks until SIGINT/SIGTERM, then shuts down
// gracefully.
func (a *Application) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if a.cfg.HousekeepingInterval > 0 {
		a.housekeeping.Start(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("http server listening", "addr", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		a.log.Info("shutdown signal received")
	}

	return a.Shutdown()
}

// Shutdown drains in-flight requests, stops background workers and closes
// the store.
func (a *Application) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		a.log.Error("http shutdown failed", "err", err)
	}

	if a.cfg.HousekeepingInterval > 0 {
		a.housekeeping.Stop()
	}

	if err := a.store.Close(); err != nil {
		return fmt.Errorf("close store: %w", err)
	}

	a.log.Info("shutdown complete")
	return nil
}
