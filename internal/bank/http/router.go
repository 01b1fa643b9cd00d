package http

import (
	"log/slog"
	"net/http"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/securebank/bankd/internal/bank/service"
	"github.com/securebank/bankd/internal/bank/store"
	"github.com/securebank/bankd/pkg/httpx"
	"github.com/securebank/bankd/pkg/jwtx"
	"github.com/securebank/bankd/pkg/slogx"
)

// Router owns the HTTP surface: route table, auth middleware wiring and the
// per-endpoint rate limit profiles.
type Router struct {
	auth         *service.AuthService
	accounts     *service.AccountService
	transactions *service.TransactionService
	transfers    *service.TransferService
	users        *service.UserService

	store    store.Store
	signer   *jwtx.Signer
	verifier jwtx.Verifier
	log      *slog.Logger

	version   string
	startedAt time.Time

	mux     *http.ServeMux
	handler http.Handler
}

// RouterConfig collects everything the route table needs.
type RouterConfig struct {
	Auth         *service.AuthService
	Accounts     *service.AccountService
	Transactions *service.TransactionService
	Transfers    *service.TransferService
	Users        *service.UserService

	Store    store.Store
	Signer   *jwtx.Signer
	Verifier jwtx.Verifier
	Logger   *slog.Logger

	Version string
}

func NewRouter(cfg RouterConfig) *Router {
	r := &Router{
		auth:         cfg.Auth,
		accounts:     cfg.Accounts,
		transactions: cfg.Transactions,
		transfers:    cfg.Transfers,
		users:        cfg.Users,
		store:        cfg.Store,
		signer:       cfg.Signer,
		verifier:     cfg.Verifier,
		log:          cfg.Logger,
		version:      cfg.Version,
		startedAt:    time.Now().UTC(),
		mux:          http.NewServeMux(),
	}
	r.applyRoutes()
	r.handler = httpx.Chain(r.mux, slogx.HTTPMiddleware(r.log))
	return r
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.handler.ServeHTTP(w, req)
}

func (r *Router) applyRoutes() {
	authn := httpx.AuthnMiddleware(r.verifier, r.auth)
	adminOnly := httpx.RequireRole("Admin")

	// Session
	r.handle("POST /v1/session", r.handleLogin(),
		httpx.RateLimitByIP(httpx.StrictLimit))
	r.handle("GET /v1/session", r.handleSessionInfo(),
		authn, httpx.RateLimitByUser(httpx.LenientLimit))
	r.handle("DELETE /v1/session", r.handleLogout(),
		authn, httpx.RateLimitByUser(httpx.ModerateLimit))

	// Accounts
	r.handle("GET /v1/accounts/me", r.handleMyAccount(),
		authn, httpx.RateLimitByUser(httpx.LenientLimit))
	r.handle("GET /v1/accounts", r.handleListAccounts(),
		authn, adminOnly, httpx.RateLimitByUser(httpx.LenientLimit))
	r.handle("POST /v1/accounts", r.handleCreateAccount(),
		authn, adminOnly, httpx.RateLimitByUser(httpx.ModerateLimit))

	// Ledger
	r.handle("GET /v1/transactions", r.handleListTransactions(),
		authn, httpx.RateLimitByUser(httpx.LenientLimit))
	r.handle("POST /v1/transfers", r.handleTransfer(),
		authn, httpx.RateLimitByUser(httpx.ModerateLimit))

	// Admin user directory
	r.handle("GET /v1/users", r.handleListUsers(),
		authn, adminOnly, httpx.RateLimitByUser(httpx.LenientLimit))
	r.handle("POST /v1/users", r.handleCreateUser(),
		authn, adminOnly, httpx.RateLimitByUser(httpx.ModerateLimit))
	r.handle("PATCH /v1/users/{id}", r.handleUpdateUser(),
		authn, adminOnly, httpx.RateLimitByUser(httpx.ModerateLimit))
	r.handle("PUT /v1/users/{id}/status", r.handleSetUserStatus(),
		authn, adminOnly, httpx.RateLimitByUser(httpx.ModerateLimit))
	r.handle("DELETE /v1/users/{id}", r.handleDeleteUser(),
		authn, adminOnly, httpx.RateLimitByUser(httpx.ModerateLimit))

	// Health probes
	r.handle("GET /livez", r.handleLivez(),
		httpx.RateLimitByIP(httpx.LenientLimit))
	r.handle("GET /readyz", r.handleReadyz(),
		httpx.RateLimitByIP(httpx.LenientLimit))

	r.mux.Handle("GET /swagger/", httpSwagger.Handler())
}

func (r *Router) handle(pattern string, h http.Handler, mws ...httpx.Middleware) {
	r.mux.Handle(pattern, httpx.Chain(h, mws...))
}
