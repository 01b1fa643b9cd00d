package http

import (
	"net/http"
	"time"

	"github.com/securebank/bankd/pkg/banksdk"
	"github.com/securebank/bankd/pkg/httpx"
)

// handleLivez implements GET /livez. It answers as long as the process can
// serve requests at all.
//
//	@Summary	Liveness probe
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	banksdk.HealthResponse
//	@Router		/livez [get]
func (r *Router) handleLivez() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, banksdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(r.startedAt).Round(time.Second).String(),
			Version: r.version,
		})
	})
}

// handleReadyz implements GET /readyz. Degrades to 503 when the database or
// the token signer is unusable.
//
//	@Summary	Readiness probe
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	banksdk.HealthResponse
//	@Failure	503	{object}	banksdk.HealthResponse
//	@Router		/readyz [get]
func (r *Router) handleReadyz() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		checks := banksdk.HealthChecks{Database: "ok", Signer: "ok"}
		healthy := true

		if err := r.store.Ping(req.Context()); err != nil {
			checks.Database = "unreachable"
			healthy = false
		}
		if !r.signer.Ready() {
			checks.Signer = "no key material"
			healthy = false
		}

		status, code := "ok", http.StatusOK
		if !healthy {
			status, code = "degraded", http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, code, banksdk.HealthResponse{
			Status:  status,
			Uptime:  time.Since(r.startedAt).Round(time.Second).String(),
			Version: r.version,
			Checks:  &checks,
		})
	})
}
