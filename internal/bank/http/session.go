package http

import (
	"net/http"

	"github.com/securebank/bankd/pkg/banksdk"
	"github.com/securebank/bankd/pkg/httpx"
)

// handleLogin implements POST /v1/session.
//
//	@Summary		Log in
//	@Description	Validates a username and password and issues a bearer token.
//	@Tags			session
//	@Accept			json
//	@Produce		json
//	@Param			request	body		banksdk.LoginRequest	true	"credentials"
//	@Success		200		{object}	banksdk.LoginResponse
//	@Failure		401		{object}	banksdk.APIError
//	@Failure		403		{object}	banksdk.APIError
//	@Router			/v1/session [post]
func (r *Router) handleLogin() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		var body banksdk.LoginRequest
		if err := decodeJSON(req, &body); err != nil {
			banksdk.ErrInvalidRequest.WriteError(w)
			return
		}

		res, err := r.auth.Login(req.Context(), body.Username, body.Password)
		if err != nil {
			writeServiceError(w, req, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, banksdk.LoginResponse{
			Token:     res.Token,
			TokenType: "Bearer",
			ExpiresIn: res.ExpiresIn,
			UserID:    res.User.ID,
			Username:  res.User.Username,
			Role:      string(res.User.Role),
		})
	})
}

// handleSessionInfo implements GET /v1/session.
//
//	@Summary	Current session
//	@Tags		session
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	banksdk.SessionInfoResponse
//	@Failure	401	{object}	banksdk.APIError
//	@Router		/v1/session [get]
func (r *Router) handleSessionInfo() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ctx := req.Context()

		sess, err := r.auth.GetSession(ctx, httpx.SessionIDFromCtx(ctx))
		if err != nil {
			writeServiceError(w, req, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, banksdk.SessionInfoResponse{
			SessionID: sess.ID,
			UserID:    httpx.UserIDFromCtx(ctx),
			Username:  httpx.UsernameFromCtx(ctx),
			Role:      httpx.RoleFromCtx(ctx),
			ExpiresAt: sess.ExpiresAt,
		})
	})
}

// handleLogout implements DELETE /v1/session.
//
//	@Summary	Log out
//	@Tags		session
//	@Security	BearerAuth
//	@Success	204
//	@Failure	401	{object}	banksdk.APIError
//	@Router		/v1/session [delete]
func (r *Router) handleLogout() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if err := r.auth.Logout(req.Context(), httpx.SessionIDFromCtx(req.Context())); err != nil {
			writeServiceError(w, req, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}
