package http

import (
	"net/http"

	"github.com/securebank/bankd/internal/bank/domain"
	"github.com/securebank/bankd/pkg/banksdk"
	"github.com/securebank/bankd/pkg/httpx"
)

func accountToResponse(a domain.Account) banksdk.AccountResponse {
	return banksdk.AccountResponse{
		AccountNo:   a.AccountNo,
		AccountType: string(a.Type),
		Balance:     a.Balance,
		UserID:      a.UserID,
	}
}

// handleMyAccount implements GET /v1/accounts/me.
//
//	@Summary	Own account
//	@Tags		accounts
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	banksdk.AccountResponse
//	@Failure	404	{object}	banksdk.APIError
//	@Router		/v1/accounts/me [get]
func (r *Router) handleMyAccount() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		a, err := r.accounts.GetOwnAccount(req.Context(), httpx.UserIDFromCtx(req.Context()))
		if err != nil {
			writeServiceError(w, req, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, accountToResponse(a))
	})
}

// handleListAccounts implements GET /v1/accounts. Admin only.
//
//	@Summary	List accounts
//	@Tags		accounts
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	map[string][]banksdk.AccountResponse
//	@Failure	403	{object}	banksdk.APIError
//	@Router		/v1/accounts [get]
func (r *Router) handleListAccounts() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		accounts, err := r.accounts.ListAccounts(req.Context())
		if err != nil {
			writeServiceError(w, req, err)
			return
		}

		out := make([]banksdk.AccountResponse, 0, len(accounts))
		for _, a := range accounts {
			out = append(out, accountToResponse(a))
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]any{"accounts": out})
	})
}

// handleCreateAccount implements POST /v1/accounts. Admin only.
//
//	@Summary	Open account
//	@Tags		accounts
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		banksdk.CreateAccountRequest	true	"account"
//	@Success	201		{object}	banksdk.AccountResponse
//	@Failure	400		{object}	banksdk.APIError
//	@Router		/v1/accounts [post]
func (r *Router) handleCreateAccount() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		var body banksdk.CreateAccountRequest
		if err := decodeJSON(req, &body); err != nil {
			banksdk.ErrInvalidRequest.WriteError(w)
			return
		}

		a, err := r.accounts.CreateAccount(req.Context(),
			body.AccountNo, domain.AccountType(body.AccountType), body.Balance, body.UserID)
		if err != nil {
			writeServiceError(w, req, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, accountToResponse(a))
	})
}
