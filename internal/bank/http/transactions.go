package http

import (
	"net/http"
	"strconv"

	"github.com/securebank/bankd/internal/bank/domain"
	"github.com/securebank/bankd/pkg/banksdk"
	"github.com/securebank/bankd/pkg/httpx"
)

func transactionToRecord(t domain.Transaction) banksdk.TransactionRecord {
	return banksdk.TransactionRecord{
		ID:            t.ID,
		FromAccountNo: t.FromAccountNo,
		ToAccountNo:   t.ToAccountNo,
		Amount:        t.Amount,
		Description:   t.Description,
		Type:          string(t.Type),
		CreatedAt:     t.CreatedAt,
	}
}

// handleListTransactions implements GET /v1/transactions?account_no=X&limit=N.
// Non-admins may only query their own account.
//
//	@Summary	Account history
//	@Tags		transactions
//	@Produce	json
//	@Security	BearerAuth
//	@Param		account_no	query		string	true	"account number"
//	@Param		limit		query		int		false	"max entries, newest first"
//	@Success	200			{object}	banksdk.TransactionListResponse
//	@Failure	403			{object}	banksdk.APIError
//	@Failure	404			{object}	banksdk.APIError
//	@Router		/v1/transactions [get]
func (r *Router) handleListTransactions() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ctx := req.Context()

		accountNo := req.URL.Query().Get("account_no")

		limit := 0
		if raw := req.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 {
				banksdk.ErrInvalidRequest.WriteError(w)
				return
			}
			limit = n
		}

		// Admins may inspect any account's history.
		ownerUserID := httpx.UserIDFromCtx(ctx)
		if httpx.RoleFromCtx(ctx) == string(domain.RoleAdmin) {
			ownerUserID = ""
		}

		entries, err := r.transactions.ListForAccount(ctx, accountNo, limit, ownerUserID)
		if err != nil {
			writeServiceError(w, req, err)
			return
		}

		out := make([]banksdk.TransactionRecord, 0, len(entries))
		for _, t := range entries {
			out = append(out, transactionToRecord(t))
		}
		httpx.WriteJSON(w, http.StatusOK, banksdk.TransactionListResponse{Transactions: out})
	})
}

// handleTransfer implements POST /v1/transfers.
//
//	@Summary	Transfer funds
//	@Tags		transactions
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		banksdk.TransferRequest	true	"transfer"
//	@Success	200		{object}	banksdk.TransferResponse
//	@Failure	400		{object}	banksdk.APIError
//	@Failure	422		{object}	banksdk.APIError
//	@Router		/v1/transfers [post]
func (r *Router) handleTransfer() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ctx := req.Context()

		var body banksdk.TransferRequest
		if err := decodeJSON(req, &body); err != nil {
			banksdk.ErrInvalidRequest.WriteError(w)
			return
		}

		res, err := r.transfers.Transfer(ctx,
			body.FromAccountNo, body.ToAccountNo, body.Amount, body.Description,
			httpx.UserIDFromCtx(ctx), domain.Role(httpx.RoleFromCtx(ctx)))
		if err != nil {
			writeServiceError(w, req, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, banksdk.TransferResponse{
			Transaction:   transactionToRecord(res.Entry),
			SourceBalance: res.SourceBalance,
		})
	})
}
