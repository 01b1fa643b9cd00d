package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/securebank/bankd/internal/bank/service"
	"github.com/securebank/bankd/pkg/banksdk"
	"github.com/securebank/bankd/pkg/slogx"
)

// writeServiceError maps service sentinels to their API error envelopes.
// Anything unmapped is logged and reported as a server error.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		banksdk.ErrInvalidCredentials.WriteError(w)
	case errors.Is(err, service.ErrUserInactive):
		banksdk.ErrAccountInactive.WriteError(w)
	case errors.Is(err, service.ErrSessionDead):
		banksdk.ErrInvalidToken.WriteError(w)
	case errors.Is(err, service.ErrNotFound):
		banksdk.ErrNotFound.WriteError(w)
	case errors.Is(err, service.ErrUsernameTaken):
		banksdk.ErrUsernameTaken.WriteError(w)
	case errors.Is(err, service.ErrAccountNoTaken):
		banksdk.ErrAccountNoTaken.WriteError(w)
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrSameAccount):
		banksdk.ErrInvalidRequest.WriteError(w)
	case errors.Is(err, service.ErrInsufficientFunds):
		banksdk.ErrInsufficientFunds.WriteError(w)
	case errors.Is(err, service.ErrNotAccountOwner):
		banksdk.ErrForbidden.WriteError(w)
	default:
		slogx.FromContext(r.Context()).Error("unhandled service error", "err", err)
		banksdk.ErrServerError.WriteError(w)
	}
}

// decodeJSON parses a request body into dst, rejecting unknown fields.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
