package banksdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/securebank/bankd/pkg/httpx"
)

// API error codes. The taxonomy is deliberately coarse and user-facing:
// nothing here is retried automatically, the caller simply tries again.
const (
	ErrorCodeInvalidRequest     = "invalid_request"
	ErrorCodeInvalidCredentials = "invalid_credentials"
	ErrorCodeAccountInactive    = "account_inactive"
	ErrorCodeInvalidToken       = "invalid_token"
	ErrorCodeForbidden          = "forbidden"
	ErrorCodeNotFound           = "not_found"
	ErrorCodeUsernameTaken      = "username_taken"
	ErrorCodeAccountNoTaken     = "account_no_taken"
	ErrorCodeInsufficientFunds  = "insufficient_funds"
	ErrorCodeServerError        = "server_error"
)

// APIError is the error envelope every non-2xx response carries. It
// implements the error interface so the SDK client can return it directly,
// and WriteError so handlers can produce it.
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is the machine-readable error code (e.g. "invalid_credentials")
	Code string `json:"error"`

	// Description is a human-readable description of the error
	Description string `json:"error_description"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteJSON(w, e.StatusCode, map[string]string{
		"error":             e.Code,
		"error_description": e.Description,
	})
}

var (
	// ErrInvalidRequest is returned when the request body is malformed or a
	// required field is missing or out of range.
	ErrInvalidRequest = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "the request is malformed or missing required parameters",
	}

	// ErrInvalidCredentials covers unknown usernames, wrong passwords and
	// empty input. The description never says which.
	ErrInvalidCredentials = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidCredentials,
		Description: "invalid username or password",
	}

	// ErrAccountInactive is returned when the username exists but the user
	// has been deactivated. Deliberately distinct from invalid_credentials;
	// the UI shows a different message for it.
	ErrAccountInactive = &APIError{
		StatusCode:  http.StatusForbidden,
		Code:        ErrorCodeAccountInactive,
		Description: "this account has been deactivated",
	}

	// ErrInvalidToken is returned when the bearer token is missing, invalid,
	// expired or its session has been revoked.
	ErrInvalidToken = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidToken,
		Description: "the session token is missing, invalid, expired or revoked",
	}

	// ErrForbidden is returned when the caller's role does not permit the
	// operation.
	ErrForbidden = &APIError{
		StatusCode:  http.StatusForbidden,
		Code:        ErrorCodeForbidden,
		Description: "the current role does not permit this operation",
	}

	// ErrNotFound is returned when the referenced user, account or record
	// does not exist. Absent data is a normal outcome here, not a fault.
	ErrNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeNotFound,
		Description: "the requested record does not exist",
	}

	// ErrUsernameTaken is returned when a create or edit collides with an
	// existing username, compared case-insensitively.
	ErrUsernameTaken = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeUsernameTaken,
		Description: "a user with this username already exists",
	}

	// ErrAccountNoTaken is returned when an account create collides with an
	// existing account number.
	ErrAccountNoTaken = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeAccountNoTaken,
		Description: "an account with this account number already exists",
	}

	// ErrInsufficientFunds is returned when the source balance cannot cover
	// the transfer amount.
	ErrInsufficientFunds = &APIError{
		StatusCode:  http.StatusUnprocessableEntity,
		Code:        ErrorCodeInsufficientFunds,
		Description: "the source account balance does not cover this amount",
	}

	// ErrServerError is the catch-all for unexpected failures.
	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "internal server error",
	}
)

// decodeAPIError turns a non-2xx response body into an *APIError. Bodies
// that don't parse fall back to a generic error carrying the status code.
func decodeAPIError(statusCode int, body []byte) error {
	var e APIError
	if err := json.Unmarshal(body, &e); err != nil || e.Code == "" {
		return &APIError{
			StatusCode:  statusCode,
			Code:        ErrorCodeServerError,
			Description: fmt.Sprintf("unexpected response status %d", statusCode),
		}
	}
	e.StatusCode = statusCode
	return &e
}
