package banksdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Session is an authenticated handle on the bankd API, obtained from
// Client.Login. All methods send the session's bearer token.
type Session struct {
	client *Client
	token  string
	login  LoginResponse
}

// Token returns the raw bearer token for callers that need to store it.
func (s *Session) Token() string { return s.token }

// Login returns the login response this session was created from.
func (s *Session) Login() LoginResponse { return s.login }

// Info fetches the server's view of the current session.
func (s *Session) Info(ctx context.Context) (SessionInfoResponse, error) {
	var out SessionInfoResponse
	err := s.client.doJSON(ctx, http.MethodGet, "/v1/session", s.token, nil, &out)
	return out, err
}

// Logout revokes the session on the server. The token is useless afterwards.
func (s *Session) Logout(ctx context.Context) error {
	return s.client.doJSON(ctx, http.MethodDelete, "/v1/session", s.token, nil, nil)
}

// MyAccount fetches the account owned by the logged-in user.
func (s *Session) MyAccount(ctx context.Context) (AccountResponse, error) {
	var out AccountResponse
	err := s.client.doJSON(ctx, http.MethodGet, "/v1/accounts/me", s.token, nil, &out)
	return out, err
}

// Transactions lists ledger entries touching the given account, newest
// first. A limit of 0 returns all entries.
func (s *Session) Transactions(ctx context.Context, accountNo string, limit int) ([]TransactionRecord, error) {
	q := url.Values{}
	q.Set("account_no", accountNo)
	if limit > 0 {
		q.Set("limit", fmt.Sprintf("%d", limit))
	}

	var out TransactionListResponse
	err := s.client.doJSON(ctx, http.MethodGet, "/v1/transactions?"+q.Encode(), s.token, nil, &out)
	if err != nil {
		return nil, err
	}
	return out.Transactions, nil
}

// Transfer moves funds between two accounts.
func (s *Session) Transfer(ctx context.Context, req TransferRequest) (TransferResponse, error) {
	var out TransferResponse
	err := s.client.doJSON(ctx, http.MethodPost, "/v1/transfers", s.token, req, &out)
	return out, err
}

// ListUsers fetches the user directory. Admin only.
func (s *Session) ListUsers(ctx context.Context) ([]UserRecord, error) {
	var out UserListResponse
	err := s.client.doJSON(ctx, http.MethodGet, "/v1/users", s.token, nil, &out)
	if err != nil {
		return nil, err
	}
	return out.Users, nil
}

// CreateUser adds a user to the directory. Admin only.
func (s *Session) CreateUser(ctx context.Context, req CreateUserRequest) (UserRecord, error) {
	var out UserRecord
	err := s.client.doJSON(ctx, http.MethodPost, "/v1/users", s.token, req, &out)
	return out, err
}

// UpdateUser edits an existing user. Admin only.
func (s *Session) UpdateUser(ctx context.Context, id string, req UpdateUserRequest) (UserRecord, error) {
	var out UserRecord
	err := s.client.doJSON(ctx, http.MethodPatch, "/v1/users/"+url.PathEscape(id), s.token, req, &out)
	return out, err
}

// SetUserStatus activates or deactivates a user. Admin only. Deactivation
// revokes the user's live sessions.
func (s *Session) SetUserStatus(ctx context.Context, id string, active bool) error {
	return s.client.doJSON(ctx, http.MethodPut, "/v1/users/"+url.PathEscape(id)+"/status",
		s.token, SetUserStatusRequest{Active: active}, nil)
}

// DeleteUser removes a user from the directory. Admin only.
func (s *Session) DeleteUser(ctx context.Context, id string) error {
	return s.client.doJSON(ctx, http.MethodDelete, "/v1/users/"+url.PathEscape(id), s.token, nil, nil)
}

// ListAccounts fetches every account. Admin only.
func (s *Session) ListAccounts(ctx context.Context) ([]AccountResponse, error) {
	var out struct {
		Accounts []AccountResponse `json:"accounts"`
	}
	err := s.client.doJSON(ctx, http.MethodGet, "/v1/accounts", s.token, nil, &out)
	if err != nil {
		return nil, err
	}
	return out.Accounts, nil
}

// CreateAccount opens an account for a user. Admin only.
func (s *Session) CreateAccount(ctx context.Context, req CreateAccountRequest) (AccountResponse, error) {
	var out AccountResponse
	err := s.client.doJSON(ctx, http.MethodPost, "/v1/accounts", s.token, req, &out)
	return out, err
}
