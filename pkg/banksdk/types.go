package banksdk

import "time"

// LoginRequest is the payload for POST /v1/session.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned on a successful login.
type LoginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	ExpiresIn int64  `json:"expires_in,omitempty"`
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
}

// SessionInfoResponse describes the caller's current session, as returned by
// GET /v1/session.
type SessionInfoResponse struct {
	SessionID string     `json:"session_id"`
	UserID    string     `json:"user_id"`
	Username  string     `json:"username"`
	Role      string     `json:"role"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// AccountResponse describes a bank account.
type AccountResponse struct {
	AccountNo   string  `json:"account_no"`
	AccountType string  `json:"account_type"`
	Balance     float64 `json:"balance"`
	UserID      string  `json:"user_id"`
	Username    string  `json:"username,omitempty"`
}

// CreateAccountRequest is the admin payload for POST /v1/accounts.
type CreateAccountRequest struct {
	AccountNo   string  `json:"account_no"`
	AccountType string  `json:"account_type"`
	Balance     float64 `json:"balance"`
	UserID      string  `json:"user_id"`
}

// TransactionRecord is one ledger entry.
type TransactionRecord struct {
	ID            string    `json:"id"`
	FromAccountNo string    `json:"from_account_no"`
	ToAccountNo   string    `json:"to_account_no"`
	Amount        float64   `json:"amount"`
	Description   string    `json:"description"`
	Type          string    `json:"type"`
	CreatedAt     time.Time `json:"created_at"`
}

// TransactionListResponse wraps GET /v1/transactions.
type TransactionListResponse struct {
	Transactions []TransactionRecord `json:"transactions"`
}

// TransferRequest is the payload for POST /v1/transfers.
type TransferRequest struct {
	FromAccountNo string  `json:"from_account_no"`
	ToAccountNo   string  `json:"to_account_no"`
	Amount        float64 `json:"amount"`
	Description   string  `json:"description,omitempty"`
}

// TransferResponse is returned when a transfer commits. SourceBalance is the
// source account's balance after the debit.
type TransferResponse struct {
	Transaction   TransactionRecord `json:"transaction"`
	SourceBalance float64           `json:"source_balance"`
}

// UserRecord describes a user in the admin directory. The password hash is
// never serialised.
type UserRecord struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserListResponse wraps GET /v1/users.
type UserListResponse struct {
	Users []UserRecord `json:"users"`
}

// CreateUserRequest is the admin payload for POST /v1/users.
type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// UpdateUserRequest is the admin payload for PATCH /v1/users/{id}. Nil
// fields are left unchanged.
type UpdateUserRequest struct {
	Username *string `json:"username,omitempty"`
	Password *string `json:"password,omitempty"`
	Role     *string `json:"role,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
}

// SetUserStatusRequest is the payload for PUT /v1/users/{id}/status.
type SetUserStatusRequest struct {
	Active bool `json:"active"`
}

// HealthChecks reports the readiness of individual subsystems.
type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime,omitempty"`
	Version string        `json:"version,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
