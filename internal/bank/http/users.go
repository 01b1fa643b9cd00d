package http

import (
	"net/http"

	"github.com/securebank/bankd/internal/bank/domain"
	"github.com/securebank/bankd/internal/bank/service"
	"github.com/securebank/bankd/pkg/banksdk"
	"github.com/securebank/bankd/pkg/httpx"
)

func userToRecord(u domain.User) banksdk.UserRecord {
	return banksdk.UserRecord{
		ID:        u.ID,
		Username:  u.Username,
		Role:      string(u.Role),
		Active:    u.Active,
		Email:     u.Email,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// handleListUsers implements GET /v1/users. Admin only.
//
//	@Summary	User directory
//	@Tags		users
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	banksdk.UserListResponse
//	@Failure	403	{object}	banksdk.APIError
//	@Router		/v1/users [get]
func (r *Router) handleListUsers() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		users, err := r.users.ListUsers(req.Context())
		if err != nil {
			writeServiceError(w, req, err)
			return
		}

		out := make([]banksdk.UserRecord, 0, len(users))
		for _, u := range users {
			out = append(out, userToRecord(u))
		}
		httpx.WriteJSON(w, http.StatusOK, banksdk.UserListResponse{Users: out})
	})
}

// handleCreateUser implements POST /v1/users. Admin only.
//
//	@Summary	Create user
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		banksdk.CreateUserRequest	true	"user"
//	@Success	201		{object}	banksdk.UserRecord
//	@Failure	409		{object}	banksdk.APIError
//	@Router		/v1/users [post]
func (r *Router) handleCreateUser() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		var body banksdk.CreateUserRequest
		if err := decodeJSON(req, &body); err != nil {
			banksdk.ErrInvalidRequest.WriteError(w)
			return
		}

		u, err := r.users.CreateUser(req.Context(),
			body.Username, body.Password, domain.Role(body.Role), body.Email, body.Phone)
		if err != nil {
			writeServiceError(w, req, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, userToRecord(u))
	})
}

// handleUpdateUser implements PATCH /v1/users/{id}. Admin only.
//
//	@Summary	Edit user
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string						true	"user id"
//	@Param		request	body		banksdk.UpdateUserRequest	true	"fields to change"
//	@Success	200		{object}	banksdk.UserRecord
//	@Failure	404		{object}	banksdk.APIError
//	@Failure	409		{object}	banksdk.APIError
//	@Router		/v1/users/{id} [patch]
func (r *Router) handleUpdateUser() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		var body banksdk.UpdateUserRequest
		if err := decodeJSON(req, &body); err != nil {
			banksdk.ErrInvalidRequest.WriteError(w)
			return
		}

		upd := service.UserUpdate{
			Username: body.Username,
			Password: body.Password,
			Email:    body.Email,
			Phone:    body.Phone,
		}
		if body.Role != nil {
			role := domain.Role(*body.Role)
			upd.Role = &role
		}

		u, err := r.users.UpdateUser(req.Context(), req.PathValue("id"), upd)
		if err != nil {
			writeServiceError(w, req, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, userToRecord(u))
	})
}

// handleSetUserStatus implements PUT /v1/users/{id}/status. Admin only.
// Deactivation revokes the user's live sessions.
//
//	@Summary	Activate or deactivate user
//	@Tags		users
//	@Accept		json
//	@Security	BearerAuth
//	@Param		id		path	string							true	"user id"
//	@Param		request	body	banksdk.SetUserStatusRequest	true	"status"
//	@Success	204
//	@Failure	404	{object}	banksdk.APIError
//	@Router		/v1/users/{id}/status [put]
func (r *Router) handleSetUserStatus() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		var body banksdk.SetUserStatusRequest
		if err := decodeJSON(req, &body); err != nil {
			banksdk.ErrInvalidRequest.WriteError(w)
			return
		}

		if err := r.users.SetUserStatus(req.Context(), req.PathValue("id"), body.Active); err != nil {
			writeServiceError(w, req, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

// handleDeleteUser implements DELETE /v1/users/{id}. Admin only.
//
//	@Summary	Delete user
//	@Tags		users
//	@Security	BearerAuth
//	@Param		id	path	string	true	"user id"
//	@Success	204
//	@Failure	404	{object}	banksdk.APIError
//	@Router		/v1/users/{id} [delete]
func (r *Router) handleDeleteUser() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if err := r.users.DeleteUser(req.Context(), req.PathValue("id")); err != nil {
			writeServiceError(w, req, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}
