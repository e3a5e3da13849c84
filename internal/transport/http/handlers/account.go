package handlers

import (
	"context"
	"net/http"

	"github.com/accountkit/user-service/internal/application/account"
	"github.com/accountkit/user-service/internal/domain"
	"github.com/accountkit/user-service/internal/logger"
	"github.com/accountkit/user-service/internal/transport/http/dto"
	"github.com/accountkit/user-service/internal/transport/http/middleware"
	"github.com/accountkit/user-service/internal/transport/http/response"
)

// AccountService is the application surface the HTTP layer drives.
type AccountService interface {
	Register(ctx context.Context, name, email, password string) (domain.User, error)
	Login(ctx context.Context, email, password string) (account.LoginResult, error)
	GetProfile(ctx context.Context, userID string) (domain.User, error)
	Update(ctx context.Context, userID string, upd domain.UserUpdate) (domain.User, error)
	Delete(ctx context.Context, userID string) error
	Logout(ctx context.Context, userID string) error
}

// Account serves the user account routes.
type Account struct {
	svc AccountService
}

func NewAccount(svc AccountService) *Account {
	return &Account{svc: svc}
}

// Register handles POST /users/v1/register.
func (h *Account) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	u, err := h.svc.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Str("user_id", u.ID).
		Msg("user_registered")

	response.Created(w, dto.RegisterData{User: dto.NewUserView(u)})
}

// Login handles POST /users/v1/login.
func (h *Account) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	res, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Str("user_id", res.User.ID).
		Msg("user_logged_in")

	response.OK(w, dto.AuthData{
		User:  dto.NewUserView(res.User),
		Token: dto.NewTokenView(res.Token),
	})
}

// Profile handles GET /users/v1/profile.
func (h *Account) Profile(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, domain.ErrTokenMissing())
		return
	}

	// Re-read rather than echo the context copy so the response
	// reflects the current record.
	fresh, err := h.svc.GetProfile(r.Context(), u.ID)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	response.OK(w, dto.ProfileData{User: dto.NewUserView(fresh)})
}

// Update handles PUT /users/v1/profile.
func (h *Account) Update(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, domain.ErrTokenMissing())
		return
	}

	var req dto.UpdateRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	updated, err := h.svc.Update(r.Context(), u.ID, req.ToUserUpdate())
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Str("user_id", updated.ID).
		Msg("user_updated")

	response.OK(w, dto.ProfileData{User: dto.NewUserView(updated)})
}

// Delete handles DELETE /users/v1/profile.
func (h *Account) Delete(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, domain.ErrTokenMissing())
		return
	}

	if err := h.svc.Delete(r.Context(), u.ID); err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Str("user_id", u.ID).
		Msg("user_deleted")

	response.OK(w, dto.MessageData{Message: "user deleted"})
}

// Logout handles POST /users/v1/logout.
func (h *Account) Logout(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, domain.ErrTokenMissing())
		return
	}

	if err := h.svc.Logout(r.Context(), u.ID); err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Str("user_id", u.ID).
		Msg("user_logged_out")

	response.OK(w, dto.MessageData{Message: "logged out"})
}
