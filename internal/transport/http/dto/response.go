package dto

import (
	"github.com/accountkit/user-service/internal/application/account"
	"github.com/accountkit/user-service/internal/domain"
)

// UserView is the client-facing projection of an account.
// The password hash never appears here.
type UserView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func NewUserView(u domain.User) UserView {
	return UserView{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

type TokenView struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

func NewTokenView(t account.AuthToken) TokenView {
	return TokenView{
		AccessToken: t.AccessToken,
		TokenType:   t.TokenType,
		ExpiresIn:   t.ExpiresIn,
	}
}

type RegisterData struct {
	User UserView `json:"user"`
}

type AuthData struct {
	User  UserView  `json:"user"`
	Token TokenView `json:"token"`
}

type ProfileData struct {
	User UserView `json:"user"`
}

type MessageData struct {
	Message string `json:"message"`
}
