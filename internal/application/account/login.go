package account

import (
	"context"
	"errors"
	"strings"

	"github.com/accountkit/user-service/internal/domain"
)

// Login authenticates a user and issues a bearer token.
// IMPORTANT: must not leak whether the email exists (avoid user
// enumeration) - unknown email and wrong password yield the same error.
func (s *Service) Login(ctx context.Context, email, password string) (LoginResult, error) {
	email = strings.TrimSpace(email)

	if email == "" || password == "" {
		return LoginResult{}, domain.ErrInvalidCredentials()
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		// Hide not-found behind invalid credentials; a store outage is
		// not a credential failure and must surface as one.
		var de *domain.Error
		if errors.As(err, &de) && de.Kind == domain.KindNotFound {
			return LoginResult{}, domain.ErrInvalidCredentials()
		}
		return LoginResult{}, err
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return LoginResult{}, domain.ErrInvalidCredentials()
	}

	token, err := s.signer.IssueToken(u, s.tokenTTL)
	if err != nil {
		return LoginResult{}, err
	}

	// Single-session marker: the new token overwrites whatever was stored.
	if err := s.users.UpdateToken(ctx, u.ID, token); err != nil {
		return LoginResult{}, err
	}
	u.CurrentToken = token

	return LoginResult{
		User: u,
		Token: AuthToken{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresIn:   int64(s.tokenTTL.Seconds()),
		},
	}, nil
}
