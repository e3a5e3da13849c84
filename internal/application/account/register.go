package account

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/accountkit/user-service/internal/domain"
)

// Register creates a new account. The email must not be present in the
// store; the repo surfaces a duplicate as a conflict error.
// The returned user carries the hash internally; response mapping must
// never expose it.
func (s *Service) Register(ctx context.Context, name, email, password string) (domain.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if name == "" {
		return domain.User{}, domain.ErrMissingField("name")
	}
	if email == "" {
		return domain.User{}, domain.ErrMissingField("email")
	}
	if password == "" {
		return domain.User{}, domain.ErrMissingField("password")
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return domain.User{}, domain.ErrHashFailed(err)
	}

	u := domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}

	created, err := s.users.Create(ctx, u)
	if err != nil {
		return domain.User{}, err
	}

	// Best-effort: a broker outage must not fail registration.
	if s.pub != nil {
		_ = s.pub.PublishUserRegistered(ctx, UserRegisteredEvent{
			UserID: created.ID,
			Email:  created.Email,
			Name:   created.Name,
		})
	}

	return created, nil
}
