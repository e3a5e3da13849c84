package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/accountkit/user-service/internal/domain"
	"github.com/accountkit/user-service/internal/logger"
)

type SeederHasher interface {
	Hash(password string) (string, error)
}

type SeederRepo interface {
	Create(ctx context.Context, u domain.User) (domain.User, error)
}

// SeedUsers inserts a handful of known dev accounts. Duplicate emails
// are ignored so restarts are safe. Dev only, never called in prod.
func SeedUsers(ctx context.Context, repo SeederRepo, hasher SeederHasher) {
	seeds := []struct {
		Name  string
		Email string
		Pass  string
	}{
		{Name: "Dev User", Email: "user@example.com", Pass: "UserPassword1!"},
		{Name: "Second User", Email: "second@example.com", Pass: "SecondPassword1!"},
	}

	for _, s := range seeds {
		hash, err := hasher.Hash(s.Pass)
		if err != nil {
			logger.Logger.Warn().Err(err).Str("email", s.Email).Msg("seed hash failed")
			continue
		}

		u := domain.User{
			ID:           uuid.NewString(),
			Name:         s.Name,
			Email:        s.Email,
			PasswordHash: hash,
		}

		if _, err := repo.Create(ctx, u); err != nil {
			// duplicate on restart
			continue
		}
	}

	logger.Logger.Info().Msg("dev users seeded")
}
