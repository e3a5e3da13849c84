package account

import (
	"time"

	"github.com/accountkit/user-service/internal/domain"
)

type Service struct {
	users  UserRepo
	hasher PasswordHasher
	signer TokenSigner
	pub    EventPublisher

	tokenTTL time.Duration
}

type Config struct {
	// TokenTTL is the bearer token lifetime. Defaults to one hour,
	// the contract callers rely on.
	TokenTTL time.Duration
}

func NewService(users UserRepo, hasher PasswordHasher, signer TokenSigner, pub EventPublisher, cfg Config) *Service {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Service{
		users:    users,
		hasher:   hasher,
		signer:   signer,
		pub:      pub,
		tokenTTL: ttl,
	}
}

// AuthToken is the token output for handlers/DTO mapping.
type AuthToken struct {
	AccessToken string
	TokenType   string // "Bearer"
	ExpiresIn   int64  // seconds
}

type LoginResult struct {
	User  domain.User
	Token AuthToken
}

// TokenTTL exposes the configured token lifetime for wiring/tests.
func (s *Service) TokenTTL() time.Duration { return s.tokenTTL }
