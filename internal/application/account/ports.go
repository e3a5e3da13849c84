package account

import (
	"context"
	"time"

	"github.com/accountkit/user-service/internal/domain"
)

/*
UserRepo
--------
Persistence port for user accounts.
Only describes WHAT the account service needs, not HOW it's stored.
Every method is an atomic single-record operation; that atomicity is the
only consistency boundary for concurrent writes to the same account.
*/
type UserRepo interface {
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	GetByID(ctx context.Context, id string) (domain.User, error)
	Create(ctx context.Context, u domain.User) (domain.User, error)

	// UpdateFields applies a partial merge; nil fields are untouched.
	UpdateFields(ctx context.Context, id string, upd domain.UserUpdate) (domain.User, error)

	// Single-session token bookkeeping.
	UpdateToken(ctx context.Context, id, token string) error
	ClearToken(ctx context.Context, id string) error

	Delete(ctx context.Context, id string) error
}

/*
PasswordHasher
--------------
Abstracts bcrypt. Compare returns nil on match; a mismatch is a valid
negative result, not a failure.
*/
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error
}

/*
TokenSigner
-----------
Issues and verifies bearer tokens (JWT).
Used by the service at login and by the auth middleware on every
protected request.
*/
type TokenClaims struct {
	UserID string
	Name   string
	Email  string
	Exp    time.Time
}

type TokenSigner interface {
	IssueToken(u domain.User, ttl time.Duration) (string, error)
	VerifyToken(token string) (TokenClaims, error)
}

/*
EventPublisher
--------------
Publishes account lifecycle events. Delivery is best-effort: a publish
failure never fails the user-facing operation.
*/
type EventPublisher interface {
	PublishUserRegistered(ctx context.Context, evt UserRegisteredEvent) error
	PublishUserDeleted(ctx context.Context, evt UserDeletedEvent) error
}

type UserRegisteredEvent struct {
	UserID string
	Email  string
	Name   string
}

type UserDeletedEvent struct {
	UserID string
	Email  string
}
