package account

import (
	"context"

	"github.com/accountkit/user-service/internal/domain"
)

// GetProfile fetches the account for an already-authenticated identity.
// The record may have been deleted since the token was issued, in which
// case the repo's not-found propagates as a 404.
func (s *Service) GetProfile(ctx context.Context, userID string) (domain.User, error) {
	return s.users.GetByID(ctx, userID)
}
