package account

import (
	"context"
	"errors"

	"github.com/accountkit/user-service/internal/domain"
)

// Logout clears the stored token reference on the record. The issued
// token string itself stays cryptographically valid until it expires;
// logout is a stored-reference invalidation, not a revocation.
func (s *Service) Logout(ctx context.Context, userID string) error {
	err := s.users.ClearToken(ctx, userID)
	if err == nil {
		return nil
	}

	// A session-bound operation on a vanished record is an auth failure,
	// not a 404: the caller presented a credential, not an id.
	var de *domain.Error
	if errors.As(err, &de) && de.Kind == domain.KindNotFound {
		return domain.ErrSessionUserMissing()
	}
	return err
}
