package account

import (
	"context"
)

// Delete permanently removes the account. This is the only hard deletion
// in the system.
func (s *Service) Delete(ctx context.Context, userID string) error {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.users.Delete(ctx, userID); err != nil {
		return err
	}

	if s.pub != nil {
		_ = s.pub.PublishUserDeleted(ctx, UserDeletedEvent{
			UserID: u.ID,
			Email:  u.Email,
		})
	}
	return nil
}
