package account

import (
	"context"
	"strings"

	"github.com/accountkit/user-service/internal/domain"
)

// Update applies a partial merge of name/email onto the existing record.
// Email uniqueness is NOT re-checked here; see the repository tests that
// pin that behavior.
func (s *Service) Update(ctx context.Context, userID string, upd domain.UserUpdate) (domain.User, error) {
	if upd.Empty() {
		return domain.User{}, domain.ErrEmptyUpdate()
	}

	if upd.Name != nil {
		n := strings.TrimSpace(*upd.Name)
		if n == "" {
			return domain.User{}, domain.ErrInvalidField("name", "empty")
		}
		upd.Name = &n
	}
	if upd.Email != nil {
		e := strings.TrimSpace(*upd.Email)
		if e == "" {
			return domain.User{}, domain.ErrInvalidField("email", "empty")
		}
		upd.Email = &e
	}

	return s.users.UpdateFields(ctx, userID, upd)
}
