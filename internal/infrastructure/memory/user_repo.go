package memory

import (
	"context"
	"sync"

	"github.com/accountkit/user-service/internal/domain"
)

// UserRepo is an in-memory implementation of the repository port,
// used by the transport and application test suites. Each method is
// atomic under the mutex, matching the single-record atomicity the
// service relies on.
type UserRepo struct {
	mu      sync.RWMutex
	byID    map[string]domain.User
	byEmail map[string]string // email -> userID
}

func NewUserRepo() *UserRepo {
	return &UserRepo{
		byID:    make(map[string]domain.User),
		byEmail: make(map[string]string),
	}
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	return r.byID[id], nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	return u, nil
}

func (r *UserRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[u.Email]; exists {
		return domain.User{}, domain.ErrEmailAlreadyExists()
	}

	// ID should already be set by the service; be defensive.
	if u.ID == "" {
		return domain.User{}, domain.ErrInternal(nil)
	}

	r.byID[u.ID] = u
	r.byEmail[u.Email] = u.ID
	return u, nil
}

// UpdateFields applies a whole-record overwrite of the merged result.
// Note: the email index is moved, but no uniqueness check happens here;
// that mirrors the store contract the service documents.
func (r *UserRepo) UpdateFields(ctx context.Context, id string, upd domain.UserUpdate) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Email != nil {
		delete(r.byEmail, u.Email)
		u.Email = *upd.Email
		r.byEmail[u.Email] = id
	}
	r.byID[id] = u
	return u, nil
}

func (r *UserRepo) UpdateToken(ctx context.Context, id, token string) error {
	return r.setToken(id, token)
}

func (r *UserRepo) ClearToken(ctx context.Context, id string) error {
	return r.setToken(id, "")
}

func (r *UserRepo) setToken(id, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return domain.ErrUserNotFound()
	}
	u.CurrentToken = token
	r.byID[id] = u
	return nil
}

func (r *UserRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return domain.ErrUserNotFound()
	}
	delete(r.byID, id)
	delete(r.byEmail, u.Email)
	return nil
}
