package account

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/accountkit/user-service/internal/domain"
)

/*
Fakes for ports
*/

type fakeUserRepo struct {
	mu sync.Mutex

	byID    map[string]domain.User
	byEmail map[string]domain.User

	// injected errors (if set, method returns error)
	getByIDErr    error
	getByEmailErr error
	createErr     error
	updateErr     error
	tokenErr      error
	deleteErr     error

	// recorded calls
	updatedTokens []struct{ id, token string }
	clearedIDs    []string
	deletedIDs    []string
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    map[string]domain.User{},
		byEmail: map[string]domain.User{},
	}
}

func (f *fakeUserRepo) put(u domain.User) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byID[u.ID] = u
	f.byEmail[u.Email] = u
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getByEmailErr != nil {
		return domain.User{}, f.getByEmailErr
	}
	u, ok := f.byEmail[email]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getByIDErr != nil {
		return domain.User{}, f.getByIDErr
	}
	u, ok := f.byID[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	return u, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return domain.User{}, f.createErr
	}
	if _, exists := f.byEmail[u.Email]; exists {
		return domain.User{}, domain.ErrEmailAlreadyExists()
	}
	f.byID[u.ID] = u
	f.byEmail[u.Email] = u
	return u, nil
}

func (f *fakeUserRepo) UpdateFields(ctx context.Context, id string, upd domain.UserUpdate) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return domain.User{}, f.updateErr
	}
	u, ok := f.byID[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Email != nil {
		delete(f.byEmail, u.Email)
		u.Email = *upd.Email
	}
	f.byID[id] = u
	f.byEmail[u.Email] = u
	return u, nil
}

func (f *fakeUserRepo) UpdateToken(ctx context.Context, id, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.tokenErr != nil {
		return f.tokenErr
	}
	u, ok := f.byID[id]
	if !ok {
		return domain.ErrUserNotFound()
	}
	u.CurrentToken = token
	f.byID[id] = u
	f.byEmail[u.Email] = u
	f.updatedTokens = append(f.updatedTokens, struct{ id, token string }{id, token})
	return nil
}

func (f *fakeUserRepo) ClearToken(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.tokenErr != nil {
		return f.tokenErr
	}
	u, ok := f.byID[id]
	if !ok {
		return domain.ErrUserNotFound()
	}
	u.CurrentToken = ""
	f.byID[id] = u
	f.byEmail[u.Email] = u
	f.clearedIDs = append(f.clearedIDs, id)
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	u, ok := f.byID[id]
	if !ok {
		return domain.ErrUserNotFound()
	}
	delete(f.byID, id)
	delete(f.byEmail, u.Email)
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

type fakeHasher struct {
	hashFn    func(pw string) (string, error)
	compareFn func(hash, pw string) error
}

func (f *fakeHasher) Hash(pw string) (string, error) {
	if f.hashFn != nil {
		return f.hashFn(pw)
	}
	return "hash:" + pw, nil
}

func (f *fakeHasher) Compare(hash, pw string) error {
	if f.compareFn != nil {
		return f.compareFn(hash, pw)
	}
	if hash != "hash:"+pw {
		return errors.New("mismatch")
	}
	return nil
}

type fakeSigner struct {
	issueFn  func(u domain.User, ttl time.Duration) (string, error)
	verifyFn func(token string) (TokenClaims, error)
	issued   int
}

func (f *fakeSigner) IssueToken(u domain.User, ttl time.Duration) (string, error) {
	f.issued++
	if f.issueFn != nil {
		return f.issueFn(u, ttl)
	}
	return fmt.Sprintf("tok-%s-%d", u.ID, f.issued), nil
}

func (f *fakeSigner) VerifyToken(token string) (TokenClaims, error) {
	if f.verifyFn != nil {
		return f.verifyFn(token)
	}
	return TokenClaims{}, errors.New("not implemented")
}

type fakePublisher struct {
	mu         sync.Mutex
	registered []UserRegisteredEvent
	deleted    []UserDeletedEvent
	err        error
}

func (f *fakePublisher) PublishUserRegistered(ctx context.Context, evt UserRegisteredEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.registered = append(f.registered, evt)
	return f.err
}

func (f *fakePublisher) PublishUserDeleted(ctx context.Context, evt UserDeletedEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, evt)
	return f.err
}

/*
Helpers
*/

func newSvcForTest(t *testing.T) (*Service, *fakeUserRepo, *fakeHasher, *fakeSigner, *fakePublisher) {
	t.Helper()

	users := newFakeUserRepo()
	hasher := &fakeHasher{}
	signer := &fakeSigner{}
	pub := &fakePublisher{}

	svc := NewService(users, hasher, signer, pub, Config{TokenTTL: time.Hour})
	return svc, users, hasher, signer, pub
}

func User(t *testing.T, id, name, email, hash string) domain.User {
	t.Helper()
	return domain.User{ID: id, Name: name, Email: email, PasswordHash: hash}
}

func UserUpdateOf(name, email *string) domain.UserUpdate {
	return domain.UserUpdate{Name: name, Email: email}
}

func requireDomainCode(t *testing.T, err error, code string) {
	t.Helper()
	if !domain.Is(err, code) {
		t.Fatalf("expected domain code %q, got %v", code, err)
	}
}
