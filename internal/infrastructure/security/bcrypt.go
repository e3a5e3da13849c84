package security

import (
	"github.com/accountkit/user-service/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher hashes passwords with a random per-call salt embedded in
// the output. The cost is the tunable work factor.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	if cost <= 0 {
		cost = 12
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", domain.ErrHashFailed(err)
	}
	return string(b), nil
}

// Compare returns nil on match. A wrong password is a valid negative
// result; callers map it to invalid-credentials, never to an internal
// error.
func (h *BcryptHasher) Compare(hash string, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
