package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/accountkit/user-service/internal/application/account"
	"github.com/accountkit/user-service/internal/domain"
)

type TokenVerifier interface {
	VerifyToken(token string) (account.TokenClaims, error)
}

// UserLookup is the minimal store surface the middleware needs to
// resolve the token subject into a full account record.
type UserLookup interface {
	GetByID(ctx context.Context, id string) (domain.User, error)
}

type WriteErrFunc func(http.ResponseWriter, *http.Request, error)

// Auth verifies Authorization: Bearer <token>, resolves the subject
// against the user store, and injects the full account into the request
// context. Verification has no side effects and never extends token
// life. Each request runs on its own goroutine with no shared mutable
// state here.
func Auth(verifier TokenVerifier, users UserLookup, writeErr WriteErrFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if h == "" {
				writeErr(w, r, domain.ErrTokenMissing())
				return
			}

			parts := strings.SplitN(h, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				writeErr(w, r, domain.ErrTokenInvalid())
				return
			}

			raw := strings.TrimSpace(parts[1])
			if raw == "" {
				writeErr(w, r, domain.ErrTokenInvalid())
				return
			}

			claims, err := verifier.VerifyToken(raw)
			if err != nil {
				writeErr(w, r, err)
				return
			}

			if strings.TrimSpace(claims.UserID) == "" {
				writeErr(w, r, domain.ErrTokenInvalid())
				return
			}

			// A valid signature over a deleted account is still an auth
			// failure: the subject no longer exists.
			u, err := users.GetByID(r.Context(), claims.UserID)
			if err != nil {
				var de *domain.Error
				if errors.As(err, &de) && de.Kind == domain.KindNotFound {
					writeErr(w, r, domain.ErrTokenInvalid())
					return
				}
				writeErr(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), u)))
		})
	}
}
