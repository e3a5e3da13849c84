package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/accountkit/user-service/internal/pkg/reqctx"
)

const HeaderXRequestID = "X-Request-Id"

// RequestID honors an incoming X-Request-Id or assigns a fresh one, and
// echoes it on the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(HeaderXRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}

		w.Header().Set(HeaderXRequestID, reqID)

		next.ServeHTTP(w, r.WithContext(reqctx.WithRequestID(r.Context(), reqID)))
	})
}
