package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/accountkit/user-service/internal/transport/http/response"
)

// Health serves liveness and readiness probes.
type Health struct {
	db *sql.DB
}

func NewHealth(db *sql.DB) *Health {
	return &Health{db: db}
}

// Live handles GET /healthz. It answers as long as the process serves.
func (h *Health) Live(w http.ResponseWriter, r *http.Request) {
	response.OK(w, map[string]string{"status": "ok"})
}

// Ready handles GET /readyz. It checks the database when one is wired.
func (h *Health) Ready(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := h.db.PingContext(ctx); err != nil {
			response.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "unavailable",
			})
			return
		}
	}

	response.OK(w, map[string]string{"status": "ready"})
}
