package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/accountkit/user-service/internal/transport/http/middleware"
	"github.com/accountkit/user-service/internal/transport/http/response"
)

// AccountHandlers is the route surface the account handler exposes.
type AccountHandlers interface {
	Register(http.ResponseWriter, *http.Request)
	Login(http.ResponseWriter, *http.Request)
	Profile(http.ResponseWriter, *http.Request)
	Update(http.ResponseWriter, *http.Request)
	Delete(http.ResponseWriter, *http.Request)
	Logout(http.ResponseWriter, *http.Request)
}

type HealthHandlers interface {
	Live(http.ResponseWriter, *http.Request)
	Ready(http.ResponseWriter, *http.Request)
}

// Deps carries everything the router mounts. RegisterLimit and
// LoginLimit may be no-op middlewares when no limiter is configured.
type Deps struct {
	Account AccountHandlers
	Health  HealthHandlers

	AuthMW        func(http.Handler) http.Handler
	RegisterLimit func(http.Handler) http.Handler
	LoginLimit    func(http.Handler) http.Handler
}

func New(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(chimw.Recoverer)

	r.Get("/healthz", d.Health.Live)
	r.Get("/readyz", d.Health.Ready)

	r.Route("/users/v1", func(r chi.Router) {
		r.With(passthrough(d.RegisterLimit)).Post("/register", d.Account.Register)
		r.With(passthrough(d.LoginLimit)).Post("/login", d.Account.Login)

		r.Group(func(r chi.Router) {
			r.Use(d.AuthMW)

			r.Get("/profile", d.Account.Profile)
			r.Put("/profile", d.Account.Update)
			r.Delete("/profile", d.Account.Delete)
			r.Post("/logout", d.Account.Logout)
		})
	})

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		response.WriteJSON(w, http.StatusNotFound, response.ErrorBody{
			Error: response.ErrorPayload{Code: "not_found", Message: "route not found"},
		})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		response.WriteJSON(w, http.StatusMethodNotAllowed, response.ErrorBody{
			Error: response.ErrorPayload{Code: "method_not_allowed", Message: "method not allowed"},
		})
	})

	return r
}

func passthrough(mw func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	if mw == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	return mw
}
