package api

import (
	_ "embed"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-openapi/runtime/middleware"

	"github.com/tcallow/gatehouse/account"
)

// API holds the dependencies needed by the REST handlers.
type API struct {
	accounts account.Store
	sessions SessionStore
	audit    *auditLogger

	cookieName      string
	sessionLifetime time.Duration
}

//go:embed openapi.yaml
var openapiSpec []byte

// Option configures the API instance.
type Option func(*API)

// WithLogger sets the structured logger for audit events.
// If not set, a default JSON logger writing to stderr is used.
func WithLogger(logger *slog.Logger) Option {
	return func(a *API) {
		a.audit = newAuditLogger(logger)
	}
}

// WithSessionStore replaces the default in-memory session store.
func WithSessionStore(store SessionStore) Option {
	return func(a *API) {
		a.sessions = store
	}
}

// WithCookieName overrides the session cookie name.
func WithCookieName(name string) Option {
	return func(a *API) {
		a.cookieName = name
	}
}

// WithSessionLifetime overrides the absolute session lifetime.
func WithSessionLifetime(d time.Duration) Option {
	return func(a *API) {
		a.sessionLifetime = d
	}
}

// New creates a new API instance backed by the given account store.
func New(accounts account.Store, opts ...Option) *API {
	a := &API{
		accounts:        accounts,
		cookieName:      defaultCookieName,
		sessionLifetime: defaultSessionLifetime,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.sessions == nil {
		a.sessions = NewMemorySessionStore(defaultIdleTimeout)
	}
	if a.audit == nil {
		a.audit = newAuditLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil)))
	}
	return a
}

// Router returns a chi.Router with all API routes mounted.
func (a *API) Router() chi.Router {
	r := chi.NewRouter()

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(openapiSpec)
	})

	r.Handle("/docs*", middleware.SwaggerUI(middleware.SwaggerUIOpts{
		SpecURL: "/api/v1/openapi.yaml",
		Path:    "api/v1/docs",
	}, nil))

	r.Handle("/redoc*", middleware.Redoc(middleware.RedocOpts{
		SpecURL: "/api/v1/openapi.yaml",
		Path:    "api/v1/redoc",
	}, nil))

	// Signup and login are guest-only; logout and profile need a live
	// session. Routes and methods follow the original service contract.
	r.With(a.RequireGuest).Post("/signup", a.Signup)
	r.With(a.RequireGuest).Post("/login", a.Login)
	r.With(a.RequireAuth).Get("/logout", a.Logout)
	r.With(a.RequireAuth).Get("/check-auth", a.Profile)

	return r
}
