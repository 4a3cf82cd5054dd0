package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/hirewire/hirewire/internal/auth/service"
	"github.com/hirewire/hirewire/internal/auth/store"
	"github.com/hirewire/hirewire/pkg/httpx"
	"github.com/hirewire/hirewire/pkg/jwtx"
	"github.com/hirewire/hirewire/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier  jwtx.Verifier
	startTime time.Time
	logger    *slog.Logger

	store       store.Store
	AuthService *service.AuthService
	UserService *service.UserService
}

func NewRouter(
	verifier jwtx.Verifier,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:       http.NewServeMux(),
		verifier:  verifier,
		startTime: time.Now(),
		store:     st,
		logger:    logger,
	}

	// Default middleware chain applied to every route.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerSystem()
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	registerHandler := &RegisterHandler{AuthService: r.AuthService}
	loginHandler := &LoginHandler{AuthService: r.AuthService}
	meHandler := &MeHandler{UserService: r.UserService}

	// Credential endpoints are the allow-list: no bearer token required,
	// but strictly rate limited per IP against brute force.
	r.Mux.Handle("POST /auth/register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("POST /auth/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// Everything else sits behind the bearer-token middleware; the token
	// alone proves authentication, no store round trip per request.
	r.Mux.Handle("GET /auth/me",
		httpx.Chain(meHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", &LivezHandler{StartTime: r.startTime})
	r.Mux.Handle("GET /readyz", &ReadyzHandler{Store: r.store})
}
