package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/commonshub/signup/pkg/ratelimit"
)

// CMSClient is the full CMS surface the router needs; the concrete
// Directus client satisfies it.
type CMSClient interface {
	MemberStore
	Authenticator
}

// NewRouter builds the service's HTTP surface. The submission endpoints
// share one limiter so a client's signup attempts and login attempts
// draw from separate per-route budgets.
func NewRouter(
	cms CMSClient,
	provider ProfileProvider,
	signup *SignupHandler,
	limiter ratelimit.Limiter,
	allowedOrigins []string,
	log *slog.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-ID", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	login := NewLoginHandler(cms, log)
	oauth := NewOAuthHandler(provider, log)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(ratelimit.Middleware(limiter, ratelimit.Composite(
				ratelimit.ByRoute("signup"),
				ratelimit.ByClientIP(),
			), log))
			r.Post("/signup", signup.ServeHTTP)
		})

		r.Group(func(r chi.Router) {
			r.Use(ratelimit.Middleware(limiter, ratelimit.Composite(
				ratelimit.ByRoute("login"),
				ratelimit.ByClientIP(),
			), log))
			r.Post("/login", login.ServeHTTP)
		})

		r.Get("/auth/github", oauth.Redirect)
		r.Get("/auth/github/callback", oauth.Callback)
	})

	return r
}
