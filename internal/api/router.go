package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/brainly-app/brainly/docs/swagger"
	"github.com/brainly-app/brainly/internal/auth"
	"github.com/brainly-app/brainly/internal/store"
)

// Deps holds all dependencies required to build the API router.
type Deps struct {
	BearerAuth   *auth.BearerTokenMiddleware
	Tokens       *auth.Tokens
	UserStore    *store.UserStore
	ContentStore *store.ContentStore
	ShareStore   *store.ShareStore
}

// NewRouter assembles the full HTTP surface: standard middleware, the
// Prometheus endpoint, Swagger UI, and the /api/v1 sub-router.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/api/docs/*", httpSwagger.WrapHandler)
	r.Mount("/api/v1", NewAPIRouter(deps))

	return r
}

// NewAPIRouter creates the chi sub-router for /api/v1. All routes return
// application/json. Account routes and the shared read are public; the
// content and sharing-toggle routes sit behind bearer authentication. The
// shared read resolves identity through the hash instead of the middleware.
func NewAPIRouter(deps Deps) chi.Router {
	r := chi.NewRouter()

	r.Use(jsonContentType)

	registerUserRoutes(r, deps.UserStore, deps.Tokens)
	registerSharedReadRoute(r, deps.ShareStore, deps.ContentStore, deps.UserStore)

	r.Group(func(r chi.Router) {
		r.Use(deps.BearerAuth.Authenticate)
		registerContentRoutes(r, deps.ContentStore)
		registerShareToggleRoute(r, deps.ShareStore, deps.ContentStore, deps.UserStore)
	})

	return r
}

// jsonContentType is a middleware that sets Content-Type: application/json
// on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}
