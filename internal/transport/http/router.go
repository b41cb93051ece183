// Package httptransport assembles the chi router: middleware stack, public
// auth endpoints, the bearer-gated admin surface, and operational routes.
package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	adminhandler "admingate/internal/admin/handler"
	adminmetrics "admingate/internal/admin/metrics"
	"admingate/internal/platform/health"
	"admingate/internal/platform/metrics"
	"admingate/internal/platform/middleware"
)

// Deps carries everything the router mounts.
type Deps struct {
	Admin       *adminhandler.Handler
	Verifier    middleware.TokenVerifier
	Health      *health.Handler
	HTTPMetrics *metrics.HTTP
	AuthMetrics *adminmetrics.Metrics
	CORSOrigins []string
	Logger      *slog.Logger
}

// NewRouter wires all endpoints with middleware.
//
// The token gate is applied as route-group middleware rather than a global
// filter with a path allowlist: everything under the protected group
// requires a bearer token, and the /auth endpoints plus health and metrics
// never see it.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(d.Logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(d.Logger))
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.ContentTypeJSON)
	if d.HTTPMetrics != nil {
		r.Use(d.HTTPMetrics.Instrument)
	}
	r.Use(cors.Handler(corsOptions(d.CORSOrigins)))

	// Public: registration and login.
	d.Admin.Register(r)

	// Bearer-gated admin surface.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(d.Verifier, d.Logger, d.AuthMetrics))
		d.Admin.RegisterProtected(r)
	})

	// Operational routes.
	d.Health.Register(r)
	r.Get("/metrics", metrics.Handler().ServeHTTP)

	return r
}

// corsOptions allows every method with credentials and a one-hour preflight
// cache. Credentialed responses cannot carry a literal "*" origin, so a "*"
// configuration reflects the request origin instead.
func corsOptions(origins []string) cors.Options {
	opts := cors.Options{
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           3600,
	}

	allowAll := false
	for _, o := range origins {
		if o == "*" {
			allowAll = true
			break
		}
	}
	if allowAll {
		opts.AllowOriginFunc = func(r *http.Request, origin string) bool {
			return true
		}
	} else {
		opts.AllowedOrigins = origins
	}
	return opts
}
