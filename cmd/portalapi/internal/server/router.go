package server

import (
	"encoding/json"
	"net/http"

	"connectrpc.com/connect"
	"github.com/casbin/casbin/v2"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/aaalawyers/trainingportal/cmd/portalapi/internal/services/catalog"
	"github.com/aaalawyers/trainingportal/pkg/api/portal/v1/portalv1connect"
)

// RouterOptions controls the construction of the portal HTTP router.
// The zero value serves only /health.
type RouterOptions struct {
	Service             *catalog.Service
	Enforcer            casbin.IEnforcer
	CORSOptions         *cors.Options
	Middleware          []func(http.Handler) http.Handler
	ConnectInterceptors []connect.Interceptor
	HealthHandler       http.HandlerFunc
	ExtraRoutes         func(chi.Router)
}

// DefaultCORSOptions returns the development CORS policy for browser clients.
func DefaultCORSOptions() cors.Options {
	return cors.Options{
		AllowedOrigins: []string{
			"http://localhost:5173",
			"http://127.0.0.1:5173",
		},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{
			"Content-Type",
			"Connect-Protocol-Version",
			"Connect-Timeout-Ms",
			"Connect-Protocol",
			"Connect-Content-Encoding",
			"X-User-Agent",
			"Authorization",
		},
		ExposedHeaders: []string{
			"Connect-Protocol-Version",
			"Connect-Content-Encoding",
			"Connect-Protocol",
		},
		AllowCredentials: true,
		MaxAge:           300,
	}
}

func defaultHealthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// NewRouter assembles a chi.Router with shared middleware, the CORS policy and
// the portal handlers mounted.
func NewRouter(opts RouterOptions) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	corsCfg := DefaultCORSOptions()
	if opts.CORSOptions != nil {
		corsCfg = *opts.CORSOptions
	}
	r.Use(cors.Handler(corsCfg))

	for _, mw := range opts.Middleware {
		if mw != nil {
			r.Use(mw)
		}
	}

	if opts.Service != nil {
		MountConnectHandlers(r, opts)
	}

	healthHandler := opts.HealthHandler
	if healthHandler == nil {
		healthHandler = defaultHealthHandler
	}
	r.Get("/health", healthHandler)

	if opts.ExtraRoutes != nil {
		opts.ExtraRoutes(r)
	}

	return r
}

// NewH2CHandler wraps the router with an h2c server so Connect clients can
// speak HTTP/2 over cleartext during development.
func NewH2CHandler(opts RouterOptions) http.Handler {
	return h2c.NewHandler(NewRouter(opts), &http2.Server{})
}

// MountConnectHandlers mounts the portal Connect RPC handlers on r.
func MountConnectHandlers(r chi.Router, opts RouterOptions) {
	path, handler := portalv1connect.NewPortalServiceHandler(
		NewPortalServiceHandler(opts.Service, opts.Enforcer),
		connect.WithInterceptors(opts.ConnectInterceptors...),
	)
	r.Mount(path, handler)
}
