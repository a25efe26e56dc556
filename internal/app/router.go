package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/meridian-pos/meridian-pos/internal/auth"
	"github.com/meridian-pos/meridian-pos/internal/observability"
	"github.com/meridian-pos/meridian-pos/internal/products"
	"github.com/meridian-pos/meridian-pos/internal/reports"
	"github.com/meridian-pos/meridian-pos/internal/sales"
	"github.com/meridian-pos/meridian-pos/internal/shifts"
	"github.com/meridian-pos/meridian-pos/internal/zatca"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger          *slog.Logger
	Config          *Config
	Tokens          *auth.TokenManager
	AuthHandler     *auth.Handler
	SalesHandler    *sales.Handler
	ProductsHandler *products.Handler
	ShiftsHandler   *shifts.Handler
	ReportsHandler  *reports.Handler
	ZatcaHandler    *zatca.Handler
	Metrics         *observability.Metrics
}

// NewRouter constructs the chi.Router with Meridian defaults. Everything
// under /api except /api/login requires a bearer token.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  params.Logger,
		Config:  params.Config,
		Metrics: params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		params.AuthHandler.MountRoutes(r)

		r.Group(func(r chi.Router) {
			r.Use(params.Tokens.RequireAuth)
			params.SalesHandler.MountRoutes(r)
			params.ProductsHandler.MountRoutes(r)
			params.ShiftsHandler.MountRoutes(r)
			params.ReportsHandler.MountRoutes(r)
			params.ZatcaHandler.MountRoutes(r)
		})
	})

	return r
}
