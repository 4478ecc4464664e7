package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"vin-dashboard/internal/api/handler"
	"vin-dashboard/internal/middleware"

	_ "vin-dashboard/docs" // swagger spec registration
)

// NewRouter wires the dashboard endpoints. Everything under /api/v1 except
// the login route requires a session token issued by POST /api/v1/login.
func NewRouter(h *handler.Handler) http.Handler {
	mux := chi.NewRouter()

	mux.Use(middleware.Logging)
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	mux.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	mux.Get("/swagger/*", httpSwagger.Handler())

	mux.Route("/api/v1", func(rt chi.Router) {
		rt.Post("/login", h.Login)

		rt.Group(func(priv chi.Router) {
			priv.Use(middleware.RequireSession(h.Sessions))

			priv.Get("/catalog/search", h.CatalogSearch)
			priv.Post("/catalog/reload", h.CatalogReload)

			priv.Get("/queries/summary", h.QuerySummary)
			priv.Get("/queries/export", h.QueryExport)
			priv.Get("/queries/organizations", h.Organizations)
			priv.Post("/queries/reload", h.QueriesReload)

			priv.Get("/history", h.History)
		})
	})

	return mux
}
