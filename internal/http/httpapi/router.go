package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"scriptoria/internal/http/handlers"
	"scriptoria/internal/infra"
	"scriptoria/internal/middleware"
)

// NewRouter assembles the route table and middleware chain.
func NewRouter(app *handlers.App, cfg *infra.Config, logger infra.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.CORS(cfg.AllowedOrigins),
		middleware.Logger(logger),
	)

	r.Get("/v1/healthz", app.Health)

	r.Route("/api", func(r chi.Router) {
		r.Use(
			middleware.Session,
			middleware.RateLimit(cfg.RateLimitPerMin, time.Minute),
		)

		r.Post("/user", app.SetUser)
		r.Get("/user", app.GetUser)

		r.Post("/generate", app.Generate)
		r.Get("/results", app.Results)

		r.Post("/shot-image", app.ShotImage)

		r.Post("/export/{kind}/{format}", app.Export)
	})

	return r
}
