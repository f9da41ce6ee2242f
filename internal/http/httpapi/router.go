package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/EdwinBikes/videos-con-IA/internal/http/handlers"
	"github.com/EdwinBikes/videos-con-IA/internal/middleware"
)

// NewRouter wires the middleware stack and every route of the service.
func NewRouter(app *handlers.App) http.Handler {
	r := chi.NewRouter()

	rateLimit := 30
	locale := "en"
	if app.Config != nil {
		if app.Config.RateLimitPerMin > 0 {
			rateLimit = app.Config.RateLimitPerMin
		}
		if app.Config.DefaultLocale != "" {
			locale = app.Config.DefaultLocale
		}
	}

	r.Use(
		chimw.RealIP,
		chimw.Recoverer,
		middleware.RequestID,
		middleware.Logger(app.Logger),
		middleware.I18N(locale),
	)

	r.Get("/", app.Index)
	r.Get("/healthz", app.Health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/presets", app.Presets)
		r.Get("/status", app.Status)
		r.Route("/results/{id}", func(r chi.Router) {
			r.Get("/download", app.DownloadResult)
			r.Get("/archive", app.ArchiveResult)
		})
		r.With(middleware.RateLimit(rateLimit, time.Minute)).
			Post("/generate", app.Generate)
	})

	return r
}
