package httpserver

import (
	"net/http"

	"nanogen/internal/middleware"

	"log/slog"

	"github.com/go-chi/chi/v5"
)

type RouterDeps struct {
	Logger          *slog.Logger
	GenerateHandler http.Handler
	MetricsHandler  http.Handler
	// Лимиты проставляются по маршрутам: у liveness и генерации независимые квоты.
	HealthLimit    func(http.Handler) http.Handler
	GenerateLimit  func(http.Handler) http.Handler
	RequestMetrics func(http.Handler) http.Handler
}

// NewRouter собирает chi-роутер с общими middleware.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recover(deps.Logger))
	r.Use(middleware.Logging(deps.Logger))
	if deps.RequestMetrics != nil {
		r.Use(deps.RequestMetrics)
	}

	r.With(deps.HealthLimit).Get("/", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, map[string]string{"message": "nanogen relay is running!"})
	})

	r.With(deps.GenerateLimit).Post("/generate", deps.GenerateHandler.ServeHTTP)

	if deps.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", deps.MetricsHandler)
	}

	return r
}
