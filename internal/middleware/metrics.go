package middleware

import (
	"net/http"

	"nanogen/internal/metrics"
)

// Metrics считает обработанные запросы по пути и статусу.
func Metrics(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := &responseWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(ww, r)
			if r.URL.Path == "/metrics" {
				return
			}
			m.ObserveRequest(r.URL.Path, ww.status)
		})
	}
}
