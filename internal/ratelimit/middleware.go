package ratelimit

import (
	"net/http"

	"nanogen/internal/httpserver"
	"nanogen/internal/metrics"
)

// Middleware отклоняет запросы сверх квоты политики до обработчика маршрута.
func Middleware(limiter *Limiter, policy Policy, m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow(policy, ClientIdentity(r)) {
				if m != nil {
					m.RateLimitDenied(policy.Name)
				}
				httpserver.WriteJSONError(w, http.StatusTooManyRequests, "Rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
