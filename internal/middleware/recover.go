package middleware

import (
	"log/slog"
	"net/http"
)

// Recover перехватывает panic и возвращает 500, не падая процессом.
// Тело ответа повторяет общий формат ошибок сервиса; текст паники наружу не уходит.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("panic recovered", slog.Any("error", rec))
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_, _ = w.Write([]byte(`{"detail":"Internal server error"}`))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
