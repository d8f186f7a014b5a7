package ratelimit

import (
	"net/http"
	"strings"
)

// ClientIdentity возвращает ключ клиента для лимитера.
// Порядок: первый адрес из X-Forwarded-For, затем X-Real-IP, затем адрес соединения.
// Заголовки не валидируются: за прокси им доверяем как есть.
func ClientIdentity(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if addr := strings.TrimSpace(first); addr != "" {
			return addr
		}
	}
	if realIP := strings.TrimSpace(r.Header.Get("X-Real-IP")); realIP != "" {
		return realIP
	}
	return r.RemoteAddr
}
