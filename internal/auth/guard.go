package auth

import (
	"crypto/subtle"
	"errors"
)

var ErrUnauthorized = errors.New("unauthorized")

// Guard проверяет общий секрет, который клиент передаёт в теле запроса.
type Guard struct {
	secret string
}

func NewGuard(secret string) *Guard {
	return &Guard{secret: secret}
}

// Verify сравнивает секрет клиента с настроенным.
// Если секрет на сервере не задан, все запросы отклоняются (fail closed).
// Сравнение за постоянное время, чтобы не утекала длина совпавшего префикса.
func (g *Guard) Verify(secret string) error {
	if g.secret == "" {
		return ErrUnauthorized
	}
	if subtle.ConstantTimeCompare([]byte(g.secret), []byte(secret)) != 1 {
		return ErrUnauthorized
	}
	return nil
}
