package ratelimit

import (
	"sync"
	"time"
)

// entry хранит счётчик фиксированного окна для пары политика+идентичность.
type entry struct {
	count int
	start time.Time
}

// Limiter потокобезопасный лимитер запросов по алгоритму fixed window.
// Состояние живёт только в памяти процесса и не разделяется между инстансами.
type Limiter struct {
	mu      sync.Mutex
	entries map[string]*entry
	now     func() time.Time
}

func NewLimiter() *Limiter {
	return &Limiter{
		entries: make(map[string]*entry),
		now:     time.Now,
	}
}

// Allow регистрирует запрос от identity по политике policy и решает, пропускать ли его.
// Счётчик инкрементируется всегда, в том числе для отклонённых запросов.
// Истёкшие окна сбрасываются лениво при обращении, фоновой очистки нет.
func (l *Limiter) Allow(policy Policy, identity string) bool {
	key := policy.Name + ":" + identity

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	e, ok := l.entries[key]
	if !ok || now.Sub(e.start) >= policy.Window {
		e = &entry{start: now}
		l.entries[key] = e
	}

	e.count++
	return e.count <= policy.Limit
}
