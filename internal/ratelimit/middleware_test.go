package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestMiddlewareDeniesOverQuota(t *testing.T) {
	limiter := NewLimiter()
	policy := Policy{Name: "generate", Limit: 1, Window: time.Minute}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := Middleware(limiter, policy, nil)(next)

	req := httptest.NewRequest("POST", "/generate", nil)
	req.Header.Set("X-Forwarded-For", "1.2.3.4")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("expected status 429, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Rate limit exceeded") {
		t.Fatalf("unexpected body: %s", rr.Body.String())
	}
}
