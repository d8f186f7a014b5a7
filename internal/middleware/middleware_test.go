package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"log/slog"
	"os"
)

func TestRecoverWritesDetailEnvelope(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	handler := Recover(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest("GET", "/generate", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"detail"`) {
		t.Fatalf("expected detail envelope, got %s", rr.Body.String())
	}
	// Текст паники не должен утекать клиенту.
	if strings.Contains(rr.Body.String(), "boom") {
		t.Fatalf("panic value leaked to response: %s", rr.Body.String())
	}
}

func TestRequestIDKeepsValidClientID(t *testing.T) {
	clientID := uuid.NewString()
	var seen string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get(headerRequestID)
	}))

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(headerRequestID, clientID)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if seen != clientID {
		t.Fatalf("expected client request id to be kept, got %q", seen)
	}
	if rr.Header().Get(headerRequestID) != clientID {
		t.Fatalf("expected response header %q, got %q", clientID, rr.Header().Get(headerRequestID))
	}
}

func TestRequestIDReplacesInvalidClientID(t *testing.T) {
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(headerRequestID, "not-a-uuid\n{}")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	got := rr.Header().Get(headerRequestID)
	if _, err := uuid.Parse(got); err != nil {
		t.Fatalf("expected a generated uuid, got %q", got)
	}
}
