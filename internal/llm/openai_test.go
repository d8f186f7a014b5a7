package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"nanogen/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewOpenAIClient(config.OpenAIConfig{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Model:   "gpt-5-nano",
	}, server.Client(), nil)
}

func TestChatCompletionSendsOrderedMessages(t *testing.T) {
	var captured chatRequest
	var auth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
	})

	messages := []Message{
		{Role: "user", Content: "A"},
		{Role: "user", Content: "B"},
		{Role: "user", Content: "C"},
	}
	answer, err := client.ChatCompletion(context.Background(), "", messages)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer != "ok" {
		t.Fatalf("unexpected answer: %q", answer)
	}

	if auth != "Bearer test-key" {
		t.Fatalf("unexpected authorization header: %q", auth)
	}
	if captured.Model != "gpt-5-nano" {
		t.Fatalf("expected default model, got %q", captured.Model)
	}
	if len(captured.Messages) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(captured.Messages))
	}
	for i, want := range []string{"A", "B", "C"} {
		if captured.Messages[i].Role != "user" || captured.Messages[i].Content != want {
			t.Fatalf("message %d: got %+v", i, captured.Messages[i])
		}
	}
}

func TestChatCompletionItemSequenceContent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[{"message":{"content":[{"text":"Hi"},{"text":"there"}]}}]}`))
	})

	answer, err := client.ChatCompletion(context.Background(), "", []Message{{Role: "user", Content: "hi"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer != "Hi there" {
		t.Fatalf("unexpected answer: %q", answer)
	}
}

func TestChatCompletionNullContent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[{"message":{"content":null}}]}`))
	})

	answer, err := client.ChatCompletion(context.Background(), "", []Message{{Role: "user", Content: "hi"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer != "" {
		t.Fatalf("expected empty answer, got %q", answer)
	}
}

func TestChatCompletionUpstreamError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := client.ChatCompletion(context.Background(), "", []Message{{Role: "user", Content: "hi"}})
	if err == nil {
		t.Fatalf("expected error on upstream 500")
	}
	if !strings.Contains(err.Error(), "500") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestChatCompletionNoChoices(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	})

	_, err := client.ChatCompletion(context.Background(), "", []Message{{Role: "user", Content: "hi"}})
	if err == nil {
		t.Fatalf("expected error on empty choices")
	}
}

func TestChatCompletionRequiresModel(t *testing.T) {
	client := NewOpenAIClient(config.OpenAIConfig{}, http.DefaultClient, nil)

	_, err := client.ChatCompletion(context.Background(), "", nil)
	if err != ErrInvalidModel {
		t.Fatalf("expected ErrInvalidModel, got %v", err)
	}
}
