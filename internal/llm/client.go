package llm

import "context"

// Message одно сообщение чат-диалога для upstream модели.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client минимальный публичный интерфейс LLM клиента.
type Client interface {
	ChatCompletion(ctx context.Context, model string, messages []Message) (string, error)
}
