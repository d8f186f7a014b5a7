package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"nanogen/internal/config"
	"log/slog"
)

var (
	ErrInvalidModel = errors.New("model is required")
)

type OpenAIClient struct {
	apiKey       string
	baseURL      string
	defaultModel string
	httpClient   *http.Client
	logger       *slog.Logger
}

func NewOpenAIClient(cfg config.OpenAIConfig, httpClient *http.Client, logger *slog.Logger) Client {
	return &OpenAIClient{
		apiKey:       cfg.APIKey,
		baseURL:      cfg.BaseURL,
		defaultModel: cfg.Model,
		httpClient:   httpClient,
		logger:       logger,
	}
}

// ChatCompletion отправляет сообщения в upstream и возвращает текст ответа.
// Повторов нет: любая ошибка upstream сразу возвращается вызывающему.
func (c *OpenAIClient) ChatCompletion(ctx context.Context, model string, messages []Message) (string, error) {
	if model == "" {
		model = c.defaultModel
	}
	if model == "" {
		return "", ErrInvalidModel
	}

	buf, err := json.Marshal(chatRequest{Model: model, Messages: messages})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/chat/completions", c.baseURL), bytes.NewReader(buf))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 300 {
		if c.logger != nil {
			c.logger.Warn("upstream error", slog.Int("status", resp.StatusCode))
		}
		return "", fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var parsed chatResponse
	if err := json.Unmarshal(bodyBytes, &parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", errors.New("no choices in upstream response")
	}
	return parsed.Choices[0].Message.Content.Text(), nil
}

type chatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content messageContent `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}
