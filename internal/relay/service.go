package relay

import (
	"context"
	"fmt"
	"strings"
	"time"

	"nanogen/internal/llm"
	"nanogen/internal/metrics"
	"log/slog"
)

const (
	placeholderEmpty     = "No content generated"
	placeholderTruncated = "No response generated"
	truncateWordLimit    = 10
)

// Service собирает чат-сообщения из истории и промпта, вызывает upstream
// и приводит ответ к единой строке.
type Service struct {
	llm      llm.Client
	model    string
	truncate bool
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

type ServiceConfig struct {
	Client   llm.Client
	Model    string
	Truncate bool
	Metrics  *metrics.Metrics
	Logger   *slog.Logger
}

func NewService(cfg ServiceConfig) *Service {
	return &Service{
		llm:      cfg.Client,
		model:    cfg.Model,
		truncate: cfg.Truncate,
		metrics:  cfg.Metrics,
		logger:   cfg.Logger,
	}
}

// Generate выполняет один запрос генерации.
// История передаётся вызывающим целиком при каждом запросе и воспроизводится
// как последовательность user-сообщений в исходном порядке, промпт — последним.
func (s *Service) Generate(ctx context.Context, prompt string, history []string) (string, error) {
	messages := make([]llm.Message, 0, len(history)+1)
	for _, turn := range history {
		messages = append(messages, llm.Message{Role: "user", Content: turn})
	}
	messages = append(messages, llm.Message{Role: "user", Content: prompt})

	start := time.Now()
	answer, err := s.llm.ChatCompletion(ctx, s.model, messages)
	if s.metrics != nil {
		s.metrics.ObserveUpstream(err, time.Since(start))
	}
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if s.logger != nil {
		s.logger.Debug("completion received",
			slog.Int("messages", len(messages)),
			slog.Duration("duration", time.Since(start)))
	}

	return s.postProcess(answer), nil
}

// postProcess обрезает пробелы и подставляет заглушку вместо пустого ответа.
// В режиме усечения остаются первые 10 слов, разделённые одиночными пробелами.
func (s *Service) postProcess(text string) string {
	out := strings.TrimSpace(text)
	if s.truncate {
		words := strings.Fields(out)
		if len(words) > truncateWordLimit {
			words = words[:truncateWordLimit]
		}
		out = strings.Join(words, " ")
	}
	if out == "" {
		if s.truncate {
			return placeholderTruncated
		}
		return placeholderEmpty
	}
	return out
}
