package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	HTTPAddr          string
	LogLevel          string
	APISecret         string
	RequestTimeout    time.Duration
	GenerateRateLimit string
	TruncateResponse  bool
	OpenAI            OpenAIConfig
}

type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

func Load() (Config, error) {
	var cfg Config

	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":8080")
	cfg.LogLevel = getEnv("LOG_LEVEL", "info")
	cfg.APISecret = getEnv("API_SECRET", "")
	cfg.GenerateRateLimit = getEnv("GENERATE_RATE_LIMIT", "10/minute")

	reqTimeout, err := parseDuration(getEnv("HTTP_CLIENT_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_CLIENT_TIMEOUT: %w", err)
	}
	cfg.RequestTimeout = reqTimeout

	truncate, err := parseBoolDefault(os.Getenv("TRUNCATE_RESPONSE"), false)
	if err != nil {
		return Config{}, fmt.Errorf("parse TRUNCATE_RESPONSE: %w", err)
	}
	cfg.TruncateResponse = truncate

	cfg.OpenAI = OpenAIConfig{
		APIKey:  getEnv("OPENAI_API_KEY", ""),
		BaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		Model:   getEnv("OPENAI_MODEL", "gpt-5-nano"),
	}

	return cfg, nil
}

func parseDuration(value string) (time.Duration, error) {
	if value == "" {
		return 0, fmt.Errorf("duration is empty")
	}
	return time.ParseDuration(value)
}

func getEnv(key, def string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return def
}

// parseBoolDefault parses optional boolean with default value.
func parseBoolDefault(value string, def bool) (bool, error) {
	if value == "" {
		return def, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, err
	}
	return parsed, nil
}
