package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nanogen/internal/auth"
	"nanogen/internal/config"
	"nanogen/internal/httpserver"
	"nanogen/internal/llm"
	"nanogen/internal/metrics"
	"nanogen/internal/middleware"
	"nanogen/internal/ratelimit"
	"nanogen/internal/relay"
	"nanogen/internal/transport"
	"log/slog"
)

const healthRateLimit = "60/minute"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := newLogger(cfg.LogLevel)

	generatePolicy, err := ratelimit.ParsePolicy("generate", cfg.GenerateRateLimit)
	if err != nil {
		log.Fatalf("failed to parse GENERATE_RATE_LIMIT: %v", err)
	}
	healthPolicy, err := ratelimit.ParsePolicy("health", healthRateLimit)
	if err != nil {
		log.Fatalf("failed to parse health rate limit: %v", err)
	}

	m := metrics.New()
	limiter := ratelimit.NewLimiter()

	httpClient := transport.NewHTTPClient(cfg.RequestTimeout)
	llmClient := llm.NewOpenAIClient(cfg.OpenAI, httpClient, logger)

	guard := auth.NewGuard(cfg.APISecret)
	service := relay.NewService(relay.ServiceConfig{
		Client:   llmClient,
		Model:    cfg.OpenAI.Model,
		Truncate: cfg.TruncateResponse,
		Metrics:  m,
		Logger:   logger,
	})
	generateHandler := relay.NewHandler(relay.HandlerDeps{
		Guard:   guard,
		Service: service,
		Logger:  logger,
	})

	router := httpserver.NewRouter(httpserver.RouterDeps{
		Logger:          logger,
		GenerateHandler: generateHandler,
		MetricsHandler:  m.Handler(),
		HealthLimit:     ratelimit.Middleware(limiter, healthPolicy, m),
		GenerateLimit:   ratelimit.Middleware(limiter, generatePolicy, m),
		RequestMetrics:  middleware.Metrics(m),
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server starting", slog.String("addr", cfg.HTTPAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown initiated")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", slog.String("error", err.Error()))
	}

	logger.Info("server stopped")
}

func newLogger(level string) *slog.Logger {
	slogLevel := slog.LevelInfo
	switch level {
	case "debug":
		slogLevel = slog.LevelDebug
	case "info":
		slogLevel = slog.LevelInfo
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slogLevel}))
}
