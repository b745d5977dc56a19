// cmd/server/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"college-compass/internal/catalog"
	"college-compass/internal/common/config"
	"college-compass/internal/common/logger"
	"college-compass/internal/common/observability"
	"college-compass/internal/insights"
	"college-compass/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("info", "console")
		bootLog.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("starting college-compass",
		zap.String("environment", cfg.App.Environment),
		zap.String("provider", cfg.Insights.Provider),
	)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	store, err := catalog.Load(cfg.Catalog.DataPath, log)
	if err != nil {
		zapLog.Fatal("catalog load failed", zap.Error(err))
	}

	insightsCfg := &insights.Config{
		Timeout:     config.GetDuration(cfg.Insights.Timeout),
		MaxTokens:   cfg.Insights.MaxTokens,
		Temperature: cfg.Insights.Temperature,
	}

	provider, err := buildProvider(cfg, insightsCfg)
	if err != nil {
		zapLog.Fatal("provider init failed", zap.Error(err))
	}

	client := insights.NewClient(provider, log)
	service := insights.NewService(store, client, insightsCfg, obs, log)
	srv := server.New(cfg, store, service, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			zapLog.Fatal("http server failed", zap.Error(err))
		}
	case <-ctx.Done():
		zapLog.Info("shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(),
			config.GetDuration(cfg.Server.ShutdownTimeout))
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			zapLog.Error("graceful shutdown failed", zap.Error(err))
		}
	}
}

func buildProvider(cfg *config.Config, insightsCfg *insights.Config) (insights.Provider, error) {
	switch cfg.Insights.Provider {
	case "gemini":
		return insights.NewGeminiProvider(context.Background(),
			cfg.APIs.Gemini.APIKey, cfg.APIs.Gemini.Model, insightsCfg)
	default:
		return insights.NewGenAIProvider(cfg.APIs.GenAI.BaseURL,
			cfg.APIs.GenAI.APIKey, insightsCfg), nil
	}
}
