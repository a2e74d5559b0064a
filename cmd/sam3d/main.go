package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	zap "go.uber.org/zap"

	server "github.com/inference-gateway/sam3d/server"
	config "github.com/inference-gateway/sam3d/server/config"
	otel "github.com/inference-gateway/sam3d/server/otel"
)

// Build-time metadata, set with -ldflags "-X main.version=..."
var (
	serviceName = "sam3d"
	version     = "dev"
)

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx, &config.Config{
		ServiceName:    serviceName,
		ServiceVersion: version,
	})
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	logger.Info("configuration loaded",
		zap.String("version", cfg.ServiceVersion),
		zap.String("port", cfg.ServerConfig.Port),
		zap.Bool("debug", cfg.Debug),
		zap.String("inference_provider", cfg.InferenceConfig.Provider),
		zap.String("worker_url", cfg.InferenceConfig.WorkerURL),
		zap.String("storage_provider", cfg.StorageConfig.Provider),
		zap.Bool("telemetry_enabled", cfg.TelemetryConfig.Enable),
		zap.Bool("events_enabled", cfg.EventsConfig.Enable))

	builder := server.NewServerBuilder(*cfg, logger)

	if cfg.TelemetryConfig.Enable {
		telemetry, err := otel.NewOpenTelemetry(cfg, logger)
		if err != nil {
			logger.Fatal("failed to initialize telemetry", zap.Error(err))
		}
		builder = builder.WithTelemetry(telemetry)
	}

	tracing, err := otel.NewTracing(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize tracing", zap.Error(err))
	}

	srv, err := builder.Build()
	if err != nil {
		logger.Fatal("failed to create server", zap.Error(err))
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	case err := <-errCh:
		logger.Error("server failed", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
	if err := tracing.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to flush traces", zap.Error(err))
	}
	logger.Info("goodbye")
}
