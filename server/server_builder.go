package server

import (
	"context"
	"fmt"

	zap "go.uber.org/zap"

	config "github.com/inference-gateway/sam3d/server/config"
	inference "github.com/inference-gateway/sam3d/server/inference"
	otel "github.com/inference-gateway/sam3d/server/otel"
)

// SAM3DServerBuilder provides a fluent interface for building SAM 3D servers.
// Components that are not supplied are built from the configuration when
// Build is called.
//
// Example:
//
//	server, err := NewServerBuilder(cfg, logger).
//	  WithTelemetry(telemetry).
//	  Build()
type SAM3DServerBuilder interface {
	// WithGateway sets the reconstruction gateway. Without it the gateway is
	// built from INFERENCE_* settings.
	WithGateway(gateway ModelGateway) SAM3DServerBuilder

	// WithArtifactService sets the artifact service. It takes precedence over
	// WithArtifactStorage and WithEventPublisher.
	WithArtifactService(artifacts ArtifactService) SAM3DServerBuilder

	// WithArtifactStorage sets the content store used by the default artifact service
	WithArtifactStorage(storage ArtifactStorageProvider) SAM3DServerBuilder

	// WithEventPublisher sets the publisher used by the default artifact service
	WithEventPublisher(publisher EventPublisher) SAM3DServerBuilder

	// WithTelemetry enables metrics recording with the given telemetry
	WithTelemetry(telemetry otel.OpenTelemetry) SAM3DServerBuilder

	// WithLogger sets a custom logger for the builder and resulting server
	WithLogger(logger *zap.Logger) SAM3DServerBuilder

	// Build creates and returns the configured server
	Build() (SAM3DServer, error)
}

var _ SAM3DServerBuilder = (*SAM3DServerBuilderImpl)(nil)

// SAM3DServerBuilderImpl is the concrete implementation of SAM3DServerBuilder
type SAM3DServerBuilderImpl struct {
	cfg       config.Config
	logger    *zap.Logger
	gateway   ModelGateway
	artifacts ArtifactService
	storage   ArtifactStorageProvider
	publisher EventPublisher
	telemetry otel.OpenTelemetry
}

// NewServerBuilder creates a new server builder. Zero valued server settings
// are replaced by the configuration defaults.
func NewServerBuilder(cfg config.Config, logger *zap.Logger) SAM3DServerBuilder {
	if cfg.ServerConfig.Port == "" || cfg.StorageConfig.Provider == "" {
		defaultCfg, err := config.NewWithDefaults(context.Background(), nil)
		if err == nil {
			if cfg.ServerConfig.Port == "" {
				cfg.ServerConfig = defaultCfg.ServerConfig
			}
			if cfg.StorageConfig.Provider == "" {
				cfg.StorageConfig = defaultCfg.StorageConfig
			}
		}
	}
	if cfg.ServerConfig.MaxUploadSize <= 0 {
		cfg.ServerConfig.MaxUploadSize = 64 << 20
	}

	return &SAM3DServerBuilderImpl{
		cfg:    cfg,
		logger: logger,
	}
}

func (b *SAM3DServerBuilderImpl) WithGateway(gateway ModelGateway) SAM3DServerBuilder {
	b.gateway = gateway
	return b
}

func (b *SAM3DServerBuilderImpl) WithArtifactService(artifacts ArtifactService) SAM3DServerBuilder {
	b.artifacts = artifacts
	return b
}

func (b *SAM3DServerBuilderImpl) WithArtifactStorage(storage ArtifactStorageProvider) SAM3DServerBuilder {
	b.storage = storage
	return b
}

func (b *SAM3DServerBuilderImpl) WithEventPublisher(publisher EventPublisher) SAM3DServerBuilder {
	b.publisher = publisher
	return b
}

func (b *SAM3DServerBuilderImpl) WithTelemetry(telemetry otel.OpenTelemetry) SAM3DServerBuilder {
	b.telemetry = telemetry
	return b
}

func (b *SAM3DServerBuilderImpl) WithLogger(logger *zap.Logger) SAM3DServerBuilder {
	b.logger = logger
	return b
}

// Build wires the server. Storage is opened here, so a failing backend fails
// the build.
func (b *SAM3DServerBuilderImpl) Build() (SAM3DServer, error) {
	if b.logger == nil {
		return nil, fmt.Errorf("logger is required")
	}

	cfg := b.cfg

	gateway := b.gateway
	if gateway == nil {
		var opts []inference.GatewayOption
		if b.telemetry != nil {
			opts = append(opts, inference.WithRecorder(b.telemetry))
		}
		gateway = inference.NewGatewayFromConfig(cfg.InferenceConfig, b.logger, opts...)
	}

	artifacts := b.artifacts
	if artifacts == nil {
		storage := b.storage
		if storage == nil {
			var err error
			storage, err = CreateArtifactStorage(context.Background(), cfg.StorageConfig, b.logger)
			if err != nil {
				return nil, fmt.Errorf("failed to create artifact storage: %w", err)
			}
		}

		publisher := b.publisher
		if publisher == nil {
			var err error
			publisher, err = NewEventPublisher(cfg.EventsConfig)
			if err != nil {
				_ = storage.Close()
				return nil, fmt.Errorf("failed to create event publisher: %w", err)
			}
		}

		artifacts = NewArtifactService(storage, publisher, cfg.EventsConfig.Source, b.logger)
	}

	return NewSAM3DServer(&cfg, b.logger, gateway, artifacts, b.telemetry), nil
}
