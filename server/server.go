package server

import (
	"context"
	"fmt"
	"net/http"

	gin "github.com/gin-gonic/gin"
	promhttp "github.com/prometheus/client_golang/prometheus/promhttp"
	zap "go.uber.org/zap"

	config "github.com/inference-gateway/sam3d/server/config"
	inference "github.com/inference-gateway/sam3d/server/inference"
	middlewares "github.com/inference-gateway/sam3d/server/middlewares"
	otel "github.com/inference-gateway/sam3d/server/otel"
	types "github.com/inference-gateway/sam3d/types"
)

// SAM3DServer defines the interface of the reconstruction HTTP service
type SAM3DServer interface {
	// Start starts the server on the configured port and blocks until it stops
	Start(ctx context.Context) error

	// Stop gracefully stops the server and releases its components
	Stop(ctx context.Context) error

	// Handler returns the HTTP handler serving the API
	Handler() http.Handler
}

// ModelGateway is the lazily loaded reconstruction capability
type ModelGateway interface {
	Available() bool
	Loaded() bool
	Acquire(ctx context.Context) (*inference.Handle, error)
	Run(ctx context.Context, h *inference.Handle, req inference.Request) (inference.Result, error)
	Close() error
}

var _ ModelGateway = (*inference.Gateway)(nil)

type SAM3DServerImpl struct {
	cfg       *config.Config
	logger    *zap.Logger
	gateway   ModelGateway
	artifacts ArtifactService
	otel      otel.OpenTelemetry

	router *gin.Engine

	// Server state
	httpServer    *http.Server
	metricsServer *http.Server
}

var _ SAM3DServer = (*SAM3DServerImpl)(nil)

// NewSAM3DServer creates a server around already constructed components.
// telemetry may be nil.
func NewSAM3DServer(cfg *config.Config, logger *zap.Logger, gateway ModelGateway, artifacts ArtifactService, telemetry otel.OpenTelemetry) *SAM3DServerImpl {
	s := &SAM3DServerImpl{
		cfg:       cfg,
		logger:    logger,
		gateway:   gateway,
		artifacts: artifacts,
		otel:      telemetry,
	}
	s.router = s.setupRouter(cfg)
	return s
}

// Handler returns the HTTP handler serving the API
func (s *SAM3DServerImpl) Handler() http.Handler {
	return s.router
}

func (s *SAM3DServerImpl) setupRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middlewares.LoggingMiddleware(s.logger, cfg.ServerConfig.DisableHealthcheckLog))
	r.Use(middlewares.CORSMiddleware(cfg.ServerConfig.CORSAllowedOrigins,
		types.HeaderModelID, types.HeaderModelFormat, "Content-Disposition", "ETag"))

	if s.cfg.TelemetryConfig.Enable && s.otel != nil {
		telemetryMw, err := middlewares.NewTelemetryMiddleware(*s.cfg, s.otel, s.logger)
		if err != nil {
			s.logger.Error("failed to create telemetry middleware", zap.Error(err))
		} else {
			r.Use(telemetryMw.Middleware())
		}
	}

	r.GET("/", s.handleServiceInfo)
	r.GET("/health", s.handleHealth)

	api := r.Group("/api")
	api.POST("/sam3d/process", s.handleProcess)
	api.POST("/sam3d/convert", s.handleConvert)
	api.GET("/models/:model_id", s.handleGetModel)

	return r
}

// Start starts the HTTP server and, when telemetry is enabled, the metrics server
func (s *SAM3DServerImpl) Start(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%s", s.cfg.ServerConfig.Port),
		Handler:      s.router,
		ReadTimeout:  s.cfg.ServerConfig.ReadTimeout,
		WriteTimeout: s.cfg.ServerConfig.WriteTimeout,
		IdleTimeout:  s.cfg.ServerConfig.IdleTimeout,
	}

	s.logger.Info("starting SAM 3D server",
		zap.String("port", s.cfg.ServerConfig.Port),
		zap.String("service_name", s.cfg.ServiceName),
		zap.String("version", s.cfg.ServiceVersion),
		zap.String("inference_provider", s.cfg.InferenceConfig.Provider),
		zap.String("storage_provider", s.cfg.StorageConfig.Provider),
		zap.Bool("sam3d_available", s.gateway.Available()))

	if s.cfg.TelemetryConfig.Enable && s.otel != nil {
		metricsRouter := gin.New()
		metricsRouter.Use(gin.Recovery())
		metricsRouter.GET("/metrics", gin.WrapH(promhttp.Handler()))

		metricsAddr := s.cfg.TelemetryConfig.MetricsConfig.Host + ":" + s.cfg.TelemetryConfig.MetricsConfig.Port
		s.metricsServer = &http.Server{
			Addr:         metricsAddr,
			Handler:      metricsRouter,
			ReadTimeout:  s.cfg.TelemetryConfig.MetricsConfig.ReadTimeout,
			WriteTimeout: s.cfg.TelemetryConfig.MetricsConfig.WriteTimeout,
			IdleTimeout:  s.cfg.TelemetryConfig.MetricsConfig.IdleTimeout,
		}

		go func() {
			s.logger.Info("starting metrics server", zap.String("port", s.cfg.TelemetryConfig.MetricsConfig.Port))
			if err := s.metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				s.logger.Error("metrics server failed", zap.Error(err))
			}
		}()
	}

	if s.cfg.ServerConfig.TLSConfig.Enable {
		return s.httpServer.ListenAndServeTLS(s.cfg.ServerConfig.TLSConfig.CertPath, s.cfg.ServerConfig.TLSConfig.KeyPath)
	}

	return s.httpServer.ListenAndServe()
}

// Stop shuts the servers down and releases the gateway and the content store
func (s *SAM3DServerImpl) Stop(ctx context.Context) error {
	s.logger.Info("stopping SAM 3D server")

	var err error
	keep := func(e error) {
		if err == nil {
			err = e
		}
	}

	if s.httpServer != nil {
		if shutdownErr := s.httpServer.Shutdown(ctx); shutdownErr != nil {
			s.logger.Error("error stopping HTTP server", zap.Error(shutdownErr))
			keep(shutdownErr)
		}
	}

	if s.metricsServer != nil {
		if shutdownErr := s.metricsServer.Shutdown(ctx); shutdownErr != nil {
			s.logger.Error("error stopping metrics server", zap.Error(shutdownErr))
			keep(shutdownErr)
		}
	}

	if closeErr := s.gateway.Close(); closeErr != nil {
		s.logger.Error("error closing inference gateway", zap.Error(closeErr))
		keep(closeErr)
	}

	if closeErr := s.artifacts.Close(); closeErr != nil {
		s.logger.Error("error closing artifact storage", zap.Error(closeErr))
		keep(closeErr)
	}

	if s.otel != nil {
		if shutdownErr := s.otel.ShutDown(ctx); shutdownErr != nil {
			s.logger.Error("error shutting down telemetry", zap.Error(shutdownErr))
			keep(shutdownErr)
		}
	}

	defer func() {
		if syncErr := s.logger.Sync(); syncErr != nil {
			s.logger.Debug("failed to sync logger on shutdown", zap.Error(syncErr))
		}
	}()

	return err
}

func (s *SAM3DServerImpl) handleServiceInfo(c *gin.Context) {
	c.JSON(http.StatusOK, types.ServiceInfo{
		Message:        "SAM 3D API Service",
		Status:         "running",
		Sam3DAvailable: s.gateway.Available(),
	})
}

// handleHealth always answers 200; the status lives in the body
func (s *SAM3DServerImpl) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, s.healthStatus(c.Request.Context()))
}
