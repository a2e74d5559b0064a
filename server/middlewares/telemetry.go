package middlewares

import (
	"strings"
	"time"

	gin "github.com/gin-gonic/gin"
	config "github.com/inference-gateway/sam3d/server/config"
	otel "github.com/inference-gateway/sam3d/server/otel"
	zap "go.uber.org/zap"
)

type Telemetry interface {
	Middleware() gin.HandlerFunc
}

type TelemetryImpl struct {
	cfg       config.Config
	telemetry otel.OpenTelemetry
	logger    *zap.Logger
}

func NewTelemetryMiddleware(cfg config.Config, telemetry otel.OpenTelemetry, logger *zap.Logger) (Telemetry, error) {
	return &TelemetryImpl{
		cfg:       cfg,
		telemetry: telemetry,
		logger:    logger,
	}, nil
}

// Middleware records request metrics for the /api surface. The route
// template is used as the path label so model ids do not explode cardinality.
func (t *TelemetryImpl) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !t.cfg.TelemetryConfig.Enable || !strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.Next()
			return
		}

		startTime := time.Now()
		ctx := c.Request.Context()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		t.telemetry.RecordRequestCount(ctx, c.Request.Method, path)

		c.Next()

		durationMs := float64(time.Since(startTime).Nanoseconds()) / float64(time.Millisecond)
		statusCode := c.Writer.Status()

		t.telemetry.RecordResponseStatus(ctx, c.Request.Method, path, statusCode)
		t.telemetry.RecordRequestDuration(ctx, c.Request.Method, path, durationMs)

		t.logger.Debug("request telemetry recorded",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status_code", statusCode),
			zap.Float64("duration_ms", durationMs),
		)
	}
}
