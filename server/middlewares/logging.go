package middlewares

import (
	"time"

	gin "github.com/gin-gonic/gin"
	zap "go.uber.org/zap"
)

// LoggingMiddleware returns a gin middleware that logs requests through zap,
// but can optionally skip logging for health check endpoints
func LoggingMiddleware(logger *zap.Logger, disableHealthcheckLog bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if disableHealthcheckLog && c.Request.URL.Path == "/health" {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.Int("bytes", c.Writer.Size()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		if c.Writer.Status() >= 500 {
			logger.Error("request completed", fields...)
			return
		}
		logger.Info("request completed", fields...)
	}
}
