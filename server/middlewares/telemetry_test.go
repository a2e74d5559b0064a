package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/inference-gateway/sam3d/server/config"
	"github.com/inference-gateway/sam3d/server/middlewares"
	"github.com/inference-gateway/sam3d/server/mocks"
)

func newTelemetryRouter(t *testing.T, enable bool, mockOtel *mocks.FakeOpenTelemetry) *gin.Engine {
	t.Helper()
	cfg := config.Config{
		TelemetryConfig: config.TelemetryConfig{
			Enable: enable,
		},
	}

	telemetryMw, err := middlewares.NewTelemetryMiddleware(cfg, mockOtel, zap.NewNop())
	assert.NoError(t, err)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(telemetryMw.Middleware())
	router.POST("/api/sam3d/process", func(c *gin.Context) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File must be an image"})
	})
	router.GET("/api/models/:model_id", func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Model not found"})
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	return router
}

func TestTelemetryMiddleware_Disabled(t *testing.T) {
	mockOtel := &mocks.FakeOpenTelemetry{}
	router := newTelemetryRouter(t, false, mockOtel)

	req, _ := http.NewRequest("POST", "/api/sam3d/process", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Equal(t, 0, mockOtel.RecordRequestCountCallCount())
	assert.Equal(t, 0, mockOtel.RecordResponseStatusCallCount())
	assert.Equal(t, 0, mockOtel.RecordRequestDurationCallCount())
}

func TestTelemetryMiddleware_Enabled(t *testing.T) {
	mockOtel := &mocks.FakeOpenTelemetry{}
	router := newTelemetryRouter(t, true, mockOtel)

	req, _ := http.NewRequest("POST", "/api/sam3d/process", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Equal(t, 1, mockOtel.RecordRequestCountCallCount())
	assert.Equal(t, 1, mockOtel.RecordResponseStatusCallCount())
	assert.Equal(t, 1, mockOtel.RecordRequestDurationCallCount())

	_, method, path, status := mockOtel.RecordResponseStatusArgsForCall(0)
	assert.Equal(t, "POST", method)
	assert.Equal(t, "/api/sam3d/process", path)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestTelemetryMiddleware_UsesRouteTemplate(t *testing.T) {
	mockOtel := &mocks.FakeOpenTelemetry{}
	router := newTelemetryRouter(t, true, mockOtel)

	req, _ := http.NewRequest("GET", "/api/models/0b1c5f3e-6f0c-4d59-9d5f-3b7a4c1fd0a2", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 1, mockOtel.RecordRequestCountCallCount())
	_, _, path := mockOtel.RecordRequestCountArgsForCall(0)
	assert.Equal(t, "/api/models/:model_id", path)
}

func TestTelemetryMiddleware_NonAPIPath(t *testing.T) {
	mockOtel := &mocks.FakeOpenTelemetry{}
	router := newTelemetryRouter(t, true, mockOtel)

	req, _ := http.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, 0, mockOtel.RecordRequestCountCallCount())
	assert.Equal(t, 0, mockOtel.RecordResponseStatusCallCount())
	assert.Equal(t, 0, mockOtel.RecordRequestDurationCallCount())
}
