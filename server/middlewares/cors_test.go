package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/inference-gateway/sam3d/server/middlewares"
)

func newCORSRouter(origins []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middlewares.CORSMiddleware(origins, "X-Model-ID", "X-Model-Format"))
	router.POST("/api/sam3d/process", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestCORSMiddleware(t *testing.T) {
	tests := []struct {
		name          string
		origins       []string
		method        string
		origin        string
		expectedCode  int
		expectAllowed bool
	}{
		{
			name:          "allowed origin",
			origins:       []string{"http://localhost:3000"},
			method:        http.MethodPost,
			origin:        "http://localhost:3000",
			expectedCode:  http.StatusOK,
			expectAllowed: true,
		},
		{
			name:          "preflight from allowed origin",
			origins:       []string{"http://localhost:3000"},
			method:        http.MethodOptions,
			origin:        "http://localhost:3000",
			expectedCode:  http.StatusNoContent,
			expectAllowed: true,
		},
		{
			name:         "preflight from unknown origin",
			origins:      []string{"http://localhost:3000"},
			method:       http.MethodOptions,
			origin:       "http://evil.example",
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "simple request from unknown origin",
			origins:      []string{"http://localhost:3000"},
			method:       http.MethodPost,
			origin:       "http://evil.example",
			expectedCode: http.StatusOK,
		},
		{
			name:          "wildcard",
			origins:       []string{"*"},
			method:        http.MethodPost,
			origin:        "http://anything.example",
			expectedCode:  http.StatusOK,
			expectAllowed: true,
		},
		{
			name:         "no origin header",
			origins:      []string{"http://localhost:3000"},
			method:       http.MethodPost,
			expectedCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newCORSRouter(tt.origins)

			req, _ := http.NewRequest(tt.method, "/api/sam3d/process", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectAllowed {
				assert.Equal(t, tt.origin, w.Header().Get("Access-Control-Allow-Origin"))
				assert.Equal(t, "X-Model-ID, X-Model-Format", w.Header().Get("Access-Control-Expose-Headers"))
			} else {
				assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}
}

func TestCORSMiddleware_PreflightAllowHeaders(t *testing.T) {
	tests := []struct {
		name      string
		requested string
		expected  string
	}{
		{name: "echoes requested headers", requested: "Authorization, X-Request-ID", expected: "Authorization, X-Request-ID"},
		{name: "defaults without a request list", expected: "Content-Type, Accept, Origin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newCORSRouter([]string{"http://localhost:3000"})

			req, _ := http.NewRequest(http.MethodOptions, "/api/sam3d/process", nil)
			req.Header.Set("Origin", "http://localhost:3000")
			req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			if tt.requested != "" {
				req.Header.Set("Access-Control-Request-Headers", tt.requested)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusNoContent, w.Code)
			assert.Equal(t, tt.expected, w.Header().Get("Access-Control-Allow-Headers"))
			assert.Contains(t, w.Header().Values("Vary"), "Access-Control-Request-Headers")
		})
	}
}
