package middlewares

import (
	"net/http"
	"strings"

	gin "github.com/gin-gonic/gin"
)

const defaultAllowedHeaders = "Content-Type, Accept, Origin"

// CORSMiddleware allows browser calls from the configured origins. A "*"
// entry allows any origin. Requests from other origins get no CORS headers
// and the browser rejects them. Preflights are granted whatever request
// headers they ask for.
func CORSMiddleware(allowedOrigins []string, exposedHeaders ...string) gin.HandlerFunc {
	originSet := make(map[string]struct{}, len(allowedOrigins))
	allowAll := false
	for _, o := range allowedOrigins {
		o = strings.TrimSpace(o)
		if o == "*" {
			allowAll = true
		}
		originSet[o] = struct{}{}
	}
	expose := strings.Join(exposedHeaders, ", ")

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == "" {
			c.Next()
			return
		}

		_, ok := originSet[origin]
		if !ok && !allowAll {
			if c.Request.Method == http.MethodOptions {
				c.AbortWithStatus(http.StatusForbidden)
				return
			}
			c.Next()
			return
		}

		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", origin)
		h.Set("Access-Control-Allow-Credentials", "true")
		h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		h.Set("Access-Control-Max-Age", "86400")
		h.Add("Vary", "Origin")
		if expose != "" {
			h.Set("Access-Control-Expose-Headers", expose)
		}

		if c.Request.Method == http.MethodOptions {
			allowHeaders := defaultAllowedHeaders
			if requested := c.GetHeader("Access-Control-Request-Headers"); requested != "" {
				allowHeaders = requested
			}
			h.Set("Access-Control-Allow-Headers", allowHeaders)
			h.Add("Vary", "Access-Control-Request-Headers")
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
