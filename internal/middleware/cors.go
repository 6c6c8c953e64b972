package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORS answers cross-origin requests from the web client. allowedOrigins is
// the comma-separated CORS_ORIGINS value; "*" opens everything and is the
// development default, production lists the client origins explicitly.
func CORS(allowedOrigins string) gin.HandlerFunc {
	permitirTodas := allowedOrigins == "*"
	permitidas := make(map[string]bool)
	for _, o := range strings.Split(allowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			permitidas[o] = true
		}
	}

	return func(c *gin.Context) {
		origem := c.GetHeader("Origin")
		switch {
		case permitirTodas:
			c.Header("Access-Control-Allow-Origin", "*")
		case permitidas[origem]:
			c.Header("Access-Control-Allow-Origin", origem)
			c.Header("Vary", "Origin")
		}
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID")
		c.Header("Access-Control-Expose-Headers", "X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
