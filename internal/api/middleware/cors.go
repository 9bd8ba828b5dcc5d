package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

// CORS applies the configured origin policy. Browser dashboards are the main
// consumer of the API, so preflight requests must be answered here rather
// than falling through to the 404 handler.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	co := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Content-Type", HeaderRequestID},
		MaxAge:         300,
	})

	return func(c *gin.Context) {
		co.HandlerFunc(c.Writer, c.Request)

		if c.Request.Method == http.MethodOptions &&
			c.Request.Header.Get("Access-Control-Request-Method") != "" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
