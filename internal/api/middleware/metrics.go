package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Eronmosele95/electrical-dashboard/internal/metrics"
)

// Metrics records request duration per route template. Unmatched routes are
// bucketed together so 404 scans cannot blow up label cardinality.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.ObserveRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
