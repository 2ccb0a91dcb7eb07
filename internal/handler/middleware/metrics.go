package middleware

import (
	"strconv"
	"time"

	"loyalty-ledger/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware observes request latency per route template, so path
// parameters do not blow up label cardinality.
func MetricsMiddleware(m *metrics.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveRequest(route, c.Request.Method, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
