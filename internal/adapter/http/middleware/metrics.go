package middleware

import (
	"strconv"
	"time"

	"budget_service/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records count and latency per matched route. Unmatched paths are
// grouped under one label to keep cardinality bounded.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.HTTPDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}
