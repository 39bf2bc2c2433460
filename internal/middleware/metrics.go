package middleware

import (
	"strconv"
	"time"

	"iot-fleet-inventory/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records request counts, latencies and in-flight requests.
// The route template (not the raw path) is used as the path label to keep
// cardinality bounded.
func MetricsMiddleware(m *metrics.HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		m.RequestsInFlight.Inc()

		c.Next()

		m.RequestsInFlight.Dec()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method
		status := strconv.Itoa(c.Writer.Status())

		m.RequestsTotal.WithLabelValues(method, path, status).Inc()
		m.RequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}
