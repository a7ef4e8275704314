package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kamenpro/kamenpro-backend/internal/metrics"
)

// MetricsMiddleware beleži broj i trajanje zahteva. Kao path se koristi
// šablon rute, ne konkretan URL, da kardinalnost labela ostane mala.
func MetricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.ObserveHTTP(c.Request.Method, path, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
