package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alumnet/admin-gateway/internal/service"
)

// Metrics observes request duration and status per route. The metrics and
// health endpoints themselves are excluded so scrapes do not dominate the
// histograms.
func Metrics(metricsSvc *service.MetricsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if metricsSvc == nil {
			c.Next()
			return
		}

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		switch path {
		case "/metrics", "/health", "/ready":
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		metricsSvc.ObserveHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
