package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/interbanking/backend/internal/infrastructure/telemetry"
)

// Profiling runs versioned API requests under pprof labels naming the
// resource, route pattern and method, so CPU and allocation samples can be
// filtered per endpoint. Health checks, docs and unmatched paths run
// unlabelled.
func Profiling() gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if !strings.HasPrefix(route, "/api/v") {
			c.Next()
			return
		}

		labels := telemetry.RequestLabels{
			Resource: telemetry.ResourceFromRoute(route),
			Route:    route,
			Method:   c.Request.Method,
		}
		telemetry.WithRequestLabels(c.Request.Context(), labels, func(ctx context.Context) {
			c.Request = c.Request.WithContext(ctx)
			c.Next()
		})
	}
}
