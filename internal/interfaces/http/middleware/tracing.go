// Package middleware provides HTTP middleware for the interbanking API.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracingConfig configures Tracing.
type TracingConfig struct {
	ServiceName string
	Enabled     bool
	// UntracedPrefixes lists path prefixes that get no server span.
	UntracedPrefixes []string
}

// DefaultTracingConfig skips health probes and the API docs.
func DefaultTracingConfig(serviceName string) TracingConfig {
	return TracingConfig{
		ServiceName:      serviceName,
		Enabled:          true,
		UntracedPrefixes: []string{"/health", "/swagger"},
	}
}

// Tracing returns the server span handlers: otelgin followed by a handler
// that tags the span with the request ID and marks 4xx and 5xx responses as
// errors. Install it after RequestID:
//
//	engine.Use(middleware.Tracing(cfg)...)
//
// A disabled config yields no handlers.
func Tracing(cfg TracingConfig) gin.HandlersChain {
	if !cfg.Enabled {
		return nil
	}
	traced := func(r *http.Request) bool {
		for _, prefix := range cfg.UntracedPrefixes {
			if strings.HasPrefix(r.URL.Path, prefix) {
				return false
			}
		}
		return true
	}
	return gin.HandlersChain{
		otelgin.Middleware(cfg.ServiceName, otelgin.WithFilter(traced)),
		annotateServerSpan,
	}
}

func annotateServerSpan(c *gin.Context) {
	span := trace.SpanFromContext(c.Request.Context())
	if !span.IsRecording() {
		c.Next()
		return
	}
	if requestID := GetRequestID(c); requestID != "" {
		span.SetAttributes(attribute.String("request_id", requestID))
	}

	c.Next()

	status := c.Writer.Status()
	if status >= http.StatusBadRequest {
		span.SetStatus(codes.Error, http.StatusText(status))
		if len(c.Errors) > 0 {
			span.SetAttributes(attribute.String("error.message", c.Errors.Last().Error()))
		}
	}
}
