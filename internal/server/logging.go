package server

import (
	"time"

	"fitbook/internal/logger"

	"github.com/gin-gonic/gin"
)

// RequestLoggingMiddleware emits one structured line per request. The route
// template is logged next to the raw path so per-endpoint aggregation does
// not fragment on IDs (/bookings/:bookingID/cancel vs /bookings/12/cancel).
func RequestLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		fields := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"route", c.FullPath(),
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		if query := c.Request.URL.RawQuery; query != "" {
			fields = append(fields, "query", query)
		}

		if len(c.Errors) > 0 {
			fields = append(fields, "errors", c.Errors.String())
			logger.Error("HTTP request failed", fields...)
			return
		}

		logger.Info("HTTP request", fields...)
	}
}
