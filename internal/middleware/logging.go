package middleware

import (
	"log/slog"
	"strings"
	"time"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Logger logs one line per request with a correlation ID
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()
		c.Header("X-Request-ID", requestID)

		c.Next()

		attrs := []any{
			"request_id", requestID,
			"method", c.Request.Method,
			"path", sanitizePath(c.Request.URL.Path),
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
		}
		if identity := IdentityFrom(c); identity != nil {
			attrs = append(attrs, "user", identity.Username)
		}
		slog.Info("Request completed", attrs...)
	}
}

// sanitizePath strips control characters so a path cannot forge log lines
func sanitizePath(path string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, path)
}
