package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/skillsenselab/parakeet-gateway/logger"
)

// RequestLogger logs each request with method, path, status, size, and
// duration. It belongs outermost in the pre-routing chain so rejections by
// inner middleware (CORS, body-size) are logged too. The request ID is read
// from the response header, where the RequestID middleware echoes it.
func RequestLogger() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := newStatusWriter(w)
			start := time.Now()
			next.ServeHTTP(sw, r)
			logByStatus(r, sw.status, sw.bytes, time.Since(start), sw.Header().Get(RequestIDKey))
		})
	}
}

func logByStatus(r *http.Request, status, size int, elapsed time.Duration, requestID string) {
	fields := map[string]interface{}{
		"method":      r.Method,
		"path":        r.URL.Path,
		"status":      status,
		"bytes":       size,
		"duration_ms": elapsed.Milliseconds(),
	}
	if requestID != "" {
		fields["request_id"] = requestID
	}

	switch {
	case status >= 500:
		logger.Error("Request failed", fields)
	case status >= 400:
		logger.Warn("Request error", fields)
	case isHealthEndpoint(r.URL.Path):
		logger.Debug("Request completed", fields)
	default:
		logger.Info("Request completed", fields)
	}
}

func isHealthEndpoint(path string) bool {
	return strings.HasPrefix(path, "/health") || strings.HasPrefix(path, "/metrics")
}
