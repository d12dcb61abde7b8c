package middleware

import (
	"net/http"

	"github.com/skillsenselab/parakeet-gateway/logger"
	"github.com/skillsenselab/parakeet-gateway/util"
)

// BodySizeLimit returns a middleware that caps request body size. The limit
// is given as a human-readable size string such as "25MB". Oversized bodies
// fail with 413 when the handler reads past the limit; requests that declare
// an oversized Content-Length are rejected up front.
func BodySizeLimit(limit string) Middleware {
	maxBytes, err := util.ParseSize(limit)
	if err != nil {
		logger.Warn("Invalid body size limit, using 100MB", map[string]interface{}{
			"limit": limit,
			"error": err.Error(),
		})
		maxBytes = 100 << 20
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxBytes {
				http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}
