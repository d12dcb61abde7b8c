package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	apperrors "github.com/skillsenselab/parakeet-gateway/errors"
	"github.com/skillsenselab/parakeet-gateway/logger"
)

// Recovery returns a Gin middleware that recovers from panics, logs the
// panic value with a stack trace, and responds with a structured 500.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("Panic recovered", map[string]interface{}{
					"panic":      rec,
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
					"stack":      string(debug.Stack()),
					"request_id": c.GetString(RequestIDKey),
				})
				appErr := apperrors.New(apperrors.ErrCodeInternal, "Internal server error", http.StatusInternalServerError)
				c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToResponse())
			}
		}()
		c.Next()
	}
}
