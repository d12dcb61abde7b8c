package endpoint

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/parakeet-gateway/component"
)

// HealthChecker reports health for a set of components.
type HealthChecker interface {
	HealthAll(ctx context.Context) []component.Health
}

// HealthResponse is the body returned by the health endpoint.
type HealthResponse struct {
	Service    string                 `json:"service"`
	Status     component.HealthStatus `json:"status"`
	Timestamp  string                 `json:"timestamp"`
	Components []component.Health     `json:"components,omitempty"`
}

// Health returns a handler that aggregates component health. Any unhealthy
// component makes the overall status unhealthy (503); a degraded component
// makes it degraded but still returns 200.
func Health(serviceName string, checker HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		components := checker.HealthAll(c.Request.Context())

		overall := component.StatusHealthy
		for _, h := range components {
			switch h.Status {
			case component.StatusUnhealthy:
				overall = component.StatusUnhealthy
			case component.StatusDegraded:
				if overall == component.StatusHealthy {
					overall = component.StatusDegraded
				}
			}
		}

		status := http.StatusOK
		if overall == component.StatusUnhealthy {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, HealthResponse{
			Service:    serviceName,
			Status:     overall,
			Timestamp:  time.Now().UTC().Format(time.RFC3339),
			Components: components,
		})
	}
}
