package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/skillsenselab/parakeet-gateway/errors"
)

// TokenValidator validates a bearer token and returns its subject.
type TokenValidator interface {
	Validate(token string) (subject string, err error)
}

// AuthConfig holds bearer-token authentication configuration.
type AuthConfig struct {
	Enabled   bool     `yaml:"enabled" mapstructure:"enabled"`
	Secret    string   `yaml:"secret" mapstructure:"secret"`
	SkipPaths []string `yaml:"skip_paths" mapstructure:"skip_paths"`
}

// SubjectKey is the Gin context key under which the authenticated subject is
// stored.
const SubjectKey = "auth-subject"

// Auth returns a Gin middleware that requires a valid bearer token on every
// request except the configured skip paths.
func Auth(validator TokenValidator, skipPaths []string) gin.HandlerFunc {
	skip := make(map[string]bool, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = true
	}

	return func(c *gin.Context) {
		if skip[c.Request.URL.Path] {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			appErr := apperrors.Unauthorized("Missing bearer token")
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToResponse())
			return
		}

		subject, err := validator.Validate(token)
		if err != nil {
			appErr := apperrors.Unauthorized("Invalid token")
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToResponse())
			return
		}

		c.Set(SubjectKey, subject)
		c.Next()
	}
}
