package endpoint

import (
	"net/http"
	"runtime"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/parakeet-gateway/version"
)

// InfoResponse is the body returned by the info endpoint.
type InfoResponse struct {
	Service   string `json:"service"`
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

// Info returns a handler that reports build and version information.
func Info(serviceName string) gin.HandlerFunc {
	info := version.Get()
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, InfoResponse{
			Service:   serviceName,
			Version:   info.Version,
			Commit:    info.Commit,
			BuildDate: info.BuildDate,
			GoVersion: runtime.Version(),
			OS:        runtime.GOOS,
			Arch:      runtime.GOARCH,
		})
	}
}
