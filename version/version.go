// Package version exposes build-time version information injected via
// -ldflags.
package version

// Set at build time:
//
//	go build -ldflags "-X github.com/skillsenselab/parakeet-gateway/version.Version=v1.0.0 \
//	  -X github.com/skillsenselab/parakeet-gateway/version.Commit=$(git rev-parse --short HEAD) \
//	  -X github.com/skillsenselab/parakeet-gateway/version.BuildDate=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Info bundles the build metadata.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
}

// Get returns the current build metadata.
func Get() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		BuildDate: BuildDate,
	}
}
