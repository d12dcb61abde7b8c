// Package preflight runs startup checks before components are started, so
// misconfiguration fails fast with a clear message instead of surfacing as
// request errors later. Checks are either fatal (startup aborts) or advisory
// (logged as warnings).
package preflight

import (
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"

	"github.com/skillsenselab/parakeet-gateway/logger"
	"github.com/skillsenselab/parakeet-gateway/provider"
	"github.com/skillsenselab/parakeet-gateway/transcription"
)

// Check is a single named startup check.
type Check struct {
	Name string
	// Fatal checks abort startup on failure; advisory checks only warn.
	Fatal bool
	Run   func(ctx context.Context) error
}

// Runner executes checks in order and aggregates fatal failures.
type Runner struct {
	checks []Check
	log    *logger.Logger
}

// NewRunner creates a Runner with the given checks.
func NewRunner(checks ...Check) *Runner {
	return &Runner{
		checks: checks,
		log:    logger.Get("preflight"),
	}
}

// Add appends a check.
func (r *Runner) Add(c Check) {
	r.checks = append(r.checks, c)
}

// Run executes all checks. Every check runs even after a failure so the
// operator sees the full list of problems at once; only fatal failures make
// Run return an error.
func (r *Runner) Run(ctx context.Context) error {
	var failures []string
	for _, c := range r.checks {
		err := c.Run(ctx)
		if err == nil {
			r.log.Debug("Preflight check passed", map[string]interface{}{
				"check": c.Name,
			})
			continue
		}

		if c.Fatal {
			r.log.Error("Preflight check failed", map[string]interface{}{
				"check": c.Name,
				"error": err.Error(),
			})
			failures = append(failures, fmt.Sprintf("%s: %v", c.Name, err))
		} else {
			r.log.Warn("Preflight check failed (advisory)", map[string]interface{}{
				"check": c.Name,
				"error": err.Error(),
			})
		}
	}

	if len(failures) > 0 {
		return fmt.Errorf("preflight: %d check(s) failed: %s", len(failures), strings.Join(failures, "; "))
	}
	return nil
}

// ScratchDirWritable verifies the scratch directory exists and accepts new
// files. An empty dir means the OS temp directory.
func ScratchDirWritable(dir string) Check {
	return Check{
		Name:  "scratch-dir-writable",
		Fatal: true,
		Run: func(ctx context.Context) error {
			if dir == "" {
				dir = os.TempDir()
			}
			f, err := os.CreateTemp(dir, "preflight-*.wav")
			if err != nil {
				return fmt.Errorf("cannot create files in %s: %w", dir, err)
			}
			name := f.Name()
			f.Close()
			if err := os.Remove(name); err != nil {
				return fmt.Errorf("cannot remove files in %s: %w", filepath.Dir(name), err)
			}
			return nil
		},
	}
}

// PortFree verifies the listen port is not already bound.
func PortFree(host string, port int) Check {
	return Check{
		Name:  "port-free",
		Fatal: true,
		Run: func(ctx context.Context) error {
			addr := fmt.Sprintf("%s:%d", host, port)
			l, err := net.Listen("tcp", addr)
			if err != nil {
				return fmt.Errorf("cannot bind %s: %w", addr, err)
			}
			return l.Close()
		},
	}
}

// BackendRegistered verifies the configured backend has a registered
// factory. The auto backend only needs at least one registration.
func BackendRegistered(registry *provider.Registry[transcription.Provider], backend string) Check {
	return Check{
		Name:  "backend-registered",
		Fatal: true,
		Run: func(ctx context.Context) error {
			names := registry.List()
			if backend == transcription.BackendAuto {
				if len(names) == 0 {
					return fmt.Errorf("no backend factories registered")
				}
				return nil
			}
			for _, n := range names {
				if n == backend {
					return nil
				}
			}
			return fmt.Errorf("backend %q not registered (have: %s)", backend, strings.Join(names, ", "))
		},
	}
}
