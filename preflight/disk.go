//go:build unix

package preflight

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// DiskSpace warns when the filesystem holding the scratch directory has less
// than minBytes available. Models and uploads both land there; running out
// mid-request produces confusing backend errors, so surface it early. The
// check is advisory.
func DiskSpace(dir string, minBytes uint64) Check {
	return Check{
		Name: "disk-space",
		Run: func(ctx context.Context) error {
			if dir == "" {
				dir = os.TempDir()
			}
			var st unix.Statfs_t
			if err := unix.Statfs(dir, &st); err != nil {
				return fmt.Errorf("statfs %s: %w", dir, err)
			}
			avail := st.Bavail * uint64(st.Bsize)
			if avail < minBytes {
				return fmt.Errorf("%s has %d bytes free, want at least %d", dir, avail, minBytes)
			}
			return nil
		},
	}
}
