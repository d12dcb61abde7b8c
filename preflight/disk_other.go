//go:build !unix

package preflight

import "context"

// DiskSpace is a no-op on platforms without statfs.
func DiskSpace(dir string, minBytes uint64) Check {
	return Check{
		Name: "disk-space",
		Run:  func(ctx context.Context) error { return nil },
	}
}
