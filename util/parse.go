package util

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseSize converts a human-readable size string like "25MB", "1.5GB", or
// "512" (bare bytes) into a byte count. Units are case-insensitive and
// base-2 (KB = 1024 bytes).
func ParseSize(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty size string")
	}

	upper := strings.ToUpper(s)
	multiplier := int64(1)
	numPart := upper

	units := []struct {
		suffix string
		factor int64
	}{
		{"TB", 1 << 40},
		{"GB", 1 << 30},
		{"MB", 1 << 20},
		{"KB", 1 << 10},
		{"B", 1},
	}
	for _, u := range units {
		if strings.HasSuffix(upper, u.suffix) {
			multiplier = u.factor
			numPart = strings.TrimSpace(strings.TrimSuffix(upper, u.suffix))
			break
		}
	}

	value, err := strconv.ParseFloat(numPart, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	if value < 0 {
		return 0, fmt.Errorf("invalid size %q: must be non-negative", s)
	}

	return int64(value * float64(multiplier)), nil
}
