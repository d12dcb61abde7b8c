package util

// Coalesce returns the first non-empty string from the given values.
func Coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
