package transcription

import (
	"regexp"
	"strings"
)

var (
	// unkMarker matches the out-of-vocabulary placeholder emitted by speech
	// models, together with surrounding whitespace.
	unkMarker  = regexp.MustCompile(`(?i)\s*<unk>\s*`)
	whitespace = regexp.MustCompile(`\s+`)
)

// CleanText post-processes an extracted transcript: it removes every
// case-insensitive `<unk>` marker, collapses whitespace runs to a single
// space, and trims. CleanText is pure and idempotent.
func CleanText(text string) string {
	text = unkMarker.ReplaceAllString(text, " ")
	text = whitespace.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
