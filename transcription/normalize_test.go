package transcription

import (
	"fmt"
	"testing"
)

// objResult is an object-like raw result for tests.
type objResult map[string]any

func (o objResult) Field(name string) (any, bool) {
	v, ok := o[name]
	return v, ok
}

func TestExtractTextMappingTextOnly(t *testing.T) {
	raw := map[string]any{"text": "hallo welt"}
	if got := ExtractText(raw); got != "hallo welt" {
		t.Errorf("ExtractText = %q", got)
	}
}

func TestExtractTextSegmentsWinOverText(t *testing.T) {
	raw := map[string]any{
		"text": "ignored",
		"segments": []any{
			map[string]any{"text": "first"},
			map[string]any{"text": "second"},
		},
	}
	if got := ExtractText(raw); got != "first second" {
		t.Errorf("ExtractText = %q, want segment join", got)
	}
}

func TestExtractTextObjectLike(t *testing.T) {
	raw := objResult{"text": "from object"}
	if got := ExtractText(raw); got != "from object" {
		t.Errorf("ExtractText = %q", got)
	}

	withSegs := objResult{
		"text":     "ignored",
		"segments": []any{map[string]any{"text": "a"}, map[string]any{"text": "b"}},
	}
	if got := ExtractText(withSegs); got != "a b" {
		t.Errorf("ExtractText = %q, want segment join", got)
	}
}

func TestExtractTextMappingFallbackLeaksRepresentation(t *testing.T) {
	// A mapping without usable text falls back to the default string
	// conversion of the whole map.
	raw := map[string]any{"foo": "bar"}
	want := fmt.Sprint(raw)
	if got := ExtractText(raw); got != want {
		t.Errorf("ExtractText = %q, want %q", got, want)
	}

	// Falsy text values take the same fallback as a missing key; truthy
	// non-string values convert.
	for _, tt := range []struct {
		name     string
		text     any
		fallback bool
	}{
		{"empty string", "", true},
		{"nil", nil, true},
		{"zero int", 0, true},
		{"zero float", 0.0, true},
		{"false", false, true},
		{"empty slice", []any{}, true},
		{"nonzero int", 7, false},
		{"true", true, false},
	} {
		raw := map[string]any{"text": tt.text}
		got := ExtractText(raw)
		if tt.fallback {
			if got != fmt.Sprint(raw) {
				t.Errorf("%s: ExtractText = %q, want map representation", tt.name, got)
			}
		} else if got != fmt.Sprint(tt.text) {
			t.Errorf("%s: ExtractText = %q, want %q", tt.name, got, fmt.Sprint(tt.text))
		}
	}
}

func TestExtractTextScalars(t *testing.T) {
	if got := ExtractText("bare string"); got != "bare string" {
		t.Errorf("ExtractText(string) = %q", got)
	}
	if got := ExtractText(42); got != "42" {
		t.Errorf("ExtractText(int) = %q", got)
	}
	if got := ExtractText(nil); got != "<nil>" {
		t.Errorf("ExtractText(nil) = %q, want <nil>", got)
	}
}

func TestExtractSegmentsAbsence(t *testing.T) {
	cases := []struct {
		name string
		raw  any
	}{
		{"nil result", nil},
		{"no segments key", map[string]any{"text": "x"}},
		{"nil segments", map[string]any{"segments": nil}},
		{"empty segments", map[string]any{"segments": []any{}}},
		{"scalar", "just text"},
		{"non-slice segments", map[string]any{"segments": 7}},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractSegments(tt.raw); got != nil {
				t.Errorf("ExtractSegments = %#v, want nil", got)
			}
		})
	}
}

func TestExtractSegmentsTimings(t *testing.T) {
	raw := map[string]any{
		"segments": []any{
			map[string]any{"text": "full", "start": 0.0, "end": 1.5},
			map[string]any{"text": "start only", "start": 2.0},
			map[string]any{"text": "end only", "end": 3.25},
			map[string]any{"text": "no timing"},
			map[string]any{"text": "bad timing", "start": "soon", "end": true},
		},
	}

	segs := ExtractSegments(raw)
	if len(segs) != 5 {
		t.Fatalf("len = %d, want 5", len(segs))
	}

	if segs[0].Start == nil || *segs[0].Start != 0.0 || segs[0].End == nil || *segs[0].End != 1.5 {
		t.Errorf("segment 0 timing = %+v", segs[0])
	}
	if segs[1].Start == nil || *segs[1].Start != 2.0 || segs[1].End != nil {
		t.Errorf("segment 1 timing = %+v", segs[1])
	}
	if segs[2].Start != nil || segs[2].End == nil || *segs[2].End != 3.25 {
		t.Errorf("segment 2 timing = %+v", segs[2])
	}
	if segs[3].Start != nil || segs[3].End != nil {
		t.Errorf("segment 3 timing = %+v", segs[3])
	}
	if segs[4].Start != nil || segs[4].End != nil {
		t.Errorf("segment 4 non-numeric timing must be absent: %+v", segs[4])
	}
}

func TestExtractSegmentsOrderPreserved(t *testing.T) {
	const n = 100
	els := make([]any, n)
	for i := range els {
		els[i] = map[string]any{"text": fmt.Sprintf("s%03d", i), "start": float64(i)}
	}
	raw := map[string]any{"segments": els}

	segs := ExtractSegments(raw)
	if len(segs) != n {
		t.Fatalf("len = %d, want %d", len(segs), n)
	}
	for i, s := range segs {
		if want := fmt.Sprintf("s%03d", i); s.Text != want {
			t.Fatalf("segment %d text = %q, want %q", i, s.Text, want)
		}
		if s.Start == nil || *s.Start != float64(i) {
			t.Fatalf("segment %d start = %v", i, s.Start)
		}
	}
}

func TestExtractSegmentsShapes(t *testing.T) {
	raw := map[string]any{
		"segments": []any{
			"bare string segment",
			map[string]any{"no_text_key": true},
			objResult{"text": "object segment", "start": 1, "end": int64(2)},
			3.14,
		},
	}

	segs := ExtractSegments(raw)
	if len(segs) != 4 {
		t.Fatalf("len = %d, want 4", len(segs))
	}
	if segs[0].Text != "bare string segment" {
		t.Errorf("bare string: %+v", segs[0])
	}
	if segs[1].Text != "" {
		t.Errorf("mapping without text must yield empty text: %+v", segs[1])
	}
	if segs[2].Text != "object segment" || segs[2].Start == nil || *segs[2].Start != 1 || segs[2].End == nil || *segs[2].End != 2 {
		t.Errorf("object segment: %+v", segs[2])
	}
	if segs[3].Text != "3.14" {
		t.Errorf("scalar segment: %+v", segs[3])
	}
}

func TestExtractSegmentsTypedSlice(t *testing.T) {
	// Backends with typed results may hand over []map[string]any instead of
	// []any; reflection bridges the gap.
	raw := map[string]any{
		"segments": []map[string]any{
			{"text": "a"},
			{"text": "b"},
		},
	}
	segs := ExtractSegments(raw)
	if len(segs) != 2 || segs[0].Text != "a" || segs[1].Text != "b" {
		t.Errorf("typed slice segments = %+v", segs)
	}
}

func TestExtractTextSegmentJoinUsesSingleSpaces(t *testing.T) {
	raw := map[string]any{
		"segments": []any{
			map[string]any{"text": " padded "},
			map[string]any{"text": "next"},
		},
	}
	// Join is mechanical; whitespace is CleanText's job.
	if got := ExtractText(raw); got != " padded  next" {
		t.Errorf("ExtractText = %q", got)
	}
	if got := CleanText(ExtractText(raw)); got != "padded next" {
		t.Errorf("cleaned = %q", got)
	}
}
