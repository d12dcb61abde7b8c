package transcription

import "fmt"

// ExtractText derives the best-effort transcript string from a raw result.
// It never fails: unrecognized shapes fall back to the value's default
// string conversion.
//
// Object-like results prefer joining segment texts when a non-empty segment
// sequence is present, then the "text" field. Mapping-like results behave
// the same, except a missing or falsy "text" value — nil, empty string,
// false, numeric zero, empty container — falls back to the string conversion
// of the whole mapping (the original server leaked its internal
// representation here; the behavior is kept for compatibility).
func ExtractText(raw any) string {
	vw := resolve(raw)

	if vw.objectLike() {
		if segs := vw.segmentSlice(); len(segs) > 0 {
			return joinSegmentText(segs)
		}
		if t, ok := vw.fielder.Field("text"); ok {
			return toString(t)
		}
	}

	if vw.mappingLike() {
		if segs := vw.segmentSlice(); len(segs) > 0 {
			return joinSegmentText(segs)
		}
		if t, ok := vw.mapping["text"]; ok && !isFalsy(t) {
			return toString(t)
		}
		return fmt.Sprint(raw)
	}

	return fmt.Sprint(raw)
}

// ExtractSegments normalizes the raw result's segments. It returns nil —
// the explicit absence marker — when the result is nil, carries no segment
// sequence, or carries an empty one; it never returns a non-nil empty slice.
// Input order is preserved exactly.
func ExtractSegments(raw any) []Segment {
	if raw == nil {
		return nil
	}
	els := resolve(raw).segmentSlice()
	if len(els) == 0 {
		return nil
	}

	out := make([]Segment, 0, len(els))
	for _, el := range els {
		seg := Segment{Text: segmentText(el)}
		ev := resolve(el)
		if v, ok := ev.field("start"); ok {
			if f, ok := toFloat(v); ok {
				seg.Start = &f
			}
		}
		if v, ok := ev.field("end"); ok {
			if f, ok := toFloat(v); ok {
				seg.End = &f
			}
		}
		out = append(out, seg)
	}
	return out
}

// segmentText resolves the text of one raw segment: the "text" field when
// present, an empty string for mappings without one, and the default string
// conversion for anything else (bare strings pass through unchanged).
func segmentText(el any) string {
	ev := resolve(el)
	if ev.objectLike() {
		if t, ok := ev.fielder.Field("text"); ok {
			return toString(t)
		}
	}
	if ev.mappingLike() {
		if t, ok := ev.mapping["text"]; ok {
			return toString(t)
		}
		return ""
	}
	return fmt.Sprint(el)
}

func joinSegmentText(els []any) string {
	var out string
	for i, el := range els {
		if i > 0 {
			out += " "
		}
		out += segmentText(el)
	}
	return out
}
