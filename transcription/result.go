package transcription

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// Fielder is implemented by raw results (and raw segments) that expose named
// fields, analogous to attribute access on a dynamic object. Field returns
// the value and whether the field exists.
type Fielder interface {
	Field(name string) (any, bool)
}

// view is a raw value resolved once into its shape cases: object-like
// (Fielder), mapping-like (map[string]any), or scalar (everything else).
// A value may be both object-like and mapping-like; field lookups consult
// the Fielder first and fall back to the map.
type view struct {
	fielder Fielder
	mapping map[string]any
	raw     any
}

func resolve(v any) view {
	vw := view{raw: v}
	if f, ok := v.(Fielder); ok {
		vw.fielder = f
	}
	if m, ok := v.(map[string]any); ok {
		vw.mapping = m
	}
	return vw
}

func (v view) objectLike() bool  { return v.fielder != nil }
func (v view) mappingLike() bool { return v.mapping != nil }

func (v view) field(name string) (any, bool) {
	if v.fielder != nil {
		if val, ok := v.fielder.Field(name); ok {
			return val, true
		}
	}
	if v.mapping != nil {
		if val, ok := v.mapping[name]; ok {
			return val, true
		}
	}
	return nil, false
}

// segmentSlice returns the raw segments of a result as a generic slice, or
// nil when the result carries no (or an empty) segment sequence.
func (v view) segmentSlice() []any {
	val, ok := v.field("segments")
	if !ok || val == nil {
		return nil
	}
	return toSlice(val)
}

// toSlice converts any slice or array value to []any without panicking on
// other kinds.
func toSlice(v any) []any {
	if s, ok := v.([]any); ok {
		return s
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

// toString renders a field value as text. Strings pass through unchanged;
// nil becomes empty; anything else uses the default string conversion.
func toString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}

// isFalsy reports whether a field value would fail a truthiness test: nil,
// empty strings, false, numeric zero, and empty containers are all falsy.
func isFalsy(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case bool:
		return !t
	}
	if f, ok := toFloat(v); ok {
		return f == 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	}
	return false
}

// toFloat converts the numeric representations seen in decoded JSON and
// typed backend results to float64. Non-numeric values report false.
func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint:
		return float64(t), true
	case uint32:
		return float64(t), true
	case uint64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
