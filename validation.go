package geokml

import (
	"reflect"

	"github.com/paulmach/orb"
)

// Kind identifies the base primitive a leaf value must collapse to before a
// homogeneity check.
type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindString
	KindBool
	KindGeometry
)

// DimensionalCount recursively determines the nesting depth of a value.
//
//	0: not a sequence (string, number, bool, geometry)
//	1: a flat sequence; an empty sequence is depth 1, never 0
//	2: a sequence of sequences
//	3: ... and so on, the depth of the deepest element plus one
//
// Geometries count as leaf values even though orb models them as slices.
func DimensionalCount(value interface{}) int {
	if _, ok := value.(orb.Geometry); ok {
		return 0
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return 0
	}
	deepest := 0
	for i := 0; i < rv.Len(); i++ {
		if d := DimensionalCount(rv.Index(i).Interface()); d > deepest {
			deepest = d
		}
	}
	return 1 + deepest
}

// IterableSpecificType reports whether value is a flat or singly-nested
// sequence whose every leaf element is of the target kind, after collapsing
// fixed-width numeric variants to their base primitive. Depth 0 and depth
// >= 3 inputs are rejected, never raised.
func IterableSpecificType(value interface{}, kind Kind) bool {
	depth := DimensionalCount(value)
	if depth < 1 || depth > 2 {
		return false
	}
	items, _ := asSlice(value)
	for _, item := range items {
		if nested, ok := asSlice(item); ok {
			for _, leaf := range nested {
				if !matchesKind(leaf, kind) {
					return false
				}
			}
			continue
		}
		if !matchesKind(item, kind) {
			return false
		}
	}
	return true
}

// ValueRange8Bit reports whether value lies in the closed byte range 0..255.
func ValueRange8Bit(value float64) bool {
	return 0 <= value && value <= 255
}

// ValueRange1 reports whether value lies in the closed unit interval 0..1.
func ValueRange1(value float64) bool {
	return 0 <= value && value <= 1
}

// normalizePrimitive collapses fixed-width numeric variants to their base
// primitive. The accepted source representations are enumerated here;
// anything else passes through untouched.
func normalizePrimitive(value interface{}) interface{} {
	switch v := value.(type) {
	case int8:
		return int(v)
	case int16:
		return int(v)
	case int32:
		return int(v)
	case int64:
		return int(v)
	case uint:
		return int(v)
	case uint8:
		return int(v)
	case uint16:
		return int(v)
	case uint32:
		return int(v)
	case uint64:
		return int(v)
	case float32:
		return float64(v)
	default:
		return value
	}
}

// matchesKind checks one normalized leaf against the target kind.
func matchesKind(value interface{}, kind Kind) bool {
	value = normalizePrimitive(value)
	switch kind {
	case KindInt:
		_, ok := value.(int)
		return ok
	case KindFloat:
		_, ok := value.(float64)
		return ok
	case KindString:
		_, ok := value.(string)
		return ok
	case KindBool:
		_, ok := value.(bool)
		return ok
	case KindGeometry:
		_, ok := value.(orb.Geometry)
		return ok
	}
	return false
}

// asSlice flattens one level of any slice or array into []interface{}.
// Geometries are leaves, not sequences.
func asSlice(value interface{}) ([]interface{}, bool) {
	if _, ok := value.(orb.Geometry); ok {
		return nil, false
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]interface{}, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// asFloat widens any normalized numeric to float64 for range checks.
func asFloat(value interface{}) (float64, bool) {
	switch v := normalizePrimitive(value).(type) {
	case int:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}
