// Package clone provides deep copying for a closed set of value shapes,
// plus a generic slice-chunking helper. It has no dependency on the forest
// container; the forest consumes it as its value-cloning capability.
//
// Deep copying is deliberately not open-ended reflection: the supported
// variants are enumerated in a type switch, and anything outside that set
// is returned unchanged. Callers with richer value types supply their own
// cloner.
package clone

import (
	"maps"
	"regexp"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
)

// Deep returns a structurally independent copy of v.
//
// The supported variants are:
//
//   - nil and scalars (booleans, numbers, strings): returned as-is
//   - map[string]any and map[string]string: reconstructed, values recursed
//   - []any: reconstructed, elements recursed
//   - time.Time and *time.Time: reconstructed timestamps
//   - *regexp.Regexp: recompiled from its source pattern
//   - mapset.Set[string]: a new set with the same members
//
// Values outside the set are returned unchanged, which for pointer or
// container types means the copy still shares them.
func Deep(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = Deep(val)
		}
		return out
	case map[string]string:
		return maps.Clone(t)
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = Deep(val)
		}
		return out
	case time.Time:
		return time.Unix(0, t.UnixNano()).In(t.Location())
	case *time.Time:
		if t == nil {
			return (*time.Time)(nil)
		}
		clone := time.Unix(0, t.UnixNano()).In(t.Location())
		return &clone
	case *regexp.Regexp:
		if t == nil {
			return (*regexp.Regexp)(nil)
		}
		return regexp.MustCompile(t.String())
	case mapset.Set[string]:
		out := mapset.NewSet[string]()
		for member := range t.Iter() {
			out.Add(member)
		}
		return out
	default:
		return v
	}
}

// Chunk splits s into consecutive slices of at most size elements.
// The final chunk holds the remainder. A nil or empty input yields nil,
// and size values below 1 are treated as 1. The chunks alias the input's
// backing array; they are views, not copies.
func Chunk[T any](s []T, size int) [][]T {
	if len(s) == 0 {
		return nil
	}
	if size < 1 {
		size = 1
	}
	out := make([][]T, 0, (len(s)+size-1)/size)
	for start := 0; start < len(s); start += size {
		end := start + size
		if end > len(s) {
			end = len(s)
		}
		out = append(out, s[start:end])
	}
	return out
}
