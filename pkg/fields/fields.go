// Package fields probes loosely-typed gateway payloads for values stored
// under any of several synonymous field names. Gateway responses are
// consumed as black-box contracts, so field names vary by endpoint version.
package fields

import (
	"fmt"
	"strconv"
)

// First returns the value of the first key present in the map.
func First(m map[string]any, keys ...string) (any, bool) {
	for _, key := range keys {
		if v, ok := m[key]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// Float coerces a decoded JSON value to float64. Strings are parsed;
// anything unparseable coerces to 0.
func Float(v any) float64 {
	switch value := v.(type) {
	case float64:
		return value
	case int:
		return float64(value)
	case string:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// String renders a decoded JSON scalar as text. Nil renders empty.
func String(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	default:
		return fmt.Sprintf("%v", value)
	}
}
