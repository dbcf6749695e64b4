package render

import (
	"sort"
	"strings"
)

// resolveClass merges "class"/"className" into a single class string.
// class wins over className when both are present and non-nil. A string
// value is used verbatim. A map[string]bool value is flattened into a
// space-joined list of the keys whose value is truthy.
//
// Map key order is sorted for determinism, for the same reason
// serializeStyle sorts: Go maps carry no iteration order. A caller that
// needs a specific class order should just pass a string.
func resolveClass(classVal, classNameVal any) (string, bool) {
	v := classVal
	if v == nil {
		v = classNameVal
	}
	switch c := v.(type) {
	case nil:
		return "", false
	case string:
		return c, true
	case map[string]bool:
		names := make([]string, 0, len(c))
		for name, on := range c {
			if on {
				names = append(names, name)
			}
		}
		sort.Strings(names)
		return strings.Join(names, " "), true
	case map[string]any:
		names := make([]string, 0, len(c))
		for name, val := range c {
			if truthy(val) {
				names = append(names, name)
			}
		}
		sort.Strings(names)
		return strings.Join(names, " "), true
	default:
		return "", false
	}
}

func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case int:
		return x != 0
	case float64:
		return x != 0
	default:
		return true
	}
}
