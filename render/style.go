package render

import (
	"fmt"
	"sort"
	"strings"
)

// StyleDecl is a single ordered CSS declaration. Use Style, a slice of
// these, in an element's "style" attribute when insertion order matters.
// Go maps have no iteration order, so map[string]any style values fall
// back to sorted key order (see serializeStyle) while Style preserves
// exactly the order given.
type StyleDecl struct {
	Key   string
	Value any
}

// Style is an ordered CSS declaration list, an alternative to
// map[string]any for callers that need deterministic, non-alphabetical
// declaration order in the serialized output.
type Style []StyleDecl

// serializeStyle converts a style value into a CSS declaration string:
// "k1: v1; k2: v2;" with a single trailing semicolon per declaration and a
// single space after each colon. An empty value serializes to the empty
// string, which the caller uses to suppress the style attribute entirely.
//
// A non-scalar declaration value is tolerated, never an error: it is
// stringified with fmt.Sprint.
func serializeStyle(style any) string {
	switch v := style.(type) {
	case Style:
		return serializeStyleDecls(v)
	case map[string]any:
		return serializeStyleMap(v)
	default:
		return ""
	}
}

func serializeStyleDecls(decls Style) string {
	if len(decls) == 0 {
		return ""
	}
	var buf strings.Builder
	for _, d := range decls {
		fmt.Fprintf(&buf, "%s: %v; ", d.Key, d.Value)
	}
	return strings.TrimSuffix(buf.String(), " ")
}

func serializeStyleMap(style map[string]any) string {
	if len(style) == 0 {
		return ""
	}
	keys := make([]string, 0, len(style))
	for k := range style {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&buf, "%s: %v; ", k, style[k])
	}
	return strings.TrimSuffix(buf.String(), " ")
}
