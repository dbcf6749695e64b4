package render

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/streamvdom/ssrender/vnode"
)

// skippedAttrNames are never emitted: they are consumed elsewhere in the
// walk (key/ref for reconciliation metadata the renderer doesn't use,
// children and dangerouslySetInnerHTML handled directly by the walker).
var skippedAttrNames = map[string]bool{
	"key":                     true,
	"ref":                     true,
	"children":                true,
	"dangerouslySetInnerHTML": true,
}

// writeAttributes serializes every attribute on node, in the order
// dictated by Options.SortAttributes and VNode.AttrOrder, routing
// class/className and style through their dedicated resolvers and
// rewriting xlinkXxx names when svgDepth indicates we are inside an SVG
// subtree.
func writeAttributes(buf *strings.Builder, node *vnode.VNode, opts Options, svgDepth int) {
	if len(node.Attributes) == 0 {
		return
	}

	keys := orderedAttrKeys(node, opts)
	classHandled := false
	for _, name := range keys {
		if name == "class" || name == "className" {
			if classHandled {
				continue
			}
			classHandled = true
			if resolved, ok := resolveClass(node.Attributes["class"], node.Attributes["className"]); ok {
				emitStringAttr(buf, "class", resolved, opts)
			}
			continue
		}

		value, present := node.Attributes[name]
		if !present || skippedAttrNames[name] {
			continue
		}
		writeAttr(buf, name, value, opts, svgDepth)
	}
}

// orderedAttrKeys resolves the attribute emission order: sorted when
// SortAttributes is set or no explicit order was recorded (Go maps have
// no iteration order of their own, so "insertion order" without AttrOrder
// would otherwise be nondeterministic across runs), otherwise AttrOrder
// followed by any remaining keys, sorted, as a safety net.
func orderedAttrKeys(node *vnode.VNode, opts Options) []string {
	all := make([]string, 0, len(node.Attributes))
	for k := range node.Attributes {
		all = append(all, k)
	}

	if opts.SortAttributes || len(node.AttrOrder) == 0 {
		sort.Strings(all)
		return all
	}

	seen := make(map[string]bool, len(node.AttrOrder))
	ordered := make([]string, 0, len(all))
	for _, k := range node.AttrOrder {
		if _, ok := node.Attributes[k]; ok && !seen[k] {
			ordered = append(ordered, k)
			seen[k] = true
		}
	}
	var rest []string
	for _, k := range all {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(ordered, rest...)
}

func writeAttr(buf *strings.Builder, name string, value any, opts Options, svgDepth int) {
	if value == nil || isFuncValue(value) {
		return
	}
	if b, ok := value.(bool); ok && !b {
		return
	}

	if name == "style" {
		writeStyleAttr(buf, value, opts)
		return
	}

	emitted := rewriteXlinkName(name, svgDepth)

	switch v := value.(type) {
	case bool: // only true reaches here, false was skipped above
		if opts.XML {
			emitStringAttr(buf, emitted, emitted, opts)
		} else {
			writeBareAttr(buf, emitted)
		}
	case string:
		emitStringAttr(buf, emitted, v, opts)
	default:
		emitStringAttr(buf, emitted, fmt.Sprint(v), opts)
	}
}

// writeStyleAttr handles the "style" attribute specially: a map or Style
// value is serialized via the StyleSerializer and, if empty, suppresses
// the attribute entirely; a plain string is treated as an ordinary
// attribute value (so style="" still collapses to a bare attribute, like
// any other empty string, per AttrSerializer's general rule).
func writeStyleAttr(buf *strings.Builder, value any, opts Options) {
	switch v := value.(type) {
	case string:
		emitStringAttr(buf, "style", v, opts)
	case map[string]any, Style:
		css := serializeStyle(v)
		if css == "" {
			return
		}
		emitStringAttr(buf, "style", css, opts)
	}
}

// emitStringAttr applies the collapse rules shared by every string-valued
// attribute (including the class and style values resolved above): a
// bare attribute in HTML mode when the value is empty or equals its own
// name, otherwise a quoted, entity-encoded fragment.
func emitStringAttr(buf *strings.Builder, name, value string, opts Options) {
	if !opts.XML && (value == "" || value == name) {
		writeBareAttr(buf, name)
		return
	}
	if opts.XML && value == "" {
		fmt.Fprintf(buf, ` %s=""`, name)
		return
	}
	fmt.Fprintf(buf, ` %s="%s"`, name, escapeAttr(value))
}

func writeBareAttr(buf *strings.Builder, name string) {
	buf.WriteByte(' ')
	buf.WriteString(name)
}

// rewriteXlinkName rewrites xlinkHref (and any other xlinkXxx attribute)
// to its xlink:xxx wire form, but only inside an SVG subtree.
func rewriteXlinkName(name string, svgDepth int) string {
	if svgDepth == 0 || !strings.HasPrefix(name, "xlink") || len(name) <= len("xlink") {
		return name
	}
	rest := name[len("xlink"):]
	return "xlink:" + strings.ToLower(rest[:1]) + rest[1:]
}

func isFuncValue(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.IsValid() && rv.Kind() == reflect.Func
}
