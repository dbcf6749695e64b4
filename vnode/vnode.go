package vnode

// VNode is a lightweight descriptor of an element, component, or text
// node, the unit of the renderer's input tree.
//
// NodeName is either a string tag ("div", "svg", …) or a component
// descriptor: *Func for a functional component, or a Class for a classful
// one. Attributes may be nil. Children items may be a *VNode, a primitive
// (string, a numeric type, bool, nil), or a []any nested sequence.
type VNode struct {
	NodeName   any
	Attributes map[string]any
	Children   []any

	// AttrOrder, if non-nil, records Attributes' insertion order. Go maps
	// have no iteration order, so a caller that wants insertion-order
	// attribute output (the default when Options.SortAttributes is false)
	// must populate this alongside Attributes. When nil, the renderer
	// falls back to a sorted, deterministic order.
	AttrOrder []string
}

// Key returns the reconciliation key for this node, if one was set via the
// "key" attribute. The renderer itself never uses this for diffing (no
// diffing is in scope) but surfaces it for completeness and because
// AttrSerializer must know to skip it.
func (v *VNode) Key() (string, bool) {
	if v == nil || v.Attributes == nil {
		return "", false
	}
	k, ok := v.Attributes["key"]
	if !ok {
		return "", false
	}
	s, ok := k.(string)
	return s, ok
}

// Tag returns the string tag name and true when NodeName is a plain
// element tag rather than a component descriptor.
func (v *VNode) Tag() (string, bool) {
	if v == nil {
		return "", false
	}
	tag, ok := v.NodeName.(string)
	return tag, ok
}

// IsComponent reports whether NodeName is a component descriptor (*Func or
// a Class), as opposed to a plain element tag.
func (v *VNode) IsComponent() bool {
	if v == nil {
		return false
	}
	switch v.NodeName.(type) {
	case *Func, Class:
		return true
	default:
		return false
	}
}
