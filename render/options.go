package render

// Options is immutable, per-render configuration passed down the walk.
// The zero value is a fully valid default: HTML mode, insertion-order (or
// sorted, if AttrOrder is absent) attributes, no shallow stop.
type Options struct {
	// Shallow stops expansion at the first encountered component node,
	// emitting it as a tag named after its display name. The outermost
	// component is always expanded once first; see ShallowHighOrder.
	Shallow bool

	// ShallowHighOrder, when Shallow is set, additionally expands the
	// first component found inside the outermost component's own output
	// before stopping.
	ShallowHighOrder bool

	// XML switches to XML serialization: any empty element self-closes,
	// boolean-true attributes become name="name", and the HTML
	// void-element policy is disabled.
	XML bool

	// SortAttributes emits attributes in ascending lexicographic order
	// even when VNode.AttrOrder is set. Without AttrOrder the order is
	// sorted either way, since Go map iteration is not stable.
	SortAttributes bool

	// Pretty is reserved. When unset (the default and only supported
	// value), no whitespace is inserted between elements beyond what the
	// caller's own text/attribute values contain.
	Pretty bool
}
