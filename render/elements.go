package render

import "strings"

// voidElements cannot have children and have no closing tag; self-closing
// in HTML5. Keyed by lowercased tag name.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"keygen": true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

func isVoidElement(tag string) bool {
	return voidElements[strings.ToLower(tag)]
}

func isSVGTag(tag string) bool {
	return strings.EqualFold(tag, "svg")
}

func isForeignObjectTag(tag string) bool {
	return strings.EqualFold(tag, "foreignObject")
}
