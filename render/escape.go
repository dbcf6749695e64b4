package render

import "strings"

// escapeText escapes text for safe inclusion in HTML/XML content. Text
// and attribute values share one entity set here, including the quote
// character, so a quote inside a text child still renders as &quot;.
func escapeText(s string) string {
	return escapeEntities(s)
}

// escapeAttr escapes a string for safe inclusion inside a double-quoted
// attribute value. Same entity set as escapeText.
func escapeAttr(s string) string {
	return escapeEntities(s)
}

func escapeEntities(s string) string {
	if !strings.ContainsAny(s, "&<>\"") {
		return s
	}
	var buf strings.Builder
	buf.Grow(len(s))
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}
