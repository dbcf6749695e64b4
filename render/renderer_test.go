package render

import (
	"errors"
	"testing"

	"github.com/streamvdom/ssrender/vnode"
)

func el(tag string, attrs map[string]any, order []string, children ...any) *vnode.VNode {
	return &vnode.VNode{NodeName: tag, Attributes: attrs, AttrOrder: order, Children: children}
}

func mustRender(t *testing.T, node *vnode.VNode, opts Options) string {
	t.Helper()
	out, err := RenderToString(node, nil, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return out
}

func TestRenderBasicElement(t *testing.T) {
	node := el("div", map[string]any{"class": "foo"}, []string{"class"}, "bar")
	got := mustRender(t, node, Options{})
	if got != `<div class="foo">bar</div>` {
		t.Errorf("got %q, want %q", got, `<div class="foo">bar</div>`)
	}
}

func TestRenderSkipsNilAndFalseAttributes(t *testing.T) {
	node := el("div", map[string]any{"a": nil, "b": nil, "c": false}, []string{"a", "b", "c"})
	got := mustRender(t, node, Options{})
	if got != "<div></div>" {
		t.Errorf("got %q, want %q", got, "<div></div>")
	}
}

func TestRenderBareAttributeCollapse(t *testing.T) {
	node := el("div", map[string]any{
		"class": "",
		"style": "",
		"foo":   true,
		"bar":   true,
	}, []string{"class", "style", "foo", "bar"})
	got := mustRender(t, node, Options{})
	if got != "<div class style foo bar></div>" {
		t.Errorf("got %q, want %q", got, "<div class style foo bar></div>")
	}
}

func TestRenderEntityEncoding(t *testing.T) {
	node := el("div", map[string]any{"a": `"<>&`}, []string{"a"}, `"<>&`)
	got := mustRender(t, node, Options{})
	want := `<div a="&quot;&lt;&gt;&amp;">&quot;&lt;&gt;&amp;</div>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderVoidElements(t *testing.T) {
	node := el("div", nil, nil,
		el("input", map[string]any{"type": "text"}, []string{"type"}),
		el("wbr", nil, nil),
	)
	got := mustRender(t, node, Options{})
	want := `<div><input type="text" /><wbr /></div>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderStyleObject(t *testing.T) {
	node := el("div", map[string]any{
		"style": Style{{Key: "color", Value: "red"}, {Key: "border", Value: "none"}},
	}, []string{"style"})
	got := mustRender(t, node, Options{})
	want := `<div style="color: red; border: none;"></div>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderEmptyStyleObjectSuppressesAttribute(t *testing.T) {
	node := el("div", map[string]any{"style": map[string]any{}}, []string{"style"})
	got := mustRender(t, node, Options{})
	if got != "<div></div>" {
		t.Errorf("empty style mapping must suppress the attribute, got %q", got)
	}
}

func TestRenderXlinkInsideSVG(t *testing.T) {
	node := el("svg", nil, nil,
		el("image", map[string]any{"xlinkHref": "#"}, []string{"xlinkHref"}),
	)
	got := mustRender(t, node, Options{})
	want := `<svg><image xlink:href="#"></image></svg>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderXMLBooleanAttributes(t *testing.T) {
	node := el("div", map[string]any{"foo": true, "bar": true}, []string{"foo", "bar"})
	got := mustRender(t, node, Options{XML: true})
	want := `<div foo="foo" bar="bar" />`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderDangerouslySetInnerHTMLReplacesChildren(t *testing.T) {
	node := el("div", map[string]any{
		"dangerouslySetInnerHTML": map[string]any{"__html": "<a>x</a>"},
	}, []string{"dangerouslySetInnerHTML"},
		el("b", nil, nil, "bar"),
	)
	got := mustRender(t, node, Options{})
	if got != "<div><a>x</a></div>" {
		t.Errorf("got %q, want %q", got, "<div><a>x</a></div>")
	}
}

func TestShallowRenderStopsAtFirstComponentChild(t *testing.T) {
	inner := &vnode.Func{
		Name: "Inner",
		Render: func(props vnode.Props, ctx vnode.Context) any {
			t.Error("Inner must not be expanded under shallow rendering")
			return nil
		},
	}
	outer := &vnode.Func{
		Name: "Outer",
		Render: func(props vnode.Props, ctx vnode.Context) any {
			return &vnode.VNode{
				NodeName: inner,
				Attributes: map[string]any{
					"a": props["b"],
					"b": props["b"],
					"p": props["p"],
				},
				AttrOrder: []string{"a", "b", "p"},
				Children: []any{
					"child ",
					el("span", nil, nil, props["children"]),
				},
			}
		},
	}
	node := &vnode.VNode{
		NodeName:   outer,
		Attributes: map[string]any{"a": "a", "b": "b", "p": 1},
		AttrOrder:  []string{"a", "b", "p"},
		Children:   []any{"foo"},
	}

	got, err := ShallowRender(node, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<Inner a="b" b="b" p="1">child <span>foo</span></Inner>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestShallowHighOrderExpandsOneLevelDeeper(t *testing.T) {
	leaf := &vnode.Func{
		Name: "Leaf",
		Render: func(props vnode.Props, ctx vnode.Context) any {
			t.Error("Leaf must not be expanded under shallowHighOrder")
			return nil
		},
	}
	inner := &vnode.Func{
		Name: "Inner",
		Render: func(props vnode.Props, ctx vnode.Context) any {
			return el("em", nil, nil, &vnode.VNode{NodeName: leaf})
		},
	}
	outer := &vnode.Func{
		Name: "Outer",
		Render: func(props vnode.Props, ctx vnode.Context) any {
			return &vnode.VNode{NodeName: inner}
		},
	}

	got := mustRender(t, &vnode.VNode{NodeName: outer}, Options{Shallow: true, ShallowHighOrder: true})
	if got != "<em><Leaf></Leaf></em>" {
		t.Errorf("got %q, want %q", got, "<em><Leaf></Leaf></em>")
	}
}

func TestRenderSortAttributes(t *testing.T) {
	node := el("div", map[string]any{"zeta": "1", "alpha": "2", "mid": "3"},
		[]string{"zeta", "mid", "alpha"})
	got := mustRender(t, node, Options{SortAttributes: true})
	want := `<div alpha="2" mid="3" zeta="1"></div>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderDeterministic(t *testing.T) {
	comp := &vnode.Func{
		Name: "Body",
		Render: func(props vnode.Props, ctx vnode.Context) any {
			return el("p", map[string]any{"class": "x", "id": "y"}, nil, "text")
		},
	}
	node := el("div", map[string]any{"style": map[string]any{"color": "red", "margin": "0"}}, nil,
		&vnode.VNode{NodeName: comp},
		el("hr", nil, nil),
	)
	first := mustRender(t, node, Options{})
	for i := 0; i < 10; i++ {
		if got := mustRender(t, node, Options{}); got != first {
			t.Fatalf("render %d differs: %q vs %q", i, got, first)
		}
	}
}

func TestRenderInvalidNodeName(t *testing.T) {
	node := &vnode.VNode{NodeName: 42}
	_, err := RenderToString(node, nil, Options{})
	var rerr *RenderError
	if !errors.As(err, &rerr) || rerr.Kind != KindInvalidNode {
		t.Fatalf("want InvalidNode error, got %v", err)
	}
}
