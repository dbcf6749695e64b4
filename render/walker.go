package render

import (
	"fmt"
	"strings"

	"github.com/streamvdom/ssrender/vnode"
)

// walker drives the recursive emission of a VNode tree into a
// streamDriver. It carries the options for the whole render and reports
// back to optional instrumentation hooks (nil by default, see
// metrics.go and tracing.go).
type walker struct {
	driver *streamDriver
	opts   Options
	hooks  walkerHooks
}

// walkerHooks lets Instrumentation observe element/component boundaries
// without the core traversal depending on prometheus or otel directly.
// Each hook, if set, is invoked as the boundary is crossed and may return
// an "end" closure invoked once that node's subtree has been fully
// emitted (used by tracing.go to size a span around the whole subtree);
// a nil return means "nothing to do at the end".
type walkerHooks struct {
	onElement   func(tag string) func()
	onComponent func(name string, err *error) func()
}

func (h walkerHooks) element(tag string) func() {
	if h.onElement == nil {
		return func() {}
	}
	if end := h.onElement(tag); end != nil {
		return end
	}
	return func() {}
}

func (h walkerHooks) component(name string, errp *error) func() {
	if h.onComponent == nil {
		return func() {}
	}
	if end := h.onComponent(name, errp); end != nil {
		return end
	}
	return func() {}
}

func (w *walker) walk(item any, ctx vnode.Context, svgDepth, componentDepth int) error {
	switch v := item.(type) {
	case nil:
		return nil
	case bool:
		return nil // both true and false emit nothing
	case string:
		w.driver.emit(escapeText(v))
		return nil
	case []any:
		for _, child := range v {
			if err := w.walk(child, ctx, svgDepth, componentDepth); err != nil {
				return err
			}
		}
		return nil
	case *vnode.VNode:
		return w.walkVNode(v, ctx, svgDepth, componentDepth)
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		w.driver.emit(escapeText(fmt.Sprint(v)))
		return nil
	default:
		w.driver.emit(escapeText(fmt.Sprint(v)))
		return nil
	}
}

func (w *walker) walkVNode(v *vnode.VNode, ctx vnode.Context, svgDepth, componentDepth int) error {
	if v == nil {
		return nil
	}
	if tag, ok := v.Tag(); ok {
		return w.walkElement(v, tag, ctx, svgDepth, componentDepth)
	}
	if v.IsComponent() {
		return w.walkComponent(v, ctx, svgDepth, componentDepth)
	}
	return invalidNodeError(v.NodeName)
}

func (w *walker) walkElement(v *vnode.VNode, tag string, ctx vnode.Context, svgDepth, componentDepth int) error {
	if err := w.driver.boundary(); err != nil {
		return err
	}
	end := w.hooks.element(tag)
	defer end()

	childSVGDepth := svgDepth
	if isSVGTag(tag) {
		childSVGDepth = svgDepth + 1
	}
	if isForeignObjectTag(tag) {
		childSVGDepth = 0
	}

	w.driver.emit("<" + tag)
	w.emitAttributes(v, childSVGDepth)

	if raw, ok := rawInnerHTML(v); ok {
		w.driver.emit(">")
		w.driver.emit(raw)
		w.driver.emit("</" + tag + ">")
		return nil
	}

	empty := len(v.Children) == 0

	if w.opts.XML && empty {
		w.driver.emit(" />")
		return nil
	}
	if !w.opts.XML && isVoidElement(tag) {
		// Void elements self-close even when non-empty; their children,
		// if any, render as siblings rather than contents.
		w.driver.emit(" />")
		return w.walkChildren(v.Children, ctx, childSVGDepth, componentDepth)
	}

	w.driver.emit(">")
	if err := w.walkChildren(v.Children, ctx, childSVGDepth, componentDepth); err != nil {
		return err
	}
	w.driver.emit("</" + tag + ">")
	return nil
}

func (w *walker) walkComponent(v *vnode.VNode, ctx vnode.Context, svgDepth, componentDepth int) error {
	expand := !w.opts.Shallow || componentDepth == 0 || (w.opts.ShallowHighOrder && componentDepth == 1)

	if expand {
		if err := w.driver.boundary(); err != nil {
			return err
		}
		var runErr error
		end := w.hooks.component(displayNameOf(v.NodeName), &runErr)
		defer end()

		res, err := runComponent(v, ctx)
		if err != nil {
			runErr = err
			return err
		}
		err = w.walk(res.child, res.childCtx, svgDepth, componentDepth+1)
		runErr = err
		return err
	}

	// Shallow stop: render a pseudo-element from the node's own
	// attributes/children, without invoking Render.
	name := displayNameOf(v.NodeName)
	if err := w.driver.boundary(); err != nil {
		return err
	}
	end := w.hooks.element(name)
	defer end()
	w.driver.emit("<" + name)
	w.emitAttributes(v, svgDepth)
	w.driver.emit(">")
	if err := w.walkChildren(v.Children, ctx, svgDepth, componentDepth+1); err != nil {
		return err
	}
	w.driver.emit("</" + name + ">")
	return nil
}

func (w *walker) walkChildren(children []any, ctx vnode.Context, svgDepth, componentDepth int) error {
	for _, c := range children {
		if err := w.walk(c, ctx, svgDepth, componentDepth); err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) emitAttributes(v *vnode.VNode, svgDepth int) {
	var buf strings.Builder
	writeAttributes(&buf, v, w.opts, svgDepth)
	w.driver.emit(buf.String())
}

func rawInnerHTML(v *vnode.VNode) (string, bool) {
	raw, ok := v.Attributes["dangerouslySetInnerHTML"]
	if !ok {
		return "", false
	}
	switch r := raw.(type) {
	case map[string]any:
		html, ok := r["__html"].(string)
		return html, ok
	case string:
		return r, true
	default:
		return "", false
	}
}
