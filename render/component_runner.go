package render

import (
	"reflect"

	"github.com/streamvdom/ssrender/vnode"
)

// runResult is what ComponentRunner hands back to the walker.
type runResult struct {
	child       any
	childCtx    vnode.Context
	displayName string
}

// runComponent instantiates or invokes a component VNode, applies default
// props, runs the pre-mount lifecycle for classful components, and
// enforces the render-time state-locking contract: Core is locked before
// ComponentWillMount runs, so any SetState/ForceUpdate call during it is
// a synchronous merge with no second render. A panic anywhere in the
// component's lifecycle methods is recovered and re-raised as a
// ComponentError carrying the component's display name.
func runComponent(node *vnode.VNode, ctx vnode.Context) (result runResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = componentError(displayNameOf(node.NodeName), r)
		}
	}()

	props := mergeProps(node)

	switch desc := node.NodeName.(type) {
	case *vnode.Func:
		child := desc.Render(props, ctx)
		return runResult{child: child, childCtx: ctx, displayName: displayNameOf(desc)}, nil

	case vnode.Class:
		instance := desc.New()
		core := vnode.CoreOf(instance)
		core.Init(props, ctx)

		if wm, ok := instance.(vnode.WillMounter); ok {
			wm.ComponentWillMount()
		}

		childCtx := ctx
		if provider, ok := instance.(vnode.ChildContextProvider); ok {
			childCtx = ctx.Merge(provider.GetChildContext())
		}

		child := instance.Render()
		return runResult{child: child, childCtx: childCtx, displayName: displayNameOf(desc)}, nil

	default:
		return runResult{}, invalidNodeError(node.NodeName)
	}
}

// mergeProps merges a component's static default props under the VNode's
// own attributes (explicit props win) and injects "children" as a prop
// equal to the VNode's child sequence, flattened one level.
func mergeProps(node *vnode.VNode) vnode.Props {
	props := vnode.Props{}

	if dp, ok := node.NodeName.(vnode.DefaultPropsProvider); ok {
		for k, v := range dp.DefaultProps() {
			props[k] = v
		}
	}
	for k, v := range node.Attributes {
		props[k] = v
	}
	props["children"] = flattenOneLevel(node.Children)
	return props
}

func flattenOneLevel(children []any) []any {
	if children == nil {
		return nil
	}
	out := make([]any, 0, len(children))
	for _, c := range children {
		if nested, ok := c.([]any); ok {
			out = append(out, nested...)
			continue
		}
		out = append(out, c)
	}
	return out
}

// displayNameOf resolves a component descriptor's name for shallow
// rendering and error messages: an explicit DisplayNamer wins, otherwise
// the descriptor's reflected type name, falling back to "Component".
func displayNameOf(desc any) string {
	if named, ok := desc.(vnode.DisplayNamer); ok {
		if name := named.DisplayName(); name != "" {
			return name
		}
	}
	t := reflect.TypeOf(desc)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t != nil && t.Name() != "" {
		return t.Name()
	}
	return "Component"
}
