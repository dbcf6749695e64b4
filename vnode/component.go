package vnode

// Props holds the attributes (and the injected "children" key) passed to a
// component.
type Props map[string]any

// State holds a classful component's local state. It starts out as an
// empty, non-nil map for every new instance.
type State map[string]any

// Context is a mapping of ambient values propagated to descendants without
// passing through intermediate props. Propagation is one-way: Merge never
// writes into its receiver, so a child can never mutate an ancestor's view.
type Context map[string]any

// Merge returns a new Context equal to c with overrides layered on top.
// When overrides is empty it returns c itself rather than a copy. c itself
// is never mutated. A nil receiver behaves like an empty map.
func (c Context) Merge(overrides Context) Context {
	if len(overrides) == 0 {
		return c
	}
	out := make(Context, len(c)+len(overrides))
	for k, v := range c {
		out[k] = v
	}
	for k, v := range overrides {
		out[k] = v
	}
	return out
}

// Func wraps a functional component: a plain callable taking (props,
// context) and returning a child (a *VNode, a primitive, or a []any
// sequence).
type Func struct {
	// Render is the component body.
	Render func(props Props, ctx Context) any

	// Defaults are merged under the VNode's own attributes before Render
	// is invoked, so explicit props win.
	Defaults Props

	// Name is the component's display name, used when shallow rendering
	// stops expansion. If empty, the renderer falls back to the
	// descriptor's type name, "Func".
	Name string
}

// DefaultProps implements DefaultPropsProvider.
func (f *Func) DefaultProps() Props { return f.Defaults }

// DisplayName implements DisplayNamer.
func (f *Func) DisplayName() string { return f.Name }

// Class is a classful component constructor: a value that knows how to
// produce a fresh Instance for each render. Components with state embed
// *Core and satisfy this via a package-level value, e.g.:
//
//	type Greeting struct{ *vnode.Core }
//	func (Greeting) New() vnode.Instance { return &Greeting{Core: &vnode.Core{}} }
//	func (g *Greeting) Render() any { return "hi " + g.Props()["name"].(string) }
//	var GreetingComponent vnode.Class = Greeting{}
type Class interface {
	New() Instance
}

// Instance is a live classful component instance, created on demand by the
// walker and discarded once its subtree has been emitted.
type Instance interface {
	// Render produces this instance's rendered child. Props, State and
	// Context are available via the embedded Core's accessors rather than
	// as positional parameters; idiomatic Go favors method receivers
	// over a fixed (props, state, context) callback signature, and Core
	// already carries exactly that data.
	Render() any

	core() *Core
}

// WillMounter is implemented by classful components that need a callback
// invoked exactly once, before Render, with any state mutations requested
// during it (via SetState/ForceUpdate) taking effect but triggering no
// second render.
type WillMounter interface {
	ComponentWillMount()
}

// ChildContextProvider is implemented by classful components that extend
// the context mapping for their descendants.
type ChildContextProvider interface {
	GetChildContext() Context
}

// DefaultPropsProvider exposes static default props. Go has no notion of a
// static method on an instance type, so this is implemented by the Class
// value itself (the constructor), not by Instance.
type DefaultPropsProvider interface {
	DefaultProps() Props
}

// DisplayNamer overrides the reflection-derived display name used when
// shallow rendering stops expansion at a component boundary.
type DisplayNamer interface {
	DisplayName() string
}

// Core is the minimal embeddable base every classful component embeds. It
// holds the props/state/context slots described by the render context
// contract and implements the render-time state-locking contract: while
// locked, SetState and ForceUpdate only merge state synchronously and
// never schedule a second render, because no component may cause itself to
// re-render during a single server-side render pass.
type Core struct {
	props   Props
	state   State
	context Context
	locked  bool
}

func (c *Core) core() *Core { return c }

// Props returns the current props.
func (c *Core) Props() Props { return c.props }

// State returns the current state.
func (c *Core) State() State { return c.state }

// Context returns the current context.
func (c *Core) Context() Context { return c.context }

// SetState merges update into the current state. During a render pass
// (the only time SetState can be called, since instances are not kept
// between renders) this is always a synchronous merge; there is no
// scheduler to enqueue against.
func (c *Core) SetState(update State) {
	if c.state == nil {
		c.state = State{}
	}
	for k, v := range update {
		c.state[k] = v
	}
}

// ForceUpdate is a no-op beyond what SetState already does: server-side
// rendering calls Render exactly once regardless of how many times
// ForceUpdate or SetState are invoked during componentWillMount.
func (c *Core) ForceUpdate() {}

// CoreOf extracts the *Core embedded in a live Instance. Only package
// render calls this, right after constructing an Instance and before
// running any lifecycle method, so it can initialize props/state/context
// and lock the instance against re-entrant scheduling.
func CoreOf(instance Instance) *Core {
	return instance.core()
}

// Init wires props and context onto the Core and locks it against
// scheduling before the component's lifecycle methods run. Called by
// ComponentRunner once per instance; components never call this
// themselves.
func (c *Core) Init(props Props, ctx Context) {
	c.props = props
	c.state = State{}
	c.context = ctx
	c.locked = true
}
