// Package render implements a streaming server-side renderer for the
// vnode package's VNode trees. It walks a tree in document order and
// emits well-formed HTML (or XML, with Options.XML) incrementally, so a
// consumer reading RenderToStream's output can begin receiving bytes
// before rendering finishes.
//
// The engine is single-threaded per render call: inputs are treated as
// immutable, component instances are private to the call, and no
// module-scope mutable state is kept between renders.
package render
