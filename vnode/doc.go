// Package vnode defines the data model the renderer walks: VNode trees,
// component descriptors (functional and classful), and the context map
// propagated down the walk.
//
// Everything here is treated as an immutable contract supplied by an
// external component library; this package ships only the types and the
// minimal embeddable Core needed to exercise componentWillMount,
// getChildContext and a synchronous forceUpdate, not a full component
// framework.
package vnode
