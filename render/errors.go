package render

import "fmt"

// Kind categorizes a RenderError, matching the three kinds the rendering
// engine can raise.
type Kind string

const (
	// KindInvalidNode means a VNode's NodeName was neither a string tag
	// nor a recognized component descriptor.
	KindInvalidNode Kind = "InvalidNode"

	// KindComponentError means a component's lifecycle method panicked.
	KindComponentError Kind = "ComponentError"

	// KindSinkError means the output sink returned an error or its write
	// failed; the walk is aborted.
	KindSinkError Kind = "SinkError"
)

// RenderError is the structured error raised by the rendering engine. It
// carries enough context to identify where in the tree a failure
// occurred without needing to parse a message string.
type RenderError struct {
	Kind Kind

	// Component is the display name of the component involved, when
	// Kind is KindComponentError. Empty otherwise.
	Component string

	// Err is the underlying cause: the original panic value for
	// KindComponentError, the sink's error for KindSinkError, and an
	// error describing the offending NodeName for KindInvalidNode.
	Err error
}

func (e *RenderError) Error() string {
	switch e.Kind {
	case KindComponentError:
		return fmt.Sprintf("render: component %q: %v", e.Component, e.Err)
	case KindSinkError:
		return fmt.Sprintf("render: sink: %v", e.Err)
	default:
		return fmt.Sprintf("render: %s: %v", e.Kind, e.Err)
	}
}

// Unwrap exposes the wrapped cause for errors.Is/errors.As.
func (e *RenderError) Unwrap() error { return e.Err }

func invalidNodeError(nodeName any) *RenderError {
	return &RenderError{
		Kind: KindInvalidNode,
		Err:  fmt.Errorf("nodeName %#v is neither a string tag nor a component descriptor", nodeName),
	}
}

func componentError(displayName string, cause any) *RenderError {
	err, ok := cause.(error)
	if !ok {
		err = fmt.Errorf("%v", cause)
	}
	return &RenderError{Kind: KindComponentError, Component: displayName, Err: err}
}

func sinkError(cause error) *RenderError {
	return &RenderError{Kind: KindSinkError, Err: cause}
}
