package render

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// defaultTracerName names the tracer resolved from the global provider
// when WithTracer is not given an explicit one.
const defaultTracerName = "ssrender"

// WithTracer wraps walker element/component visits in spans
// ("render.element", "render.component"). The tracer is resolved once,
// up front (from the global provider via otel.Tracer if tracer is nil),
// and every element/component boundary crossed during the render opens
// and closes a span scoped to that node's subtree.
//
// stdCtx supplies the parent span context; pass context.Background() if
// the render has no enclosing request context to attach to.
func WithTracer(stdCtx context.Context, tracer trace.Tracer) RendererOption {
	if tracer == nil {
		tracer = otel.Tracer(defaultTracerName)
	}
	return func(r *Renderer) {
		r.hooks = walkerHooks{
			onElement: func(tag string) func() {
				_, span := tracer.Start(stdCtx, "render.element",
					trace.WithSpanKind(trace.SpanKindInternal),
					trace.WithAttributes(attribute.String("ssrender.tag", tag)))
				return func() { span.End() }
			},
			onComponent: func(name string, errp *error) func() {
				_, span := tracer.Start(stdCtx, "render.component",
					trace.WithSpanKind(trace.SpanKindInternal),
					trace.WithAttributes(attribute.String("ssrender.component", name)))
				return func() {
					if errp != nil && *errp != nil {
						span.RecordError(*errp)
						span.SetStatus(codes.Error, (*errp).Error())
					} else {
						span.SetStatus(codes.Ok, "")
					}
					span.End()
				}
			},
		}
	}
}
