package apm

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Tracer starts venue-operation spans against the global trace provider
// installed by NewTraceProvider.
type Tracer interface {
	Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, Span)
	SpanFromContext(ctx context.Context) Span
}

type tracer struct {
	tr trace.Tracer
}

// NewTracer returns a Tracer scoped to the named instrumentation library.
func NewTracer(name string) Tracer {
	return &tracer{tr: otel.Tracer(name)}
}

func (t *tracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, Span) {
	ctx, s := t.tr.Start(ctx, name, opts...)
	return ctx, NewSpan(s)
}

func (t *tracer) SpanFromContext(ctx context.Context) Span {
	return NewSpan(trace.SpanFromContext(ctx))
}
