package apm

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// consoleTraceProvider pretty-prints spans to stdout for local runs
// without a collector.
type consoleTraceProvider struct {
	tp *sdktrace.TracerProvider
}

// NewConsoleTraceProvider installs a stdout exporter as the global trace
// provider.
func NewConsoleTraceProvider() TraceProvider {
	exporter, _ := stdouttrace.New(stdouttrace.WithPrettyPrint())
	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
	otel.SetTracerProvider(tp)

	return &consoleTraceProvider{tp: tp}
}

func (p *consoleTraceProvider) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return p.tp.Shutdown(ctx)
}

type noopTraceProvider struct{}

// NewEmptyTraceProvider returns a provider that exports nothing; spans
// fall through to the otel default.
func NewEmptyTraceProvider() TraceProvider {
	return noopTraceProvider{}
}

func (noopTraceProvider) Stop() error { return nil }
