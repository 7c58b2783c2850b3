package apm

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Span narrows trace.Span to what the venue adapters record: attributes,
// events, and error status.
type Span interface {
	SetAttributes(attrs ...attribute.KeyValue)
	AddEvent(name string, options ...trace.EventOption)
	RecordError(err error, options ...trace.EventOption)
	// NoticeError records err and marks the span failed in one call.
	NoticeError(err error)
	SetStatus(code codes.Code, description string)
	SpanContext() trace.SpanContext
	IsRecording() bool
	End(options ...trace.SpanEndOption)
}

type span struct {
	inner trace.Span
}

// NewSpan wraps an otel span.
func NewSpan(s trace.Span) Span {
	return &span{inner: s}
}

func (s *span) SetAttributes(attrs ...attribute.KeyValue) {
	s.inner.SetAttributes(attrs...)
}

func (s *span) AddEvent(name string, options ...trace.EventOption) {
	s.inner.AddEvent(name, options...)
}

func (s *span) RecordError(err error, options ...trace.EventOption) {
	s.inner.RecordError(err, options...)
}

func (s *span) NoticeError(err error) {
	s.inner.RecordError(err)
	s.inner.SetStatus(codes.Error, err.Error())
}

func (s *span) SetStatus(code codes.Code, description string) {
	s.inner.SetStatus(code, description)
}

func (s *span) SpanContext() trace.SpanContext {
	return s.inner.SpanContext()
}

func (s *span) IsRecording() bool {
	return s.inner.IsRecording()
}

func (s *span) End(options ...trace.SpanEndOption) {
	s.inner.End(options...)
}
