package telemetry

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/crit/internal/core/ports"
)

var (
	_ ports.Tracer = (*OTelTracer)(nil)
	_ ports.Span   = (*OTelSpan)(nil)
)

// OTelTracer implements ports.Tracer on an OpenTelemetry tracer provider.
type OTelTracer struct {
	tracer trace.Tracer
}

// NewOTelTracer creates a new OTelTracer with the given instrumentation name.
func NewOTelTracer(tp trace.TracerProvider, name string) *OTelTracer {
	return &OTelTracer{tracer: tp.Tracer(name)}
}

// Start creates a new span. Attributes given as options are set when the span starts.
func (t *OTelTracer) Start(ctx context.Context, name string, opts ...ports.SpanOption) (context.Context, ports.Span) {
	var cfg ports.SpanConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	ctx, span := t.tracer.Start(ctx, name, trace.WithAttributes(attributes(cfg.Attributes)...))
	return ctx, &OTelSpan{span: span}
}

// EmitOrder records the topological order of a task graph as an event on the span in ctx.
func (t *OTelTracer) EmitOrder(ctx context.Context, taskIDs []string) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}
	span.AddEvent("order_emitted", trace.WithAttributes(
		attribute.StringSlice("tasks", taskIDs),
		attribute.Int("count", len(taskIDs)),
	))
}

// OTelSpan implements ports.Span.
type OTelSpan struct {
	span trace.Span
}

// End completes the span.
func (s *OTelSpan) End() {
	s.span.End()
}

// RecordError marks the span as failed. Metadata carried by err, such as the task ids of a
// cycle, is attached to the error event.
func (s *OTelSpan) RecordError(err error) {
	var opts []trace.EventOption
	if md, ok := err.(interface{ Metadata() map[string]any }); ok {
		opts = append(opts, trace.WithAttributes(attributes(md.Metadata())...))
	}
	s.span.RecordError(err, opts...)
	s.span.SetStatus(codes.Error, err.Error())
}

// SetAttribute adds a key-value pair to the span.
func (s *OTelSpan) SetAttribute(key string, value any) {
	s.span.SetAttributes(toAttribute(key, value))
}

// attributes converts m in key order.
func attributes(m map[string]any) []attribute.KeyValue {
	kvs := make([]attribute.KeyValue, 0, len(m))
	for _, key := range slices.Sorted(maps.Keys(m)) {
		kvs = append(kvs, toAttribute(key, m[key]))
	}
	return kvs
}

func toAttribute(key string, value any) attribute.KeyValue {
	switch v := value.(type) {
	case string:
		return attribute.String(key, v)
	case int:
		return attribute.Int(key, v)
	case int64:
		return attribute.Int64(key, v)
	case float64:
		return attribute.Float64(key, v)
	case bool:
		return attribute.Bool(key, v)
	case []string:
		return attribute.StringSlice(key, v)
	default:
		return attribute.String(key, fmt.Sprintf("%v", v))
	}
}
