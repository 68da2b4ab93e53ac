package tracer

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"contactcentre/pkg/requestcontext"
)

const (
	instrumentationName = "contactcentre"
	attrRequestID       = "http.request_id"
)

// OTelTracer emits spans through an OpenTelemetry provider. Directory and
// cache spans are client spans, event spans are producer spans, and each one
// carries the request id when the context has one.
type OTelTracer struct {
	tracer trace.Tracer
}

type OTelOption func(*OTelTracer)

// WithTracerProvider uses tp instead of the global provider.
func WithTracerProvider(tp trace.TracerProvider) OTelOption {
	return func(o *OTelTracer) {
		if tp != nil {
			o.tracer = tp.Tracer(instrumentationName)
		}
	}
}

func NewOTel(opts ...OTelOption) *OTelTracer {
	t := &OTelTracer{tracer: otel.Tracer(instrumentationName)}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *OTelTracer) Start(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span) {
	kvs := keyValues(attrs)
	if id := requestcontext.RequestID(ctx); id != "" {
		kvs = append(kvs, attribute.String(attrRequestID, id))
	}
	ctx, span := t.tracer.Start(ctx, name,
		trace.WithSpanKind(spanKind(name)),
		trace.WithAttributes(kvs...),
	)
	return ctx, otelSpan{span}
}

func spanKind(name string) trace.SpanKind {
	switch {
	case strings.HasPrefix(name, "casedirectory."), strings.HasPrefix(name, "casecache."):
		return trace.SpanKindClient
	case strings.HasPrefix(name, "event."), strings.HasPrefix(name, "outbox."):
		return trace.SpanKindProducer
	default:
		return trace.SpanKindInternal
	}
}

type otelSpan struct{ trace.Span }

func (s otelSpan) End(err error) {
	if err != nil {
		s.Span.RecordError(err)
		s.Span.SetStatus(codes.Error, err.Error())
	}
	s.Span.End()
}

func (s otelSpan) SetAttributes(attrs ...Attribute) {
	s.Span.SetAttributes(keyValues(attrs)...)
}

func (s otelSpan) AddEvent(name string, attrs ...Attribute) {
	s.Span.AddEvent(name, trace.WithAttributes(keyValues(attrs)...))
}

// keyValues drops attributes whose value type OpenTelemetry has no mapping for.
func keyValues(attrs []Attribute) []attribute.KeyValue {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]attribute.KeyValue, 0, len(attrs))
	for _, a := range attrs {
		if kv, ok := a.keyValue(); ok {
			out = append(out, kv)
		}
	}
	return out
}

func (a Attribute) keyValue() (attribute.KeyValue, bool) {
	switch v := a.Value.(type) {
	case string:
		return attribute.String(a.Key, v), true
	case bool:
		return attribute.Bool(a.Key, v), true
	case int:
		return attribute.Int(a.Key, v), true
	case int64:
		return attribute.Int64(a.Key, v), true
	case float64:
		return attribute.Float64(a.Key, v), true
	}
	return attribute.KeyValue{}, false
}

var (
	_ Tracer = (*OTelTracer)(nil)
	_ Span   = otelSpan{}
)
