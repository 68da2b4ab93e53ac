// Package tracer provides a small tracing abstraction over OpenTelemetry.
//
// Implementations:
//   - NoopTracer: for tests
//   - OTelTracer: OpenTelemetry adapter for production
package tracer

import (
	"context"
	"time"
)

// Span represents an active trace span.
type Span interface {
	// End completes the span. A non-nil err marks the span as failed.
	// End must be called exactly once, typically via defer.
	End(err error)
	SetAttributes(attrs ...Attribute)
	AddEvent(name string, attrs ...Attribute)
}

// Tracer creates spans. Implementations must be safe for concurrent use.
//
//	ctx, span := t.Start(ctx, tracer.SpanDirectoryGetCase, tracer.String(tracer.AttrCaseID, id.String()))
//	defer func() { span.End(err) }()
type Tracer interface {
	Start(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

// Attribute represents a key-value pair attached to spans.
type Attribute struct {
	Key   string
	Value any
}

func String(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

func Bool(key string, value bool) Attribute {
	return Attribute{Key: key, Value: value}
}

func Int64(key string, value int64) Attribute {
	return Attribute{Key: key, Value: value}
}

func Int(key string, value int) Attribute {
	return Attribute{Key: key, Value: value}
}

// Duration creates a duration attribute in milliseconds.
func Duration(key string, value time.Duration) Attribute {
	return Attribute{Key: key, Value: value.Milliseconds()}
}

// Span names.
const (
	SpanDirectoryGetCase   = "casedirectory.get_case"
	SpanDirectoryGetByUPRN = "casedirectory.get_by_uprn"
	SpanDirectoryGetByRef  = "casedirectory.get_by_ref"
	SpanDirectoryAllocQID  = "casedirectory.allocate_qid"
	SpanEventPublish       = "event.publish"
	SpanOutboxRelay        = "outbox.relay"
	SpanCacheWrite         = "casecache.put"
)

// Attribute keys.
const (
	AttrCaseID        = "case.id"
	AttrCaseType      = "case.type"
	AttrUPRN          = "case.uprn"
	AttrIncludeEvents = "case.include_events"
	AttrResultCount   = "result.count"
	AttrEventType     = "event.type"
	AttrTransactionID = "event.transaction_id"
	AttrHTTPStatus    = "http.status_code"
	AttrAttempts      = "retry.attempts"
	AttrBatchSize     = "outbox.batch_size"
)
