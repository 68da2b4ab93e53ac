// Package event publishes contact-centre domain events.
//
// A Publisher wraps every payload in the standard envelope and hands the
// encoded message to a Sink:
//
//	KafkaSink:  produce synchronously to the events topic
//	OutboxSink: append to the Postgres outbox, relayed later by outbox/worker
package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"contactcentre/internal/cases/models"
	"contactcentre/internal/platform/tracer"
	"contactcentre/pkg/domain"
	"contactcentre/pkg/requestcontext"
)

// Header is the envelope metadata common to every event.
type Header struct {
	Type          models.EventType     `json:"type"`
	Source        string               `json:"source"`
	Channel       string               `json:"channel"`
	DateTime      time.Time            `json:"dateTime"`
	TransactionID domain.TransactionID `json:"transactionId"`
}

// Envelope is the JSON document written to the bus.
type Envelope struct {
	Event   Header `json:"event"`
	Payload any    `json:"payload"`
}

// Message is an encoded envelope ready for a sink.
type Message struct {
	EventType     models.EventType
	TransactionID domain.TransactionID
	// Key is the aggregate the event concerns, or the transaction id when the
	// payload names none.
	Key  string
	Body []byte
}

// Sink delivers encoded events. Implementations must be safe for concurrent use.
type Sink interface {
	Send(ctx context.Context, msg Message) error
}

type aggregate interface {
	AggregateID() string
}

// Publisher builds envelopes and forwards them to a Sink.
type Publisher struct {
	sink   Sink
	tracer tracer.Tracer
	logger *slog.Logger
}

type Option func(*Publisher)

func WithTracer(t tracer.Tracer) Option {
	return func(p *Publisher) {
		p.tracer = t
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		p.logger = logger
	}
}

func NewPublisher(sink Sink, opts ...Option) *Publisher {
	p := &Publisher{
		sink:   sink,
		tracer: tracer.NewNoop(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Publish stamps a fresh transaction id and the request time onto the payload and
// sends it. The transaction id is returned only when the sink accepted the event.
func (p *Publisher) Publish(ctx context.Context, eventType models.EventType, source, channel string, payload any) (txID domain.TransactionID, err error) {
	txID = domain.NewTransactionID()
	ctx, span := p.tracer.Start(ctx, tracer.SpanEventPublish,
		tracer.String(tracer.AttrEventType, string(eventType)),
		tracer.String(tracer.AttrTransactionID, txID.String()),
	)
	defer func() { span.End(err) }()

	env := Envelope{
		Event: Header{
			Type:          eventType,
			Source:        source,
			Channel:       channel,
			DateTime:      requestcontext.Now(ctx),
			TransactionID: txID,
		},
		Payload: payload,
	}
	body, err := json.Marshal(env)
	if err != nil {
		return domain.TransactionID{}, fmt.Errorf("marshal %s event: %w", eventType, err)
	}

	key := txID.String()
	if a, ok := payload.(aggregate); ok {
		key = a.AggregateID()
	}

	if err := p.sink.Send(ctx, Message{
		EventType:     eventType,
		TransactionID: txID,
		Key:           key,
		Body:          body,
	}); err != nil {
		return domain.TransactionID{}, fmt.Errorf("send %s event: %w", eventType, err)
	}
	p.logger.DebugContext(ctx, "event sent",
		"event_type", eventType,
		"transaction_id", txID.String(),
		"key", key,
	)
	return txID, nil
}
