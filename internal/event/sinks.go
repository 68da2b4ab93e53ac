package event

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"contactcentre/internal/event/outbox"
	"contactcentre/internal/platform/kafka/producer"
	"contactcentre/pkg/requestcontext"
)

// Message headers carried on each record.
const (
	HeaderEventType     = "event_type"
	HeaderTransactionID = "transaction_id"
)

// MessageProducer is the subset of the Kafka producer the sinks need.
type MessageProducer interface {
	Produce(ctx context.Context, msg *producer.Message) error
}

// KafkaSink produces each event synchronously.
type KafkaSink struct {
	producer MessageProducer
	topic    string
}

func NewKafkaSink(p MessageProducer, topic string) *KafkaSink {
	return &KafkaSink{producer: p, topic: topic}
}

func (k *KafkaSink) Send(ctx context.Context, msg Message) error {
	return k.producer.Produce(ctx, &producer.Message{
		Topic: k.topic,
		Key:   []byte(msg.Key),
		Value: msg.Body,
		Headers: map[string]string{
			HeaderEventType:     string(msg.EventType),
			HeaderTransactionID: msg.TransactionID.String(),
		},
	})
}

// OutboxSink appends events to the outbox table. Delivery to Kafka happens in
// outbox/worker.
type OutboxSink struct {
	store outbox.Store
}

func NewOutboxSink(store outbox.Store) *OutboxSink {
	return &OutboxSink{store: store}
}

func (o *OutboxSink) Send(ctx context.Context, msg Message) error {
	entry := outbox.NewEntry(
		uuid.UUID(msg.TransactionID),
		msg.Key,
		string(msg.EventType),
		msg.Body,
		requestcontext.Now(ctx),
	)
	if err := o.store.Append(ctx, entry); err != nil {
		return fmt.Errorf("append to outbox: %w", err)
	}
	return nil
}

var (
	_ Sink = (*KafkaSink)(nil)
	_ Sink = (*OutboxSink)(nil)
)
