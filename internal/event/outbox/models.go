// Package outbox persists events for asynchronous relay to Kafka.
package outbox

import (
	"time"

	"github.com/google/uuid"
)

// Entry is one pending event in the outbox table. ID is the event's transaction id.
type Entry struct {
	ID          uuid.UUID
	AggregateID string     // case id the event concerns
	EventType   string     // e.g. FULFILMENT_REQUESTED
	Payload     []byte     // encoded event envelope
	CreatedAt   time.Time  // when the event was raised
	ProcessedAt *time.Time // nil until relayed
}

func (e *Entry) IsPending() bool {
	return e.ProcessedAt == nil
}

func NewEntry(id uuid.UUID, aggregateID, eventType string, payload []byte, createdAt time.Time) *Entry {
	return &Entry{
		ID:          id,
		AggregateID: aggregateID,
		EventType:   eventType,
		Payload:     payload,
		CreatedAt:   createdAt,
	}
}
