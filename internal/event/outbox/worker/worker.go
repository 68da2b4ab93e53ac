// Package worker relays outbox entries to Kafka.
package worker

import (
	"context"
	"log/slog"
	"time"

	"contactcentre/internal/event/outbox"
	"contactcentre/internal/event/outbox/metrics"
	"contactcentre/internal/platform/kafka/producer"
	"contactcentre/internal/platform/tracer"
)

// Producer is the subset of the Kafka producer the relay uses.
type Producer interface {
	Produce(ctx context.Context, msg *producer.Message) error
}

// Worker polls the outbox table and publishes pending entries.
type Worker struct {
	store        outbox.Store
	producer     Producer
	topic        string
	batchSize    int
	pollInterval time.Duration
	retention    time.Duration
	drainTimeout time.Duration
	metrics      *metrics.Metrics
	tracer       tracer.Tracer
	logger       *slog.Logger
	now          func() time.Time
}

// Option configures the Worker.
type Option func(*Worker)

func WithTopic(topic string) Option {
	return func(w *Worker) {
		w.topic = topic
	}
}

// WithBatchSize sets the maximum number of entries fetched per poll.
func WithBatchSize(size int) Option {
	return func(w *Worker) {
		if size > 0 {
			w.batchSize = size
		}
	}
}

func WithPollInterval(interval time.Duration) Option {
	return func(w *Worker) {
		if interval > 0 {
			w.pollInterval = interval
		}
	}
}

// WithRetention sets how long relayed entries are kept. Zero disables cleanup.
func WithRetention(d time.Duration) Option {
	return func(w *Worker) {
		w.retention = d
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(w *Worker) {
		w.metrics = m
	}
}

func WithTracer(t tracer.Tracer) Option {
	return func(w *Worker) {
		w.tracer = t
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(w *Worker) {
		w.logger = logger
	}
}

// New creates an outbox relay.
func New(store outbox.Store, prod Producer, opts ...Option) *Worker {
	w := &Worker{
		store:        store,
		producer:     prod,
		topic:        "contactcentre.events",
		batchSize:    100,
		pollInterval: 250 * time.Millisecond,
		retention:    24 * time.Hour,
		drainTimeout: 10 * time.Second,
		tracer:       tracer.NewNoop(),
		logger:       slog.Default(),
		now:          func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run polls until ctx is cancelled, then drains what is left. It always returns nil
// so it can sit in an errgroup next to the HTTP server.
func (w *Worker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	lastCleanup := w.now()
	for {
		select {
		case <-ctx.Done():
			w.drain()
			return nil
		case <-ticker.C:
			w.Poll(ctx)
			w.updatePending(ctx)
			if w.retention > 0 && w.now().Sub(lastCleanup) >= time.Hour {
				w.cleanup(ctx)
				lastCleanup = w.now()
			}
		}
	}
}

// Poll relays one batch and reports how many entries were published.
func (w *Worker) Poll(ctx context.Context) int {
	start := time.Now()
	entries, err := w.store.FetchUnprocessed(ctx, w.batchSize)
	if err != nil {
		w.logger.ErrorContext(ctx, "failed to fetch outbox entries", "error", err)
		w.metrics.IncPublishFailures()
		return 0
	}
	if len(entries) == 0 {
		return 0
	}
	w.metrics.ObserveBatchSize(len(entries))

	published := w.relay(ctx, entries)
	w.metrics.ObservePollDuration(time.Since(start).Seconds())
	return published
}

func (w *Worker) relay(ctx context.Context, entries []*outbox.Entry) int {
	ctx, span := w.tracer.Start(ctx, tracer.SpanOutboxRelay, tracer.Int(tracer.AttrBatchSize, len(entries)))
	var lastErr error
	defer func() { span.End(lastErr) }()

	published := 0
	for _, entry := range entries {
		if err := w.publishEntry(ctx, entry); err != nil {
			lastErr = err
			w.logger.ErrorContext(ctx, "failed to publish outbox entry",
				"id", entry.ID,
				"event_type", entry.EventType,
				"error", err,
			)
			w.metrics.IncPublishFailures()
			// Left pending; the next poll retries it.
			continue
		}
		if err := w.store.MarkProcessed(ctx, entry.ID, w.now()); err != nil {
			// Published but still pending: consumers dedupe on transaction id.
			w.logger.ErrorContext(ctx, "failed to mark outbox entry processed",
				"id", entry.ID,
				"error", err,
			)
			continue
		}
		w.metrics.IncPublished()
		published++
	}
	return published
}

func (w *Worker) publishEntry(ctx context.Context, entry *outbox.Entry) error {
	start := time.Now()
	err := w.producer.Produce(ctx, &producer.Message{
		Topic: w.topic,
		Key:   []byte(entry.AggregateID),
		Value: entry.Payload,
		Headers: map[string]string{
			"event_type":     entry.EventType,
			"transaction_id": entry.ID.String(),
		},
	})
	if err != nil {
		return err
	}
	w.metrics.ObservePublishDuration(time.Since(start).Seconds())
	return nil
}

// drain relays remaining entries after shutdown has been requested.
func (w *Worker) drain() {
	w.logger.Info("draining outbox worker")
	ctx, cancel := context.WithTimeout(context.Background(), w.drainTimeout)
	defer cancel()

	for ctx.Err() == nil {
		if w.Poll(ctx) == 0 {
			return
		}
	}
}

func (w *Worker) updatePending(ctx context.Context) {
	if w.metrics == nil {
		return
	}
	count, err := w.store.CountPending(ctx)
	if err != nil {
		w.logger.WarnContext(ctx, "failed to count pending outbox entries", "error", err)
		return
	}
	w.metrics.SetPendingDepth(count)
}

func (w *Worker) cleanup(ctx context.Context) {
	n, err := w.store.DeleteProcessedBefore(ctx, w.now().Add(-w.retention))
	if err != nil {
		w.logger.WarnContext(ctx, "failed to delete relayed outbox entries", "error", err)
		return
	}
	if n > 0 {
		w.logger.InfoContext(ctx, "deleted relayed outbox entries", "count", n)
	}
}
