package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"contactcentre/internal/event/outbox"
	"contactcentre/pkg/platform/sentinel"
)

const (
	insertEntry = `INSERT INTO event_outbox (id, aggregate_id, event_type, payload, created_at)
VALUES ($1, $2, $3, $4, $5)`

	// SKIP LOCKED keeps the relay from waiting on rows held by an open writer.
	selectPending = `SELECT id, aggregate_id, event_type, payload, created_at, processed_at
FROM event_outbox
WHERE processed_at IS NULL
ORDER BY created_at ASC
LIMIT $1
FOR UPDATE SKIP LOCKED`

	markProcessed = `UPDATE event_outbox SET processed_at = $2 WHERE id = $1 AND processed_at IS NULL`

	countPending = `SELECT COUNT(*) FROM event_outbox WHERE processed_at IS NULL`

	deleteProcessed = `DELETE FROM event_outbox WHERE processed_at IS NOT NULL AND processed_at < $1`
)

const maxBatch = 1000

// Store implements outbox.Store on PostgreSQL.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Append(ctx context.Context, entry *outbox.Entry) error {
	if _, err := s.db.ExecContext(ctx, insertEntry,
		entry.ID, entry.AggregateID, entry.EventType, entry.Payload, entry.CreatedAt,
	); err != nil {
		return fmt.Errorf("insert outbox entry: %w", err)
	}
	return nil
}

func (s *Store) FetchUnprocessed(ctx context.Context, limit int) ([]*outbox.Entry, error) {
	if limit <= 0 {
		return nil, nil
	}
	if limit > maxBatch {
		limit = maxBatch
	}
	rows, err := s.db.QueryContext(ctx, selectPending, limit)
	if err != nil {
		return nil, fmt.Errorf("fetch unprocessed entries: %w", err)
	}
	defer rows.Close()

	entries := make([]*outbox.Entry, 0, limit)
	for rows.Next() {
		var (
			e         outbox.Entry
			processed sql.NullTime
		)
		if err := rows.Scan(&e.ID, &e.AggregateID, &e.EventType, &e.Payload, &e.CreatedAt, &processed); err != nil {
			return nil, fmt.Errorf("scan outbox entry: %w", err)
		}
		if processed.Valid {
			e.ProcessedAt = &processed.Time
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate outbox entries: %w", err)
	}
	return entries, nil
}

func (s *Store) MarkProcessed(ctx context.Context, id uuid.UUID, processedAt time.Time) error {
	result, err := s.db.ExecContext(ctx, markProcessed, id, processedAt)
	if err != nil {
		return fmt.Errorf("mark outbox entry processed: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("outbox entry %s: %w", id, sentinel.ErrNotFound)
	}
	return nil
}

func (s *Store) CountPending(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.QueryRowContext(ctx, countPending).Scan(&count); err != nil {
		return 0, fmt.Errorf("count pending entries: %w", err)
	}
	return count, nil
}

func (s *Store) DeleteProcessedBefore(ctx context.Context, before time.Time) (int64, error) {
	result, err := s.db.ExecContext(ctx, deleteProcessed, before)
	if err != nil {
		return 0, fmt.Errorf("delete processed entries: %w", err)
	}
	return result.RowsAffected()
}

var _ outbox.Store = (*Store)(nil)
