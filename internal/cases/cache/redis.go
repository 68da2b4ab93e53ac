// Package cache stores skeleton case records in Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"contactcentre/internal/cases/models"
	"contactcentre/internal/platform/tracer"
	"contactcentre/pkg/domain"
	dErrors "contactcentre/pkg/domain-errors"
	"contactcentre/pkg/platform/sentinel"
)

const (
	caseKeyPrefix = "case:id:"
	uprnKeyPrefix = "case:uprn:"
)

// RetryPolicy is the exponential backoff applied when a write loses a WATCH race.
type RetryPolicy struct {
	InitialDelay time.Duration
	Multiplier   float64
	MaxDelay     time.Duration
	MaxAttempts  int
}

// DefaultRetryPolicy is used when no policy is configured.
var DefaultRetryPolicy = RetryPolicy{
	InitialDelay: 100 * time.Millisecond,
	Multiplier:   2,
	MaxDelay:     2 * time.Second,
	MaxAttempts:  5,
}

// RedisStore keeps one JSON document per case under case:id:<uuid> and a set of
// case ids per property under case:uprn:<uprn>.
type RedisStore struct {
	client  *redis.Client
	ttl     time.Duration
	retry   RetryPolicy
	metrics *Metrics
	tracer  tracer.Tracer
}

type Option func(*RedisStore)

func WithRetryPolicy(p RetryPolicy) Option {
	return func(s *RedisStore) {
		s.retry = p
	}
}

func WithMetrics(m *Metrics) Option {
	return func(s *RedisStore) {
		s.metrics = m
	}
}

func WithTracer(t tracer.Tracer) Option {
	return func(s *RedisStore) {
		s.tracer = t
	}
}

// NewRedisStore constructs the cache. A zero ttl keeps entries until evicted.
func NewRedisStore(client *redis.Client, ttl time.Duration, opts ...Option) *RedisStore {
	s := &RedisStore{
		client: client,
		ttl:    ttl,
		retry:  DefaultRetryPolicy,
		tracer: tracer.NewNoop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Put writes a skeleton and indexes it by UPRN. The write runs in a WATCH
// transaction over the case key and is retried with backoff when another
// writer touched the key first.
//
// Errors: an internal domain error wrapping sentinel.ErrContention once the
// attempts are exhausted; wrapped Redis errors otherwise.
func (s *RedisStore) Put(ctx context.Context, cc models.CachedCase) (err error) {
	ctx, span := s.tracer.Start(ctx, tracer.SpanCacheWrite, tracer.String(tracer.AttrCaseID, cc.ID.String()))
	defer func() { span.End(err) }()

	payload, err := json.Marshal(cc)
	if err != nil {
		return fmt.Errorf("encode cached case: %w", err)
	}
	idKey := caseKey(cc.ID)

	attempts, err := retryOnContention(ctx, s.retry, func() error {
		return s.client.Watch(ctx, func(tx *redis.Tx) error {
			prev, err := loadCase(ctx, tx, idKey)
			if err != nil && !errors.Is(err, sentinel.ErrNotFound) {
				return err
			}
			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.Set(ctx, idKey, payload, s.ttl)
				if prev != nil && prev.UPRN != cc.UPRN {
					pipe.SRem(ctx, uprnKey(prev.UPRN), cc.ID.String())
				}
				pipe.SAdd(ctx, uprnKey(cc.UPRN), cc.ID.String())
				if s.ttl > 0 {
					pipe.Expire(ctx, uprnKey(cc.UPRN), s.ttl)
				}
				return nil
			})
			return err
		}, idKey)
	})
	span.SetAttributes(tracer.Int(tracer.AttrAttempts, attempts))
	if attempts > 1 {
		s.metrics.recordContention(attempts - 1)
	}
	if err != nil {
		if errors.Is(err, sentinel.ErrContention) {
			return dErrors.Wrap(err, dErrors.CodeInternal, "exhausted retries writing cached case")
		}
		return fmt.Errorf("write cached case: %w", err)
	}
	return nil
}

// GetByID loads a skeleton. Errors: sentinel.ErrNotFound on a miss.
func (s *RedisStore) GetByID(ctx context.Context, id domain.CaseID) (*models.CachedCase, error) {
	cc, err := loadCase(ctx, s.client, caseKey(id))
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			s.metrics.recordMiss("id")
		}
		return nil, err
	}
	s.metrics.recordHit("id")
	return cc, nil
}

// GetByUPRN returns the single skeleton for a property. Index entries whose case
// has expired are ignored.
//
// Errors: sentinel.ErrNotFound when none remain; an internal domain error when
// more than one does.
func (s *RedisStore) GetByUPRN(ctx context.Context, uprn domain.UPRN) (*models.CachedCase, error) {
	ids, err := s.client.SMembers(ctx, uprnKey(uprn)).Result()
	if err != nil {
		return nil, fmt.Errorf("read uprn index: %w", err)
	}

	var found []*models.CachedCase
	for _, raw := range ids {
		id, err := domain.ParseCaseID(raw)
		if err != nil {
			continue
		}
		cc, err := loadCase(ctx, s.client, caseKey(id))
		if errors.Is(err, sentinel.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if cc.UPRN == uprn {
			found = append(found, cc)
		}
	}

	switch len(found) {
	case 0:
		s.metrics.recordMiss("uprn")
		return nil, sentinel.ErrNotFound
	case 1:
		s.metrics.recordHit("uprn")
		return found[0], nil
	default:
		return nil, dErrors.New(dErrors.CodeInternal, "More than one cached skeleton case for UPRN: "+uprn.String())
	}
}

// Health pings Redis.
func (s *RedisStore) Health(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// getter is satisfied by both *redis.Client and *redis.Tx.
type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func loadCase(ctx context.Context, c getter, key string) (*models.CachedCase, error) {
	data, err := c.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("read cached case: %w", err)
	}
	var cc models.CachedCase
	if err := json.Unmarshal(data, &cc); err != nil {
		return nil, fmt.Errorf("decode cached case: %w", err)
	}
	return &cc, nil
}

func caseKey(id domain.CaseID) string {
	return caseKeyPrefix + id.String()
}

func uprnKey(uprn domain.UPRN) string {
	return uprnKeyPrefix + uprn.String()
}
