package redis

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

// Client wraps the go-redis client with health checking capabilities.
type Client struct {
	*redis.Client
}

// New creates a Redis client from a redis:// URL and verifies it with a ping.
// Returns nil if the URL is empty (Redis not configured).
func New(ctx context.Context, url string) (*Client, error) {
	if url == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close() //nolint:errcheck // best-effort cleanup on init failure
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &Client{Client: client}, nil
}

// Health checks if the Redis connection is healthy.
func (c *Client) Health(ctx context.Context) error {
	return c.Ping(ctx).Err()
}

// RegisterPoolMetrics exposes connection pool statistics, read on every scrape.
func (c *Client) RegisterPoolMetrics(reg prometheus.Registerer) error {
	stat := func(name, help string, valueType prometheus.ValueType, read func(*redis.PoolStats) uint32) prometheus.Collector {
		opts := prometheus.Opts{Name: "contactcentre_redis_pool_" + name, Help: help}
		if valueType == prometheus.CounterValue {
			return prometheus.NewCounterFunc(prometheus.CounterOpts(opts), func() float64 {
				return float64(read(c.PoolStats()))
			})
		}
		return prometheus.NewGaugeFunc(prometheus.GaugeOpts(opts), func() float64 {
			return float64(read(c.PoolStats()))
		})
	}

	collectors := []prometheus.Collector{
		stat("hits_total", "Number of times a connection was found in the pool", prometheus.CounterValue,
			func(s *redis.PoolStats) uint32 { return s.Hits }),
		stat("misses_total", "Number of times a connection was not found in the pool", prometheus.CounterValue,
			func(s *redis.PoolStats) uint32 { return s.Misses }),
		stat("timeouts_total", "Number of times a connection was not obtained due to timeout", prometheus.CounterValue,
			func(s *redis.PoolStats) uint32 { return s.Timeouts }),
		stat("total_conns", "Number of total connections in the pool", prometheus.GaugeValue,
			func(s *redis.PoolStats) uint32 { return s.TotalConns }),
		stat("idle_conns", "Number of idle connections in the pool", prometheus.GaugeValue,
			func(s *redis.PoolStats) uint32 { return s.IdleConns }),
	}
	for _, col := range collectors {
		if err := reg.Register(col); err != nil {
			return fmt.Errorf("register redis pool metric: %w", err)
		}
	}
	return nil
}
