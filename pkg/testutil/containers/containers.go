//go:build integration

// Package containers starts the Postgres, Redpanda and Redis dependencies used by
// integration tests. One instance of each is shared by every suite in a test binary.
package containers

import (
	"sync"
	"testing"
)

// Manager hands out the shared containers.
type Manager struct {
	mu       sync.Mutex
	postgres *PostgresContainer
	kafka    *KafkaContainer
	redis    *RedisContainer
}

var (
	globalManager *Manager
	initOnce      sync.Once
)

// GetManager returns the process-wide container manager.
func GetManager() *Manager {
	initOnce.Do(func() {
		globalManager = &Manager{}
	})
	return globalManager
}

// GetPostgres returns the shared Postgres container, starting it on first use.
func (m *Manager) GetPostgres(t *testing.T) *PostgresContainer {
	return lazyStart(t, &m.mu, &m.postgres, NewPostgresContainer)
}

// GetKafka returns the shared Redpanda broker, starting it on first use.
func (m *Manager) GetKafka(t *testing.T) *KafkaContainer {
	return lazyStart(t, &m.mu, &m.kafka, NewKafkaContainer)
}

// GetRedis returns the shared Redis container, starting it on first use.
func (m *Manager) GetRedis(t *testing.T) *RedisContainer {
	return lazyStart(t, &m.mu, &m.redis, NewRedisContainer)
}

func lazyStart[T any](t *testing.T, mu *sync.Mutex, slot **T, start func(*testing.T) *T) *T {
	t.Helper()
	mu.Lock()
	defer mu.Unlock()
	if *slot == nil {
		*slot = start(t)
	}
	return *slot
}
