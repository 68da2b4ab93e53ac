// Package kafka holds broker-level helpers shared by the producer and the outbox relay.
package kafka

import (
	"context"
	"errors"
	"fmt"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"
)

// EnsureTopics creates any missing topics with the given partition count
// and the broker's default replication factor.
func EnsureTopics(ctx context.Context, client *kgo.Client, partitions int32, topics ...string) error {
	admin := kadm.NewClient(client)

	resp, err := admin.CreateTopics(ctx, partitions, -1, nil, topics...)
	if err != nil {
		return fmt.Errorf("create topics: %w", err)
	}
	for _, t := range resp.Sorted() {
		if t.Err != nil && !errors.Is(t.Err, kerr.TopicAlreadyExists) {
			return fmt.Errorf("create topic %s: %w", t.Topic, t.Err)
		}
	}
	return nil
}
