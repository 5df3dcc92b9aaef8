package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	dedupTTL       = 24 * time.Hour
	dedupKeyPrefix = "tracking-event:"
)

// EventDeduplicator помнит обработанные event_id, чтобы повторная
// доставка сообщения не писала историю второй раз.
type EventDeduplicator struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewEventDeduplicator(client redis.Cmdable) *EventDeduplicator {
	return &EventDeduplicator{
		client: client,
		ttl:    dedupTTL,
	}
}

func (d *EventDeduplicator) IsProcessed(ctx context.Context, eventID string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(eventID)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// MarkProcessed вызывается только после успешной обработки.
func (d *EventDeduplicator) MarkProcessed(ctx context.Context, eventID string) error {
	err := d.client.Set(ctx, d.key(eventID), "1", d.ttl).Err()
	if err != nil {
		return fmt.Errorf("dedup mark: %w", err)
	}
	return nil
}

func (d *EventDeduplicator) key(eventID string) string {
	return dedupKeyPrefix + eventID
}
