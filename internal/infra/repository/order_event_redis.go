package repository

import (
	"context"
	"encoding/json"

	"github.com/go-redis/redis/v8"

	"app/internal/domain/model"
)

type OrderEventRedisRepository struct {
	client *redis.Client
}

func NewOrderEventRedisRepository(client *redis.Client) *OrderEventRedisRepository {
	return &OrderEventRedisRepository{client: client}
}

func (r *OrderEventRedisRepository) Append(ctx context.Context, ev model.OrderEvent) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return r.client.RPush(ctx, orderEventsKey, data).Err()
}

func (r *OrderEventRedisRepository) ListAll(ctx context.Context) ([]model.OrderEvent, error) {
	lines, err := r.client.LRange(ctx, orderEventsKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}

	events := make([]model.OrderEvent, 0, len(lines))
	for _, line := range lines {
		var ev model.OrderEvent
		if err := json.Unmarshal([]byte(line), &ev); err != nil {
			// 壊れたエントリは読み飛ばす
			continue
		}
		events = append(events, ev)
	}
	return events, nil
}
