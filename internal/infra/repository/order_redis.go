package repository

import (
	"context"
	"encoding/json"

	"github.com/go-redis/redis/v8"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type OrderRedisRepository struct {
	client *redis.Client
}

func NewOrderRedisRepository(client *redis.Client) *OrderRedisRepository {
	return &OrderRedisRepository{client: client}
}

func (r *OrderRedisRepository) LoadAll(ctx context.Context) ([]model.Order, error) {
	data, err := r.client.Get(ctx, ordersKey).Bytes()
	if err == redis.Nil {
		return nil, repo.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var orders []model.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		return nil, repo.ErrNotFound
	}
	return orders, nil
}

func (r *OrderRedisRepository) SaveAll(ctx context.Context, orders []model.Order) error {
	data, err := json.Marshal(orders)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, ordersKey, data, 0).Err()
}
