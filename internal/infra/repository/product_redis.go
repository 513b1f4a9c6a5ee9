package repository

import (
	"context"
	"encoding/json"

	"github.com/go-redis/redis/v8"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type ProductRedisRepository struct {
	client *redis.Client
}

func NewProductRedisRepository(client *redis.Client) *ProductRedisRepository {
	return &ProductRedisRepository{client: client}
}

func (r *ProductRedisRepository) LoadAll(ctx context.Context) ([]model.Product, error) {
	data, err := r.client.Get(ctx, productsKey).Bytes()
	if err == redis.Nil {
		return nil, repo.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var products []model.Product
	if err := json.Unmarshal(data, &products); err != nil {
		// 壊れたデータは「無い」扱いにしてデフォルトに戻す
		return nil, repo.ErrNotFound
	}
	if len(products) == 0 {
		return nil, repo.ErrNotFound
	}
	return products, nil
}

func (r *ProductRedisRepository) SaveAll(ctx context.Context, products []model.Product) error {
	data, err := json.Marshal(products)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, productsKey, data, 0).Err()
}
