package repository

import (
	"context"

	"app/internal/domain/model"
)

const ordersKey = "orders"

type OrderFileRepository struct {
	store *fileStore
}

func NewOrderFileRepository(dir string) *OrderFileRepository {
	return &OrderFileRepository{store: newFileStore(dir)}
}

func (r *OrderFileRepository) LoadAll(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	if err := r.store.read(ordersKey, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderFileRepository) SaveAll(ctx context.Context, orders []model.Order) error {
	return r.store.write(ordersKey, orders)
}
