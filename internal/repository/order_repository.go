package repository

import (
	"app/internal/domain/model"
	"context"
)

// 注文スナップショットの永続化。保存は常に全量書き換え。
type OrderRepository interface {
	LoadAll(ctx context.Context) ([]model.Order, error)
	SaveAll(ctx context.Context, orders []model.Order) error
}
