package repository

import (
	"app/internal/domain/model"
	"context"
)

// 注文ジャーナル（追記専用）。
// スナップショットと違って上書きはせず、発生順に積むだけ。
type OrderEventRepository interface {
	Append(ctx context.Context, ev model.OrderEvent) error
	ListAll(ctx context.Context) ([]model.OrderEvent, error)
}
