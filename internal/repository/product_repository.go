package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// 商品スナップショットの永続化だけを約束。
// 保存は常に全量書き換え（部分更新はしない）。
// LoadAll は保存データが無い/壊れている場合に ErrNotFound を返し、
// 呼び出し側がデフォルトメニューへフォールバックする。
type ProductRepository interface {
	LoadAll(ctx context.Context) ([]model.Product, error)
	SaveAll(ctx context.Context, products []model.Product) error
}
