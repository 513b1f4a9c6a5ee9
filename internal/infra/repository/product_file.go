package repository

import (
	"context"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

const productsKey = "products"

type ProductFileRepository struct {
	store *fileStore
}

func NewProductFileRepository(dir string) *ProductFileRepository {
	return &ProductFileRepository{store: newFileStore(dir)}
}

func (r *ProductFileRepository) LoadAll(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := r.store.read(productsKey, &products); err != nil {
		return nil, err
	}
	// 空の保存データはデフォルトメニューを使わせたいので「無い」扱い
	if len(products) == 0 {
		return nil, repo.ErrNotFound
	}
	return products, nil
}

func (r *ProductFileRepository) SaveAll(ctx context.Context, products []model.Product) error {
	return r.store.write(productsKey, products)
}
