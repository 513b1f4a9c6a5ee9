package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// CatalogUsecase はメニュー（商品一覧）の業務ロジック。
// 一覧はメモリ上に持ち、変更のたびにスナップショットを全量書き換える。
type CatalogUsecase struct {
	mu       sync.Mutex
	products []model.Product

	productRepo repo.ProductRepository
	idGen       IDGenerator
	ai          TextGenerator
	logger      *slog.Logger
}

func NewCatalogUsecase(
	productRepo repo.ProductRepository,
	idGen IDGenerator,
	ai TextGenerator,
	logger *slog.Logger,
) *CatalogUsecase {
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogUsecase{
		productRepo: productRepo,
		idGen:       idGen,
		ai:          ai,
		logger:      logger,
	}
}

// Load は起動時に保存データを読み込む。
// 無い/空/壊れている場合はデフォルトメニューに戻し、その内容を書き戻す。
func (u *CatalogUsecase) Load(ctx context.Context) error {
	products, err := u.productRepo.LoadAll(ctx)
	if err == repo.ErrNotFound {
		u.logger.Info("no stored products, using default menu")
		products = model.DefaultProducts()
		if err := u.productRepo.SaveAll(ctx, products); err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	u.mu.Lock()
	u.products = products
	u.mu.Unlock()
	return nil
}

// List は商品一覧（categoryが空でなければ絞り込み）。
func (u *CatalogUsecase) List(category string) []model.Product {
	u.mu.Lock()
	defer u.mu.Unlock()

	out := make([]model.Product, 0, len(u.products))
	for _, p := range u.products {
		if category != "" && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Categories は重複なしのカテゴリ一覧（登場順）。
func (u *CatalogUsecase) Categories() []string {
	u.mu.Lock()
	defer u.mu.Unlock()

	seen := map[string]bool{}
	out := []string{}
	for _, p := range u.products {
		if seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, p.Category)
	}
	return out
}

// Find はカート追加用の商品検索。
func (u *CatalogUsecase) Find(productID string) (model.Product, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()

	for _, p := range u.products {
		if p.ID == productID {
			return p, true
		}
	}
	return model.Product{}, false
}

type AddProductInput struct {
	Name        string
	Description string
	Price       int64
	Image       string
	Category    string
}

// Add は商品を追加する（スタッフ用）。
// 説明が空なら生成AIで埋める（失敗時は固定文言になるのでフローは止まらない）。
func (u *CatalogUsecase) Add(ctx context.Context, in AddProductInput) (model.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid name")
	}
	if in.Price <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid price")
	}

	description := strings.TrimSpace(in.Description)
	if description == "" {
		description = u.ai.DescribeDish(ctx, name)
	}

	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = "عام"
	}

	id := u.idGen.NewID()

	image := strings.TrimSpace(in.Image)
	if image == "" {
		image = fmt.Sprintf("https://picsum.photos/400/400?random=%s", id)
	}

	p := model.Product{
		ID:          id,
		Name:        name,
		Description: description,
		Price:       in.Price,
		Image:       image,
		Category:    category,
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	updated := append(append([]model.Product{}, u.products...), p)
	if err := u.productRepo.SaveAll(ctx, updated); err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "store error")
	}
	u.products = updated

	return p, nil
}
