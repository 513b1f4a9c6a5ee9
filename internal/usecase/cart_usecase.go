package usecase

import (
	"net/http"
	"strings"
	"sync"

	"app/internal/domain/model"
)

// カート追加時の商品検索（CatalogUsecaseが実体）
type ProductFinder interface {
	Find(productID string) (model.Product, bool)
}

// CartUsecase はセッションごとのカートをメモリ上で持つ。
// 永続化はしない（チェックアウトかロール切替で消える）。
type CartUsecase struct {
	mu     sync.Mutex
	carts  map[string][]model.CartItem
	finder ProductFinder
}

func NewCartUsecase(finder ProductFinder) *CartUsecase {
	return &CartUsecase{
		carts:  make(map[string][]model.CartItem),
		finder: finder,
	}
}

type CartResponse struct {
	Items []model.CartItem `json:"items"`
	Total int64            `json:"total"`
}

func (u *CartUsecase) Get(sessionID string) CartResponse {
	return buildCartResponse(u.Items(sessionID))
}

// Items はカート内容のコピーを返す。
func (u *CartUsecase) Items(sessionID string) []model.CartItem {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]model.CartItem{}, u.carts[sessionID]...)
}

// Add はカートに1つ追加する。
// 同じ商品IDが既にあれば数量+1（重複明細は作らない）。notesは指定があれば上書き。
func (u *CartUsecase) Add(sessionID string, productID string, notes string) (CartResponse, error) {
	p, ok := u.finder.Find(productID)
	if !ok {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	items := u.carts[sessionID]
	for i := range items {
		if items[i].ID == productID {
			items[i].Quantity++
			if n := strings.TrimSpace(notes); n != "" {
				items[i].Notes = n
			}
			return buildCartResponse(items), nil
		}
	}

	items = append(items, model.CartItem{
		Product:  p,
		Quantity: 1,
		Notes:    strings.TrimSpace(notes),
	})
	u.carts[sessionID] = items

	return buildCartResponse(items), nil
}

// ChangeQuantity は数量を±deltaする。
// 結果が0以下になる変更は無視（数量は1未満にしない。消すのはRemoveだけ）。
// 商品IDが無い場合も何もしない。
func (u *CartUsecase) ChangeQuantity(sessionID string, productID string, delta int64) CartResponse {
	u.mu.Lock()
	defer u.mu.Unlock()

	items := u.carts[sessionID]
	for i := range items {
		if items[i].ID == productID {
			if q := items[i].Quantity + delta; q > 0 {
				items[i].Quantity = q
			}
			break
		}
	}
	return buildCartResponse(items)
}

// Remove は明細を消す。無ければ何もしない。
func (u *CartUsecase) Remove(sessionID string, productID string) CartResponse {
	u.mu.Lock()
	defer u.mu.Unlock()

	items := u.carts[sessionID]
	for i := range items {
		if items[i].ID == productID {
			items = append(items[:i], items[i+1:]...)
			u.carts[sessionID] = items
			break
		}
	}
	return buildCartResponse(items)
}

// Clear はカートを空にする（チェックアウト直後とロール切替で呼ばれる）。
func (u *CartUsecase) Clear(sessionID string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	delete(u.carts, sessionID)
}

func buildCartResponse(items []model.CartItem) CartResponse {
	out := make([]model.CartItem, len(items))
	copy(out, items)

	var total int64 = 0
	for _, it := range out {
		total += it.Subtotal()
	}
	return CartResponse{Items: out, Total: total}
}
