package model

// カートの明細。
// 商品情報は追加時点のスナップショットを丸ごと持つ（あとで商品が変わっても影響しない）。
// 同じ商品IDの明細はカート内に1つだけ。
type CartItem struct {
	Product
	Quantity int64  `json:"quantity"`
	Notes    string `json:"notes,omitempty"`
}

// Subtotal は明細の小計（snapshot価格 × 数量）。
func (i CartItem) Subtotal() int64 {
	return i.Price * i.Quantity
}
