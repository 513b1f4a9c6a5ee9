package model

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusPreparing OrderStatus = "PREPARING"
	OrderStatusReady     OrderStatus = "READY"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPreparing, OrderStatusReady,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// 終端ステータス（ここから先は変更不可）
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CanTransitionTo は前進のみの遷移を判定する。
// PENDING → PREPARING → READY → DELIVERED、横道は PENDING → CANCELLED のみ。
// 飛ばし・逆戻りは不可。
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return next == OrderStatusPreparing || next == OrderStatusCancelled
	case OrderStatusPreparing:
		return next == OrderStatusReady
	case OrderStatusReady:
		return next == OrderStatusDelivered
	}
	return false
}

type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "CASH"
	PaymentMethodCard PaymentMethod = "CARD"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentMethodCash || m == PaymentMethodCard
}

// 注文。作成時点のスナップショットで、TotalAmount は再計算しない。
// IsNew はスタッフが確認したら消す一方向フラグ。
type Order struct {
	ID              string        `json:"id"`
	CustomerName    string        `json:"customer_name"`
	CustomerPhone   string        `json:"customer_phone"`
	CustomerAddress string        `json:"customer_address"`
	Items           []CartItem    `json:"items"`
	TotalAmount     int64         `json:"total_amount"`
	Status          OrderStatus   `json:"status"`
	PaymentMethod   PaymentMethod `json:"payment_method"`
	CreatedAt       time.Time     `json:"created_at"`
	IsNew           bool          `json:"is_new"`
}
