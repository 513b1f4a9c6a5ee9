package model

import "time"

type OrderEventType string

const (
	OrderEventCreated       OrderEventType = "ORDER_CREATED"
	OrderEventStatusChanged OrderEventType = "STATUS_CHANGED"
	OrderEventSeen          OrderEventType = "ORDER_SEEN"
)

// 注文の追記専用ジャーナル。スナップショットが壊れたときの復元元でもある。
type OrderEvent struct {
	ID         string         `json:"id"`
	Type       OrderEventType `json:"type"`
	OrderID    string         `json:"order_id"`
	Order      *Order         `json:"order,omitempty"` // ORDER_CREATED のみ
	FromStatus OrderStatus    `json:"from_status,omitempty"`
	ToStatus   OrderStatus    `json:"to_status,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

// ReplayOrders はジャーナルを畳み込んで現在の注文一覧を組み立てる。
// 注文一覧は新しい順（作成時に先頭へ追加）なのを再現する。
// 不明な注文IDへのイベントは読み飛ばす。
func ReplayOrders(events []OrderEvent) []Order {
	orders := []Order{}

	for _, ev := range events {
		switch ev.Type {
		case OrderEventCreated:
			if ev.Order == nil {
				continue
			}
			o := *ev.Order
			orders = append([]Order{o}, orders...)

		case OrderEventStatusChanged:
			for i := range orders {
				if orders[i].ID == ev.OrderID {
					orders[i].Status = ev.ToStatus
					break
				}
			}

		case OrderEventSeen:
			for i := range orders {
				if orders[i].ID == ev.OrderID {
					orders[i].IsNew = false
					break
				}
			}
		}
	}

	return orders
}
