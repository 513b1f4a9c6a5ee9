// Package event は注文イベントのpub/sub。
// ポーリング同期の補完で、同一プロセス内の購読者（SSE）には即時配信、
// NATSが設定されていればプロセス外にも配信する。
package event

import (
	"time"

	"app/internal/domain/model"
)

type Type string

const (
	TypeOrderCreated  Type = "order_created"
	TypeStatusChanged Type = "status_changed"
	// ポーラーが保存領域側の増加を検知したときの通知（スタッフの着信音相当）
	TypeNewOrders Type = "new_orders"
)

type Event struct {
	Type    Type              `json:"type"`
	OrderID string            `json:"order_id,omitempty"`
	Status  model.OrderStatus `json:"status,omitempty"`
	At      time.Time         `json:"at"`
}

type Publisher interface {
	Publish(ev Event)
}

// Fanout は複数のPublisherへ順に配る。
type Fanout []Publisher

func (f Fanout) Publish(ev Event) {
	for _, p := range f {
		p.Publish(ev)
	}
}
