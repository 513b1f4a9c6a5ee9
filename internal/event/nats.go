package event

import (
	"encoding/json"
	"log/slog"

	"github.com/nats-io/nats.go"
)

// NATSの配信先サブジェクト
const (
	subjectOrdersCreated = "orders.created"
	subjectOrdersStatus  = "orders.status"
)

// NATSPublisher は注文イベントをNATSへ流す。
// 接続できない環境でも注文フロー自体は止めない（main側でnilのまま進む）。
type NATSPublisher struct {
	conn   *nats.Conn
	logger *slog.Logger
}

func NewNATSPublisher(url string, logger *slog.Logger) (*NATSPublisher, error) {
	conn, err := nats.Connect(url, nats.Name("restaurant-orders"))
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &NATSPublisher{conn: conn, logger: logger}, nil
}

func (p *NATSPublisher) Publish(ev Event) {
	var subject string
	switch ev.Type {
	case TypeOrderCreated, TypeNewOrders:
		subject = subjectOrdersCreated
	case TypeStatusChanged:
		subject = subjectOrdersStatus
	default:
		return
	}

	data, err := json.Marshal(ev)
	if err != nil {
		p.logger.Warn("marshal event failed", "type", ev.Type, "error", err)
		return
	}
	if err := p.conn.Publish(subject, data); err != nil {
		p.logger.Warn("nats publish failed", "subject", subject, "error", err)
	}
}

func (p *NATSPublisher) Close() {
	p.conn.Drain()
}
