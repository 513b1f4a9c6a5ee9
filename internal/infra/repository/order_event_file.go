package repository

import (
	"context"
	"encoding/json"

	"app/internal/domain/model"
)

const orderEventsKey = "order_events"

type OrderEventFileRepository struct {
	store *fileStore
}

func NewOrderEventFileRepository(dir string) *OrderEventFileRepository {
	return &OrderEventFileRepository{store: newFileStore(dir)}
}

func (r *OrderEventFileRepository) Append(ctx context.Context, ev model.OrderEvent) error {
	return r.store.appendLine(orderEventsKey, ev)
}

func (r *OrderEventFileRepository) ListAll(ctx context.Context) ([]model.OrderEvent, error) {
	events := []model.OrderEvent{}
	err := r.store.readLines(orderEventsKey, func(raw json.RawMessage) {
		var ev model.OrderEvent
		if err := json.Unmarshal(raw, &ev); err != nil {
			return
		}
		events = append(events, ev)
	})
	if err != nil {
		return nil, err
	}
	return events, nil
}
