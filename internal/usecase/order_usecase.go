package usecase

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"app/internal/domain/model"
	"app/internal/event"
	repo "app/internal/repository"
)

// チェックアウトで使うカート側の操作（CartUsecaseが実体）
type CartReader interface {
	Items(sessionID string) []model.CartItem
	Clear(sessionID string)
}

// OrderUsecase は注文一覧（新しい順）をメモリ上に持ち、
// 変更のたびにスナップショットを全量書き換え、ジャーナルに追記する。
type OrderUsecase struct {
	mu     sync.Mutex
	orders []model.Order

	orderRepo repo.OrderRepository
	eventRepo repo.OrderEventRepository
	cart      CartReader
	idGen     IDGenerator
	clock     Clock
	pub       event.Publisher
	logger    *slog.Logger
}

func NewOrderUsecase(
	orderRepo repo.OrderRepository,
	eventRepo repo.OrderEventRepository,
	cart CartReader,
	idGen IDGenerator,
	clock Clock,
	pub event.Publisher,
	logger *slog.Logger,
) *OrderUsecase {
	if logger == nil {
		logger = slog.Default()
	}
	return &OrderUsecase{
		orderRepo: orderRepo,
		eventRepo: eventRepo,
		cart:      cart,
		idGen:     idGen,
		clock:     clock,
		pub:       pub,
		logger:    logger,
	}
}

// Load は起動時に注文スナップショットを読み込む。
// 無い/壊れている場合はジャーナルの畳み込みで復元を試み、それも無ければ空で始める。
func (u *OrderUsecase) Load(ctx context.Context) error {
	orders, err := u.orderRepo.LoadAll(ctx)
	if err == repo.ErrNotFound {
		events, evErr := u.eventRepo.ListAll(ctx)
		if evErr != nil || len(events) == 0 {
			orders = []model.Order{}
		} else {
			orders = model.ReplayOrders(events)
			u.logger.Info("orders rebuilt from journal", "count", len(orders))
		}
	} else if err != nil {
		return err
	}

	u.mu.Lock()
	u.orders = orders
	u.mu.Unlock()
	return nil
}

type PlaceOrderInput struct {
	Name    string
	Phone   string
	Address string
	Payment string
}

// PlaceOrder はカートを注文に固める。
// 合計は作成時に確定し、以後は商品価格が変わっても動かない。
// 成功したらカートを空にする。空カートは注文にしない。
func (u *OrderUsecase) PlaceOrder(ctx context.Context, sessionID string, in PlaceOrderInput) (model.Order, error) {
	name := strings.TrimSpace(in.Name)
	phone := strings.TrimSpace(in.Phone)
	address := strings.TrimSpace(in.Address)
	if name == "" || phone == "" || address == "" {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "missing customer details")
	}

	payment := model.PaymentMethod(strings.TrimSpace(in.Payment))
	if !payment.Valid() {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid payment_method")
	}

	items := u.cart.Items(sessionID)
	if len(items) == 0 {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "cart empty")
	}

	var total int64 = 0
	for _, it := range items {
		total += it.Subtotal()
	}

	now := u.clock.Now()
	order := model.Order{
		ID:              u.idGen.NewID(),
		CustomerName:    name,
		CustomerPhone:   phone,
		CustomerAddress: address,
		Items:           items,
		TotalAmount:     total,
		Status:          model.OrderStatusPending,
		PaymentMethod:   payment,
		CreatedAt:       now,
		IsNew:           true,
	}

	u.mu.Lock()
	updated := append([]model.Order{order}, u.orders...)
	if err := u.orderRepo.SaveAll(ctx, updated); err != nil {
		u.mu.Unlock()
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "store error")
	}
	u.orders = updated
	u.mu.Unlock()

	u.appendEvent(ctx, model.OrderEvent{
		ID:        u.idGen.NewID(),
		Type:      model.OrderEventCreated,
		OrderID:   order.ID,
		Order:     &order,
		CreatedAt: now,
	})
	u.publish(event.Event{Type: event.TypeOrderCreated, OrderID: order.ID, At: now})

	u.cart.Clear(sessionID)

	return order, nil
}

// List は注文一覧（新しい順）のコピー。
func (u *OrderUsecase) List() []model.Order {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]model.Order{}, u.orders...)
}

func (u *OrderUsecase) Count() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.orders)
}

// UpdateStatus はステータスを前進させる。
// 不明な注文IDは黙って成功扱い（no-op）。前進以外の遷移は400。
func (u *OrderUsecase) UpdateStatus(ctx context.Context, orderID string, next model.OrderStatus) error {
	if !next.Valid() {
		return NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	u.mu.Lock()

	idx := -1
	for i := range u.orders {
		if u.orders[i].ID == orderID {
			idx = i
			break
		}
	}
	if idx < 0 {
		u.mu.Unlock()
		return nil
	}

	current := u.orders[idx].Status
	if current == next {
		u.mu.Unlock()
		return nil
	}
	//終端（配達済み・キャンセル済み）からは動かせない
	if current.Terminal() {
		u.mu.Unlock()
		return NewHTTPError(http.StatusBadRequest, "order already finalized")
	}
	if !current.CanTransitionTo(next) {
		u.mu.Unlock()
		return NewHTTPError(http.StatusBadRequest, "invalid transition")
	}

	updated := append([]model.Order{}, u.orders...)
	updated[idx].Status = next
	if err := u.orderRepo.SaveAll(ctx, updated); err != nil {
		u.mu.Unlock()
		return NewHTTPError(http.StatusInternalServerError, "store error")
	}
	u.orders = updated
	u.mu.Unlock()

	now := u.clock.Now()
	u.appendEvent(ctx, model.OrderEvent{
		ID:         u.idGen.NewID(),
		Type:       model.OrderEventStatusChanged,
		OrderID:    orderID,
		FromStatus: current,
		ToStatus:   next,
		CreatedAt:  now,
	})
	u.publish(event.Event{Type: event.TypeStatusChanged, OrderID: orderID, Status: next, At: now})

	return nil
}

// MarkSeen はIsNewフラグを消す（通知ハイライト停止）。
// 不明な注文ID・既に確認済みはno-op。
func (u *OrderUsecase) MarkSeen(ctx context.Context, orderID string) error {
	u.mu.Lock()

	idx := -1
	for i := range u.orders {
		if u.orders[i].ID == orderID {
			idx = i
			break
		}
	}
	if idx < 0 || !u.orders[idx].IsNew {
		u.mu.Unlock()
		return nil
	}

	updated := append([]model.Order{}, u.orders...)
	updated[idx].IsNew = false
	if err := u.orderRepo.SaveAll(ctx, updated); err != nil {
		u.mu.Unlock()
		return NewHTTPError(http.StatusInternalServerError, "store error")
	}
	u.orders = updated
	u.mu.Unlock()

	u.appendEvent(ctx, model.OrderEvent{
		ID:        u.idGen.NewID(),
		Type:      model.OrderEventSeen,
		OrderID:   orderID,
		CreatedAt: u.clock.Now(),
	})

	return nil
}

// ReplaceAll はポーラーが保存領域側の一覧で丸ごと入れ替えるときに使う。
func (u *OrderUsecase) ReplaceAll(orders []model.Order) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.orders = append([]model.Order{}, orders...)
}

// ジャーナル追記はベストエフォート（失敗しても注文フローは止めない）
func (u *OrderUsecase) appendEvent(ctx context.Context, ev model.OrderEvent) {
	if u.eventRepo == nil {
		return
	}
	if err := u.eventRepo.Append(ctx, ev); err != nil {
		u.logger.Warn("journal append failed", "type", ev.Type, "order_id", ev.OrderID, "error", err)
	}
}

func (u *OrderUsecase) publish(ev event.Event) {
	if u.pub != nil {
		u.pub.Publish(ev)
	}
}
