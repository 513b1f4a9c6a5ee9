package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"
)

func newOrderFixture(orderRepo *OrderRepoMock, eventRepo *OrderEventRepoMock) (*usecase.OrderUsecase, *usecase.CartUsecase) {
	cart := usecase.NewCartUsecase(newFinderStub())
	uc := usecase.NewOrderUsecase(
		orderRepo, eventRepo, cart,
		&seqIDGen{}, &fixedClock{t: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)},
		nil, nil,
	)
	return uc, cart
}

// チェックアウト：合計85・PENDING・IsNew、カートは空になる
func TestOrderUsecase_PlaceOrder_Success(t *testing.T) {
	ctx := context.Background()

	orderRepo := new(OrderRepoMock)
	eventRepo := new(OrderEventRepoMock)
	orderRepo.On("LoadAll", mock.Anything).Return([]model.Order{}, repo.ErrNotFound)
	orderRepo.On("SaveAll", mock.Anything, mock.Anything).Return(nil)
	eventRepo.On("ListAll", mock.Anything).Return([]model.OrderEvent{}, nil)
	eventRepo.On("Append", mock.Anything, mock.Anything).Return(nil)

	uc, cart := newOrderFixture(orderRepo, eventRepo)
	assert.NoError(t, uc.Load(ctx))

	_, err := cart.Add(sid, "1", "")
	assert.NoError(t, err)

	order, err := uc.PlaceOrder(ctx, sid, usecase.PlaceOrderInput{
		Name: "Ali", Phone: "0500", Address: "X", Payment: "CASH",
	})
	assert.NoError(t, err)

	assert.Equal(t, int64(85), order.TotalAmount)
	assert.Equal(t, model.OrderStatusPending, order.Status)
	assert.True(t, order.IsNew)
	assert.Equal(t, model.PaymentMethodCash, order.PaymentMethod)
	assert.Len(t, order.Items, 1)

	//カートは空になっている
	assert.Empty(t, cart.Items(sid))

	//一覧は新しい順
	assert.Len(t, uc.List(), 1)
	assert.Equal(t, order.ID, uc.List()[0].ID)

	orderRepo.AssertExpectations(t)
}

// 空カートは注文にしない
func TestOrderUsecase_PlaceOrder_EmptyCart(t *testing.T) {
	ctx := context.Background()

	orderRepo := new(OrderRepoMock)
	eventRepo := new(OrderEventRepoMock)
	uc, cart := newOrderFixture(orderRepo, eventRepo)

	_, err := uc.PlaceOrder(ctx, sid, usecase.PlaceOrderInput{
		Name: "Ali", Phone: "0500", Address: "X", Payment: "CASH",
	})
	assertErrContains(t, err, "cart empty")

	//注文は作られず保存もされない
	assert.Empty(t, uc.List())
	assert.Empty(t, cart.Items(sid))
	orderRepo.AssertNotCalled(t, "SaveAll", mock.Anything, mock.Anything)
}

func TestOrderUsecase_PlaceOrder_MissingDetails(t *testing.T) {
	ctx := context.Background()

	uc, cart := newOrderFixture(new(OrderRepoMock), new(OrderEventRepoMock))
	_, err := cart.Add(sid, "1", "")
	assert.NoError(t, err)

	_, err = uc.PlaceOrder(ctx, sid, usecase.PlaceOrderInput{Phone: "0500", Address: "X", Payment: "CASH"})
	assertErrContains(t, err, "missing customer details")

	_, err = uc.PlaceOrder(ctx, sid, usecase.PlaceOrderInput{Name: "Ali", Phone: "0500", Address: "X", Payment: "BITCOIN"})
	assertErrContains(t, err, "invalid payment_method")

	//失敗してもカートは残る
	assert.Len(t, cart.Items(sid), 1)
}

// 合計は作成時のスナップショット：あとで商品価格が変わっても動かない
func TestOrderUsecase_TotalAmountFrozen(t *testing.T) {
	ctx := context.Background()

	orderRepo := new(OrderRepoMock)
	eventRepo := new(OrderEventRepoMock)
	orderRepo.On("SaveAll", mock.Anything, mock.Anything).Return(nil)
	eventRepo.On("Append", mock.Anything, mock.Anything).Return(nil)

	finder := newFinderStub()
	cart := usecase.NewCartUsecase(finder)
	uc := usecase.NewOrderUsecase(
		orderRepo, eventRepo, cart,
		&seqIDGen{}, &fixedClock{t: time.Now()}, nil, nil,
	)

	_, err := cart.Add(sid, "1", "")
	assert.NoError(t, err)
	cart.ChangeQuantity(sid, "1", 1) // qty 2

	order, err := uc.PlaceOrder(ctx, sid, usecase.PlaceOrderInput{
		Name: "Ali", Phone: "0500", Address: "X", Payment: "CARD",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(170), order.TotalAmount)

	//カタログ側の値上げは注文に影響しない
	finder.products["1"] = model.Product{ID: "1", Name: "برجر نجف الخاص", Price: 999, Category: "برجر"}
	assert.Equal(t, int64(170), uc.List()[0].TotalAmount)
}

// =====================
// ステータス遷移
// =====================

func placeOne(t *testing.T, uc *usecase.OrderUsecase, cart *usecase.CartUsecase) model.Order {
	t.Helper()
	_, err := cart.Add(sid, "1", "")
	assert.NoError(t, err)
	order, err := uc.PlaceOrder(context.Background(), sid, usecase.PlaceOrderInput{
		Name: "Ali", Phone: "0500", Address: "X", Payment: "CASH",
	})
	assert.NoError(t, err)
	return order
}

func TestOrderUsecase_UpdateStatus_ForwardOnly(t *testing.T) {
	ctx := context.Background()

	orderRepo := new(OrderRepoMock)
	eventRepo := new(OrderEventRepoMock)
	orderRepo.On("SaveAll", mock.Anything, mock.Anything).Return(nil)
	eventRepo.On("Append", mock.Anything, mock.Anything).Return(nil)

	uc, cart := newOrderFixture(orderRepo, eventRepo)
	order := placeOne(t, uc, cart)

	//PENDING → READY は飛ばしなので不可
	err := uc.UpdateStatus(ctx, order.ID, model.OrderStatusReady)
	assertErrContains(t, err, "invalid transition")

	assert.NoError(t, uc.UpdateStatus(ctx, order.ID, model.OrderStatusPreparing))
	assert.NoError(t, uc.UpdateStatus(ctx, order.ID, model.OrderStatusReady))
	assert.NoError(t, uc.UpdateStatus(ctx, order.ID, model.OrderStatusDelivered))
	assert.Equal(t, model.OrderStatusDelivered, uc.List()[0].Status)

	//逆戻りは不可
	err = uc.UpdateStatus(ctx, order.ID, model.OrderStatusPending)
	assertErrContains(t, err, "order already finalized")
}

// 終端ステータスに入った注文はどこへも動かせない
func TestOrderUsecase_UpdateStatus_TerminalLocked(t *testing.T) {
	ctx := context.Background()

	orderRepo := new(OrderRepoMock)
	eventRepo := new(OrderEventRepoMock)
	orderRepo.On("SaveAll", mock.Anything, mock.Anything).Return(nil)
	eventRepo.On("Append", mock.Anything, mock.Anything).Return(nil)

	uc, cart := newOrderFixture(orderRepo, eventRepo)
	order := placeOne(t, uc, cart)

	assert.NoError(t, uc.UpdateStatus(ctx, order.ID, model.OrderStatusCancelled))

	for _, next := range []model.OrderStatus{
		model.OrderStatusPending,
		model.OrderStatusPreparing,
		model.OrderStatusReady,
		model.OrderStatusDelivered,
	} {
		err := uc.UpdateStatus(ctx, order.ID, next)
		assertErrContains(t, err, "order already finalized")
	}
	assert.Equal(t, model.OrderStatusCancelled, uc.List()[0].Status)
}

func TestOrderUsecase_UpdateStatus_CancelOnlyFromPending(t *testing.T) {
	ctx := context.Background()

	orderRepo := new(OrderRepoMock)
	eventRepo := new(OrderEventRepoMock)
	orderRepo.On("SaveAll", mock.Anything, mock.Anything).Return(nil)
	eventRepo.On("Append", mock.Anything, mock.Anything).Return(nil)

	uc, cart := newOrderFixture(orderRepo, eventRepo)
	order := placeOne(t, uc, cart)

	assert.NoError(t, uc.UpdateStatus(ctx, order.ID, model.OrderStatusPreparing))

	err := uc.UpdateStatus(ctx, order.ID, model.OrderStatusCancelled)
	assertErrContains(t, err, "invalid transition")
}

// 不明な注文IDは黙って成功扱い
func TestOrderUsecase_UpdateStatus_UnknownIDNoop(t *testing.T) {
	ctx := context.Background()

	orderRepo := new(OrderRepoMock)
	uc, _ := newOrderFixture(orderRepo, new(OrderEventRepoMock))

	assert.NoError(t, uc.UpdateStatus(ctx, "no-such-order", model.OrderStatusPreparing))
	orderRepo.AssertNotCalled(t, "SaveAll", mock.Anything, mock.Anything)
}

func TestOrderUsecase_UpdateStatus_InvalidStatus(t *testing.T) {
	ctx := context.Background()

	uc, _ := newOrderFixture(new(OrderRepoMock), new(OrderEventRepoMock))
	err := uc.UpdateStatus(ctx, "any", model.OrderStatus("SHIPPED"))
	assertErrContains(t, err, "invalid status")
}

// =====================
// IsNewフラグ
// =====================

func TestOrderUsecase_MarkSeen(t *testing.T) {
	ctx := context.Background()

	orderRepo := new(OrderRepoMock)
	eventRepo := new(OrderEventRepoMock)
	orderRepo.On("SaveAll", mock.Anything, mock.Anything).Return(nil)
	eventRepo.On("Append", mock.Anything, mock.Anything).Return(nil)

	uc, cart := newOrderFixture(orderRepo, eventRepo)
	order := placeOne(t, uc, cart)

	assert.True(t, uc.List()[0].IsNew)
	assert.NoError(t, uc.MarkSeen(ctx, order.ID))
	assert.False(t, uc.List()[0].IsNew)

	//2回目・不明IDはno-op
	assert.NoError(t, uc.MarkSeen(ctx, order.ID))
	assert.NoError(t, uc.MarkSeen(ctx, "no-such-order"))
}

// =====================
// 起動時読み込み
// =====================

// スナップショットが無ければジャーナルから復元する
func TestOrderUsecase_Load_RebuildsFromJournal(t *testing.T) {
	ctx := context.Background()

	created := model.Order{
		ID: "o-1", CustomerName: "Ali", Status: model.OrderStatusPending,
		TotalAmount: 85, IsNew: true,
	}
	events := []model.OrderEvent{
		{Type: model.OrderEventCreated, OrderID: "o-1", Order: &created},
		{Type: model.OrderEventStatusChanged, OrderID: "o-1", FromStatus: model.OrderStatusPending, ToStatus: model.OrderStatusPreparing},
		{Type: model.OrderEventSeen, OrderID: "o-1"},
	}

	orderRepo := new(OrderRepoMock)
	eventRepo := new(OrderEventRepoMock)
	orderRepo.On("LoadAll", mock.Anything).Return([]model.Order{}, repo.ErrNotFound)
	eventRepo.On("ListAll", mock.Anything).Return(events, nil)

	uc, _ := newOrderFixture(orderRepo, eventRepo)
	assert.NoError(t, uc.Load(ctx))

	orders := uc.List()
	assert.Len(t, orders, 1)
	assert.Equal(t, model.OrderStatusPreparing, orders[0].Status)
	assert.False(t, orders[0].IsNew)
}

func TestOrderUsecase_Load_EmptyWhenNothingStored(t *testing.T) {
	ctx := context.Background()

	orderRepo := new(OrderRepoMock)
	eventRepo := new(OrderEventRepoMock)
	orderRepo.On("LoadAll", mock.Anything).Return([]model.Order{}, repo.ErrNotFound)
	eventRepo.On("ListAll", mock.Anything).Return([]model.OrderEvent{}, nil)

	uc, _ := newOrderFixture(orderRepo, eventRepo)
	assert.NoError(t, uc.Load(ctx))
	assert.Empty(t, uc.List())
}
