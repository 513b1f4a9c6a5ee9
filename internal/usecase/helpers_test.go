package usecase_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"app/internal/domain/model"
)

func assertErrContains(t *testing.T, err error, want string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error containing %q, got nil", want)
	}
	if !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error containing %q, got %q", want, err.Error())
	}
}

// =====================
// 固定部品（id/時刻）
// =====================

type seqIDGen struct {
	n int
}

func (g *seqIDGen) NewID() string {
	g.n++
	return fmt.Sprintf("id-%03d", g.n)
}

type fixedClock struct {
	t time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.t
}

// =====================
// Repository mocks
// =====================

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) LoadAll(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

func (m *OrderRepoMock) SaveAll(ctx context.Context, orders []model.Order) error {
	args := m.Called(ctx, orders)
	return args.Error(0)
}

type OrderEventRepoMock struct{ mock.Mock }

func (m *OrderEventRepoMock) Append(ctx context.Context, ev model.OrderEvent) error {
	args := m.Called(ctx, ev)
	return args.Error(0)
}

func (m *OrderEventRepoMock) ListAll(ctx context.Context) ([]model.OrderEvent, error) {
	args := m.Called(ctx)
	events, _ := args.Get(0).([]model.OrderEvent)
	return events, args.Error(1)
}

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) LoadAll(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]model.Product)
	return products, args.Error(1)
}

func (m *ProductRepoMock) SaveAll(ctx context.Context, products []model.Product) error {
	args := m.Called(ctx, products)
	return args.Error(0)
}

// =====================
// 生成AI stub
// =====================

type aiStub struct {
	description string
	analysis    string
}

func (s *aiStub) DescribeDish(ctx context.Context, dishName string) string {
	return s.description
}

func (s *aiStub) AnalyzeSales(ctx context.Context, summary string) string {
	return s.analysis
}
