package usecase

import (
	"context"
	"log/slog"
	"time"

	"app/internal/event"
	repo "app/internal/repository"
)

// Poller は一定間隔で保存領域側の注文一覧とメモリを突き合わせる。
// 別プロセス/別セッションが同じ保存領域に注文を積んだ場合の検知がここ。
//
// 判定は件数ベース：保存側がメモリより多いときだけ丸ごと入れ替えて通知を1回出す。
// 件数が同じままのステータス変更や削除は拾えない（プロセス内はeventバスが即時に補う）。
type Poller struct {
	orders    *OrderUsecase
	orderRepo repo.OrderRepository
	interval  time.Duration
	pub       event.Publisher
	clock     Clock
	logger    *slog.Logger
}

func NewPoller(
	orders *OrderUsecase,
	orderRepo repo.OrderRepository,
	interval time.Duration,
	pub event.Publisher,
	clock Clock,
	logger *slog.Logger,
) *Poller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Poller{
		orders:    orders,
		orderRepo: orderRepo,
		interval:  interval,
		pub:       pub,
		clock:     clock,
		logger:    logger,
	}
}

// Run はcontextが切れるまで回り続ける。goroutineで呼ぶ。
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.Poll(ctx)
		}
	}
}

// Poll は1回分の突き合わせ。
// 保存側の件数がメモリを超えていたら入れ替えて new_orders 通知を1回だけ出す。
func (p *Poller) Poll(ctx context.Context) {
	stored, err := p.orderRepo.LoadAll(ctx)
	if err == repo.ErrNotFound {
		return
	}
	if err != nil {
		p.logger.Warn("poll load failed", "error", err)
		return
	}

	if len(stored) <= p.orders.Count() {
		return
	}

	p.orders.ReplaceAll(stored)
	p.logger.Info("orders reconciled from store", "count", len(stored))

	if p.pub != nil {
		p.pub.Publish(event.Event{Type: event.TypeNewOrders, At: p.clock.Now()})
	}
}
