package usecase

import (
	"context"
	"fmt"
	"strings"

	"app/internal/domain/model"
)

// ダッシュボードが読む注文一覧（OrderUsecaseが実体）
type OrderLister interface {
	List() []model.Order
}

// DashboardUsecase は売上集計とAI分析。
type DashboardUsecase struct {
	orders OrderLister
	ai     TextGenerator
}

func NewDashboardUsecase(orders OrderLister, ai TextGenerator) *DashboardUsecase {
	return &DashboardUsecase{orders: orders, ai: ai}
}

// Stats は合計・売上・状況別件数・カテゴリ別販売数をまとめる。
// 売上は確定済みスナップショット（TotalAmount）の単純合計。
func (u *DashboardUsecase) Stats() model.DashboardStats {
	orders := u.orders.List()

	stats := model.DashboardStats{
		TotalOrders:   int64(len(orders)),
		CategorySales: []model.CategorySales{},
	}

	byCategory := map[string]int{}
	for _, o := range orders {
		stats.TotalRevenue += o.TotalAmount

		switch o.Status {
		case model.OrderStatusPending:
			stats.Pending++
		case model.OrderStatusPreparing:
			stats.Preparing++
		}

		for _, it := range o.Items {
			idx, ok := byCategory[it.Category]
			if !ok {
				byCategory[it.Category] = len(stats.CategorySales)
				stats.CategorySales = append(stats.CategorySales, model.CategorySales{Name: it.Category})
				idx = len(stats.CategorySales) - 1
			}
			stats.CategorySales[idx].Sales += it.Quantity
		}
	}

	return stats
}

// Analyze は集計サマリを文字列にして生成AIに渡し、助言テキストを返す。
// 失敗時はTextGenerator側で固定文言になるため、ここでエラーは出ない。
func (u *DashboardUsecase) Analyze(ctx context.Context) string {
	stats := u.Stats()

	names := make([]string, 0, len(stats.CategorySales))
	for _, c := range stats.CategorySales {
		names = append(names, c.Name)
	}

	summary := fmt.Sprintf(
		"Total Orders: %d, Revenue: %d, Top Categories: %s",
		stats.TotalOrders, stats.TotalRevenue, strings.Join(names, ", "),
	)

	return u.ai.AnalyzeSales(ctx, summary)
}
