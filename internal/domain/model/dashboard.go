package model

// カテゴリ別の販売数量
type CategorySales struct {
	Name  string `json:"name"`
	Sales int64  `json:"sales"`
}

type DashboardStats struct {
	TotalOrders   int64           `json:"total_orders"`
	TotalRevenue  int64           `json:"total_revenue"`
	Pending       int64           `json:"pending"`
	Preparing     int64           `json:"preparing"`
	CategorySales []CategorySales `json:"category_sales"`
}
