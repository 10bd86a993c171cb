package models

// DashboardStatistics is the full admin dashboard snapshot. It is recomputed
// from scratch on every request and never partially mutated.
type DashboardStatistics struct {
	TotalSales        float64 `json:"total_sales"`         // Sum of order totals
	TotalOrders       int     `json:"total_orders"`        // All orders regardless of status
	TotalUsers        int     `json:"total_users"`         // Registered customers
	TotalProducts     int     `json:"total_products"`      // Catalog size
	PendingOrders     int     `json:"pending_orders"`      // Orders still in "pending"
	LowStockProducts  int     `json:"low_stock_products"`  // Products with stock below threshold
	TotalAddresses    int     `json:"total_addresses"`     // Saved customer addresses
	TotalCategories   int     `json:"total_categories"`    // Catalog categories
	AverageOrderValue float64 `json:"average_order_value"` // total_sales / total_orders, 0 when no orders

	OrdersByStatus     map[string]int     `json:"orders_by_status"`     // Only statuses actually observed
	ProductsByCategory map[string]int     `json:"products_by_category"` // Category name -> product count
	SalesByCategory    map[string]float64 `json:"sales_by_category"`    // Category name -> line item revenue

	RevenueByMonth     []MonthlyRevenue    `json:"revenue_by_month"`      // Always 6 entries, oldest first
	UserGrowthByMonth  []MonthlyUserGrowth `json:"user_growth_by_month"`  // Always 6 entries, oldest first
	TopSellingProducts []TopSellingProduct `json:"top_selling_products"`  // At most 5, by units sold desc
}

// MonthlyRevenue is one bar of the revenue chart
type MonthlyRevenue struct {
	Month   string  `json:"month"`   // Month abbreviation (Jan, Feb, etc.)
	Revenue float64 `json:"revenue"` // Total order revenue for the month
}

// MonthlyUserGrowth is one bar of the signups chart
type MonthlyUserGrowth struct {
	Month    string `json:"month"`     // Month abbreviation (Jan, Feb, etc.)
	NewUsers int    `json:"new_users"` // Users created during the month
}

// TopSellingProduct is one row of the best sellers table
type TopSellingProduct struct {
	ProductID string  `json:"product_id"` // Raw reference from order items
	Name      string  `json:"name"`       // Falls back to "Unknown Product" for deleted products
	UnitsSold int     `json:"units_sold"` // Total quantity across all orders
	Revenue   float64 `json:"revenue"`    // Sum of unit_price * quantity for this product
}
