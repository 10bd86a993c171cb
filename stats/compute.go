// Package dashboard_stats derives the admin dashboard statistics from an
// in-memory snapshot of the raw entity collections. Every facet is a pure
// function of the snapshot: no caching, no shared state, no side effects.
// The same snapshot and clock always produce identical output.
package dashboard_stats

import (
	"time"

	"github.com/git-senpai/fashion-sub001/models"
)

// Compute assembles the full dashboard snapshot. The facets only depend on
// the raw collections, never on each other, so their evaluation order does
// not matter. now anchors the trailing six-month window.
func Compute(snap Snapshot, now time.Time) models.DashboardStatistics {
	sales := totalSales(snap.Orders)

	return models.DashboardStatistics{
		TotalSales:        sales,
		TotalOrders:       len(snap.Orders),
		TotalUsers:        len(snap.Users),
		TotalProducts:     len(snap.Products),
		PendingOrders:     pendingOrders(snap.Orders),
		LowStockProducts:  lowStockProducts(snap.Products),
		TotalAddresses:    len(snap.Addresses),
		TotalCategories:   len(snap.Categories),
		AverageOrderValue: averageOrderValue(sales, len(snap.Orders)),

		OrdersByStatus:     ordersByStatus(snap.Orders),
		ProductsByCategory: productsByCategory(snap.Products),
		SalesByCategory:    salesByCategory(snap.Orders, snap.Products),

		RevenueByMonth:     revenueByMonth(snap.Orders, now),
		UserGrowthByMonth:  userGrowthByMonth(snap.Users, now),
		TopSellingProducts: topSellingProducts(snap.Orders, snap.Products),
	}
}
