package dashboard_stats

import (
	"github.com/git-senpai/fashion-sub001/models"
)

// totalSales sums order totals. Order totals are taken at face value here;
// they are not recomputed from line items, so this figure includes orders
// whose products have since been deleted (unlike salesByCategory).
func totalSales(orders []models.OrderWithItems) float64 {
	var total float64
	for _, o := range orders {
		total += o.TotalPrice
	}
	return total
}

func pendingOrders(orders []models.OrderWithItems) int {
	count := 0
	for _, o := range orders {
		if normalizeStatus(o.Status) == models.OrderStatusPending {
			count++
		}
	}
	return count
}

func lowStockProducts(products []models.Product) int {
	count := 0
	for _, p := range products {
		if p.CountInStock < models.LowStockThreshold {
			count++
		}
	}
	return count
}

func averageOrderValue(sales float64, orderCount int) float64 {
	if orderCount == 0 {
		return 0
	}
	return sales / float64(orderCount)
}
