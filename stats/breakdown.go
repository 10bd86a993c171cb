package dashboard_stats

import (
	"github.com/git-senpai/fashion-sub001/models"
)

// normalizeStatus maps unknown or empty order statuses to "pending".
func normalizeStatus(status string) string {
	for _, known := range models.KnownOrderStatuses {
		if status == known {
			return status
		}
	}
	return models.OrderStatusPending
}

// ordersByStatus counts orders per status. Only statuses actually observed
// appear as keys; absent statuses are not zero-filled.
func ordersByStatus(orders []models.OrderWithItems) map[string]int {
	counts := make(map[string]int)
	for _, o := range orders {
		counts[normalizeStatus(o.Status)]++
	}
	return counts
}

// productsByCategory counts products per category, bucketing products
// without a category under "Uncategorized".
func productsByCategory(products []models.Product) map[string]int {
	counts := make(map[string]int)
	for _, p := range products {
		counts[p.CategoryLabel()]++
	}
	return counts
}
