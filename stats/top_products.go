package dashboard_stats

import (
	"sort"

	"github.com/google/uuid"

	"github.com/git-senpai/fashion-sub001/models"
)

// topSellerLimit caps the best sellers table on the dashboard.
const topSellerLimit = 5

// UnknownProductLabel names ranked products that no longer exist in the
// catalog. Their line items still count toward the ranking.
const UnknownProductLabel = "Unknown Product"

// topSellingProducts ranks products by total units sold across all orders,
// descending, capped at five. Ties keep the order in which the products were
// first encountered while scanning orders, so the ranking is deterministic
// for a given snapshot. Revenue is recomputed in a second pass restricted to
// the selected products.
func topSellingProducts(orders []models.OrderWithItems, products []models.Product) []models.TopSellingProduct {
	unitsSold := make(map[uuid.UUID]int)
	firstSeen := make([]uuid.UUID, 0)
	for _, o := range orders {
		for _, item := range o.Items {
			if _, seen := unitsSold[item.ProductID]; !seen {
				firstSeen = append(firstSeen, item.ProductID)
			}
			unitsSold[item.ProductID] += item.Quantity
		}
	}

	// Stable sort over the first-seen order resolves ties deterministically.
	sort.SliceStable(firstSeen, func(i, j int) bool {
		return unitsSold[firstSeen[i]] > unitsSold[firstSeen[j]]
	})
	if len(firstSeen) > topSellerLimit {
		firstSeen = firstSeen[:topSellerLimit]
	}

	names := make(map[uuid.UUID]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}

	top := make([]models.TopSellingProduct, 0, len(firstSeen))
	for _, id := range firstSeen {
		name, ok := names[id]
		if !ok {
			name = UnknownProductLabel
		}
		top = append(top, models.TopSellingProduct{
			ProductID: id.String(),
			Name:      name,
			UnitsSold: unitsSold[id],
			Revenue:   productRevenue(orders, id),
		})
	}
	return top
}

// productRevenue sums unit price x quantity for one product across all
// orders. Only called for the handful of ranked products, so the rescan
// stays cheap.
func productRevenue(orders []models.OrderWithItems, productID uuid.UUID) float64 {
	var revenue float64
	for _, o := range orders {
		for _, item := range o.Items {
			if item.ProductID == productID {
				revenue += item.UnitPrice * float64(item.Quantity)
			}
		}
	}
	return revenue
}
