package dashboard_stats

import (
	"github.com/google/uuid"

	"github.com/git-senpai/fashion-sub001/models"
)

// categoryIndex maps product id to its category label. Built once per
// invocation so line item resolution is a map lookup, not a scan.
func categoryIndex(products []models.Product) map[uuid.UUID]string {
	index := make(map[uuid.UUID]string, len(products))
	for _, p := range products {
		index[p.ID] = p.CategoryLabel()
	}
	return index
}

// salesByCategory sums line item revenue (unit price x quantity) per product
// category. Line items whose product no longer exists in the catalog are
// skipped, so this breakdown can undercount against totalSales, which works
// from order totals and is unaffected by product deletion.
func salesByCategory(orders []models.OrderWithItems, products []models.Product) map[string]float64 {
	index := categoryIndex(products)
	sales := make(map[string]float64)
	for _, o := range orders {
		for _, item := range o.Items {
			category, ok := index[item.ProductID]
			if !ok {
				continue
			}
			sales[category] += item.UnitPrice * float64(item.Quantity)
		}
	}
	return sales
}
