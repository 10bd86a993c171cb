package dashboard_stats

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/git-senpai/fashion-sub001/models"
)

func TestNormalizeStatus(t *testing.T) {
	assert.Equal(t, "shipped", normalizeStatus("shipped"))
	assert.Equal(t, "pending", normalizeStatus(""))
	assert.Equal(t, "pending", normalizeStatus("refunded"))
	assert.Equal(t, "pending", normalizeStatus("PENDING"), "statuses are case sensitive")
}

func TestOrdersByStatus(t *testing.T) {
	now := time.Now()
	orders := []models.OrderWithItems{
		newOrder("pending", 1, now),
		newOrder("shipped", 1, now),
		newOrder("shipped", 1, now),
		newOrder("bogus", 1, now),
	}

	counts := ordersByStatus(orders)

	assert.Equal(t, map[string]int{"pending": 2, "shipped": 2}, counts)
}

func TestProductsByCategory(t *testing.T) {
	pid := func() uuid.UUID { return uuid.Must(uuid.NewV7()) }
	products := []models.Product{
		newProduct(pid(), "A", "Shirts", 1),
		newProduct(pid(), "B", "Shirts", 1),
		newProduct(pid(), "C", "", 1),
	}

	counts := productsByCategory(products)

	assert.Equal(t, map[string]int{
		"Shirts":                  2,
		models.UncategorizedLabel: 1,
	}, counts)
}
