package dashboard_stats

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/git-senpai/fashion-sub001/models"
)

func TestTopSellingProducts(t *testing.T) {
	now := time.Now()
	p1 := uuid.Must(uuid.NewV7())
	p2 := uuid.Must(uuid.NewV7())

	t.Run("ranks by units sold descending", func(t *testing.T) {
		products := []models.Product{
			newProduct(p1, "Linen Shirt", "Shirts", 20),
			newProduct(p2, "Wool Scarf", "Accessories", 5),
		}
		orders := []models.OrderWithItems{
			newOrder("delivered", 0, now, newItem(p1, 10, 3)),
			newOrder("delivered", 0, now, newItem(p2, 20, 5)),
			newOrder("delivered", 0, now, newItem(p1, 10, 1)),
		}

		top := topSellingProducts(orders, products)

		require.Len(t, top, 2)
		assert.Equal(t, "Wool Scarf", top[0].Name)
		assert.Equal(t, 5, top[0].UnitsSold)
		assert.InDelta(t, 100.0, top[0].Revenue, 1e-9)
		assert.Equal(t, "Linen Shirt", top[1].Name)
		assert.Equal(t, 4, top[1].UnitsSold)
		assert.InDelta(t, 40.0, top[1].Revenue, 1e-9)
	})

	t.Run("ties keep first-encountered order", func(t *testing.T) {
		// P1's first line item appears before any P2 line item, and both
		// finish on 5 units, so P1 must rank first.
		orders := []models.OrderWithItems{
			newOrder("delivered", 0, now,
				newItem(p1, 10, 3),
				newItem(p2, 10, 5),
				newItem(p1, 10, 2),
			),
		}

		top := topSellingProducts(orders, nil)

		require.Len(t, top, 2)
		assert.Equal(t, p1.String(), top[0].ProductID)
		assert.Equal(t, 5, top[0].UnitsSold)
		assert.Equal(t, p2.String(), top[1].ProductID)
		assert.Equal(t, 5, top[1].UnitsSold)
	})

	t.Run("caps the ranking at five products", func(t *testing.T) {
		order := newOrder("delivered", 0, now)
		for i := 0; i < 8; i++ {
			order.Items = append(order.Items, newItem(uuid.Must(uuid.NewV7()), 1, i+1))
		}

		top := topSellingProducts([]models.OrderWithItems{order}, nil)

		require.Len(t, top, 5)
		for i := 1; i < len(top); i++ {
			assert.GreaterOrEqual(t, top[i-1].UnitsSold, top[i].UnitsSold)
		}
	})

	t.Run("deleted products still rank under the fallback label", func(t *testing.T) {
		deleted := uuid.Must(uuid.NewV7())
		orders := []models.OrderWithItems{
			newOrder("delivered", 0, now, newItem(deleted, 15, 4)),
		}

		top := topSellingProducts(orders, []models.Product{newProduct(p1, "Linen Shirt", "Shirts", 20)})

		require.Len(t, top, 1)
		assert.Equal(t, UnknownProductLabel, top[0].Name)
		assert.Equal(t, 4, top[0].UnitsSold)
		assert.InDelta(t, 60.0, top[0].Revenue, 1e-9)
	})

	t.Run("zero orders yields an empty ranking", func(t *testing.T) {
		assert.Empty(t, topSellingProducts(nil, nil))
	})

	t.Run("deterministic across repeated runs", func(t *testing.T) {
		order := newOrder("delivered", 0, now)
		ids := make([]uuid.UUID, 6)
		for i := range ids {
			ids[i] = uuid.Must(uuid.NewV7())
			// All tie on 2 units so ordering depends purely on first-seen
			order.Items = append(order.Items, newItem(ids[i], 1, 2))
		}
		orders := []models.OrderWithItems{order}

		first := topSellingProducts(orders, nil)
		for run := 0; run < 10; run++ {
			assert.Equal(t, first, topSellingProducts(orders, nil), fmt.Sprintf("run %d diverged", run))
		}
	})
}
