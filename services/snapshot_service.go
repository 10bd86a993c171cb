package services

import (
	"context"
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"gorm.io/gorm"

	"github.com/git-senpai/fashion-sub001/config"
	"github.com/git-senpai/fashion-sub001/models"
	dashboard_stats "github.com/git-senpai/fashion-sub001/stats"
)

// PoolQuerier is the subset of *pgxpool.Pool the snapshot fetches use.
type PoolQuerier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// SnapshotService fetches the raw entity collections the dashboard
// aggregation runs over. The five collections are retrieved concurrently and
// every fetch failure is isolated: a failing source contributes an empty
// collection and a warning log, it never fails the snapshot as a whole.
// Orders, users and products go through GORM; the small flat categories and
// addresses tables are read with raw SQL over the pgx pool.
type SnapshotService struct {
	db   *gorm.DB
	pool PoolQuerier
}

// NewSnapshotService creates a snapshot service on the given connections
func NewSnapshotService(db *gorm.DB, pool PoolQuerier) *SnapshotService {
	return &SnapshotService{db: db, pool: pool}
}

var snapshotService *SnapshotService

// GetSnapshotService returns the global snapshot service instance
func GetSnapshotService() *SnapshotService {
	if snapshotService == nil {
		snapshotService = NewSnapshotService(config.Gorm, config.DB)
	}
	return snapshotService
}

// Fetch retrieves all five collections and returns them as one snapshot.
// Each goroutine writes a distinct field, so no locking is needed.
func (s *SnapshotService) Fetch(ctx context.Context) dashboard_stats.Snapshot {
	var snap dashboard_stats.Snapshot

	var wg sync.WaitGroup
	wg.Add(5)
	go func() { defer wg.Done(); snap.Orders = s.fetchOrders(ctx) }()
	go func() { defer wg.Done(); snap.Users = s.fetchUsers(ctx) }()
	go func() { defer wg.Done(); snap.Products = s.fetchProducts(ctx) }()
	go func() { defer wg.Done(); snap.Categories = s.fetchCategories(ctx) }()
	go func() { defer wg.Done(); snap.Addresses = s.fetchAddresses(ctx) }()
	wg.Wait()

	return snap
}

// fetchOrders loads orders oldest first and attaches their line items. The
// created_at ordering fixes the scan order downstream ranking tie-breaks
// depend on.
func (s *SnapshotService) fetchOrders(ctx context.Context) []models.OrderWithItems {
	var orders []models.Order
	if err := s.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&orders).Error; err != nil {
		log.Printf("[dashboard.snapshot] WARN orders fetch failed, substituting empty collection: %v", err)
		return []models.OrderWithItems{}
	}

	var items []models.OrderItem
	if err := s.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		log.Printf("[dashboard.snapshot] WARN order items fetch failed, orders will carry no line items: %v", err)
		items = nil
	}

	itemsByOrder := make(map[uuid.UUID][]models.OrderItem, len(orders))
	for _, item := range items {
		itemsByOrder[item.OrderID] = append(itemsByOrder[item.OrderID], item)
	}

	withItems := make([]models.OrderWithItems, 0, len(orders))
	for _, o := range orders {
		withItems = append(withItems, models.OrderWithItems{
			Order: o,
			Items: itemsByOrder[o.ID],
		})
	}
	return withItems
}

func (s *SnapshotService) fetchUsers(ctx context.Context) []models.User {
	var users []models.User
	if err := s.db.WithContext(ctx).Find(&users).Error; err != nil {
		log.Printf("[dashboard.snapshot] WARN users fetch failed, substituting empty collection: %v", err)
		return []models.User{}
	}
	return users
}

func (s *SnapshotService) fetchProducts(ctx context.Context) []models.Product {
	var products []models.Product
	if err := s.db.WithContext(ctx).Find(&products).Error; err != nil {
		log.Printf("[dashboard.snapshot] WARN products fetch failed, substituting empty collection: %v", err)
		return []models.Product{}
	}
	return products
}

func (s *SnapshotService) fetchCategories(ctx context.Context) []models.Category {
	rows, err := s.pool.Query(ctx, `SELECT id, name, status, created_at FROM categories`)
	if err != nil {
		log.Printf("[dashboard.snapshot] WARN categories fetch failed, substituting empty collection: %v", err)
		return []models.Category{}
	}
	defer rows.Close()

	categories := make([]models.Category, 0)
	for rows.Next() {
		var cat models.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Status, &cat.CreatedAt); err != nil {
			log.Printf("[dashboard.snapshot] WARN category row scan failed, substituting empty collection: %v", err)
			return []models.Category{}
		}
		categories = append(categories, cat)
	}
	if err := rows.Err(); err != nil {
		log.Printf("[dashboard.snapshot] WARN categories fetch failed, substituting empty collection: %v", err)
		return []models.Category{}
	}
	return categories
}

func (s *SnapshotService) fetchAddresses(ctx context.Context) []models.Address {
	rows, err := s.pool.Query(ctx, `SELECT id, user_id, city, country, created_at FROM addresses`)
	if err != nil {
		log.Printf("[dashboard.snapshot] WARN addresses fetch failed, substituting empty collection: %v", err)
		return []models.Address{}
	}
	defer rows.Close()

	addresses := make([]models.Address, 0)
	for rows.Next() {
		var addr models.Address
		if err := rows.Scan(&addr.ID, &addr.UserID, &addr.City, &addr.Country, &addr.CreatedAt); err != nil {
			log.Printf("[dashboard.snapshot] WARN address row scan failed, substituting empty collection: %v", err)
			return []models.Address{}
		}
		addresses = append(addresses, addr)
	}
	if err := rows.Err(); err != nil {
		log.Printf("[dashboard.snapshot] WARN addresses fetch failed, substituting empty collection: %v", err)
		return []models.Address{}
	}
	return addresses
}
