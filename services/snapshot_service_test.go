package services

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// The five collections are fetched concurrently, so arrival order of the
	// queries is not deterministic
	mock.MatchExpectationsInOrder(false)
	return gormDB, mock
}

// poolRows is a minimal pgx.Rows over in-memory values for the raw SQL
// fetches that go through the pgx pool.
type poolRows struct {
	rows [][]any
	idx  int
	err  error
}

func (r *poolRows) Close()                                       {}
func (r *poolRows) Err() error                                   { return r.err }
func (r *poolRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *poolRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *poolRows) Next() bool                                   { r.idx++; return r.idx <= len(r.rows) }
func (r *poolRows) Values() ([]any, error)                       { return nil, nil }
func (r *poolRows) RawValues() [][]byte                          { return nil }
func (r *poolRows) Conn() *pgx.Conn                              { return nil }

func (r *poolRows) Scan(dest ...any) error {
	row := r.rows[r.idx-1]
	for i, d := range dest {
		switch v := d.(type) {
		case *uuid.UUID:
			*v = row[i].(uuid.UUID)
		case *string:
			*v = row[i].(string)
		case *time.Time:
			*v = row[i].(time.Time)
		}
	}
	return nil
}

// fakePool serves category and address rows by table name. Query is called
// from two goroutines at once; the fields are read-only after setup.
type fakePool struct {
	categories *poolRows
	addresses  *poolRows
	err        error
}

func (p *fakePool) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if p.err != nil {
		return nil, p.err
	}
	switch {
	case strings.Contains(sql, "FROM categories") && p.categories != nil:
		return p.categories, nil
	case strings.Contains(sql, "FROM addresses") && p.addresses != nil:
		return p.addresses, nil
	}
	return &poolRows{}, nil
}

func TestSnapshotService_Fetch(t *testing.T) {
	t.Run("assembles all five collections with items grouped per order", func(t *testing.T) {
		gormDB, mock := newMockDB(t)

		orderID := uuid.Must(uuid.NewV7())
		otherOrderID := uuid.Must(uuid.NewV7())
		productID := uuid.Must(uuid.NewV7())
		createdAt := time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "orders" ORDER BY created_at ASC`)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "status", "total_price", "created_at"}).
				AddRow(orderID, "pending", 100.0, createdAt).
				AddRow(otherOrderID, "delivered", 50.0, createdAt))

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "order_items" ORDER BY created_at ASC`)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "product_id", "unit_price", "quantity"}).
				AddRow(uuid.Must(uuid.NewV7()), orderID, productID, 25.0, 2).
				AddRow(uuid.Must(uuid.NewV7()), orderID, productID, 50.0, 1))

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users"`)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "created_at"}).
				AddRow(uuid.Must(uuid.NewV7()), "a@example.com", createdAt))

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "products"`)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "category", "count_in_stock"}).
				AddRow(productID, "Linen Shirt", "Shirts", 12))

		pool := &fakePool{
			categories: &poolRows{rows: [][]any{
				{uuid.Must(uuid.NewV7()), "Shirts", "Active", createdAt},
			}},
			addresses: &poolRows{rows: [][]any{
				{uuid.Must(uuid.NewV7()), uuid.Must(uuid.NewV7()), "Lagos", "Nigeria", createdAt},
			}},
		}

		snap := NewSnapshotService(gormDB, pool).Fetch(context.Background())

		require.Len(t, snap.Orders, 2)
		assert.Len(t, snap.Orders[0].Items, 2)
		assert.Empty(t, snap.Orders[1].Items)
		assert.Len(t, snap.Users, 1)
		assert.Len(t, snap.Products, 1)
		assert.Len(t, snap.Categories, 1)
		assert.Equal(t, "Shirts", snap.Categories[0].Name)
		assert.Len(t, snap.Addresses, 1)
		assert.Equal(t, "Lagos", snap.Addresses[0].City)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("a failing source becomes an empty collection, not an error", func(t *testing.T) {
		gormDB, mock := newMockDB(t)

		boom := errors.New("connection refused")
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "orders" ORDER BY created_at ASC`)).
			WillReturnError(boom)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users"`)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.Must(uuid.NewV7())))
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "products"`)).
			WillReturnError(boom)

		snap := NewSnapshotService(gormDB, &fakePool{err: boom}).Fetch(context.Background())

		// Failures are isolated: the healthy source still contributes
		assert.Empty(t, snap.Orders)
		assert.Len(t, snap.Users, 1)
		assert.Empty(t, snap.Products)
		assert.Empty(t, snap.Categories)
		assert.Empty(t, snap.Addresses)
	})

	t.Run("a row error mid-iteration empties the pool-backed collection", func(t *testing.T) {
		gormDB, mock := newMockDB(t)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "orders" ORDER BY created_at ASC`)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users"`)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "products"`)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		pool := &fakePool{
			categories: &poolRows{err: errors.New("severed stream")},
			addresses: &poolRows{rows: [][]any{
				{uuid.Must(uuid.NewV7()), uuid.Must(uuid.NewV7()), "Abuja", "Nigeria", time.Now()},
			}},
		}

		snap := NewSnapshotService(gormDB, pool).Fetch(context.Background())

		assert.Empty(t, snap.Categories)
		assert.Len(t, snap.Addresses, 1)
	})

	t.Run("items query failure leaves orders without line items", func(t *testing.T) {
		gormDB, mock := newMockDB(t)

		orderID := uuid.Must(uuid.NewV7())

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "orders" ORDER BY created_at ASC`)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "status", "total_price"}).
				AddRow(orderID, "pending", 10.0))
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "order_items" ORDER BY created_at ASC`)).
			WillReturnError(errors.New("relation vanished"))
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users"`)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "products"`)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		snap := NewSnapshotService(gormDB, &fakePool{}).Fetch(context.Background())

		require.Len(t, snap.Orders, 1)
		assert.Empty(t, snap.Orders[0].Items)
	})
}
