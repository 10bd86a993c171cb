package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order statuses. Anything outside this set is treated as pending by the
// dashboard aggregation.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// KnownOrderStatuses lists every status the storefront can set on an order.
var KnownOrderStatuses = []string{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// Order represents a complete customer order
type Order struct {
	ID            uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index"`
	OrderNumber   string     `json:"order_number" gorm:"uniqueIndex;not null"`
	AddressID     *uuid.UUID `json:"address_id,omitempty" gorm:"type:uuid"`
	Subtotal      float64    `json:"subtotal" gorm:"type:numeric(12,2);not null;default:0"`
	Tax           float64    `json:"tax" gorm:"type:numeric(12,2);not null;default:0"`
	ShippingCost  float64    `json:"shipping_cost" gorm:"type:numeric(12,2);not null;default:0"`
	TotalPrice    float64    `json:"total_price" gorm:"type:numeric(12,2);not null;default:0;check:total_price >= 0"`
	Status        string     `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	CustomerNotes *string    `json:"customer_notes,omitempty" gorm:"type:text"`
	CreatedAt     time.Time  `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt     time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Order) TableName() string {
	return "orders"
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// OrderItem represents an individual product line in an order. ProductID is a
// plain reference, not a foreign key: the product may have been deleted since
// the order was placed, so ProductName is denormalized onto the row.
type OrderItem struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `json:"order_id" gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index"`
	ProductName string    `json:"product_name" gorm:"not null"`
	UnitPrice   float64   `json:"unit_price" gorm:"type:numeric(12,2);not null;default:0"`
	Quantity    int       `json:"quantity" gorm:"not null;default:0;check:quantity >= 0"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// OrderWithItems combines an order and its line items. This is the shape the
// dashboard snapshot provider hands to the aggregation engine.
type OrderWithItems struct {
	Order
	Items []OrderItem `gorm:"-" json:"items"`
}
