package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// LowStockThreshold is the stock level below which a product counts as low
// stock on the admin dashboard.
const LowStockThreshold = 10

// UncategorizedLabel is the bucket products without a category fall into.
const UncategorizedLabel = "Uncategorized"

// Product represents a storefront product
type Product struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Name         string         `json:"name" gorm:"not null;index"`
	Description  string         `json:"description" gorm:"type:text"`
	Price        float64        `json:"price" gorm:"type:numeric(12,2);not null;check:price >= 0"`
	Category     string         `json:"category" gorm:"type:varchar(100);index"` // empty means uncategorized
	CountInStock int            `json:"count_in_stock" gorm:"not null;default:0;check:count_in_stock >= 0"`
	Status       string         `json:"status" gorm:"type:varchar(20);not null;default:'Draft';check:status IN ('Active', 'Draft')"`
	Tags         datatypes.JSON `json:"tags" gorm:"type:jsonb;not null;default:'[]'"`
	Media        datatypes.JSON `json:"media" gorm:"type:jsonb;not null;default:'{}'"`
	CreatedAt    time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Product) TableName() string {
	return "products"
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// CategoryLabel returns the dashboard bucket for this product.
func (p *Product) CategoryLabel() string {
	if p.Category == "" {
		return UncategorizedLabel
	}
	return p.Category
}
