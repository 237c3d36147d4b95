package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item is a single stocked product.
// Name uniqueness is deliberately not enforced at schema level; duplicate
// detection happens via case-insensitive lookups in the store.
type Item struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"size:128;not null" json:"name"`
	SKU         string          `gorm:"column:sku;size:64" json:"sku"`
	CustomID    string          `gorm:"column:custom_id;size:64" json:"custom_id"`
	CategoryID  *uint           `gorm:"index" json:"category_id"`
	BuyPrice    decimal.Decimal `gorm:"type:decimal(14,2);default:0" json:"buy_price"`
	SellPrice   decimal.Decimal `gorm:"type:decimal(14,2);default:0" json:"sell_price"`
	Quantity    int             `gorm:"default:0" json:"quantity"`
	MinStock    int             `gorm:"default:5" json:"min_stock"`
	Description string          `gorm:"type:text" json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	// filled by LEFT JOIN in list queries, not a column
	CategoryName string `gorm:"-:migration;->" json:"category_name"`
}
