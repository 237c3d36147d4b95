package models

import "time"

// Activity types.
const (
	ActivityStockIn  = "stock_in"
	ActivityStockOut = "stock_out"
	ActivityImport   = "import"
	ActivityExport   = "export"
	ActivityDelete   = "delete"
)

// Activity is an append-only audit record. Rows are never updated or
// deleted; ItemID may dangle after the referenced item is removed.
type Activity struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	ItemID         *uint     `gorm:"index" json:"item_id"`
	Type           string    `gorm:"size:16;index;not null" json:"type"`
	QuantityChange int       `gorm:"default:0" json:"quantity_change"`
	Note           string    `gorm:"size:255" json:"note"`
	FileName       string    `gorm:"size:255" json:"file_name"`
	Status         string    `gorm:"size:16;default:success" json:"status"`
	CreatedAt      time.Time `gorm:"index" json:"created_at"`

	// filled by LEFT JOIN in list queries, not a column
	ItemName string `gorm:"-:migration;->" json:"item_name"`
}
