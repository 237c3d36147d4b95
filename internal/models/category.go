package models

import "time"

// Category groups items, e.g. spare part types of a phone repair shop.
type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:64;not null" json:"name"`
	Icon      string    `gorm:"size:64;default:cube-outline" json:"icon"`
	CreatedAt time.Time `json:"created_at"`
}
