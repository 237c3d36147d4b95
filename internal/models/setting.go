package models

import "time"

// Setting is a key-value row for UI preferences (theme flag, shop
// identity, shopping list draft). Values are stored as opaque strings;
// structured settings keep JSON in Value.
type Setting struct {
	Key       string    `gorm:"primaryKey;size:64" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
