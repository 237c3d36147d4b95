package store

import (
	"fmt"

	"github.com/wpcellgap-cmyk/stock/internal/models"
)

// LogActivity appends one audit row. Activities are never updated or
// deleted afterwards. itemID is nil for file-level events (import/export).
func (s *Store) LogActivity(itemID *uint, actType string, qtyChange int, note, fileName, status string) error {
	if status == "" {
		status = "success"
	}
	act := models.Activity{
		ItemID:         itemID,
		Type:           actType,
		QuantityChange: qtyChange,
		Note:           note,
		FileName:       fileName,
		Status:         status,
	}
	if err := s.db.Create(&act).Error; err != nil {
		return fmt.Errorf("log activity: %w", err)
	}
	return nil
}

// RecentActivities returns the newest activities with the item name joined
// in (empty when the item was deleted since).
func (s *Store) RecentActivities(limit int) ([]models.Activity, error) {
	if limit <= 0 {
		limit = 20
	}
	var acts []models.Activity
	if err := s.db.Model(&models.Activity{}).
		Select("activities.*, items.name AS item_name").
		Joins("LEFT JOIN items ON items.id = activities.item_id").
		Order("activities.created_at DESC, activities.id DESC").
		Limit(limit).
		Find(&acts).Error; err != nil {
		return nil, fmt.Errorf("recent activities: %w", err)
	}
	return acts, nil
}
