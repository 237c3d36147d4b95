package store

import (
	"fmt"

	"github.com/wpcellgap-cmyk/stock/internal/models"

	"gorm.io/gorm/clause"
)

// GetSetting returns the stored value for key, or "" when unset.
func (s *Store) GetSetting(key string) (string, error) {
	var rows []models.Setting
	if err := s.db.Where("key = ?", key).Limit(1).Find(&rows).Error; err != nil {
		return "", fmt.Errorf("get setting: %w", err)
	}
	if len(rows) == 0 {
		return "", nil
	}
	return rows[0].Value, nil
}

// SetSetting upserts a key-value preference.
func (s *Store) SetSetting(key, value string) error {
	setting := models.Setting{Key: key, Value: value}
	if err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting).Error; err != nil {
		return fmt.Errorf("set setting: %w", err)
	}
	return nil
}
