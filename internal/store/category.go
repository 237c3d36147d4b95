package store

import (
	"fmt"

	"github.com/wpcellgap-cmyk/stock/internal/models"
)

// ListCategories returns all categories ordered by name.
func (s *Store) ListCategories() ([]models.Category, error) {
	var cats []models.Category
	if err := s.db.Order("name").Find(&cats).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return cats, nil
}

// CreateCategory inserts a category and returns it with the assigned id.
func (s *Store) CreateCategory(name, icon string) (*models.Category, error) {
	if icon == "" {
		icon = "cube-outline"
	}
	cat := models.Category{Name: name, Icon: icon}
	if err := s.db.Create(&cat).Error; err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return &cat, nil
}

// UpdateCategory renames a category and/or changes its icon.
func (s *Store) UpdateCategory(id uint, name, icon string) error {
	res := s.db.Model(&models.Category{}).Where("id = ?", id).
		Updates(map[string]interface{}{"name": name, "icon": icon})
	if res.Error != nil {
		return fmt.Errorf("update category: %w", res.Error)
	}
	return nil
}

// DeleteCategory removes a category. Items pointing at it keep existing
// with a null category reference; they are never cascaded away.
func (s *Store) DeleteCategory(id uint) error {
	if err := s.db.Model(&models.Item{}).Where("category_id = ?", id).
		Update("category_id", nil).Error; err != nil {
		return fmt.Errorf("detach items: %w", err)
	}
	if err := s.db.Delete(&models.Category{}, id).Error; err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// FindCategoryByName does a case-insensitive exact name lookup. Returns
// nil without error when no category matches.
func (s *Store) FindCategoryByName(name string) (*models.Category, error) {
	var cats []models.Category
	if err := s.db.Where("LOWER(name) = LOWER(?)", name).Limit(1).
		Find(&cats).Error; err != nil {
		return nil, fmt.Errorf("find category: %w", err)
	}
	if len(cats) == 0 {
		return nil, nil
	}
	return &cats[0], nil
}

// CategoryItemCounts returns a category id -> item count map.
func (s *Store) CategoryItemCounts() (map[uint]int64, error) {
	type row struct {
		CategoryID uint
		Count      int64
	}
	var rows []row
	if err := s.db.Model(&models.Item{}).
		Select("category_id, COUNT(*) AS count").
		Where("category_id IS NOT NULL").
		Group("category_id").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("category item counts: %w", err)
	}
	counts := make(map[uint]int64, len(rows))
	for _, r := range rows {
		counts[r.CategoryID] = r.Count
	}
	return counts, nil
}
