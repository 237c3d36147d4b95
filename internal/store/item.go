package store

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/wpcellgap-cmyk/stock/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Status filter values for ListItems.
const (
	FilterAll = "all"
	FilterLow = "low" // 0 < quantity <= min_stock
	FilterOut = "out" // quantity = 0
	FilterIn  = "in"  // quantity > min_stock
)

const itemJoin = "LEFT JOIN categories ON categories.id = items.category_id"

// ListItems returns items with their category name, newest change first.
// search does a case-insensitive substring match over name, sku, custom id
// and category name.
func (s *Store) ListItems(search, filter string, categoryID *uint) ([]models.Item, error) {
	q := s.db.Model(&models.Item{}).
		Select("items.*, categories.name AS category_name").
		Joins(itemJoin)

	if search != "" {
		needle := "%" + strings.ToLower(search) + "%"
		q = q.Where(
			"LOWER(items.name) LIKE ? OR LOWER(items.sku) LIKE ? OR LOWER(items.custom_id) LIKE ? OR LOWER(categories.name) LIKE ?",
			needle, needle, needle, needle,
		)
	}
	switch filter {
	case FilterLow:
		q = q.Where("items.quantity > 0 AND items.quantity <= items.min_stock")
	case FilterOut:
		q = q.Where("items.quantity = 0")
	case FilterIn:
		q = q.Where("items.quantity > items.min_stock")
	}
	if categoryID != nil {
		q = q.Where("items.category_id = ?", *categoryID)
	}

	var items []models.Item
	if err := q.Order("items.updated_at DESC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// GetItem fetches one item with its category name.
func (s *Store) GetItem(id uint) (*models.Item, error) {
	var item models.Item
	err := s.db.Model(&models.Item{}).
		Select("items.*, categories.name AS category_name").
		Joins(itemJoin).
		Where("items.id = ?", id).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// FindItemByName does a case-insensitive exact name lookup, optionally
// scoped to a category and/or excluding an id (for edit-form duplicate
// checks). Returns nil without error when nothing matches.
func (s *Store) FindItemByName(name string, categoryID *uint, excludeID uint) (*models.Item, error) {
	q := s.db.Where("LOWER(name) = LOWER(?)", name)
	if categoryID != nil {
		q = q.Where("category_id = ?", *categoryID)
	}
	if excludeID != 0 {
		q = q.Where("id != ?", excludeID)
	}
	var items []models.Item
	if err := q.Limit(1).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("find item by name: %w", err)
	}
	if len(items) == 0 {
		return nil, nil
	}
	return &items[0], nil
}

// InsertItem writes a new item row without any activity. The import
// reconciler uses this directly; its file-level import activity covers the
// whole batch.
func (s *Store) InsertItem(item *models.Item) error {
	if item.MinStock == 0 {
		item.MinStock = 5
	}
	if err := s.db.Create(item).Error; err != nil {
		return fmt.Errorf("create item: %w", err)
	}
	return nil
}

// CreateItem inserts a new item from manual entry and logs its initial
// stock as a stock_in activity.
func (s *Store) CreateItem(item *models.Item) error {
	if err := s.InsertItem(item); err != nil {
		return err
	}
	return s.LogActivity(&item.ID, models.ActivityStockIn, item.Quantity, "Item baru ditambahkan", "", "")
}

// UpdateItem overwrites an item's fields. A quantity change is logged as a
// stock_in or stock_out activity with the absolute difference.
func (s *Store) UpdateItem(id uint, in *models.Item) error {
	var existing models.Item
	if err := s.db.First(&existing, id).Error; err != nil {
		return err
	}
	oldQty := existing.Quantity

	existing.Name = in.Name
	existing.SKU = in.SKU
	existing.CustomID = in.CustomID
	existing.CategoryID = in.CategoryID
	existing.BuyPrice = in.BuyPrice
	existing.SellPrice = in.SellPrice
	existing.Quantity = in.Quantity
	existing.MinStock = in.MinStock
	if existing.MinStock == 0 {
		existing.MinStock = 5
	}
	existing.Description = in.Description

	if err := s.db.Save(&existing).Error; err != nil {
		return fmt.Errorf("update item: %w", err)
	}

	diff := existing.Quantity - oldQty
	if diff != 0 {
		actType := models.ActivityStockIn
		if diff < 0 {
			actType = models.ActivityStockOut
			diff = -diff
		}
		if err := s.LogActivity(&existing.ID, actType, diff, "Stok diperbarui", "", ""); err != nil {
			return err
		}
	}
	return nil
}

// AddStock increments an item's quantity, e.g. for incoming goods or a
// merge into an existing duplicate.
func (s *Store) AddStock(id uint, qty int, note string) error {
	res := s.db.Model(&models.Item{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"quantity":   gorm.Expr("quantity + ?", qty),
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return fmt.Errorf("add stock: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	if note == "" {
		note = fmt.Sprintf("Tambah stok %d", qty)
	}
	return s.LogActivity(&id, models.ActivityStockIn, qty, note, "", "")
}

// RemoveStock decrements an item's quantity for outgoing goods. It refuses
// to go below zero and returns ErrInsufficientStock instead.
func (s *Store) RemoveStock(id uint, qty int) error {
	var item models.Item
	if err := s.db.First(&item, id).Error; err != nil {
		return err
	}
	if item.Quantity < qty {
		return fmt.Errorf("%w: stok saat ini hanya %d", ErrInsufficientStock, item.Quantity)
	}
	if err := s.db.Model(&models.Item{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"quantity":   gorm.Expr("quantity - ?", qty),
			"updated_at": time.Now(),
		}).Error; err != nil {
		return fmt.Errorf("remove stock: %w", err)
	}
	return s.LogActivity(&id, models.ActivityStockOut, qty, fmt.Sprintf("Barang Keluar: %d", qty), "", "")
}

// ApplyStockMerge is the import merge write: quantity is added, prices are
// replaced only when the incoming value is positive, updated_at is
// refreshed. Zero or absent incoming prices leave the stored ones alone.
func (s *Store) ApplyStockMerge(id uint, qty int, buyPrice, sellPrice decimal.Decimal) error {
	updates := map[string]interface{}{
		"quantity":   gorm.Expr("quantity + ?", qty),
		"updated_at": time.Now(),
	}
	if buyPrice.IsPositive() {
		updates["buy_price"] = buyPrice
	}
	if sellPrice.IsPositive() {
		updates["sell_price"] = sellPrice
	}
	if err := s.db.Model(&models.Item{}).Where("id = ?", id).
		Updates(updates).Error; err != nil {
		return fmt.Errorf("apply stock merge: %w", err)
	}
	return nil
}

// DeleteItem removes the item row. The delete activity survives with a
// dangling item reference; earlier activities are kept as well.
func (s *Store) DeleteItem(id uint) error {
	res := s.db.Delete(&models.Item{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return s.LogActivity(&id, models.ActivityDelete, 0, "Item dihapus", "", "")
}

// ListItemsForExport returns every item with its category name, ordered by
// name for stable spreadsheet output.
func (s *Store) ListItemsForExport() ([]models.Item, error) {
	var items []models.Item
	if err := s.db.Model(&models.Item{}).
		Select("items.*, categories.name AS category_name").
		Joins(itemJoin).
		Order("items.name").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list items for export: %w", err)
	}
	return items, nil
}

// Stats is the dashboard aggregation over the whole item table.
type Stats struct {
	TotalItems int64           `json:"total_items"`
	TotalValue decimal.Decimal `json:"total_value"`
	LowStock   int64           `json:"low_stock"`
	OutOfStock int64           `json:"out_of_stock"`
	InStock    int64           `json:"in_stock"`
}

// GetStats computes item count, stock value (buy price x quantity) and the
// low/out/in stock counts.
func (s *Store) GetStats() (*Stats, error) {
	var st Stats
	if err := s.db.Model(&models.Item{}).Count(&st.TotalItems).Error; err != nil {
		return nil, fmt.Errorf("count items: %w", err)
	}
	var value struct{ Total decimal.Decimal }
	if err := s.db.Model(&models.Item{}).
		Select("COALESCE(SUM(buy_price * quantity), 0) AS total").
		Scan(&value).Error; err != nil {
		return nil, fmt.Errorf("sum stock value: %w", err)
	}
	st.TotalValue = value.Total
	if err := s.db.Model(&models.Item{}).
		Where("quantity > 0 AND quantity <= min_stock").
		Count(&st.LowStock).Error; err != nil {
		return nil, fmt.Errorf("count low stock: %w", err)
	}
	if err := s.db.Model(&models.Item{}).
		Where("quantity = 0").
		Count(&st.OutOfStock).Error; err != nil {
		return nil, fmt.Errorf("count out of stock: %w", err)
	}
	if err := s.db.Model(&models.Item{}).
		Where("quantity > min_stock").
		Count(&st.InStock).Error; err != nil {
		return nil, fmt.Errorf("count in stock: %w", err)
	}
	return &st, nil
}

// LowStockItems lists items at or below their minimum stock, most critical
// first.
func (s *Store) LowStockItems(limit int) ([]models.Item, error) {
	if limit <= 0 {
		limit = 20
	}
	var items []models.Item
	if err := s.db.Model(&models.Item{}).
		Select("items.*, categories.name AS category_name").
		Joins(itemJoin).
		Where("items.quantity <= items.min_stock").
		Order("items.quantity ASC").
		Limit(limit).
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list low stock items: %w", err)
	}
	return items, nil
}

// IsNotFound reports whether err is the record-not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
