package database

import (
	"fmt"

	"github.com/wpcellgap-cmyk/stock/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate runs database schema migrations for all models, then applies
// the additive column migrations older installs need.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Category{},
		&models.Item{},
		&models.Activity{},
		&models.Setting{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	// Best-effort additive migrations for databases created before these
	// columns existed. Each ALTER fails silently when the column is already
	// there.
	_ = db.Exec("ALTER TABLE items ADD COLUMN custom_id TEXT").Error
	_ = db.Exec("ALTER TABLE items ADD COLUMN buy_price NUMERIC DEFAULT 0").Error
	_ = db.Exec("ALTER TABLE items ADD COLUMN sell_price NUMERIC DEFAULT 0").Error

	return nil
}

// defaultCategories seeded on first run, name and icon symbol id.
var defaultCategories = [][2]string{
	{"Tombol Luar", "phone-portrait-outline"},
	{"Flex On", "git-merge-outline"},
	{"Konektor Cas", "flash-outline"},
	{"LCD", "tablet-landscape-outline"},
	{"Baterai", "battery-half-outline"},
	{"Casing", "shield-outline"},
	{"IC", "hardware-chip-outline"},
	{"Mesin", "cog-outline"},
	{"Kamera", "camera-outline"},
	{"Aksesoris", "pricetag-outline"},
}

// Seed inserts the default categories when the category table is empty.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count categories: %w", err)
	}
	if count > 0 {
		return nil
	}
	for _, c := range defaultCategories {
		cat := models.Category{Name: c[0], Icon: c[1]}
		if err := db.Create(&cat).Error; err != nil {
			return fmt.Errorf("seed category %q: %w", c[0], err)
		}
	}
	return nil
}
