package store

import (
	"errors"
	"fmt"

	"github.com/wpcellgap-cmyk/stock/internal/config"
	"github.com/wpcellgap-cmyk/stock/internal/database"

	"gorm.io/gorm"
)

// ErrInsufficientStock is returned when a stock-out would push an item's
// quantity below zero.
var ErrInsufficientStock = errors.New("insufficient stock")

// Store is the storage service for categories, items, activities and
// settings. It owns the database handle; construct it once at startup and
// pass it to the components that need it.
type Store struct {
	db *gorm.DB
}

// New wraps an already opened database handle.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Open opens the SQLite database, runs migrations and seeds the default
// categories on first run.
func Open(cfg config.DatabaseConfig) (*Store, error) {
	db, err := database.Init(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, err
	}
	if err := database.Seed(db); err != nil {
		return nil, fmt.Errorf("seed categories: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}
	return sqlDB.Close()
}

// DB exposes the raw handle for migrations and tests.
func (s *Store) DB() *gorm.DB {
	return s.db
}
