package sqlite

import (
	"github.com/KristellVM/tienda-online/internal/domain"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open connects to the database file at path, creating it on first use, and
// migrates the three tables.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&domain.User{}, &domain.Product{}, &domain.Order{}); err != nil {
		return nil, err
	}

	return db, nil
}
