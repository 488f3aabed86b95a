// Package seed loads the bootstrap data set on first startup. The load is
// gated on an empty usuarios table: once at least one user row exists the
// seed never runs again.
package seed

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/KristellVM/tienda-online/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Run seeds users, products and, if the file exists, orders from JSON
// documents in dir. Missing productos.json or pedidos.json is not an error;
// missing usuarios.json on a first boot is.
func Run(db *gorm.DB, dir string) error {
	var count int64
	if err := db.Model(&domain.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("seed: counting usuarios: %w", err)
	}
	if count > 0 {
		return nil
	}

	var users []domain.User
	if err := loadJSON(filepath.Join(dir, "usuarios.json"), &users); err != nil {
		return fmt.Errorf("seed: usuarios: %w", err)
	}
	if err := insertIgnoring(db, users); err != nil {
		return fmt.Errorf("seed: usuarios: %w", err)
	}

	var products []domain.Product
	switch err := loadJSON(filepath.Join(dir, "productos.json"), &products); {
	case errors.Is(err, fs.ErrNotExist):
		log.Println("seed: no productos.json, skipping products")
	case err != nil:
		return fmt.Errorf("seed: productos: %w", err)
	default:
		if err := insertIgnoring(db, products); err != nil {
			return fmt.Errorf("seed: productos: %w", err)
		}
	}

	var orders []domain.Order
	switch err := loadJSON(filepath.Join(dir, "pedidos.json"), &orders); {
	case errors.Is(err, fs.ErrNotExist):
		log.Println("seed: no pedidos.json, skipping orders")
	case err != nil:
		return fmt.Errorf("seed: pedidos: %w", err)
	default:
		if err := insertIgnoring(db, orders); err != nil {
			return fmt.Errorf("seed: pedidos: %w", err)
		}
	}

	log.Println("seed: initial data loaded")
	return nil
}

func loadJSON[T any](path string, out *[]T) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

func insertIgnoring[T any](db *gorm.DB, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	// INSERT OR IGNORE keeps the seed safe against files containing rows
	// already present in the table.
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
}
