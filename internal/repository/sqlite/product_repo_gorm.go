package sqlite

import (
	"log"

	"github.com/KristellVM/tienda-online/internal/domain"
	"github.com/KristellVM/tienda-online/internal/repository"

	"gorm.io/gorm"
)

type productRepo struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) Create(product *domain.Product) error {
	result := r.db.Create(product)
	if result.Error != nil {
		log.Printf("productos: create error: %v", result.Error)
		return result.Error
	}
	return nil
}

func (r *productRepo) FindAll() ([]domain.Product, error) {
	var out []domain.Product
	if err := r.db.Order("id").Find(&out).Error; err != nil {
		log.Printf("productos: find error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *productRepo) Update(name string, fields *domain.Product) (int64, error) {
	result := r.db.Model(&domain.Product{}).Where("nombre = ?", name).Updates(map[string]any{
		"nombre":    fields.Name,
		"stock":     fields.Stock,
		"precio":    fields.Price,
		"fotos":     fields.Photos,
		"categoria": fields.Category,
	})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *productRepo) UpdateStock(name string, stock int64) (int64, error) {
	result := r.db.Model(&domain.Product{}).Where("nombre = ?", name).Update("stock", stock)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// UpdateStockBulk writes absolute stock values for several products in one
// transaction. Entries naming unknown products are silently skipped, the
// same as a lone UPDATE matching zero rows.
func (r *productRepo) UpdateStockBulk(updates []repository.StockUpdate) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, u := range updates {
			result := tx.Model(&domain.Product{}).Where("nombre = ?", u.Name).Update("stock", u.Stock)
			if result.Error != nil {
				return result.Error
			}
		}
		return nil
	})
}

func (r *productRepo) Delete(name string) (int64, error) {
	result := r.db.Where("nombre = ?", name).Delete(&domain.Product{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
