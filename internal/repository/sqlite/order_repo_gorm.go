package sqlite

import (
	"errors"
	"log"
	"sort"

	"github.com/KristellVM/tienda-online/internal/domain"
	"github.com/KristellVM/tienda-online/internal/repository"

	"gorm.io/gorm"
)

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) Save(order *domain.Order) error {
	result := r.db.Create(order)
	if result.Error != nil {
		log.Printf("pedidos: save error: %v", result.Error)
		return result.Error
	}
	if order.ID == 0 {
		return errors.New("failed to assign order ID")
	}
	return nil
}

func (r *orderRepo) FindAll() ([]domain.Order, error) {
	var out []domain.Order
	if err := r.db.Order("id").Find(&out).Error; err != nil {
		log.Printf("pedidos: find error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *orderRepo) Update(id uint64, fields *domain.Order) (int64, error) {
	result := r.db.Model(&domain.Order{}).Where("id = ?", id).Updates(map[string]any{
		"fechaPedido": fields.OrderDate,
		"precioTotal": fields.TotalPrice,
		"descripcion": fields.Description,
		"productos":   fields.Products,
	})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *orderRepo) Delete(id uint64) (int64, error) {
	result := r.db.Where("id = ?", id).Delete(&domain.Order{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *orderRepo) SaveWithStockDecrements(order *domain.Order, decrements map[string]int64) error {
	// Names are visited in sorted order so two checkouts touching the same
	// products apply their writes in the same sequence.
	names := make([]string, 0, len(decrements))
	for name := range decrements {
		names = append(names, name)
	}
	sort.Strings(names)

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		if order.ID == 0 {
			return errors.New("failed to assign order ID")
		}
		for _, name := range names {
			result := tx.Model(&domain.Product{}).
				Where("nombre = ?", name).
				Update("stock", gorm.Expr("stock - ?", decrements[name]))
			if result.Error != nil {
				return result.Error
			}
		}
		return nil
	})
}
