package repository

import (
	"github.com/KristellVM/tienda-online/internal/domain"
)

// Update and Delete report the number of affected rows instead of a
// not-found error; a missing key is changes == 0 and callers check the
// count.

type UserRepository interface {
	Create(user *domain.User) error
	FindAll() ([]domain.User, error)
	Update(id uint64, fields *domain.User) (int64, error)
	Delete(id uint64) (int64, error)
}

// StockUpdate is one entry of the bulk absolute stock write.
type StockUpdate struct {
	Name  string `json:"nombre"`
	Stock int64  `json:"stock"`
}

type ProductRepository interface {
	Create(product *domain.Product) error
	FindAll() ([]domain.Product, error)
	Update(name string, fields *domain.Product) (int64, error)
	UpdateStock(name string, stock int64) (int64, error)
	UpdateStockBulk(updates []StockUpdate) error
	Delete(name string) (int64, error)
}

type OrderRepository interface {
	Save(order *domain.Order) error
	FindAll() ([]domain.Order, error)
	Update(id uint64, fields *domain.Order) (int64, error)
	Delete(id uint64) (int64, error)

	// SaveWithStockDecrements persists the order and applies every stock
	// decrement in a single transaction: either the order and all
	// decrements commit together or nothing does.
	SaveWithStockDecrements(order *domain.Order, decrements map[string]int64) error
}
