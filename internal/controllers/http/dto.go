package http

import (
	"github.com/KristellVM/tienda-online/internal/domain"

	"github.com/shopspring/decimal"
)

type UserRequest struct {
	Username string      `json:"usuario" binding:"required"`
	Password string      `json:"pwd" binding:"required"`
	Role     domain.Role `json:"tipo" binding:"required"`
}

type CreateProductRequest struct {
	Name     string           `json:"nombre" binding:"required"`
	Stock    *int64           `json:"stock" binding:"required"`
	Price    *decimal.Decimal `json:"precio" binding:"required"`
	Photos   domain.PhotoList `json:"fotos"`
	Category string           `json:"categoria" binding:"required"`
}

// UpdateProductRequest covers both shapes of PUT /api/productos/:nombre: a
// bare {stock} writes stock only, anything more is a full-field update.
type UpdateProductRequest struct {
	Name     *string          `json:"nombre"`
	Stock    *int64           `json:"stock" binding:"required"`
	Price    *decimal.Decimal `json:"precio"`
	Photos   domain.PhotoList `json:"fotos"`
	Category *string          `json:"categoria"`
}

func (r UpdateProductRequest) StockOnly() bool {
	return r.Name == nil && r.Price == nil && r.Photos == nil && r.Category == nil
}

type OrderRequest struct {
	OrderDate   string           `json:"fechaPedido" binding:"required"`
	TotalPrice  decimal.Decimal  `json:"precioTotal"`
	Description string           `json:"descripcion"`
	Products    domain.LineItems `json:"productos"`
}

type CheckoutRequest struct {
	Products domain.Cart `json:"productos"`
}
