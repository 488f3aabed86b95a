package services

import (
	"github.com/KristellVM/tienda-online/internal/domain"

	"github.com/shopspring/decimal"
)

func NewTestProduct(id uint64, name string, stock int64, price float64, category string) domain.Product {
	return domain.Product{
		ID:       id,
		Name:     name,
		Stock:    stock,
		Price:    decimal.NewFromFloat(price),
		Photos:   domain.PhotoList{},
		Category: category,
	}
}

func NewTestCartEntry(name string, price float64) domain.ProductSnapshot {
	return domain.ProductSnapshot{
		Name:   name,
		Price:  decimal.NewFromFloat(price),
		Photos: domain.PhotoList{},
	}
}
