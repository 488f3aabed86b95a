package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/shopspring/decimal"
)

// PhotoList is an ordered list of image references stored as a JSON string
// in a TEXT column. Order is part of the contract: the first photo is the
// one the catalog shows.
type PhotoList []string

func (p PhotoList) Value() (driver.Value, error) {
	if p == nil {
		p = PhotoList{}
	}
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (p *PhotoList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*p = PhotoList{}
		return nil
	case string:
		return json.Unmarshal([]byte(v), p)
	case []byte:
		return json.Unmarshal(v, p)
	default:
		return errors.New("fotos: unsupported column type")
	}
}

// Product is addressed by Name everywhere except the primary key: the REST
// surface, stock updates and the checkout decrement map all use nombre as
// the natural key.
type Product struct {
	ID       uint64          `json:"id" gorm:"primaryKey;autoIncrement"`
	Name     string          `json:"nombre" gorm:"column:nombre;uniqueIndex;not null"`
	Stock    int64           `json:"stock" gorm:"column:stock;not null"`
	Price    decimal.Decimal `json:"precio" gorm:"column:precio;type:decimal(10,2);not null"`
	Photos   PhotoList       `json:"fotos" gorm:"column:fotos;type:text;not null"`
	Category string          `json:"categoria" gorm:"column:categoria;not null"`
}

func (Product) TableName() string { return "productos" }

// Snapshot copies the fields a cart entry and an order line item carry. The
// copy is detached: later edits to the stored product do not touch it.
func (p Product) Snapshot() ProductSnapshot {
	photos := make(PhotoList, len(p.Photos))
	copy(photos, p.Photos)
	return ProductSnapshot{
		Name:     p.Name,
		Stock:    p.Stock,
		Price:    p.Price,
		Photos:   photos,
		Category: p.Category,
	}
}

// ProductSnapshot is a product as captured at add-to-cart time. It has no
// id: line items are matched back to products by name only.
type ProductSnapshot struct {
	Name     string          `json:"nombre"`
	Stock    int64           `json:"stock"`
	Price    decimal.Decimal `json:"precio"`
	Photos   PhotoList       `json:"fotos"`
	Category string          `json:"categoria"`
}

// Cart is the session-local selection. The same product may appear multiple
// times; each entry is one unit to purchase.
type Cart []ProductSnapshot
