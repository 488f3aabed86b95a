package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/shopspring/decimal"
)

// LineItems is the ordered list of product snapshots an order was placed
// with, stored JSON-encoded in a TEXT column.
type LineItems []ProductSnapshot

func (l LineItems) Value() (driver.Value, error) {
	if l == nil {
		l = LineItems{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *LineItems) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*l = LineItems{}
		return nil
	case string:
		return json.Unmarshal([]byte(v), l)
	case []byte:
		return json.Unmarshal(v, l)
	default:
		return errors.New("productos: unsupported column type")
	}
}

type Order struct {
	ID          uint64          `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderDate   string          `json:"fechaPedido" gorm:"column:fechaPedido;not null"`
	TotalPrice  decimal.Decimal `json:"precioTotal" gorm:"column:precioTotal;type:decimal(10,2);not null"`
	Description string          `json:"descripcion" gorm:"column:descripcion;not null"`
	Products    LineItems       `json:"productos" gorm:"column:productos;type:text;not null"`
}

func (Order) TableName() string { return "pedidos" }
