package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/KristellVM/tienda-online/internal/domain"
	"github.com/KristellVM/tienda-online/internal/repository"

	"github.com/shopspring/decimal"
)

var ErrEmptyCart = errors.New("el carrito está vacío")

// CheckoutService converts a cart into a persisted order plus the matching
// stock decrements. The order insert and every decrement run in one
// transaction, so other readers see both or neither.
//
// There is no reservation between reading a product's stock and committing
// the decrement; the decrement itself is applied as stock = stock - n
// against the stored value inside the transaction, so two overlapping
// checkouts of the same product do not lose updates, but stock is free to
// go negative when they oversell it.
type CheckoutService struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
}

func NewCheckoutService(orders repository.OrderRepository, products repository.ProductRepository) *CheckoutService {
	return &CheckoutService{orders: orders, products: products}
}

// CartTotal sums the snapshot prices of every cart entry. The total is
// fixed at checkout time; later edits to stored product prices do not
// change it.
func CartTotal(cart domain.Cart) decimal.Decimal {
	total := decimal.Zero
	for _, item := range cart {
		total = total.Add(item.Price)
	}
	return total
}

// StockDecrements counts cart entries per product name, keeping only names
// present in the current product set. A cart entry for a product that was
// deleted since it was added is skipped, not an error.
func StockDecrements(cart domain.Cart, products []domain.Product) map[string]int64 {
	counts := make(map[string]int64, len(cart))
	for _, item := range cart {
		counts[item.Name]++
	}

	decrements := make(map[string]int64, len(counts))
	for _, p := range products {
		if n, ok := counts[p.Name]; ok {
			decrements[p.Name] = n
		}
	}
	return decrements
}

func (s *CheckoutService) Checkout(ctx context.Context, cart domain.Cart) (*domain.Order, error) {
	if len(cart) == 0 {
		return nil, ErrEmptyCart
	}

	products, err := s.products.FindAll()
	if err != nil {
		return nil, err
	}

	names := make([]string, len(cart))
	items := make(domain.LineItems, len(cart))
	for i, item := range cart {
		names[i] = item.Name
		items[i] = item
	}

	order := &domain.Order{
		OrderDate:   time.Now().Format("2006-01-02"),
		TotalPrice:  CartTotal(cart),
		Description: strings.Join(names, "\n") + "\n",
		Products:    items,
	}

	if err := s.orders.SaveWithStockDecrements(order, StockDecrements(cart, products)); err != nil {
		log.Printf("checkout: %v", err)
		return nil, err
	}

	return order, nil
}
