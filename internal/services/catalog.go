package services

import (
	"strings"

	"github.com/KristellVM/tienda-online/internal/domain"
)

// Catalog filters are pure functions over a product snapshot the caller
// already holds; they never touch the store. After any mutation the caller
// refreshes its snapshot and filters again.

func FilterByCategory(products []domain.Product, category string) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// FilterByName matches case-insensitively on a name substring.
func FilterByName(products []domain.Product, substring string) []domain.Product {
	needle := strings.ToLower(substring)
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			out = append(out, p)
		}
	}
	return out
}

func All(products []domain.Product) []domain.Product {
	return products
}
