// Package admin implements the management flows over users, products and
// orders. Every mutation re-fetches the affected collection from the store
// before returning, so callers always render persisted state rather than an
// optimistic local patch.
package admin

import (
	"context"
	"errors"

	"github.com/KristellVM/tienda-online/internal/client"
	"github.com/KristellVM/tienda-online/internal/domain"
)

var ErrMissingFields = errors.New("todos los campos son obligatorios")

// StoreClient is the slice of the REST client the console needs.
type StoreClient interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	CreateUser(ctx context.Context, user domain.User) (domain.User, error)
	UpdateUser(ctx context.Context, id uint64, user domain.User) (client.ChangeResult, error)
	DeleteUser(ctx context.Context, id uint64) (client.ChangeResult, error)

	ListProducts(ctx context.Context) ([]domain.Product, error)
	CreateProduct(ctx context.Context, product domain.Product) (domain.Product, error)
	UpdateProduct(ctx context.Context, name string, product domain.Product) (client.ChangeResult, error)
	DeleteProduct(ctx context.Context, name string) (client.ChangeResult, error)

	ListOrders(ctx context.Context) ([]domain.Order, error)
	UpdateOrder(ctx context.Context, id uint64, order domain.Order) (client.ChangeResult, error)
	DeleteOrder(ctx context.Context, id uint64) (client.ChangeResult, error)
}

var _ StoreClient = (*client.Client)(nil)

type Console struct {
	store StoreClient
}

func NewConsole(store StoreClient) *Console {
	return &Console{store: store}
}

// CreateUser validates the required fields, creates the user and returns
// the refreshed user list.
func (c *Console) CreateUser(ctx context.Context, user domain.User) ([]domain.User, error) {
	if user.Username == "" || user.Password == "" || user.Role == "" {
		return nil, ErrMissingFields
	}
	if _, err := c.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return c.store.ListUsers(ctx)
}

func (c *Console) UpdateUser(ctx context.Context, id uint64, user domain.User) ([]domain.User, int64, error) {
	if user.Username == "" || user.Password == "" || user.Role == "" {
		return nil, 0, ErrMissingFields
	}
	result, err := c.store.UpdateUser(ctx, id, user)
	if err != nil {
		return nil, 0, err
	}
	users, err := c.store.ListUsers(ctx)
	return users, result.Changes, err
}

func (c *Console) DeleteUser(ctx context.Context, id uint64) ([]domain.User, int64, error) {
	result, err := c.store.DeleteUser(ctx, id)
	if err != nil {
		return nil, 0, err
	}
	users, err := c.store.ListUsers(ctx)
	return users, result.Changes, err
}

func (c *Console) CreateProduct(ctx context.Context, product domain.Product) ([]domain.Product, error) {
	if product.Name == "" || product.Category == "" {
		return nil, ErrMissingFields
	}
	if _, err := c.store.CreateProduct(ctx, product); err != nil {
		return nil, err
	}
	return c.store.ListProducts(ctx)
}

func (c *Console) UpdateProduct(ctx context.Context, name string, product domain.Product) ([]domain.Product, int64, error) {
	if product.Name == "" || product.Category == "" {
		return nil, 0, ErrMissingFields
	}
	result, err := c.store.UpdateProduct(ctx, name, product)
	if err != nil {
		return nil, 0, err
	}
	products, err := c.store.ListProducts(ctx)
	return products, result.Changes, err
}

func (c *Console) DeleteProduct(ctx context.Context, name string) ([]domain.Product, int64, error) {
	result, err := c.store.DeleteProduct(ctx, name)
	if err != nil {
		return nil, 0, err
	}
	products, err := c.store.ListProducts(ctx)
	return products, result.Changes, err
}

func (c *Console) UpdateOrder(ctx context.Context, id uint64, order domain.Order) ([]domain.Order, int64, error) {
	if order.OrderDate == "" {
		return nil, 0, ErrMissingFields
	}
	result, err := c.store.UpdateOrder(ctx, id, order)
	if err != nil {
		return nil, 0, err
	}
	orders, err := c.store.ListOrders(ctx)
	return orders, result.Changes, err
}

func (c *Console) DeleteOrder(ctx context.Context, id uint64) ([]domain.Order, int64, error) {
	result, err := c.store.DeleteOrder(ctx, id)
	if err != nil {
		return nil, 0, err
	}
	orders, err := c.store.ListOrders(ctx)
	return orders, result.Changes, err
}
