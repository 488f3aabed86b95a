package mocks

import (
	"context"

	"github.com/KristellVM/tienda-online/internal/client"
	"github.com/KristellVM/tienda-online/internal/domain"
	"github.com/KristellVM/tienda-online/internal/repository"

	"github.com/stretchr/testify/mock"
)

// MockStoreClient doubles the full REST client; it satisfies both the
// session's and the admin console's client interfaces.
type MockStoreClient struct {
	mock.Mock
}

func (m *MockStoreClient) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockStoreClient) CreateUser(ctx context.Context, user domain.User) (domain.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockStoreClient) UpdateUser(ctx context.Context, id uint64, user domain.User) (client.ChangeResult, error) {
	args := m.Called(ctx, id, user)
	return args.Get(0).(client.ChangeResult), args.Error(1)
}

func (m *MockStoreClient) DeleteUser(ctx context.Context, id uint64) (client.ChangeResult, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(client.ChangeResult), args.Error(1)
}

func (m *MockStoreClient) ListProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockStoreClient) CreateProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	args := m.Called(ctx, product)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockStoreClient) UpdateProduct(ctx context.Context, name string, product domain.Product) (client.ChangeResult, error) {
	args := m.Called(ctx, name, product)
	return args.Get(0).(client.ChangeResult), args.Error(1)
}

func (m *MockStoreClient) BulkUpdateStock(ctx context.Context, updates []repository.StockUpdate) error {
	args := m.Called(ctx, updates)
	return args.Error(0)
}

func (m *MockStoreClient) DeleteProduct(ctx context.Context, name string) (client.ChangeResult, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(client.ChangeResult), args.Error(1)
}

func (m *MockStoreClient) ListOrders(ctx context.Context) ([]domain.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockStoreClient) CreateOrder(ctx context.Context, order domain.Order) (uint64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockStoreClient) UpdateOrder(ctx context.Context, id uint64, order domain.Order) (client.ChangeResult, error) {
	args := m.Called(ctx, id, order)
	return args.Get(0).(client.ChangeResult), args.Error(1)
}

func (m *MockStoreClient) DeleteOrder(ctx context.Context, id uint64) (client.ChangeResult, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(client.ChangeResult), args.Error(1)
}

func (m *MockStoreClient) Checkout(ctx context.Context, cart domain.Cart) (client.CheckoutResult, error) {
	args := m.Called(ctx, cart)
	return args.Get(0).(client.CheckoutResult), args.Error(1)
}
