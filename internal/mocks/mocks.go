package mocks

import (
	"github.com/KristellVM/tienda-online/internal/domain"
	"github.com/KristellVM/tienda-online/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *domain.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindAll() ([]domain.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) Update(id uint64, fields *domain.User) (int64, error) {
	args := m.Called(id, fields)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) Delete(id uint64) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(product *domain.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) FindAll() ([]domain.Product, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) Update(name string, fields *domain.Product) (int64, error) {
	args := m.Called(name, fields)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) UpdateStock(name string, stock int64) (int64, error) {
	args := m.Called(name, stock)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) UpdateStockBulk(updates []repository.StockUpdate) error {
	args := m.Called(updates)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(name string) (int64, error) {
	args := m.Called(name)
	return args.Get(0).(int64), args.Error(1)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Save(order *domain.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepository) FindAll() ([]domain.Order, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) Update(id uint64, fields *domain.Order) (int64, error) {
	args := m.Called(id, fields)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) Delete(id uint64) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) SaveWithStockDecrements(order *domain.Order, decrements map[string]int64) error {
	args := m.Called(order, decrements)
	return args.Error(0)
}
