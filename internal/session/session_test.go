package session

import (
	"context"
	"errors"
	"testing"

	"github.com/KristellVM/tienda-online/internal/client"
	"github.com/KristellVM/tienda-online/internal/domain"
	"github.com/KristellVM/tienda-online/internal/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testUsers() []domain.User {
	return []domain.User{
		{ID: 1, Username: "admin", Password: "admin", Role: domain.RoleAdmin},
		{ID: 2, Username: "ana", Password: "secreta", Role: domain.RoleCustomer},
		{ID: 3, Username: "raro", Password: "raro", Role: "moderador"},
	}
}

func testProduct(name string, stock int64, price float64) domain.Product {
	return domain.Product{
		Name:     name,
		Stock:    stock,
		Price:    decimal.NewFromFloat(price),
		Photos:   domain.PhotoList{},
		Category: "ropa",
	}
}

func bootstrappedSession(t *testing.T, store *mocks.MockStoreClient) *Session {
	t.Helper()
	store.On("ListUsers", mock.Anything).Return(testUsers(), nil).Once()
	store.On("ListProducts", mock.Anything).Return([]domain.Product{
		testProduct("Camiseta", 5, 10.00),
	}, nil).Once()
	store.On("ListOrders", mock.Anything).Return([]domain.Order{}, nil).Once()

	s := New(store)
	require.NoError(t, s.Bootstrap(context.Background()))
	return s
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name          string
		username      string
		password      string
		expectedError error
		expectedView  View
	}{
		{"admin lands on admin panel", "admin", "admin", nil, ViewAdmin},
		{"customer lands on catalog", "ana", "secreta", nil, ViewCatalog},
		{"wrong password", "ana", "mal", ErrInvalidCredentials, ViewLogin},
		{"unknown user", "nadie", "x", ErrInvalidCredentials, ViewLogin},
		{"unknown role rejected even with matching credentials", "raro", "raro", ErrInvalidRole, ViewLogin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(mocks.MockStoreClient)
			s := bootstrappedSession(t, store)

			user, err := s.Login(tt.username, tt.password)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
				assert.Nil(t, s.User())
			} else {
				assert.NoError(t, err)
				require.NotNil(t, user)
				assert.Equal(t, tt.username, user.Username)
				assert.Equal(t, user, s.User())
			}
			assert.Equal(t, tt.expectedView, s.View())
		})
	}
}

func TestLogoutClearsEverything(t *testing.T) {
	store := new(mocks.MockStoreClient)
	s := bootstrappedSession(t, store)

	_, err := s.Login("ana", "secreta")
	require.NoError(t, err)
	s.AddToCart(testProduct("Camiseta", 5, 10.00))
	s.SelectProduct(testProduct("Camiseta", 5, 10.00))

	s.Logout()

	assert.Equal(t, ViewLogin, s.View())
	assert.Nil(t, s.User())
	assert.Empty(t, s.Cart())
	assert.Nil(t, s.Selected())
}

func TestCartAddRemove(t *testing.T) {
	store := new(mocks.MockStoreClient)
	s := bootstrappedSession(t, store)

	shirt := testProduct("Camiseta", 5, 10.00)
	s.AddToCart(shirt)
	s.AddToCart(shirt)
	assert.Len(t, s.Cart(), 2, "same product may appear once per add")

	require.NoError(t, s.RemoveFromCart(0))
	assert.Len(t, s.Cart(), 1)

	assert.Error(t, s.RemoveFromCart(5))
	assert.Error(t, s.RemoveFromCart(-1))
}

func TestCheckoutClearsCartAndRefreshes(t *testing.T) {
	store := new(mocks.MockStoreClient)
	s := bootstrappedSession(t, store)

	shirt := testProduct("Camiseta", 5, 10.00)
	s.AddToCart(shirt)
	s.AddToCart(shirt)

	store.On("Checkout", mock.Anything, mock.AnythingOfType("domain.Cart")).
		Return(client.CheckoutResult{ID: 7, TotalPrice: decimal.NewFromFloat(20.00), Success: true}, nil)
	store.On("ListProducts", mock.Anything).Return([]domain.Product{
		testProduct("Camiseta", 3, 10.00),
	}, nil).Once()
	store.On("ListOrders", mock.Anything).Return([]domain.Order{{ID: 7}}, nil).Once()

	result, err := s.Checkout(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(7), result.ID)

	assert.Empty(t, s.Cart())
	assert.Equal(t, ViewCatalog, s.View())
	require.Len(t, s.Products(), 1)
	assert.Equal(t, int64(3), s.Products()[0].Stock)
	assert.Len(t, s.Orders(), 1)
	store.AssertExpectations(t)
}

func TestCheckoutFailureKeepsCart(t *testing.T) {
	store := new(mocks.MockStoreClient)
	s := bootstrappedSession(t, store)

	s.AddToCart(testProduct("Camiseta", 5, 10.00))
	store.On("Checkout", mock.Anything, mock.Anything).
		Return(client.CheckoutResult{}, errors.New("database error"))

	_, err := s.Checkout(context.Background())
	assert.Error(t, err)
	assert.Len(t, s.Cart(), 1, "cart is preserved for retry")
}

func TestCheckoutEmptyCart(t *testing.T) {
	store := new(mocks.MockStoreClient)
	s := bootstrappedSession(t, store)

	_, err := s.Checkout(context.Background())
	assert.Error(t, err)
	store.AssertNotCalled(t, "Checkout", mock.Anything, mock.Anything)
}

func TestBackTransitions(t *testing.T) {
	tests := []struct {
		from View
		to   View
	}{
		{ViewDetail, ViewCatalog},
		{ViewCart, ViewCatalog},
		{ViewUserManagement, ViewAdmin},
		{ViewProductManagement, ViewAdmin},
		{ViewOrderManagement, ViewAdmin},
		{ViewCatalog, ViewCatalog},
		{ViewLogin, ViewLogin},
	}

	for _, tt := range tests {
		store := new(mocks.MockStoreClient)
		s := bootstrappedSession(t, store)
		s.GoTo(tt.from)
		s.Back()
		assert.Equal(t, tt.to, s.View(), "back from %s", tt.from)
	}
}

func TestBootstrapPropagatesErrors(t *testing.T) {
	store := new(mocks.MockStoreClient)
	store.On("ListUsers", mock.Anything).Return(nil, errors.New("database error"))
	store.On("ListProducts", mock.Anything).Return([]domain.Product{}, nil).Maybe()
	store.On("ListOrders", mock.Anything).Return([]domain.Order{}, nil).Maybe()

	err := New(store).Bootstrap(context.Background())
	assert.Error(t, err)
}
