package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/KristellVM/tienda-online/internal/domain"
	"github.com/KristellVM/tienda-online/internal/infra/sqlite"
	"github.com/KristellVM/tienda-online/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "tienda.db"))
	require.NoError(t, err)
	return db
}

func TestUserRepo_UniqueUsername(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))

	first := domain.User{Username: "ana", Password: "secreta", Role: domain.RoleAdmin}
	require.NoError(t, repo.Create(&first))
	assert.NotZero(t, first.ID)

	second := domain.User{Username: "ana", Password: "otra", Role: domain.RoleCustomer}
	err := repo.Create(&second)
	assert.Error(t, err)
	assert.True(t, domain.IsDuplicateKey(err))

	users, err := repo.FindAll()
	require.NoError(t, err)
	assert.Len(t, users, 1)
	assert.Equal(t, "ana", users[0].Username)
}

func TestUserRepo_UpdateDeleteChanges(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))

	user := domain.User{Username: "ana", Password: "secreta", Role: domain.RoleCustomer}
	require.NoError(t, repo.Create(&user))

	changes, err := repo.Update(user.ID, &domain.User{Username: "ana", Password: "nueva", Role: domain.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, int64(1), changes)

	changes, err = repo.Update(9999, &domain.User{Username: "x", Password: "y", Role: domain.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, int64(0), changes)

	changes, err = repo.Delete(user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), changes)

	changes, err = repo.Delete(user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), changes)
}

func TestProductRepo_PhotosRoundTrip(t *testing.T) {
	repo := NewProductRepository(openTestDB(t))

	product := domain.Product{
		Name:     "Camiseta",
		Stock:    5,
		Price:    decimal.NewFromFloat(10.00),
		Photos:   domain.PhotoList{"a.jpg", "b.jpg"},
		Category: "ropa",
	}
	require.NoError(t, repo.Create(&product))

	products, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, products, 1)
	// Order is part of the contract, not just membership.
	assert.Equal(t, domain.PhotoList{"a.jpg", "b.jpg"}, products[0].Photos)
}

func TestProductRepo_DeleteMissingIsZeroChanges(t *testing.T) {
	repo := NewProductRepository(openTestDB(t))

	changes, err := repo.Delete("Camiseta")
	require.NoError(t, err)
	assert.Equal(t, int64(0), changes)
}

func TestProductRepo_UpdateStockBulk(t *testing.T) {
	db := openTestDB(t)
	repo := NewProductRepository(db)

	require.NoError(t, repo.Create(&domain.Product{
		Name: "Camiseta", Stock: 5, Price: decimal.NewFromFloat(10), Photos: domain.PhotoList{}, Category: "ropa",
	}))
	require.NoError(t, repo.Create(&domain.Product{
		Name: "Jeans", Stock: 3, Price: decimal.NewFromFloat(25), Photos: domain.PhotoList{}, Category: "ropa",
	}))

	err := repo.UpdateStockBulk([]repository.StockUpdate{
		{Name: "Camiseta", Stock: 3},
		{Name: "Jeans", Stock: 2},
		{Name: "Fantasma", Stock: 1},
	})
	require.NoError(t, err)

	products, err := repo.FindAll()
	require.NoError(t, err)
	byName := map[string]int64{}
	for _, p := range products {
		byName[p.Name] = p.Stock
	}
	assert.Equal(t, int64(3), byName["Camiseta"])
	assert.Equal(t, int64(2), byName["Jeans"])
}

func TestOrderRepo_SaveWithStockDecrements(t *testing.T) {
	db := openTestDB(t)
	products := NewProductRepository(db)
	orders := NewOrderRepository(db)

	require.NoError(t, products.Create(&domain.Product{
		Name: "Camiseta", Stock: 5, Price: decimal.NewFromFloat(10), Photos: domain.PhotoList{}, Category: "ropa",
	}))
	require.NoError(t, products.Create(&domain.Product{
		Name: "Jeans", Stock: 3, Price: decimal.NewFromFloat(25), Photos: domain.PhotoList{}, Category: "ropa",
	}))

	order := &domain.Order{
		OrderDate:   "2026-08-31",
		TotalPrice:  decimal.NewFromFloat(45.00),
		Description: "Camiseta\nCamiseta\nJeans\n",
		Products: domain.LineItems{
			{Name: "Camiseta", Price: decimal.NewFromFloat(10), Photos: domain.PhotoList{}},
			{Name: "Camiseta", Price: decimal.NewFromFloat(10), Photos: domain.PhotoList{}},
			{Name: "Jeans", Price: decimal.NewFromFloat(25), Photos: domain.PhotoList{}},
		},
	}
	err := orders.SaveWithStockDecrements(order, map[string]int64{"Camiseta": 2, "Jeans": 1})
	require.NoError(t, err)
	assert.NotZero(t, order.ID)

	stored, err := orders.FindAll()
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Len(t, stored[0].Products, 3)
	assert.True(t, stored[0].TotalPrice.Equal(decimal.NewFromFloat(45.00)))

	remaining, err := products.FindAll()
	require.NoError(t, err)
	byName := map[string]int64{}
	for _, p := range remaining {
		byName[p.Name] = p.Stock
	}
	assert.Equal(t, int64(3), byName["Camiseta"])
	assert.Equal(t, int64(2), byName["Jeans"])
}

func TestOrderRepo_LineItemsDetachedFromProducts(t *testing.T) {
	db := openTestDB(t)
	products := NewProductRepository(db)
	orders := NewOrderRepository(db)

	require.NoError(t, products.Create(&domain.Product{
		Name: "Camiseta", Stock: 5, Price: decimal.NewFromFloat(10), Photos: domain.PhotoList{}, Category: "ropa",
	}))

	order := &domain.Order{
		OrderDate:   "2026-08-31",
		TotalPrice:  decimal.NewFromFloat(10),
		Description: "Camiseta\n",
		Products: domain.LineItems{
			{Name: "Camiseta", Price: decimal.NewFromFloat(10), Photos: domain.PhotoList{}},
		},
	}
	require.NoError(t, orders.Save(order))

	// Raising the stored price must not change the snapshot.
	_, err := products.Update("Camiseta", &domain.Product{
		Name: "Camiseta", Stock: 5, Price: decimal.NewFromFloat(99), Photos: domain.PhotoList{}, Category: "ropa",
	})
	require.NoError(t, err)

	stored, err := orders.FindAll()
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.True(t, stored[0].Products[0].Price.Equal(decimal.NewFromFloat(10)))
	assert.True(t, stored[0].TotalPrice.Equal(decimal.NewFromFloat(10)))
}
