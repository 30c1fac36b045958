package repository

import (
	"testing"

	"github.com/ironman07017-lang/vibeosys-inventory/internal/domain"
	"github.com/ironman07017-lang/vibeosys-inventory/internal/idgen"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T, seed []domain.Product) *InMemoryProductRepository {
	t.Helper()
	logger, _ := test.NewNullLogger()
	repo := NewInMemoryProductRepository(idgen.NewCounter(), logger)
	require.NoError(t, repo.Init(seed))
	return repo
}

func TestInitSeedsDemoProduct(t *testing.T) {
	repo := newRepo(t, DemoProducts())

	products, err := repo.ListProducts()
	require.NoError(t, err)
	require.Len(t, products, 1)

	p := products[0]
	assert.Equal(t, "1", p.ID)
	assert.Equal(t, "Vitamin Tablets", p.Name)
	assert.Equal(t, domain.UnitBox, p.UnitOfMeasure)
	assert.Equal(t, domain.CategoryFinished, p.Category)
	assert.Equal(t, "2026-12-31", p.ExpiryDate.String())
	require.Len(t, p.Materials, 2)
	assert.Equal(t, "Calcium Carbonate", p.Materials[0].Name)
	assert.Equal(t, "Vitamin D3", p.Materials[1].Name)
	assert.True(t, decimal.NewFromInt(11000).Equal(p.TotalCost), "total cost %s", p.TotalCost)
}

func TestInitEmpty(t *testing.T) {
	repo := newRepo(t, nil)

	products, err := repo.ListProducts()
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestAddProductAssignsFreshIDs(t *testing.T) {
	repo := newRepo(t, DemoProducts())

	first, err := repo.AddProduct(domain.Product{ID: "ignored", Name: "Syrup"})
	require.NoError(t, err)
	second, err := repo.AddProduct(domain.Product{Name: "Capsules"})
	require.NoError(t, err)

	assert.Equal(t, "2", first.ID)
	assert.Equal(t, "3", second.ID)

	products, err := repo.ListProducts()
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "Syrup", products[1].Name)
	assert.Equal(t, "Capsules", products[2].Name)
}

func TestGetProductByID(t *testing.T) {
	repo := newRepo(t, DemoProducts())

	p, err := repo.GetProductByID("1")
	require.NoError(t, err)
	assert.Equal(t, "Vitamin Tablets", p.Name)

	p.Materials[0].Name = "changed"
	again, err := repo.GetProductByID("1")
	require.NoError(t, err)
	assert.Equal(t, "Calcium Carbonate", again.Materials[0].Name)

	_, err = repo.GetProductByID("42")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestUpdateProduct(t *testing.T) {
	repo := newRepo(t, DemoProducts())

	updated, err := repo.UpdateProduct(domain.Product{ID: "1", Name: "Vitamin Tablets Forte"})
	require.NoError(t, err)
	assert.Equal(t, "1", updated.ID)

	p, err := repo.GetProductByID("1")
	require.NoError(t, err)
	assert.Equal(t, "Vitamin Tablets Forte", p.Name)

	_, err = repo.UpdateProduct(domain.Product{ID: "42"})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestDeleteProduct(t *testing.T) {
	repo := newRepo(t, DemoProducts())
	_, err := repo.AddProduct(domain.Product{Name: "Syrup"})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteProduct("1"))

	products, err := repo.ListProducts()
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Syrup", products[0].Name)

	err = repo.DeleteProduct("1")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	products, err = repo.ListProducts()
	require.NoError(t, err)
	assert.Len(t, products, 1)
}
