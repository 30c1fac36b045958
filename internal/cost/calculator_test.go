package cost

import (
	"testing"

	"github.com/ironman07017-lang/vibeosys-inventory/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func material(quantity, price string) domain.Material {
	return domain.Material{
		UnitOfMeasure: domain.UnitGram,
		Quantity:      decimal.RequireFromString(quantity),
		Price:         decimal.RequireFromString(price),
	}
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got)
}

func TestMaterialTotals(t *testing.T) {
	totals := MaterialTotals(material("100", "50"))
	assertDecimal(t, "5000", totals.TotalPrice)
	assertDecimal(t, "500", totals.Tax)
	assertDecimal(t, "5500", totals.TotalAmount)
}

func TestMaterialTotalsRoundsTaxHalfUp(t *testing.T) {
	tests := []struct {
		name                        string
		quantity, price             string
		totalPrice, tax, totalAmout string
	}{
		{"exact half rounds up", "1", "25", "25", "3", "28"},
		{"below half rounds down", "1", "24", "24", "2", "26"},
		{"fractional price", "3", "0.5", "1.5", "0", "1.5"},
		{"fractional quantity", "2.5", "13", "32.5", "3", "35.5"},
		{"zero", "0", "999", "0", "0", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals := MaterialTotals(material(tt.quantity, tt.price))
			assertDecimal(t, tt.totalPrice, totals.TotalPrice)
			assertDecimal(t, tt.tax, totals.Tax)
			assertDecimal(t, tt.totalAmout, totals.TotalAmount)
		})
	}
}

func TestProductTotalCost(t *testing.T) {
	materials := []domain.Material{material("100", "50"), material("10", "500")}
	assertDecimal(t, "11000", ProductTotalCost(materials))
}

func TestProductTotalCostEmpty(t *testing.T) {
	assertDecimal(t, "0", ProductTotalCost(nil))
}

func TestProductTotalCostRoundsPerLine(t *testing.T) {
	// Each line: 5 -> tax round(0.5) = 1. On the aggregate 10 the tax would be 1, not 2.
	materials := []domain.Material{material("1", "5"), material("1", "5")}
	assertDecimal(t, "12", ProductTotalCost(materials))
}

func TestInventoryValue(t *testing.T) {
	products := []domain.Product{
		{TotalCost: decimal.NewFromInt(11000)},
		{TotalCost: decimal.RequireFromString("12.5")},
	}
	assertDecimal(t, "11012.5", InventoryValue(products))
	assertDecimal(t, "0", InventoryValue(nil))
}

func TestCoerceAmount(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		coerced bool
	}{
		{"42", "42", false},
		{" 2.75 ", "2.75", false},
		{"", "0", false},
		{"abc", "0", true},
		{"12abc", "0", true},
		{"-3", "0", true},
		{"NaN", "0", true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, coerced := CoerceAmount(tt.raw)
			assertDecimal(t, tt.want, got)
			assert.Equal(t, tt.coerced, coerced)
		})
	}
}
