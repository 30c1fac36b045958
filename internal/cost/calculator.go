// Package cost derives the monetary roll-ups of a bill of materials.
//
// Tax is computed and rounded per material line, then summed. Rounding once
// on the aggregate would give different totals, so the per-line policy is
// kept as is.
package cost

import (
	"strings"

	"github.com/ironman07017-lang/vibeosys-inventory/internal/domain"
	"github.com/shopspring/decimal"
)

// TaxRate is applied to every material line.
var TaxRate = decimal.New(10, -2)

type Totals struct {
	TotalPrice  decimal.Decimal `json:"total_price"`
	Tax         decimal.Decimal `json:"tax"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// MaterialTotals returns quantity*price, the tax on it rounded half-up to a
// whole currency unit, and their sum.
func MaterialTotals(m domain.Material) Totals {
	totalPrice := m.Quantity.Mul(m.Price)
	tax := totalPrice.Mul(TaxRate).Round(0)
	return Totals{
		TotalPrice:  totalPrice,
		Tax:         tax,
		TotalAmount: totalPrice.Add(tax),
	}
}

// ProductTotalCost sums MaterialTotals(m).TotalAmount over materials.
func ProductTotalCost(materials []domain.Material) decimal.Decimal {
	total := decimal.Zero
	for _, m := range materials {
		total = total.Add(MaterialTotals(m).TotalAmount)
	}
	return total
}

// InventoryValue sums the saved total cost of every product.
func InventoryValue(products []domain.Product) decimal.Decimal {
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.TotalCost)
	}
	return total
}

// CoerceAmount turns raw quantity or price input into a non-negative amount.
// Empty, unparsable or negative input yields zero; coerced reports whether
// that happened for non-empty input.
func CoerceAmount(raw string) (amount decimal.Decimal, coerced bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, false
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, true
	}
	if v.IsNegative() {
		return decimal.Zero, true
	}
	return v, false
}
