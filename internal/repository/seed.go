package repository

import (
	"time"

	"github.com/ironman07017-lang/vibeosys-inventory/internal/cost"
	"github.com/ironman07017-lang/vibeosys-inventory/internal/domain"

	"github.com/shopspring/decimal"
)

// DemoProducts is the catalogue a fresh session starts with when seeding is
// enabled. Ids are assigned by Init.
func DemoProducts() []domain.Product {
	materials := []domain.Material{
		{
			Key:           domain.NewPermanentKey("1"),
			Name:          "Calcium Carbonate",
			UnitOfMeasure: domain.UnitGram,
			Quantity:      decimal.NewFromInt(100),
			Price:         decimal.NewFromInt(50),
		},
		{
			Key:           domain.NewPermanentKey("2"),
			Name:          "Vitamin D3",
			UnitOfMeasure: domain.UnitGram,
			Quantity:      decimal.NewFromInt(10),
			Price:         decimal.NewFromInt(500),
		},
	}
	return []domain.Product{
		{
			Name:          "Vitamin Tablets",
			UnitOfMeasure: domain.UnitBox,
			Category:      domain.CategoryFinished,
			ExpiryDate:    domain.NewDate(2026, time.December, 31),
			Materials:     materials,
			TotalCost:     cost.ProductTotalCost(materials),
		},
	}
}
