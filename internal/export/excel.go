// Package export writes the product catalogue as an xlsx workbook.
package export

import (
	"fmt"
	"io"

	"github.com/ironman07017-lang/vibeosys-inventory/internal/cost"
	"github.com/ironman07017-lang/vibeosys-inventory/internal/domain"

	"github.com/xuri/excelize/v2"
)

const (
	ProductsSheet  = "Products"
	MaterialsSheet = "Materials"
)

var (
	productsHeader = []interface{}{
		"id", "name", "unit_of_measure", "category", "expiry_date", "materials", "total_cost",
	}
	materialsHeader = []interface{}{
		"product_id", "material_key", "name", "unit_of_measure", "quantity", "price", "total_price", "tax", "total_amount",
	}
)

// WriteProducts writes one row per product to the Products sheet and one row
// per material to the Materials sheet.
func WriteProducts(w io.Writer, products []domain.Product) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), ProductsSheet); err != nil {
		return fmt.Errorf("rename products sheet: %w", err)
	}
	if _, err := f.NewSheet(MaterialsSheet); err != nil {
		return fmt.Errorf("create materials sheet: %w", err)
	}

	if err := f.SetSheetRow(ProductsSheet, "A1", &productsHeader); err != nil {
		return fmt.Errorf("write products header: %w", err)
	}
	if err := f.SetSheetRow(MaterialsSheet, "A1", &materialsHeader); err != nil {
		return fmt.Errorf("write materials header: %w", err)
	}

	productRow, materialRow := 2, 2
	for _, p := range products {
		row := []interface{}{
			p.ID,
			p.Name,
			string(p.UnitOfMeasure),
			string(p.Category),
			p.ExpiryDate.String(),
			len(p.Materials),
			p.TotalCost.InexactFloat64(),
		}
		if err := setRow(f, ProductsSheet, productRow, row); err != nil {
			return err
		}
		productRow++

		for _, m := range p.Materials {
			t := cost.MaterialTotals(m)
			row := []interface{}{
				p.ID,
				m.Key.String(),
				m.Name,
				string(m.UnitOfMeasure),
				m.Quantity.InexactFloat64(),
				m.Price.InexactFloat64(),
				t.TotalPrice.InexactFloat64(),
				t.Tax.InexactFloat64(),
				t.TotalAmount.InexactFloat64(),
			}
			if err := setRow(f, MaterialsSheet, materialRow, row); err != nil {
				return err
			}
			materialRow++
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("%s row %d: %w", sheet, row, err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("%s row %d: %w", sheet, row, err)
	}
	return nil
}
