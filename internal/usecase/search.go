package usecase

import (
	"strings"

	"github.com/ironman07017-lang/vibeosys-inventory/internal/domain"

	"golang.org/x/text/cases"
)

// Search keeps the products whose name or category contains query,
// ignoring case.
func Search(products []domain.Product, query string) []domain.Product {
	query = strings.TrimSpace(query)
	if query == "" {
		return products
	}

	fold := cases.Fold()
	needle := fold.String(query)

	matched := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(fold.String(p.Name), needle) ||
			strings.Contains(fold.String(string(p.Category)), needle) {
			matched = append(matched, p)
		}
	}
	return matched
}
