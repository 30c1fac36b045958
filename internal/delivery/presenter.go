package delivery

import (
	"github.com/ironman07017-lang/vibeosys-inventory/internal/cost"
	"github.com/ironman07017-lang/vibeosys-inventory/internal/domain"
	"github.com/ironman07017-lang/vibeosys-inventory/internal/format"
	"github.com/ironman07017-lang/vibeosys-inventory/internal/session"
)

// Presenter maps domain values to response views.
type Presenter struct {
	format *format.Formatter
}

func NewPresenter(f *format.Formatter) *Presenter {
	return &Presenter{format: f}
}

func (p *Presenter) Material(m domain.Material) MaterialView {
	t := cost.MaterialTotals(m)
	return MaterialView{
		Key:                m.Key.String(),
		Name:               m.Name,
		UnitOfMeasure:      string(m.UnitOfMeasure),
		Quantity:           m.Quantity.InexactFloat64(),
		Price:              m.Price.InexactFloat64(),
		TotalPrice:         t.TotalPrice.InexactFloat64(),
		Tax:                t.Tax.InexactFloat64(),
		TotalAmount:        t.TotalAmount.InexactFloat64(),
		TotalAmountDisplay: p.format.Money(t.TotalAmount),
	}
}

func (p *Presenter) materials(materials []domain.Material) []MaterialView {
	views := make([]MaterialView, 0, len(materials))
	for _, m := range materials {
		views = append(views, p.Material(m))
	}
	return views
}

func (p *Presenter) Product(prod domain.Product) ProductView {
	return ProductView{
		ID:               prod.ID,
		Name:             prod.Name,
		UnitOfMeasure:    string(prod.UnitOfMeasure),
		Category:         string(prod.Category),
		ExpiryDate:       prod.ExpiryDate.String(),
		ExpiryDisplay:    p.format.Date(prod.ExpiryDate),
		Materials:        p.materials(prod.Materials),
		MaterialCount:    len(prod.Materials),
		TotalCost:        prod.TotalCost.InexactFloat64(),
		TotalCostDisplay: p.format.Money(prod.TotalCost),
	}
}

func (p *Presenter) Products(products []domain.Product) []ProductView {
	views := make([]ProductView, 0, len(products))
	for _, prod := range products {
		views = append(views, p.Product(prod))
	}
	return views
}

func (p *Presenter) Draft(d *domain.Draft) *DraftView {
	if d == nil {
		return nil
	}
	total := cost.ProductTotalCost(d.Materials)
	return &DraftView{
		ProductID:        d.ProductID,
		Name:             d.Name,
		UnitOfMeasure:    string(d.UnitOfMeasure),
		Category:         string(d.Category),
		ExpiryDate:       d.ExpiryDate.String(),
		Materials:        p.materials(d.Materials),
		MaterialCount:    len(d.Materials),
		TotalCost:        total.InexactFloat64(),
		TotalCostDisplay: p.format.Money(total),
	}
}

func (p *Presenter) Session(s session.Snapshot) SessionView {
	return SessionView{
		ID:              s.ID,
		State:           string(s.State),
		Draft:           p.Draft(s.Draft),
		Errors:          s.Errors,
		PendingDeleteID: s.PendingDeleteID,
	}
}

func (p *Presenter) Summary(s domain.InventorySummary) SummaryView {
	return SummaryView{
		TotalProducts:     s.TotalProducts,
		TotalValue:        s.TotalValue.InexactFloat64(),
		TotalValueDisplay: p.format.Money(s.TotalValue),
	}
}
