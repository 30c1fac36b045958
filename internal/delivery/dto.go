package delivery

import (
	"strconv"
	"strings"

	"github.com/ironman07017-lang/vibeosys-inventory/internal/cost"
	"github.com/ironman07017-lang/vibeosys-inventory/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Amount accepts a JSON number or string. Input that is not a non-negative
// number is coerced to zero instead of failing the whole request.
type Amount struct {
	Value   decimal.Decimal
	Raw     string
	Coerced bool
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		*a = Amount{Value: decimal.Zero}
		return nil
	}
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = unquoted
	}
	value, coerced := cost.CoerceAmount(raw)
	*a = Amount{Value: value, Raw: raw, Coerced: coerced}
	return nil
}

type MaterialInput struct {
	Key           string `json:"key"`
	Name          string `json:"name"`
	UnitOfMeasure string `json:"unit_of_measure"`
	Quantity      Amount `json:"quantity"`
	Price         Amount `json:"price"`
}

func (in MaterialInput) toMaterial(log logrus.FieldLogger) (domain.Material, error) {
	m := domain.Material{
		Name:          in.Name,
		UnitOfMeasure: domain.UnitGram,
		Quantity:      in.Quantity.Value,
		Price:         in.Price.Value,
	}
	if strings.TrimSpace(in.Key) != "" {
		key, err := domain.ParseMaterialKey(in.Key)
		if err != nil {
			return domain.Material{}, err
		}
		m.Key = key
	}
	if strings.TrimSpace(in.UnitOfMeasure) != "" {
		unit, err := domain.ParseUnitOfMeasure(in.UnitOfMeasure)
		if err != nil {
			return domain.Material{}, err
		}
		m.UnitOfMeasure = unit
	}
	if in.Quantity.Coerced {
		log.Debugf("Coerced quantity %q of material '%s' to 0", in.Quantity.Raw, in.Name)
	}
	if in.Price.Coerced {
		log.Debugf("Coerced price %q of material '%s' to 0", in.Price.Raw, in.Name)
	}
	return m, nil
}

// ProductInput is a complete draft submitted in one request.
type ProductInput struct {
	Name          string          `json:"name"`
	UnitOfMeasure string          `json:"unit_of_measure"`
	Category      string          `json:"category"`
	ExpiryDate    string          `json:"expiry_date"`
	Materials     []MaterialInput `json:"materials"`
}

func (in ProductInput) toDraft(productID string, log logrus.FieldLogger) (*domain.Draft, error) {
	draft := domain.NewDraft()
	draft.ProductID = productID
	draft.Name = in.Name

	if strings.TrimSpace(in.UnitOfMeasure) != "" {
		unit, err := domain.ParseUnitOfMeasure(in.UnitOfMeasure)
		if err != nil {
			return nil, err
		}
		draft.UnitOfMeasure = unit
	}
	if strings.TrimSpace(in.Category) != "" {
		category, err := domain.ParseCategory(in.Category)
		if err != nil {
			return nil, err
		}
		draft.Category = category
	}
	expiry, err := domain.ParseDate(in.ExpiryDate)
	if err != nil {
		return nil, err
	}
	draft.ExpiryDate = expiry

	for _, mi := range in.Materials {
		m, err := mi.toMaterial(log)
		if err != nil {
			return nil, err
		}
		draft.Materials = append(draft.Materials, m)
	}
	return draft, nil
}

// DraftFieldsInput is a partial update of a session draft.
type DraftFieldsInput struct {
	Name          *string `json:"name"`
	UnitOfMeasure *string `json:"unit_of_measure"`
	Category      *string `json:"category"`
	ExpiryDate    *string `json:"expiry_date"`
}

func (in DraftFieldsInput) toFields() (domain.DraftFields, error) {
	fields := domain.DraftFields{Name: in.Name}
	if in.UnitOfMeasure != nil {
		unit, err := domain.ParseUnitOfMeasure(*in.UnitOfMeasure)
		if err != nil {
			return fields, err
		}
		fields.UnitOfMeasure = &unit
	}
	if in.Category != nil {
		category, err := domain.ParseCategory(*in.Category)
		if err != nil {
			return fields, err
		}
		fields.Category = &category
	}
	if in.ExpiryDate != nil {
		expiry, err := domain.ParseDate(*in.ExpiryDate)
		if err != nil {
			return fields, err
		}
		fields.ExpiryDate = &expiry
	}
	return fields, nil
}

type MaterialView struct {
	Key                string  `json:"key"`
	Name               string  `json:"name"`
	UnitOfMeasure      string  `json:"unit_of_measure"`
	Quantity           float64 `json:"quantity"`
	Price              float64 `json:"price"`
	TotalPrice         float64 `json:"total_price"`
	Tax                float64 `json:"tax"`
	TotalAmount        float64 `json:"total_amount"`
	TotalAmountDisplay string  `json:"total_amount_display"`
}

type ProductView struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	UnitOfMeasure    string         `json:"unit_of_measure"`
	Category         string         `json:"category"`
	ExpiryDate       string         `json:"expiry_date"`
	ExpiryDisplay    string         `json:"expiry_display"`
	Materials        []MaterialView `json:"materials"`
	MaterialCount    int            `json:"material_count"`
	TotalCost        float64        `json:"total_cost"`
	TotalCostDisplay string         `json:"total_cost_display"`
}

// DraftView shows the running total of a draft; it is recomputed on every
// render, unlike a saved product's total cost.
type DraftView struct {
	ProductID        string         `json:"product_id,omitempty"`
	Name             string         `json:"name"`
	UnitOfMeasure    string         `json:"unit_of_measure"`
	Category         string         `json:"category"`
	ExpiryDate       string         `json:"expiry_date"`
	Materials        []MaterialView `json:"materials"`
	MaterialCount    int            `json:"material_count"`
	TotalCost        float64        `json:"total_cost"`
	TotalCostDisplay string         `json:"total_cost_display"`
}

type SessionView struct {
	ID              string            `json:"id"`
	State           string            `json:"state"`
	Draft           *DraftView        `json:"draft,omitempty"`
	Errors          map[string]string `json:"errors"`
	PendingDeleteID string            `json:"pending_delete_id,omitempty"`
}

type SummaryView struct {
	TotalProducts     int     `json:"total_products"`
	TotalValue        float64 `json:"total_value"`
	TotalValueDisplay string  `json:"total_value_display"`
}
