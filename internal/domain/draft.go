package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	msgNameRequired       = "Product name is required"
	msgExpiryRequired     = "Expiry date is required"
	msgMaterialsRequired  = "At least one material is required"
	msgMaterialKeysUnique = "Material keys must be unique"
)

// Draft is a product being created or edited. It is never stored; a saved
// draft becomes a Product.
type Draft struct {
	ProductID     string        `json:"product_id,omitempty"` // empty while creating
	Name          string        `json:"name"`
	UnitOfMeasure UnitOfMeasure `json:"unit_of_measure"`
	Category      Category      `json:"category"`
	ExpiryDate    Date          `json:"expiry_date"`
	Materials     []Material    `json:"materials"`
}

// DraftFields carries a partial update of the product-level draft fields.
// Nil fields are left untouched.
type DraftFields struct {
	Name          *string
	UnitOfMeasure *UnitOfMeasure
	Category      *Category
	ExpiryDate    *Date
}

func NewDraft() *Draft {
	return &Draft{
		UnitOfMeasure: UnitUnits,
		Category:      CategoryFinished,
		Materials:     []Material{},
	}
}

func DraftFromProduct(p Product) *Draft {
	p = p.Clone()
	return &Draft{
		ProductID:     p.ID,
		Name:          p.Name,
		UnitOfMeasure: p.UnitOfMeasure,
		Category:      p.Category,
		ExpiryDate:    p.ExpiryDate,
		Materials:     p.Materials,
	}
}

func (d *Draft) IsNew() bool { return d.ProductID == "" }

func (d *Draft) Clone() *Draft {
	c := *d
	c.Materials = append([]Material(nil), d.Materials...)
	return &c
}

func (d *Draft) Apply(f DraftFields) {
	if f.Name != nil {
		d.Name = *f.Name
	}
	if f.UnitOfMeasure != nil {
		d.UnitOfMeasure = *f.UnitOfMeasure
	}
	if f.Category != nil {
		d.Category = *f.Category
	}
	if f.ExpiryDate != nil {
		d.ExpiryDate = *f.ExpiryDate
	}
}

func (d *Draft) indexOf(key MaterialKey) int {
	for i := range d.Materials {
		if d.Materials[i].Key == key {
			return i
		}
	}
	return -1
}

func (d *Draft) Material(key MaterialKey) (Material, bool) {
	i := d.indexOf(key)
	if i < 0 {
		return Material{}, false
	}
	return d.Materials[i], true
}

// AddMaterial appends an empty material (gm, zero quantity and price) under
// the given transient key.
func (d *Draft) AddMaterial(key MaterialKey) (Material, error) {
	if !key.IsTransient() || key.Value == "" {
		return Material{}, fmt.Errorf("%w: new materials need a transient key, got %q", ErrInvalidMaterialKey, key.String())
	}
	if d.indexOf(key) >= 0 {
		return Material{}, fmt.Errorf("%w: %s", ErrDuplicateMaterialKey, key)
	}
	m := Material{
		Key:           key,
		UnitOfMeasure: UnitGram,
		Quantity:      decimal.Zero,
		Price:         decimal.Zero,
	}
	d.Materials = append(d.Materials, m)
	return m, nil
}

func (d *Draft) RemoveMaterial(key MaterialKey) error {
	i := d.indexOf(key)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrMaterialNotFound, key)
	}
	materials := make([]Material, 0, len(d.Materials)-1)
	materials = append(materials, d.Materials[:i]...)
	d.Materials = append(materials, d.Materials[i+1:]...)
	return nil
}

// ReplaceMaterial swaps the material stored under key for m. The key itself
// never changes, whatever m.Key holds.
func (d *Draft) ReplaceMaterial(key MaterialKey, m Material) error {
	i := d.indexOf(key)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrMaterialNotFound, key)
	}
	m.Key = key
	d.Materials[i] = m
	return nil
}

func (d *Draft) Validate() ValidationErrors {
	errs := ValidationErrors{}
	if strings.TrimSpace(d.Name) == "" {
		errs[FieldName] = msgNameRequired
	}
	if d.ExpiryDate.IsZero() {
		errs[FieldExpiryDate] = msgExpiryRequired
	}
	if len(d.Materials) == 0 {
		errs[FieldMaterials] = msgMaterialsRequired
	} else if hasDuplicateKeys(d.Materials) {
		errs[FieldMaterials] = msgMaterialKeysUnique
	}
	return errs
}

// hasDuplicateKeys ignores zero keys; those get a key assigned on save.
func hasDuplicateKeys(materials []Material) bool {
	seen := make(map[MaterialKey]struct{}, len(materials))
	for _, m := range materials {
		if m.Key.IsZero() {
			continue
		}
		if _, ok := seen[m.Key]; ok {
			return true
		}
		seen[m.Key] = struct{}{}
	}
	return false
}
