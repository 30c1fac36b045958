package domain

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type UnitOfMeasure string

const (
	UnitMillilitre UnitOfMeasure = "ml"
	UnitLitre      UnitOfMeasure = "ltr"
	UnitGram       UnitOfMeasure = "gm"
	UnitKilogram   UnitOfMeasure = "kg"
	UnitMetre      UnitOfMeasure = "mtr"
	UnitMillimetre UnitOfMeasure = "mm"
	UnitBox        UnitOfMeasure = "box"
	UnitUnits      UnitOfMeasure = "units"
)

var unitsOfMeasure = []UnitOfMeasure{
	UnitMillilitre, UnitLitre, UnitGram, UnitKilogram,
	UnitMetre, UnitMillimetre, UnitBox, UnitUnits,
}

// UnitsOfMeasure returns the selectable units in display order.
func UnitsOfMeasure() []UnitOfMeasure {
	return append([]UnitOfMeasure(nil), unitsOfMeasure...)
}

func (u UnitOfMeasure) IsValid() bool {
	for _, known := range unitsOfMeasure {
		if u == known {
			return true
		}
	}
	return false
}

func ParseUnitOfMeasure(s string) (UnitOfMeasure, error) {
	u := UnitOfMeasure(strings.TrimSpace(s))
	if !u.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidUnitOfMeasure, s)
	}
	return u, nil
}

type Category string

const (
	CategoryFinished     Category = "Finished"
	CategorySemiFinished Category = "Semi finished"
	CategorySubsidiary   Category = "Subsidiary"
)

var categories = []Category{CategoryFinished, CategorySemiFinished, CategorySubsidiary}

func Categories() []Category {
	return append([]Category(nil), categories...)
}

func (c Category) IsValid() bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}

func ParseCategory(s string) (Category, error) {
	c := Category(strings.TrimSpace(s))
	if !c.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
	}
	return c, nil
}

// MaterialKeyKind tells a material that only lives in a draft apart from
// one that has been saved with its product.
type MaterialKeyKind uint8

const (
	TransientKey MaterialKeyKind = iota + 1
	PermanentKey
)

const (
	transientKeyPrefix = "tmp-"
	permanentKeyPrefix = "mat-"
)

// MaterialKey identifies a material within one product's material list.
type MaterialKey struct {
	Kind  MaterialKeyKind
	Value string
}

func NewTransientKey(value string) MaterialKey {
	return MaterialKey{Kind: TransientKey, Value: value}
}

func NewPermanentKey(value string) MaterialKey {
	return MaterialKey{Kind: PermanentKey, Value: value}
}

func (k MaterialKey) IsZero() bool      { return k.Kind == 0 && k.Value == "" }
func (k MaterialKey) IsTransient() bool { return k.Kind == TransientKey }
func (k MaterialKey) IsPermanent() bool { return k.Kind == PermanentKey }

func (k MaterialKey) String() string {
	switch k.Kind {
	case TransientKey:
		return transientKeyPrefix + k.Value
	case PermanentKey:
		return permanentKeyPrefix + k.Value
	default:
		return ""
	}
}

func ParseMaterialKey(s string) (MaterialKey, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, transientKeyPrefix) && len(s) > len(transientKeyPrefix):
		return NewTransientKey(strings.TrimPrefix(s, transientKeyPrefix)), nil
	case strings.HasPrefix(s, permanentKeyPrefix) && len(s) > len(permanentKeyPrefix):
		return NewPermanentKey(strings.TrimPrefix(s, permanentKeyPrefix)), nil
	default:
		return MaterialKey{}, fmt.Errorf("%w: %q", ErrInvalidMaterialKey, s)
	}
}

func (k MaterialKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *MaterialKey) UnmarshalText(text []byte) error {
	if len(bytes.TrimSpace(text)) == 0 {
		*k = MaterialKey{}
		return nil
	}
	parsed, err := ParseMaterialKey(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Material is one raw-material line of a product's bill of materials.
// Price is the unit price.
type Material struct {
	Key           MaterialKey     `json:"key"`
	Name          string          `json:"name"`
	UnitOfMeasure UnitOfMeasure   `json:"unit_of_measure"`
	Quantity      decimal.Decimal `json:"quantity"`
	Price         decimal.Decimal `json:"price"`
}

type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	UnitOfMeasure UnitOfMeasure   `json:"unit_of_measure"`
	Category      Category        `json:"category"`
	ExpiryDate    Date            `json:"expiry_date"`
	Materials     []Material      `json:"materials"`
	TotalCost     decimal.Decimal `json:"total_cost"` // snapshot taken when the product was saved
}

// Clone returns a copy that shares no slices with p.
func (p Product) Clone() Product {
	p.Materials = append([]Material(nil), p.Materials...)
	return p
}

type InventorySummary struct {
	TotalProducts int             `json:"total_products"`
	TotalValue    decimal.Decimal `json:"total_value"`
}

const DateLayout = "2006-01-02"

// Date is a calendar date without time of day. The zero Date means "not set".
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Date{t: t}, nil
}

func (d Date) IsZero() bool    { return d.t.IsZero() }
func (d Date) Time() time.Time { return d.t }

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.String())), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*d = Date{}
		return nil
	}
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidDate, b)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
