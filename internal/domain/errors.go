package domain

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrProductNotFound      = errors.New("product not found")
	ErrDuplicateProductID   = errors.New("product id already exists")
	ErrEmptyProductID       = errors.New("product id cannot be empty")
	ErrMaterialNotFound     = errors.New("material not found")
	ErrDuplicateMaterialKey = errors.New("material key already exists")
	ErrInvalidMaterialKey   = errors.New("invalid material key")
	ErrInvalidUnitOfMeasure = errors.New("invalid unit of measure")
	ErrInvalidCategory      = errors.New("invalid category")
	ErrInvalidDate          = errors.New("invalid date, expected YYYY-MM-DD")
)

// Field names used as keys in ValidationErrors. They are also the keys
// clients see in the error map.
const (
	FieldName       = "name"
	FieldExpiryDate = "expiry_date"
	FieldMaterials  = "materials"
)

// ValidationErrors maps a draft field to a user-facing message. An empty
// map means the draft can be saved.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+v[field])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
