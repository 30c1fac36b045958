package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft() *Draft {
	d := NewDraft()
	d.Name = "Vitamin Tablets"
	d.ExpiryDate = NewDate(2026, time.January, 1)
	d.Materials = []Material{{Key: NewTransientKey("1"), UnitOfMeasure: UnitGram}}
	return d
}

func TestNewDraftDefaults(t *testing.T) {
	d := NewDraft()
	assert.True(t, d.IsNew())
	assert.Equal(t, UnitUnits, d.UnitOfMeasure)
	assert.Equal(t, CategoryFinished, d.Category)
	assert.Empty(t, d.Name)
	assert.True(t, d.ExpiryDate.IsZero())
	assert.Empty(t, d.Materials)
}

func TestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.Empty(t, validDraft().Validate())
	})

	t.Run("missing name only", func(t *testing.T) {
		d := validDraft()
		d.Name = ""
		errs := d.Validate()
		assert.Equal(t, ValidationErrors{FieldName: "Product name is required"}, errs)
	})

	t.Run("whitespace name", func(t *testing.T) {
		d := validDraft()
		d.Name = "   "
		assert.Contains(t, d.Validate(), FieldName)
	})

	t.Run("missing expiry and materials", func(t *testing.T) {
		d := validDraft()
		d.ExpiryDate = Date{}
		d.Materials = nil
		errs := d.Validate()
		assert.Len(t, errs, 2)
		assert.Equal(t, "Expiry date is required", errs[FieldExpiryDate])
		assert.Equal(t, "At least one material is required", errs[FieldMaterials])
	})

	t.Run("duplicate material keys", func(t *testing.T) {
		d := validDraft()
		d.Materials = append(d.Materials, Material{Key: NewTransientKey("1")})
		assert.Equal(t, ValidationErrors{FieldMaterials: "Material keys must be unique"}, d.Validate())
	})

	t.Run("zero keys are not duplicates", func(t *testing.T) {
		d := validDraft()
		d.Materials = []Material{{}, {}}
		assert.Empty(t, d.Validate())
	})
}

func TestAddMaterial(t *testing.T) {
	d := NewDraft()

	m, err := d.AddMaterial(NewTransientKey("a"))
	require.NoError(t, err)
	assert.Equal(t, UnitGram, m.UnitOfMeasure)
	assert.True(t, m.Quantity.IsZero())
	assert.True(t, m.Price.IsZero())
	assert.Empty(t, m.Name)

	_, err = d.AddMaterial(NewTransientKey("b"))
	require.NoError(t, err)
	require.Len(t, d.Materials, 2)
	assert.Equal(t, NewTransientKey("a"), d.Materials[0].Key)
	assert.Equal(t, NewTransientKey("b"), d.Materials[1].Key)

	_, err = d.AddMaterial(NewTransientKey("a"))
	assert.ErrorIs(t, err, ErrDuplicateMaterialKey)

	_, err = d.AddMaterial(NewPermanentKey("c"))
	assert.ErrorIs(t, err, ErrInvalidMaterialKey)
	assert.Len(t, d.Materials, 2)
}

func TestRemoveMaterialByKey(t *testing.T) {
	d := NewDraft()
	for _, k := range []string{"a", "b", "c"} {
		_, err := d.AddMaterial(NewTransientKey(k))
		require.NoError(t, err)
	}

	require.NoError(t, d.RemoveMaterial(NewTransientKey("b")))
	require.Len(t, d.Materials, 2)
	assert.Equal(t, NewTransientKey("a"), d.Materials[0].Key)
	assert.Equal(t, NewTransientKey("c"), d.Materials[1].Key)

	// Removing by key stays correct after the list shifted.
	require.NoError(t, d.RemoveMaterial(NewTransientKey("c")))
	require.Len(t, d.Materials, 1)
	assert.Equal(t, NewTransientKey("a"), d.Materials[0].Key)

	assert.ErrorIs(t, d.RemoveMaterial(NewTransientKey("zzz")), ErrMaterialNotFound)
}

func TestReplaceMaterialKeepsKey(t *testing.T) {
	d := NewDraft()
	_, err := d.AddMaterial(NewTransientKey("a"))
	require.NoError(t, err)

	err = d.ReplaceMaterial(NewTransientKey("a"), Material{
		Key:           NewPermanentKey("other"),
		Name:          "Vitamin D3",
		UnitOfMeasure: UnitKilogram,
		Quantity:      decimal.NewFromInt(10),
		Price:         decimal.NewFromInt(500),
	})
	require.NoError(t, err)

	m, ok := d.Material(NewTransientKey("a"))
	require.True(t, ok)
	assert.Equal(t, "Vitamin D3", m.Name)
	assert.Equal(t, UnitKilogram, m.UnitOfMeasure)
	assert.Equal(t, NewTransientKey("a"), m.Key)

	assert.ErrorIs(t, d.ReplaceMaterial(NewTransientKey("b"), Material{}), ErrMaterialNotFound)
}

func TestDraftFromProductDoesNotAlias(t *testing.T) {
	p := Product{
		ID:        "9",
		Name:      "Syrup",
		Materials: []Material{{Key: NewPermanentKey("1"), Name: "Sugar"}},
	}
	d := DraftFromProduct(p)
	assert.False(t, d.IsNew())
	assert.Equal(t, "9", d.ProductID)

	d.Materials[0].Name = "Honey"
	assert.Equal(t, "Sugar", p.Materials[0].Name)
}

func TestApply(t *testing.T) {
	d := NewDraft()
	name := "Capsules"
	category := CategorySubsidiary
	expiry := NewDate(2027, time.March, 3)

	d.Apply(DraftFields{Name: &name, Category: &category, ExpiryDate: &expiry})

	assert.Equal(t, "Capsules", d.Name)
	assert.Equal(t, CategorySubsidiary, d.Category)
	assert.Equal(t, UnitUnits, d.UnitOfMeasure)
	assert.Equal(t, "2027-03-03", d.ExpiryDate.String())
}

func TestValidationErrorsMessage(t *testing.T) {
	errs := ValidationErrors{FieldName: "Product name is required", FieldExpiryDate: "Expiry date is required"}
	assert.Equal(t, "validation failed: expiry_date: Expiry date is required; name: Product name is required", errs.Error())
}
