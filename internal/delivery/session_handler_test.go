package delivery

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openSession(t *testing.T, s *testServer) string {
	t.Helper()
	w := s.do(t, http.MethodPost, "/sessions", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var view SessionView
	decode(t, w, &view)
	require.Equal(t, "listing", view.State)
	return view.ID
}

func TestSessionCreateProductFlow(t *testing.T) {
	s := newTestServer(t)
	base := "/sessions/" + openSession(t, s)

	var view SessionView
	w := s.do(t, http.MethodPost, base+"/create", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &view)
	assert.Equal(t, "editing", view.State)
	require.NotNil(t, view.Draft)
	assert.Equal(t, "units", view.Draft.UnitOfMeasure)
	assert.Equal(t, "Finished", view.Draft.Category)

	w = s.do(t, http.MethodPatch, base+"/draft", map[string]string{
		"name":        "Cough Syrup",
		"category":    "Semi finished",
		"expiry_date": "2027-06-30",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(t, http.MethodPost, base+"/draft/materials", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	view = SessionView{}
	decode(t, w, &view)
	require.Len(t, view.Draft.Materials, 1)
	key := view.Draft.Materials[0].Key
	assert.Contains(t, key, "tmp-")

	w = s.do(t, http.MethodPut, base+"/draft/materials/"+key, map[string]interface{}{
		"name": "Sugar", "unit_of_measure": "kg", "quantity": 100, "price": 50,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	view = SessionView{}
	decode(t, w, &view)
	assert.Equal(t, 5500.0, view.Draft.TotalCost)
	assert.Equal(t, key, view.Draft.Materials[0].Key)

	w = s.do(t, http.MethodPost, base+"/save", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	view = SessionView{}
	decode(t, w, &view)
	assert.Equal(t, "listing", view.State)
	assert.Nil(t, view.Draft)

	var products []ProductView
	decode(t, s.do(t, http.MethodGet, "/products?q=syrup", nil), &products)
	require.Len(t, products, 1)
	assert.Equal(t, "Semi finished", products[0].Category)
	assert.Equal(t, 5500.0, products[0].TotalCost)
}

func TestSessionSaveValidationFailure(t *testing.T) {
	s := newTestServer(t)
	base := "/sessions/" + openSession(t, s)
	require.Equal(t, http.StatusOK, s.do(t, http.MethodPost, base+"/create", nil).Code)

	w := s.do(t, http.MethodPost, base+"/save", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var view SessionView
	env := decode(t, w, &view)
	assert.Equal(t, "Fail", env.Status)
	assert.Equal(t, "editing", view.State)
	assert.Equal(t, "Product name is required", view.Errors["name"])
	assert.Equal(t, "Expiry date is required", view.Errors["expiry_date"])
	assert.Equal(t, "At least one material is required", view.Errors["materials"])
}

func TestSessionRemoveMaterial(t *testing.T) {
	s := newTestServer(t)
	base := "/sessions/" + openSession(t, s)
	require.Equal(t, http.StatusOK, s.do(t, http.MethodPost, base+"/edit/1", nil).Code)

	w := s.do(t, http.MethodDelete, base+"/draft/materials/mat-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var view SessionView
	decode(t, w, &view)
	require.Len(t, view.Draft.Materials, 1)
	assert.Equal(t, "mat-2", view.Draft.Materials[0].Key)
	assert.Equal(t, 5500.0, view.Draft.TotalCost)

	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodDelete, base+"/draft/materials/mat-1", nil).Code)
	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodDelete, base+"/draft/materials/bogus", nil).Code)

	require.Equal(t, http.StatusOK, s.do(t, http.MethodPost, base+"/cancel", nil).Code)
	var product ProductView
	decode(t, s.do(t, http.MethodGet, "/products/1", nil), &product)
	assert.Equal(t, 2, product.MaterialCount)
}

func TestSessionDeleteFlow(t *testing.T) {
	s := newTestServer(t)
	base := "/sessions/" + openSession(t, s)

	w := s.do(t, http.MethodPost, base+"/delete/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var view SessionView
	env := decode(t, w, &view)
	assert.Equal(t, "confirming_delete", view.State)
	assert.Equal(t, "1", view.PendingDeleteID)
	assert.Contains(t, env.Message, "cannot be undone")

	require.Equal(t, http.StatusOK, s.do(t, http.MethodPost, base+"/decline", nil).Code)
	assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/products/1", nil).Code)

	require.Equal(t, http.StatusOK, s.do(t, http.MethodPost, base+"/delete/1", nil).Code)
	require.Equal(t, http.StatusOK, s.do(t, http.MethodPost, base+"/confirm", nil).Code)
	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodGet, "/products/1", nil).Code)
}

func TestSessionErrors(t *testing.T) {
	s := newTestServer(t)
	base := "/sessions/" + openSession(t, s)

	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodGet, "/sessions/missing", nil).Code)
	assert.Equal(t, http.StatusConflict, s.do(t, http.MethodPost, base+"/save", nil).Code)
	assert.Equal(t, http.StatusConflict, s.do(t, http.MethodPost, base+"/confirm", nil).Code)
	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodPost, base+"/edit/42", nil).Code)
	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodPost, base+"/delete/42", nil).Code)

	require.Equal(t, http.StatusOK, s.do(t, http.MethodPost, base+"/create", nil).Code)
	w := s.do(t, http.MethodPatch, base+"/draft", map[string]string{"unit_of_measure": "lbs"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	require.Equal(t, http.StatusOK, s.do(t, http.MethodDelete, base, nil).Code)
	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodGet, base, nil).Code)
}
