package delivery

import (
	"net/http"

	"github.com/ironman07017-lang/vibeosys-inventory/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// CategoryHandler serves the fixed choice lists a product form offers.
type CategoryHandler struct {
	log *logrus.Logger
}

func NewCategoryHandler(logger *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{log: logger}
}

func (h *CategoryHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/categories", h.ListCategories)
	router.GET("/units", h.ListUnits)
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	h.log.Debug("Listing product categories")
	SuccessResponse(c, http.StatusOK, "Categories retrieved successfully", domain.Categories())
}

func (h *CategoryHandler) ListUnits(c *gin.Context) {
	h.log.Debug("Listing units of measure")
	SuccessResponse(c, http.StatusOK, "Units of measure retrieved successfully", domain.UnitsOfMeasure())
}
