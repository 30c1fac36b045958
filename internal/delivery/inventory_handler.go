package delivery

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/ironman07017-lang/vibeosys-inventory/internal/export"
	"github.com/ironman07017-lang/vibeosys-inventory/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// InventoryHandler serves whole-inventory views: the summary footer and the
// spreadsheet export.
type InventoryHandler struct {
	useCase   usecase.ProductUseCase
	presenter *Presenter
	log       *logrus.Logger
	now       func() time.Time
}

func NewInventoryHandler(uc usecase.ProductUseCase, presenter *Presenter, logger *logrus.Logger) *InventoryHandler {
	return &InventoryHandler{
		useCase:   uc,
		presenter: presenter,
		log:       logger,
		now:       time.Now,
	}
}

func (h *InventoryHandler) RegisterRoutes(router gin.IRouter) {
	inventory := router.Group("/inventory")
	{
		inventory.GET("/summary", h.Summary)
		inventory.GET("/export", h.Export)
	}
}

func (h *InventoryHandler) Summary(c *gin.Context) {
	summary, err := h.useCase.Summary()
	if err != nil {
		h.log.Errorf("Failed to summarise inventory: %v", err)
		FailWithError(c, "Failed to summarise inventory", err)
		return
	}
	SuccessResponse(c, http.StatusOK, "Inventory summary retrieved successfully", h.presenter.Summary(*summary))
}

// Export streams the products matching q as an xlsx workbook.
func (h *InventoryHandler) Export(c *gin.Context) {
	products, err := h.useCase.ListProducts(c.Query("q"))
	if err != nil {
		h.log.Errorf("Failed to list products for export: %v", err)
		FailWithError(c, "Failed to export products", err)
		return
	}

	buf := &bytes.Buffer{}
	if err := export.WriteProducts(buf, products); err != nil {
		h.log.Errorf("Failed to build products workbook: %v", err)
		ErrorResponse(c, http.StatusInternalServerError, "Failed to export products: "+err.Error())
		return
	}

	fileName := fmt.Sprintf("products_%s.xlsx", h.now().Format("20060102_150405"))
	h.log.Infof("Exported %d products to %s", len(products), fileName)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
