package delivery

import (
	"net/http"
	"strconv"

	"github.com/ironman07017-lang/vibeosys-inventory/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ProductHandler struct {
	useCase   usecase.ProductUseCase
	presenter *Presenter
	log       *logrus.Logger
}

func NewProductHandler(uc usecase.ProductUseCase, presenter *Presenter, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{
		useCase:   uc,
		presenter: presenter,
		log:       logger,
	}
}

func (h *ProductHandler) RegisterRoutes(router gin.IRouter) {
	products := router.Group("/products")
	{
		products.POST("", h.CreateProduct)
		products.GET("", h.ListProducts)
		products.GET("/:id", h.GetProductByID)
		products.PUT("/:id", h.UpdateProduct)
		products.DELETE("/:id", h.DeleteProduct)
	}
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var input ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.log.Errorf("Failed to bind JSON for create product: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	draft, err := input.toDraft("", h.log)
	if err != nil {
		h.log.Warnf("Invalid product input '%s': %v", input.Name, err)
		FailWithError(c, "Failed to create product", err)
		return
	}

	created, err := h.useCase.SubmitDraft(draft)
	if err != nil {
		h.log.Errorf("Failed to create product '%s': %v", input.Name, err)
		FailWithError(c, "Failed to create product", err)
		return
	}

	h.log.Infof("Product created successfully: ID %s, Name %s", created.ID, created.Name)
	SuccessResponse(c, http.StatusCreated, "Product created successfully", h.presenter.Product(*created))
}

func (h *ProductHandler) GetProductByID(c *gin.Context) {
	id := c.Param("id")

	product, err := h.useCase.GetProductByID(id)
	if err != nil {
		h.log.Warnf("Failed to get product by ID %s: %v", id, err)
		FailWithError(c, "Failed to retrieve product", err)
		return
	}

	SuccessResponse(c, http.StatusOK, "Product retrieved successfully", h.presenter.Product(*product))
}

// UpdateProduct replaces every field of the product with the submitted draft.
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id := c.Param("id")

	var input ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.log.Errorf("Failed to bind JSON for update product ID %s: %v", id, err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	draft, err := input.toDraft(id, h.log)
	if err != nil {
		h.log.Warnf("Invalid product input for ID %s: %v", id, err)
		FailWithError(c, "Failed to update product", err)
		return
	}

	updated, err := h.useCase.SubmitDraft(draft)
	if err != nil {
		h.log.Errorf("Failed to update product ID %s: %v", id, err)
		FailWithError(c, "Failed to update product", err)
		return
	}

	h.log.Infof("Product updated successfully: ID %s", updated.ID)
	SuccessResponse(c, http.StatusOK, "Product updated successfully", h.presenter.Product(*updated))
}

// DeleteProduct only deletes when the request carries confirm=true.
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id := c.Param("id")

	confirmed, _ := strconv.ParseBool(c.Query("confirm"))
	if !confirmed {
		h.log.Infof("Delete of product ID %s not confirmed", id)
		ErrorResponse(c, http.StatusPreconditionRequired,
			"Deleting a product cannot be undone; repeat the request with confirm=true")
		return
	}

	if err := h.useCase.DeleteProduct(id); err != nil {
		h.log.Warnf("Failed to delete product ID %s: %v", id, err)
		FailWithError(c, "Failed to delete product", err)
		return
	}

	h.log.Infof("Product deleted successfully: ID %s", id)
	SuccessResponse(c, http.StatusOK, "Product deleted successfully", nil)
}

// ListProducts returns all products, or those matching the q search term.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	query := c.Query("q")

	products, err := h.useCase.ListProducts(query)
	if err != nil {
		h.log.Errorf("Failed to list products: %v", err)
		FailWithError(c, "Failed to retrieve products", err)
		return
	}

	if len(products) == 0 {
		if query != "" {
			SuccessResponse(c, http.StatusOK, "No products match your search", []ProductView{})
			return
		}
		SuccessResponse(c, http.StatusOK, "No products yet", []ProductView{})
		return
	}
	SuccessResponse(c, http.StatusOK, "Products retrieved successfully", h.presenter.Products(products))
}
