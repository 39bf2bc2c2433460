package handler

import (
	"context"
	"net/http"

	"iot-fleet-inventory/internal/logger"
	"iot-fleet-inventory/internal/model"
	apperrors "iot-fleet-inventory/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProductStore is the storage contract the product routes depend on.
type ProductStore interface {
	Create(ctx context.Context, product *model.Product) error
	List(ctx context.Context) ([]model.Product, error)
	GetByID(ctx context.Context, id uint) (*model.Product, error)
	Update(ctx context.Context, id uint, product *model.Product) error
	Delete(ctx context.Context, id uint) error
}

type ProductHandler struct {
	store ProductStore
}

func NewProductHandler(store ProductStore) *ProductHandler {
	return &ProductHandler{store: store}
}

func (h *ProductHandler) RegisterRoutes(router *gin.RouterGroup) {
	products := router.Group("/products")
	{
		products.POST("", h.Create)
		products.GET("", h.List)
		products.GET("/:id", h.Get)
		products.PUT("/:id", h.Update)
		products.DELETE("/:id", h.Delete)
	}
}

type productRequest struct {
	Name        string              `json:"name"`
	Category    string              `json:"category"`
	Description string              `json:"description"`
	UnitPrice   float64             `json:"unit_price"`
	Quantity    int                 `json:"quantity"`
	Status      model.ProductStatus `json:"status"`
}

// Create godoc
//
//	@Summary	Create a new product
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Param		product	body		productRequest	true	"Product fields"
//	@Success	201		{object}	model.Product
//	@Failure	500		{object}	map[string]string
//	@Router		/products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	product := &model.Product{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		UnitPrice:   req.UnitPrice,
		Quantity:    req.Quantity,
		Status:      req.Status,
	}
	if err := h.store.Create(c.Request.Context(), product); err != nil {
		logger.Error("Failed to create product", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "Unable to create product")
		return
	}

	c.JSON(http.StatusCreated, product)
}

// List godoc
//
//	@Summary	Get all products
//	@Tags		products
//	@Produce	json
//	@Success	200	{array}	model.Product
//	@Router		/products [get]
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.store.List(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list products", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "Unable to fetch products")
		return
	}

	c.JSON(http.StatusOK, products)
}

// Get godoc
//
//	@Summary	Get a product by ID
//	@Tags		products
//	@Produce	json
//	@Param		id	path		int	true	"Product ID"
//	@Success	200	{object}	model.Product
//	@Failure	404	{object}	map[string]string
//	@Router		/products/{id} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	product, err := h.store.GetByID(c.Request.Context(), id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			errorResponse(c, http.StatusNotFound, "Product not found")
			return
		}
		logger.Error("Failed to get product", zap.Uint("idprod", id), zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "Unable to fetch product")
		return
	}

	c.JSON(http.StatusOK, product)
}

// Update godoc
//
//	@Summary	Update a product
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int				true	"Product ID"
//	@Param		product	body		productRequest	true	"Product fields"
//	@Success	200		{object}	map[string]string
//	@Failure	404		{object}	map[string]string
//	@Router		/products/{id} [put]
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	product := &model.Product{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		UnitPrice:   req.UnitPrice,
		Quantity:    req.Quantity,
		Status:      req.Status,
	}
	if err := h.store.Update(c.Request.Context(), id, product); err != nil {
		if apperrors.IsNotFound(err) {
			errorResponse(c, http.StatusNotFound, "Product not found")
			return
		}
		logger.Error("Failed to update product", zap.Uint("idprod", id), zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "Unable to update product")
		return
	}

	messageResponse(c, "Product updated successfully")
}

// Delete godoc
//
//	@Summary	Delete a product
//	@Tags		products
//	@Param		id	path	int	true	"Product ID"
//	@Success	204
//	@Failure	404	{object}	map[string]string
//	@Router		/products/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		if apperrors.IsNotFound(err) {
			errorResponse(c, http.StatusNotFound, "Product not found")
			return
		}
		logger.Error("Failed to delete product", zap.Uint("idprod", id), zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "Unable to delete product")
		return
	}

	c.Status(http.StatusNoContent)
}
