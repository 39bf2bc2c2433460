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

// CompositionStore is the storage contract the composition routes depend on.
type CompositionStore interface {
	Create(ctx context.Context, composition *model.Composition) error
	List(ctx context.Context) ([]model.Composition, error)
	GetByIDs(ctx context.Context, gatewayID, productID uint) (*model.Composition, error)
	ListProductIDsByGateway(ctx context.Context, gatewayID uint) ([]uint, error)
	ListGatewayIDsByProduct(ctx context.Context, productID uint) ([]uint, error)
	Update(ctx context.Context, gatewayID, productID, newGatewayID, newProductID uint) error
	Delete(ctx context.Context, gatewayID, productID uint) error
}

type CompositionHandler struct {
	store CompositionStore
}

func NewCompositionHandler(store CompositionStore) *CompositionHandler {
	return &CompositionHandler{store: store}
}

func (h *CompositionHandler) RegisterRoutes(router *gin.RouterGroup) {
	compositions := router.Group("/compositions")
	{
		compositions.POST("", h.Create)
		compositions.GET("", h.List)
		compositions.GET("/gateway/:gateway_id", h.ListByGateway)
		compositions.GET("/produit/:product_id", h.ListByProduct)
		compositions.GET("/:gateway_id/:product_id", h.Get)
		compositions.PUT("/:gateway_id/:product_id", h.Update)
		compositions.DELETE("/:gateway_id/:product_id", h.Delete)
	}
}

type compositionRequest struct {
	GatewayID uint `json:"gateway_id"`
	ProductID uint `json:"product_id"`
}

// Create godoc
//
//	@Summary	Add a product to a gateway's composition
//	@Tags		compositions
//	@Accept		json
//	@Produce	json
//	@Param		composition	body		compositionRequest	true	"Key tuple"
//	@Success	201			{object}	model.Composition
//	@Failure	500			{object}	map[string]string
//	@Router		/compositions [post]
func (h *CompositionHandler) Create(c *gin.Context) {
	var req compositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	composition := &model.Composition{
		GatewayID: req.GatewayID,
		ProductID: req.ProductID,
	}
	if err := h.store.Create(c.Request.Context(), composition); err != nil {
		logger.Error("Failed to create composition",
			zap.Uint("gateway_id", req.GatewayID),
			zap.Uint("product_id", req.ProductID),
			zap.Error(err),
		)
		errorResponse(c, http.StatusInternalServerError, "Unable to create composition")
		return
	}

	c.JSON(http.StatusCreated, composition)
}

// List godoc
//
//	@Summary	Get all compositions
//	@Tags		compositions
//	@Produce	json
//	@Success	200	{array}	model.Composition
//	@Router		/compositions [get]
func (h *CompositionHandler) List(c *gin.Context) {
	compositions, err := h.store.List(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list compositions", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "Unable to fetch compositions")
		return
	}

	c.JSON(http.StatusOK, compositions)
}

// ListByGateway godoc
//
//	@Summary	Get the product IDs composing a gateway
//	@Tags		compositions
//	@Produce	json
//	@Param		gateway_id	path	int	true	"Gateway ID"
//	@Success	200			{array}	int
//	@Router		/compositions/gateway/{gateway_id} [get]
func (h *CompositionHandler) ListByGateway(c *gin.Context) {
	gatewayID, ok := parseID(c, "gateway_id")
	if !ok {
		return
	}

	ids, err := h.store.ListProductIDsByGateway(c.Request.Context(), gatewayID)
	if err != nil {
		logger.Error("Failed to list compositions by gateway", zap.Uint("gateway_id", gatewayID), zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "Unable to fetch compositions")
		return
	}

	c.JSON(http.StatusOK, ids)
}

// ListByProduct godoc
//
//	@Summary	Get the gateway IDs containing a product
//	@Tags		compositions
//	@Produce	json
//	@Param		product_id	path	int	true	"Product ID"
//	@Success	200			{array}	int
//	@Router		/compositions/produit/{product_id} [get]
func (h *CompositionHandler) ListByProduct(c *gin.Context) {
	productID, ok := parseID(c, "product_id")
	if !ok {
		return
	}

	ids, err := h.store.ListGatewayIDsByProduct(c.Request.Context(), productID)
	if err != nil {
		logger.Error("Failed to list compositions by product", zap.Uint("product_id", productID), zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "Unable to fetch compositions")
		return
	}

	c.JSON(http.StatusOK, ids)
}

// Get godoc
//
//	@Summary	Get a composition by its key tuple
//	@Tags		compositions
//	@Produce	json
//	@Param		gateway_id	path		int	true	"Gateway ID"
//	@Param		product_id	path		int	true	"Product ID"
//	@Success	200			{object}	model.Composition
//	@Failure	404			{object}	map[string]string
//	@Router		/compositions/{gateway_id}/{product_id} [get]
func (h *CompositionHandler) Get(c *gin.Context) {
	gatewayID, ok := parseID(c, "gateway_id")
	if !ok {
		return
	}
	productID, ok := parseID(c, "product_id")
	if !ok {
		return
	}

	composition, err := h.store.GetByIDs(c.Request.Context(), gatewayID, productID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			errorResponse(c, http.StatusNotFound, "Composition not found")
			return
		}
		logger.Error("Failed to get composition", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "Unable to fetch composition")
		return
	}

	c.JSON(http.StatusOK, composition)
}

// Update godoc
//
//	@Summary	Re-key a composition
//	@Tags		compositions
//	@Accept		json
//	@Produce	json
//	@Param		gateway_id	path		int					true	"Current gateway ID"
//	@Param		product_id	path		int					true	"Current product ID"
//	@Param		composition	body		compositionRequest	true	"New key tuple"
//	@Success	200			{object}	map[string]string
//	@Failure	404			{object}	map[string]string
//	@Router		/compositions/{gateway_id}/{product_id} [put]
func (h *CompositionHandler) Update(c *gin.Context) {
	gatewayID, ok := parseID(c, "gateway_id")
	if !ok {
		return
	}
	productID, ok := parseID(c, "product_id")
	if !ok {
		return
	}

	var req compositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.store.Update(c.Request.Context(), gatewayID, productID, req.GatewayID, req.ProductID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			errorResponse(c, http.StatusNotFound, "Composition not found")
			return
		}
		logger.Error("Failed to update composition", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "Unable to update composition")
		return
	}

	messageResponse(c, "Composition updated successfully")
}

// Delete godoc
//
//	@Summary	Delete a composition
//	@Tags		compositions
//	@Param		gateway_id	path	int	true	"Gateway ID"
//	@Param		product_id	path	int	true	"Product ID"
//	@Success	204
//	@Failure	404	{object}	map[string]string
//	@Router		/compositions/{gateway_id}/{product_id} [delete]
func (h *CompositionHandler) Delete(c *gin.Context) {
	gatewayID, ok := parseID(c, "gateway_id")
	if !ok {
		return
	}
	productID, ok := parseID(c, "product_id")
	if !ok {
		return
	}

	if err := h.store.Delete(c.Request.Context(), gatewayID, productID); err != nil {
		if apperrors.IsNotFound(err) {
			errorResponse(c, http.StatusNotFound, "Composition not found")
			return
		}
		logger.Error("Failed to delete composition", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "Unable to delete composition")
		return
	}

	c.Status(http.StatusNoContent)
}
