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

// GatewayStore is the storage contract the gateway routes depend on.
type GatewayStore interface {
	Create(ctx context.Context, gateway *model.Gateway) error
	List(ctx context.Context) ([]model.Gateway, error)
	GetByID(ctx context.Context, id uint) (*model.Gateway, error)
	Update(ctx context.Context, id uint, gateway *model.Gateway) error
	Delete(ctx context.Context, id uint) error
}

type GatewayHandler struct {
	store GatewayStore
}

func NewGatewayHandler(store GatewayStore) *GatewayHandler {
	return &GatewayHandler{store: store}
}

func (h *GatewayHandler) RegisterRoutes(router *gin.RouterGroup) {
	gateways := router.Group("/gateways")
	{
		gateways.POST("", h.Create)
		gateways.GET("", h.List)
		gateways.GET("/:id", h.Get)
		gateways.PUT("/:id", h.Update)
		gateways.DELETE("/:id", h.Delete)
	}
}

type gatewayRequest struct {
	Name       string              `json:"name"`
	IPAddress  string              `json:"ip_address"`
	MACAddress string              `json:"mac_address"`
	Type       string              `json:"type"`
	Status     model.GatewayStatus `json:"status"`
}

// Create godoc
//
//	@Summary	Create a new gateway
//	@Tags		gateways
//	@Accept		json
//	@Produce	json
//	@Param		gateway	body		gatewayRequest	true	"Gateway fields"
//	@Success	201		{object}	model.Gateway
//	@Failure	500		{object}	map[string]string
//	@Router		/gateways [post]
func (h *GatewayHandler) Create(c *gin.Context) {
	var req gatewayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	gateway := &model.Gateway{
		Name:       req.Name,
		IPAddress:  req.IPAddress,
		MACAddress: req.MACAddress,
		Type:       req.Type,
		Status:     req.Status,
	}
	if err := h.store.Create(c.Request.Context(), gateway); err != nil {
		logger.Error("Failed to create gateway", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "Unable to create gateway")
		return
	}

	c.JSON(http.StatusCreated, gateway)
}

// List godoc
//
//	@Summary	Get all gateways
//	@Tags		gateways
//	@Produce	json
//	@Success	200	{array}	model.Gateway
//	@Router		/gateways [get]
func (h *GatewayHandler) List(c *gin.Context) {
	gateways, err := h.store.List(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list gateways", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "Unable to fetch gateways")
		return
	}

	c.JSON(http.StatusOK, gateways)
}

// Get godoc
//
//	@Summary	Get a gateway by ID
//	@Tags		gateways
//	@Produce	json
//	@Param		id	path		int	true	"Gateway ID"
//	@Success	200	{object}	model.Gateway
//	@Failure	404	{object}	map[string]string
//	@Router		/gateways/{id} [get]
func (h *GatewayHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	gateway, err := h.store.GetByID(c.Request.Context(), id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			errorResponse(c, http.StatusNotFound, "Gateway not found")
			return
		}
		logger.Error("Failed to get gateway", zap.Uint("gateway_id", id), zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "Unable to fetch gateway")
		return
	}

	c.JSON(http.StatusOK, gateway)
}

// Update godoc
//
//	@Summary	Update a gateway
//	@Tags		gateways
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int				true	"Gateway ID"
//	@Param		gateway	body		gatewayRequest	true	"Gateway fields"
//	@Success	200		{object}	map[string]string
//	@Failure	404		{object}	map[string]string
//	@Router		/gateways/{id} [put]
func (h *GatewayHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req gatewayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	gateway := &model.Gateway{
		Name:       req.Name,
		IPAddress:  req.IPAddress,
		MACAddress: req.MACAddress,
		Type:       req.Type,
		Status:     req.Status,
	}
	if err := h.store.Update(c.Request.Context(), id, gateway); err != nil {
		if apperrors.IsNotFound(err) {
			errorResponse(c, http.StatusNotFound, "Gateway not found")
			return
		}
		logger.Error("Failed to update gateway", zap.Uint("gateway_id", id), zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "Unable to update gateway")
		return
	}

	messageResponse(c, "Gateway updated successfully")
}

// Delete godoc
//
//	@Summary	Delete a gateway
//	@Tags		gateways
//	@Param		id	path	int	true	"Gateway ID"
//	@Success	204
//	@Failure	404	{object}	map[string]string
//	@Router		/gateways/{id} [delete]
func (h *GatewayHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		if apperrors.IsNotFound(err) {
			errorResponse(c, http.StatusNotFound, "Gateway not found")
			return
		}
		logger.Error("Failed to delete gateway", zap.Uint("gateway_id", id), zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "Unable to delete gateway")
		return
	}

	c.Status(http.StatusNoContent)
}
