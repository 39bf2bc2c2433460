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

// AssignementStore is the storage contract the assignement routes depend on.
type AssignementStore interface {
	Create(ctx context.Context, assignement *model.Assignement) error
	List(ctx context.Context) ([]model.Assignement, error)
	GetByIDs(ctx context.Context, gatewayID, sensorID uint) (*model.Assignement, error)
	ListSensorIDsByGateway(ctx context.Context, gatewayID uint) ([]uint, error)
	ListGatewayIDsBySensor(ctx context.Context, sensorID uint) ([]uint, error)
	Update(ctx context.Context, gatewayID, sensorID, newGatewayID, newSensorID uint) error
	Delete(ctx context.Context, gatewayID, sensorID uint) error
}

type AssignementHandler struct {
	store AssignementStore
}

func NewAssignementHandler(store AssignementStore) *AssignementHandler {
	return &AssignementHandler{store: store}
}

func (h *AssignementHandler) RegisterRoutes(router *gin.RouterGroup) {
	assignements := router.Group("/assignements")
	{
		assignements.POST("", h.Create)
		assignements.GET("", h.List)
		assignements.GET("/gateway/:gateway_id", h.ListByGateway)
		assignements.GET("/sensor/:sensor_id", h.ListBySensor)
		assignements.GET("/:gateway_id/:sensor_id", h.Get)
		assignements.PUT("/:gateway_id/:sensor_id", h.Update)
		assignements.DELETE("/:gateway_id/:sensor_id", h.Delete)
	}
}

type assignementRequest struct {
	GatewayID uint `json:"gateway_id"`
	SensorID  uint `json:"sensor_id"`
}

// Create godoc
//
//	@Summary	Assign a sensor to a gateway
//	@Tags		assignements
//	@Accept		json
//	@Produce	json
//	@Param		assignement	body		assignementRequest	true	"Key tuple"
//	@Success	201			{object}	model.Assignement
//	@Failure	500			{object}	map[string]string
//	@Router		/assignements [post]
func (h *AssignementHandler) Create(c *gin.Context) {
	var req assignementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	assignement := &model.Assignement{
		GatewayID: req.GatewayID,
		SensorID:  req.SensorID,
	}
	if err := h.store.Create(c.Request.Context(), assignement); err != nil {
		logger.Error("Failed to create assignement",
			zap.Uint("gateway_id", req.GatewayID),
			zap.Uint("sensor_id", req.SensorID),
			zap.Error(err),
		)
		errorResponse(c, http.StatusInternalServerError, "Unable to create assignement")
		return
	}

	c.JSON(http.StatusCreated, assignement)
}

// List godoc
//
//	@Summary	Get all assignements
//	@Tags		assignements
//	@Produce	json
//	@Success	200	{array}	model.Assignement
//	@Router		/assignements [get]
func (h *AssignementHandler) List(c *gin.Context) {
	assignements, err := h.store.List(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list assignements", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "Unable to fetch assignements")
		return
	}

	c.JSON(http.StatusOK, assignements)
}

// ListByGateway godoc
//
//	@Summary	Get the sensor IDs assigned to a gateway
//	@Tags		assignements
//	@Produce	json
//	@Param		gateway_id	path	int	true	"Gateway ID"
//	@Success	200			{array}	int
//	@Router		/assignements/gateway/{gateway_id} [get]
func (h *AssignementHandler) ListByGateway(c *gin.Context) {
	gatewayID, ok := parseID(c, "gateway_id")
	if !ok {
		return
	}

	ids, err := h.store.ListSensorIDsByGateway(c.Request.Context(), gatewayID)
	if err != nil {
		logger.Error("Failed to list assignements by gateway", zap.Uint("gateway_id", gatewayID), zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "Unable to fetch assignements")
		return
	}

	c.JSON(http.StatusOK, ids)
}

// ListBySensor godoc
//
//	@Summary	Get the gateway IDs a sensor is assigned to
//	@Tags		assignements
//	@Produce	json
//	@Param		sensor_id	path	int	true	"Sensor ID"
//	@Success	200			{array}	int
//	@Router		/assignements/sensor/{sensor_id} [get]
func (h *AssignementHandler) ListBySensor(c *gin.Context) {
	sensorID, ok := parseID(c, "sensor_id")
	if !ok {
		return
	}

	ids, err := h.store.ListGatewayIDsBySensor(c.Request.Context(), sensorID)
	if err != nil {
		logger.Error("Failed to list assignements by sensor", zap.Uint("sensor_id", sensorID), zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "Unable to fetch assignements")
		return
	}

	c.JSON(http.StatusOK, ids)
}

// Get godoc
//
//	@Summary	Get an assignement by its key tuple
//	@Tags		assignements
//	@Produce	json
//	@Param		gateway_id	path		int	true	"Gateway ID"
//	@Param		sensor_id	path		int	true	"Sensor ID"
//	@Success	200			{object}	model.Assignement
//	@Failure	404			{object}	map[string]string
//	@Router		/assignements/{gateway_id}/{sensor_id} [get]
func (h *AssignementHandler) Get(c *gin.Context) {
	gatewayID, ok := parseID(c, "gateway_id")
	if !ok {
		return
	}
	sensorID, ok := parseID(c, "sensor_id")
	if !ok {
		return
	}

	assignement, err := h.store.GetByIDs(c.Request.Context(), gatewayID, sensorID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			errorResponse(c, http.StatusNotFound, "Assignement not found")
			return
		}
		logger.Error("Failed to get assignement", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "Unable to fetch assignement")
		return
	}

	c.JSON(http.StatusOK, assignement)
}

// Update godoc
//
//	@Summary	Re-key an assignement
//	@Tags		assignements
//	@Accept		json
//	@Produce	json
//	@Param		gateway_id	path		int					true	"Current gateway ID"
//	@Param		sensor_id	path		int					true	"Current sensor ID"
//	@Param		assignement	body		assignementRequest	true	"New key tuple"
//	@Success	200			{object}	map[string]string
//	@Failure	404			{object}	map[string]string
//	@Router		/assignements/{gateway_id}/{sensor_id} [put]
func (h *AssignementHandler) Update(c *gin.Context) {
	gatewayID, ok := parseID(c, "gateway_id")
	if !ok {
		return
	}
	sensorID, ok := parseID(c, "sensor_id")
	if !ok {
		return
	}

	var req assignementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.store.Update(c.Request.Context(), gatewayID, sensorID, req.GatewayID, req.SensorID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			errorResponse(c, http.StatusNotFound, "Assignement not found")
			return
		}
		logger.Error("Failed to update assignement", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "Unable to update assignement")
		return
	}

	messageResponse(c, "Assignement updated successfully")
}

// Delete godoc
//
//	@Summary	Delete an assignement
//	@Tags		assignements
//	@Param		gateway_id	path	int	true	"Gateway ID"
//	@Param		sensor_id	path	int	true	"Sensor ID"
//	@Success	204
//	@Failure	404	{object}	map[string]string
//	@Router		/assignements/{gateway_id}/{sensor_id} [delete]
func (h *AssignementHandler) Delete(c *gin.Context) {
	gatewayID, ok := parseID(c, "gateway_id")
	if !ok {
		return
	}
	sensorID, ok := parseID(c, "sensor_id")
	if !ok {
		return
	}

	if err := h.store.Delete(c.Request.Context(), gatewayID, sensorID); err != nil {
		if apperrors.IsNotFound(err) {
			errorResponse(c, http.StatusNotFound, "Assignement not found")
			return
		}
		logger.Error("Failed to delete assignement", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "Unable to delete assignement")
		return
	}

	c.Status(http.StatusNoContent)
}
