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

// CollecteStore is the storage contract the collecte routes depend on.
type CollecteStore interface {
	Create(ctx context.Context, collecte *model.Collecte) error
	List(ctx context.Context) ([]model.Collecte, error)
	GetByIDs(ctx context.Context, sensorID, gatewayID uint) (*model.Collecte, error)
	ListBySensor(ctx context.Context, sensorID uint) ([]model.Collecte, error)
	ListByGateway(ctx context.Context, gatewayID uint) ([]model.Collecte, error)
	Update(ctx context.Context, sensorID, gatewayID uint, collecte *model.Collecte) error
	Delete(ctx context.Context, sensorID, gatewayID uint) error
}

type CollecteHandler struct {
	store CollecteStore
}

func NewCollecteHandler(store CollecteStore) *CollecteHandler {
	return &CollecteHandler{store: store}
}

func (h *CollecteHandler) RegisterRoutes(router *gin.RouterGroup) {
	collectes := router.Group("/collectes")
	{
		collectes.POST("", h.Create)
		collectes.GET("", h.List)
		collectes.GET("/sensor/:sensor_id", h.ListBySensor)
		collectes.GET("/gateway/:gateway_id", h.ListByGateway)
		collectes.GET("/:sensor_id/:gateway_id", h.Get)
		collectes.PUT("/:sensor_id/:gateway_id", h.Update)
		collectes.DELETE("/:sensor_id/:gateway_id", h.Delete)
	}
}

type collecteRequest struct {
	SensorID    uint    `json:"sensor_id"`
	GatewayID   uint    `json:"gateway_id"`
	Measurement float64 `json:"measurement"`
	ErrorRate   float64 `json:"error_rate"`
	Unit        string  `json:"unit"`
}

// Create godoc
//
//	@Summary	Record a measurement
//	@Tags		collectes
//	@Accept		json
//	@Produce	json
//	@Param		collecte	body		collecteRequest	true	"Measurement fields"
//	@Success	201			{object}	model.Collecte
//	@Failure	500			{object}	map[string]string
//	@Router		/collectes [post]
func (h *CollecteHandler) Create(c *gin.Context) {
	var req collecteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	collecte := &model.Collecte{
		SensorID:    req.SensorID,
		GatewayID:   req.GatewayID,
		Measurement: req.Measurement,
		ErrorRate:   req.ErrorRate,
		Unit:        req.Unit,
	}
	if err := h.store.Create(c.Request.Context(), collecte); err != nil {
		logger.Error("Failed to create collecte",
			zap.Uint("sensor_id", req.SensorID),
			zap.Uint("gateway_id", req.GatewayID),
			zap.Error(err),
		)
		errorResponse(c, http.StatusInternalServerError, "Unable to create collecte")
		return
	}

	c.JSON(http.StatusCreated, collecte)
}

// List godoc
//
//	@Summary	Get all measurements
//	@Tags		collectes
//	@Produce	json
//	@Success	200	{array}	model.Collecte
//	@Router		/collectes [get]
func (h *CollecteHandler) List(c *gin.Context) {
	collectes, err := h.store.List(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list collectes", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "Unable to fetch collectes")
		return
	}

	c.JSON(http.StatusOK, collectes)
}

// ListBySensor godoc
//
//	@Summary	Get all measurements for a sensor
//	@Tags		collectes
//	@Produce	json
//	@Param		sensor_id	path	int	true	"Sensor ID"
//	@Success	200			{array}	model.Collecte
//	@Router		/collectes/sensor/{sensor_id} [get]
func (h *CollecteHandler) ListBySensor(c *gin.Context) {
	sensorID, ok := parseID(c, "sensor_id")
	if !ok {
		return
	}

	collectes, err := h.store.ListBySensor(c.Request.Context(), sensorID)
	if err != nil {
		logger.Error("Failed to list collectes by sensor", zap.Uint("sensor_id", sensorID), zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "Unable to fetch collectes")
		return
	}

	c.JSON(http.StatusOK, collectes)
}

// ListByGateway godoc
//
//	@Summary	Get all measurements for a gateway
//	@Tags		collectes
//	@Produce	json
//	@Param		gateway_id	path	int	true	"Gateway ID"
//	@Success	200			{array}	model.Collecte
//	@Router		/collectes/gateway/{gateway_id} [get]
func (h *CollecteHandler) ListByGateway(c *gin.Context) {
	gatewayID, ok := parseID(c, "gateway_id")
	if !ok {
		return
	}

	collectes, err := h.store.ListByGateway(c.Request.Context(), gatewayID)
	if err != nil {
		logger.Error("Failed to list collectes by gateway", zap.Uint("gateway_id", gatewayID), zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "Unable to fetch collectes")
		return
	}

	c.JSON(http.StatusOK, collectes)
}

// Get godoc
//
//	@Summary		Get a measurement by (sensor, gateway)
//	@Description	The pair is only a prefix of the full key; when several timestamped rows share it, the first match is returned.
//	@Tags			collectes
//	@Produce		json
//	@Param			sensor_id	path		int	true	"Sensor ID"
//	@Param			gateway_id	path		int	true	"Gateway ID"
//	@Success		200			{object}	model.Collecte
//	@Failure		404			{object}	map[string]string
//	@Router			/collectes/{sensor_id}/{gateway_id} [get]
func (h *CollecteHandler) Get(c *gin.Context) {
	sensorID, ok := parseID(c, "sensor_id")
	if !ok {
		return
	}
	gatewayID, ok := parseID(c, "gateway_id")
	if !ok {
		return
	}

	collecte, err := h.store.GetByIDs(c.Request.Context(), sensorID, gatewayID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			errorResponse(c, http.StatusNotFound, "Collecte not found")
			return
		}
		logger.Error("Failed to get collecte", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "Unable to fetch collecte")
		return
	}

	c.JSON(http.StatusOK, collecte)
}

// Update godoc
//
//	@Summary	Update the measurements for a (sensor, gateway) pair
//	@Tags		collectes
//	@Accept		json
//	@Produce	json
//	@Param		sensor_id	path		int				true	"Sensor ID"
//	@Param		gateway_id	path		int				true	"Gateway ID"
//	@Param		collecte	body		collecteRequest	true	"Measurement fields"
//	@Success	200			{object}	map[string]string
//	@Failure	404			{object}	map[string]string
//	@Router		/collectes/{sensor_id}/{gateway_id} [put]
func (h *CollecteHandler) Update(c *gin.Context) {
	sensorID, ok := parseID(c, "sensor_id")
	if !ok {
		return
	}
	gatewayID, ok := parseID(c, "gateway_id")
	if !ok {
		return
	}

	var req collecteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	collecte := &model.Collecte{
		Measurement: req.Measurement,
		ErrorRate:   req.ErrorRate,
		Unit:        req.Unit,
	}
	if err := h.store.Update(c.Request.Context(), sensorID, gatewayID, collecte); err != nil {
		if apperrors.IsNotFound(err) {
			errorResponse(c, http.StatusNotFound, "Collecte not found")
			return
		}
		logger.Error("Failed to update collecte", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "Unable to update collecte")
		return
	}

	messageResponse(c, "Collecte updated successfully")
}

// Delete godoc
//
//	@Summary	Delete all measurements for a (sensor, gateway) pair
//	@Tags		collectes
//	@Param		sensor_id	path	int	true	"Sensor ID"
//	@Param		gateway_id	path	int	true	"Gateway ID"
//	@Success	204
//	@Failure	404	{object}	map[string]string
//	@Router		/collectes/{sensor_id}/{gateway_id} [delete]
func (h *CollecteHandler) Delete(c *gin.Context) {
	sensorID, ok := parseID(c, "sensor_id")
	if !ok {
		return
	}
	gatewayID, ok := parseID(c, "gateway_id")
	if !ok {
		return
	}

	if err := h.store.Delete(c.Request.Context(), sensorID, gatewayID); err != nil {
		if apperrors.IsNotFound(err) {
			errorResponse(c, http.StatusNotFound, "Collecte not found")
			return
		}
		logger.Error("Failed to delete collecte", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "Unable to delete collecte")
		return
	}

	c.Status(http.StatusNoContent)
}
