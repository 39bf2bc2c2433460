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

// SensorStore is the storage contract the sensor routes depend on.
type SensorStore interface {
	Create(ctx context.Context, sensor *model.Sensor) error
	List(ctx context.Context) ([]model.Sensor, error)
	GetByID(ctx context.Context, id uint) (*model.Sensor, error)
	Update(ctx context.Context, id uint, sensor *model.Sensor) error
	Delete(ctx context.Context, id uint) error
}

type SensorHandler struct {
	store SensorStore
}

func NewSensorHandler(store SensorStore) *SensorHandler {
	return &SensorHandler{store: store}
}

func (h *SensorHandler) RegisterRoutes(router *gin.RouterGroup) {
	sensors := router.Group("/sensors")
	{
		sensors.POST("", h.Create)
		sensors.GET("", h.List)
		sensors.GET("/:id", h.Get)
		sensors.PUT("/:id", h.Update)
		sensors.DELETE("/:id", h.Delete)
	}
}

type sensorRequest struct {
	Name        string             `json:"name"`
	IPAddress   string             `json:"ip_address"`
	Description string             `json:"description"`
	Type        string             `json:"type"`
	Status      model.SensorStatus `json:"status"`
}

// Create godoc
//
//	@Summary	Create a new sensor
//	@Tags		sensors
//	@Accept		json
//	@Produce	json
//	@Param		sensor	body		sensorRequest	true	"Sensor fields"
//	@Success	201		{object}	model.Sensor
//	@Failure	500		{object}	map[string]string
//	@Router		/sensors [post]
func (h *SensorHandler) Create(c *gin.Context) {
	var req sensorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	sensor := &model.Sensor{
		Name:        req.Name,
		IPAddress:   req.IPAddress,
		Description: req.Description,
		Type:        req.Type,
		Status:      req.Status,
	}
	if err := h.store.Create(c.Request.Context(), sensor); err != nil {
		logger.Error("Failed to create sensor", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "Unable to create sensor")
		return
	}

	c.JSON(http.StatusCreated, sensor)
}

// List godoc
//
//	@Summary	Get all sensors
//	@Tags		sensors
//	@Produce	json
//	@Success	200	{array}	model.Sensor
//	@Router		/sensors [get]
func (h *SensorHandler) List(c *gin.Context) {
	sensors, err := h.store.List(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list sensors", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "Unable to fetch sensors")
		return
	}

	c.JSON(http.StatusOK, sensors)
}

// Get godoc
//
//	@Summary	Get a sensor by ID
//	@Tags		sensors
//	@Produce	json
//	@Param		id	path		int	true	"Sensor ID"
//	@Success	200	{object}	model.Sensor
//	@Failure	404	{object}	map[string]string
//	@Router		/sensors/{id} [get]
func (h *SensorHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	sensor, err := h.store.GetByID(c.Request.Context(), id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			errorResponse(c, http.StatusNotFound, "Sensor not found")
			return
		}
		logger.Error("Failed to get sensor", zap.Uint("sensor_id", id), zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "Unable to fetch sensor")
		return
	}

	c.JSON(http.StatusOK, sensor)
}

// Update godoc
//
//	@Summary	Update a sensor
//	@Tags		sensors
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int				true	"Sensor ID"
//	@Param		sensor	body		sensorRequest	true	"Sensor fields"
//	@Success	200		{object}	map[string]string
//	@Failure	404		{object}	map[string]string
//	@Router		/sensors/{id} [put]
func (h *SensorHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req sensorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	sensor := &model.Sensor{
		Name:        req.Name,
		IPAddress:   req.IPAddress,
		Description: req.Description,
		Type:        req.Type,
		Status:      req.Status,
	}
	if err := h.store.Update(c.Request.Context(), id, sensor); err != nil {
		if apperrors.IsNotFound(err) {
			errorResponse(c, http.StatusNotFound, "Sensor not found")
			return
		}
		logger.Error("Failed to update sensor", zap.Uint("sensor_id", id), zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "Unable to update sensor")
		return
	}

	messageResponse(c, "Sensor updated successfully")
}

// Delete godoc
//
//	@Summary	Delete a sensor
//	@Tags		sensors
//	@Param		id	path	int	true	"Sensor ID"
//	@Success	204
//	@Failure	404	{object}	map[string]string
//	@Router		/sensors/{id} [delete]
func (h *SensorHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		if apperrors.IsNotFound(err) {
			errorResponse(c, http.StatusNotFound, "Sensor not found")
			return
		}
		logger.Error("Failed to delete sensor", zap.Uint("sensor_id", id), zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "Unable to delete sensor")
		return
	}

	c.Status(http.StatusNoContent)
}
