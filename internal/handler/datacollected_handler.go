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

// DataCollectedStore is the storage contract the datacollected routes depend on.
type DataCollectedStore interface {
	Create(ctx context.Context, record *model.DataCollected) error
	List(ctx context.Context) ([]model.DataCollected, error)
	GetByID(ctx context.Context, id uint) (*model.DataCollected, error)
	ListBySensor(ctx context.Context, sensorID uint) ([]model.DataCollected, error)
	ListByGateway(ctx context.Context, gatewayID uint) ([]model.DataCollected, error)
	Update(ctx context.Context, id uint, record *model.DataCollected) error
	Delete(ctx context.Context, id uint) error
}

type DataCollectedHandler struct {
	store DataCollectedStore
}

func NewDataCollectedHandler(store DataCollectedStore) *DataCollectedHandler {
	return &DataCollectedHandler{store: store}
}

func (h *DataCollectedHandler) RegisterRoutes(router *gin.RouterGroup) {
	records := router.Group("/datacollected")
	{
		records.POST("", h.Create)
		records.GET("", h.List)
		records.GET("/sensor/:sensor_id", h.ListBySensor)
		records.GET("/gateway/:gateway_id", h.ListByGateway)
		records.GET("/:id", h.Get)
		records.PUT("/:id", h.Update)
		records.DELETE("/:id", h.Delete)
	}
}

type dataCollectedRequest struct {
	SensorID             uint          `json:"sensor_id"`
	GatewayID            uint          `json:"gateway_id"`
	Measurement          float64       `json:"measurement"`
	MeasurementAccuracy  float64       `json:"measurement_accuracy"`
	Unit                 string        `json:"unit"`
	DataQuality          string        `json:"data_quality"`
	TransmissionProtocol string        `json:"transmission_protocol"`
	Status               string        `json:"status"`
	BatteryLevel         float64       `json:"battery_level"`
	SignalStrength       int           `json:"signal_strength"`
	Latitude             float64       `json:"latitude"`
	Longitude            float64       `json:"longitude"`
	Altitude             float64       `json:"altitude"`
	SensorConfiguration  model.JSONMap `json:"sensor_configuration"`
}

func (req *dataCollectedRequest) toModel() *model.DataCollected {
	return &model.DataCollected{
		SensorID:             req.SensorID,
		GatewayID:            req.GatewayID,
		Measurement:          req.Measurement,
		MeasurementAccuracy:  req.MeasurementAccuracy,
		Unit:                 req.Unit,
		DataQuality:          req.DataQuality,
		TransmissionProtocol: req.TransmissionProtocol,
		Status:               req.Status,
		BatteryLevel:         req.BatteryLevel,
		SignalStrength:       req.SignalStrength,
		Latitude:             req.Latitude,
		Longitude:            req.Longitude,
		Altitude:             req.Altitude,
		SensorConfiguration:  req.SensorConfiguration,
	}
}

// Create godoc
//
//	@Summary	Record an extended measurement
//	@Tags		datacollected
//	@Accept		json
//	@Produce	json
//	@Param		record	body		dataCollectedRequest	true	"Telemetry fields"
//	@Success	201		{object}	model.DataCollected
//	@Failure	500		{object}	map[string]string
//	@Router		/datacollected [post]
func (h *DataCollectedHandler) Create(c *gin.Context) {
	var req dataCollectedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	record := req.toModel()
	if err := h.store.Create(c.Request.Context(), record); err != nil {
		logger.Error("Failed to create data_collected record", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "Unable to create record")
		return
	}

	c.JSON(http.StatusCreated, record)
}

// List godoc
//
//	@Summary	Get all extended measurements
//	@Tags		datacollected
//	@Produce	json
//	@Success	200	{array}	model.DataCollected
//	@Router		/datacollected [get]
func (h *DataCollectedHandler) List(c *gin.Context) {
	records, err := h.store.List(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list data_collected records", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "Unable to fetch records")
		return
	}

	c.JSON(http.StatusOK, records)
}

// ListBySensor godoc
//
//	@Summary	Get extended measurements for a sensor
//	@Tags		datacollected
//	@Produce	json
//	@Param		sensor_id	path	int	true	"Sensor ID"
//	@Success	200			{array}	model.DataCollected
//	@Router		/datacollected/sensor/{sensor_id} [get]
func (h *DataCollectedHandler) ListBySensor(c *gin.Context) {
	sensorID, ok := parseID(c, "sensor_id")
	if !ok {
		return
	}

	records, err := h.store.ListBySensor(c.Request.Context(), sensorID)
	if err != nil {
		logger.Error("Failed to list data_collected by sensor", zap.Uint("sensor_id", sensorID), zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "Unable to fetch records")
		return
	}

	c.JSON(http.StatusOK, records)
}

// ListByGateway godoc
//
//	@Summary	Get extended measurements for a gateway
//	@Tags		datacollected
//	@Produce	json
//	@Param		gateway_id	path	int	true	"Gateway ID"
//	@Success	200			{array}	model.DataCollected
//	@Router		/datacollected/gateway/{gateway_id} [get]
func (h *DataCollectedHandler) ListByGateway(c *gin.Context) {
	gatewayID, ok := parseID(c, "gateway_id")
	if !ok {
		return
	}

	records, err := h.store.ListByGateway(c.Request.Context(), gatewayID)
	if err != nil {
		logger.Error("Failed to list data_collected by gateway", zap.Uint("gateway_id", gatewayID), zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "Unable to fetch records")
		return
	}

	c.JSON(http.StatusOK, records)
}

// Get godoc
//
//	@Summary	Get an extended measurement by ID
//	@Tags		datacollected
//	@Produce	json
//	@Param		id	path		int	true	"Record ID"
//	@Success	200	{object}	model.DataCollected
//	@Failure	404	{object}	map[string]string
//	@Router		/datacollected/{id} [get]
func (h *DataCollectedHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	record, err := h.store.GetByID(c.Request.Context(), id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			errorResponse(c, http.StatusNotFound, "Record not found")
			return
		}
		logger.Error("Failed to get data_collected record", zap.Uint("id", id), zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "Unable to fetch record")
		return
	}

	c.JSON(http.StatusOK, record)
}

// Update godoc
//
//	@Summary	Update an extended measurement
//	@Tags		datacollected
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int						true	"Record ID"
//	@Param		record	body		dataCollectedRequest	true	"Telemetry fields"
//	@Success	200		{object}	map[string]string
//	@Failure	404		{object}	map[string]string
//	@Router		/datacollected/{id} [put]
func (h *DataCollectedHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dataCollectedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.store.Update(c.Request.Context(), id, req.toModel()); err != nil {
		if apperrors.IsNotFound(err) {
			errorResponse(c, http.StatusNotFound, "Record not found")
			return
		}
		logger.Error("Failed to update data_collected record", zap.Uint("id", id), zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "Unable to update record")
		return
	}

	messageResponse(c, "Record updated successfully")
}

// Delete godoc
//
//	@Summary	Delete an extended measurement
//	@Tags		datacollected
//	@Param		id	path	int	true	"Record ID"
//	@Success	204
//	@Failure	404	{object}	map[string]string
//	@Router		/datacollected/{id} [delete]
func (h *DataCollectedHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		if apperrors.IsNotFound(err) {
			errorResponse(c, http.StatusNotFound, "Record not found")
			return
		}
		logger.Error("Failed to delete data_collected record", zap.Uint("id", id), zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "Unable to delete record")
		return
	}

	c.Status(http.StatusNoContent)
}
