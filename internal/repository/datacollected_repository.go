package repository

import (
	"context"
	"time"

	"iot-fleet-inventory/internal/database"
	"iot-fleet-inventory/internal/model"
	apperrors "iot-fleet-inventory/pkg/errors"
)

type DataCollectedRepository struct {
	db *database.Database
}

func NewDataCollectedRepository(db *database.Database) *DataCollectedRepository {
	return &DataCollectedRepository{db: db}
}

func (r *DataCollectedRepository) Create(ctx context.Context, record *model.DataCollected) error {
	now := time.Now()
	record.CreatedAt = now
	record.UpdatedAt = now

	if err := r.db.DB.WithContext(ctx).Create(record).Error; err != nil {
		return translateError(err, "failed to create data_collected record")
	}
	return nil
}

func (r *DataCollectedRepository) List(ctx context.Context) ([]model.DataCollected, error) {
	records := []model.DataCollected{}
	if err := r.db.DB.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, translateError(err, "failed to list data_collected records")
	}
	return records, nil
}

func (r *DataCollectedRepository) GetByID(ctx context.Context, id uint) (*model.DataCollected, error) {
	var record model.DataCollected
	err := r.db.DB.WithContext(ctx).
		Where("id = ?", id).
		First(&record).Error
	if err != nil {
		return nil, translateError(err, "failed to get data_collected record")
	}
	return &record, nil
}

func (r *DataCollectedRepository) ListBySensor(ctx context.Context, sensorID uint) ([]model.DataCollected, error) {
	records := []model.DataCollected{}
	err := r.db.DB.WithContext(ctx).
		Where("sensor_id = ?", sensorID).
		Find(&records).Error
	if err != nil {
		return nil, translateError(err, "failed to list data_collected by sensor")
	}
	return records, nil
}

func (r *DataCollectedRepository) ListByGateway(ctx context.Context, gatewayID uint) ([]model.DataCollected, error) {
	records := []model.DataCollected{}
	err := r.db.DB.WithContext(ctx).
		Where("gateway_id = ?", gatewayID).
		Find(&records).Error
	if err != nil {
		return nil, translateError(err, "failed to list data_collected by gateway")
	}
	return records, nil
}

func (r *DataCollectedRepository) Update(ctx context.Context, id uint, record *model.DataCollected) error {
	result := r.db.DB.WithContext(ctx).
		Model(&model.DataCollected{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"sensor_id":             record.SensorID,
			"gateway_id":            record.GatewayID,
			"measurement":           record.Measurement,
			"measurement_accuracy":  record.MeasurementAccuracy,
			"unit":                  record.Unit,
			"data_quality":          record.DataQuality,
			"transmission_protocol": record.TransmissionProtocol,
			"status":                record.Status,
			"battery_level":         record.BatteryLevel,
			"signal_strength":       record.SignalStrength,
			"latitude":              record.Latitude,
			"longitude":             record.Longitude,
			"altitude":              record.Altitude,
			"sensor_configuration":  record.SensorConfiguration,
		})

	if result.Error != nil {
		return translateError(result.Error, "failed to update data_collected record")
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *DataCollectedRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.DB.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.DataCollected{})

	if result.Error != nil {
		return translateError(result.Error, "failed to delete data_collected record")
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
