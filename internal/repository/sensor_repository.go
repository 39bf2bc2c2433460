package repository

import (
	"context"
	"fmt"
	"time"

	"iot-fleet-inventory/internal/database"
	"iot-fleet-inventory/internal/model"
	apperrors "iot-fleet-inventory/pkg/errors"
)

type SensorRepository struct {
	db *database.Database
}

func NewSensorRepository(db *database.Database) *SensorRepository {
	return &SensorRepository{db: db}
}

func (r *SensorRepository) Create(ctx context.Context, sensor *model.Sensor) error {
	if sensor.Status == "" {
		sensor.Status = model.SensorStatusInactive
	}
	if !sensor.Status.Valid() {
		return fmt.Errorf("%w: %q", apperrors.ErrInvalidStatus, sensor.Status)
	}

	now := time.Now()
	sensor.CreatedAt = now
	sensor.UpdatedAt = now

	if err := r.db.DB.WithContext(ctx).Create(sensor).Error; err != nil {
		return translateError(err, "failed to create sensor")
	}
	return nil
}

func (r *SensorRepository) List(ctx context.Context) ([]model.Sensor, error) {
	sensors := []model.Sensor{}
	if err := r.db.DB.WithContext(ctx).Find(&sensors).Error; err != nil {
		return nil, translateError(err, "failed to list sensors")
	}
	return sensors, nil
}

func (r *SensorRepository) GetByID(ctx context.Context, id uint) (*model.Sensor, error) {
	var sensor model.Sensor
	err := r.db.DB.WithContext(ctx).
		Where("sensor_id = ?", id).
		First(&sensor).Error
	if err != nil {
		return nil, translateError(err, "failed to get sensor")
	}
	return &sensor, nil
}

// Update replaces all non-key fields of the sensor in a single conditional
// UPDATE. A zero row count is the not-found signal; no prior existence probe
// is issued.
func (r *SensorRepository) Update(ctx context.Context, id uint, sensor *model.Sensor) error {
	if !sensor.Status.Valid() {
		return fmt.Errorf("%w: %q", apperrors.ErrInvalidStatus, sensor.Status)
	}

	result := r.db.DB.WithContext(ctx).
		Model(&model.Sensor{}).
		Where("sensor_id = ?", id).
		Updates(map[string]interface{}{
			"name":        sensor.Name,
			"ip_address":  sensor.IPAddress,
			"description": sensor.Description,
			"type":        sensor.Type,
			"status":      sensor.Status,
		})

	if result.Error != nil {
		return translateError(result.Error, "failed to update sensor")
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *SensorRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.DB.WithContext(ctx).
		Where("sensor_id = ?", id).
		Delete(&model.Sensor{})

	if result.Error != nil {
		return translateError(result.Error, "failed to delete sensor")
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
