package repository

import (
	"context"
	"time"

	"iot-fleet-inventory/internal/database"
	"iot-fleet-inventory/internal/model"
	apperrors "iot-fleet-inventory/pkg/errors"
)

type AssignementRepository struct {
	db *database.Database
}

func NewAssignementRepository(db *database.Database) *AssignementRepository {
	return &AssignementRepository{db: db}
}

func (r *AssignementRepository) Create(ctx context.Context, assignement *model.Assignement) error {
	now := time.Now()
	assignement.CreatedAt = now
	assignement.UpdatedAt = now

	if err := r.db.DB.WithContext(ctx).Create(assignement).Error; err != nil {
		return translateError(err, "failed to create assignement")
	}
	return nil
}

func (r *AssignementRepository) List(ctx context.Context) ([]model.Assignement, error) {
	assignements := []model.Assignement{}
	if err := r.db.DB.WithContext(ctx).Find(&assignements).Error; err != nil {
		return nil, translateError(err, "failed to list assignements")
	}
	return assignements, nil
}

func (r *AssignementRepository) GetByIDs(ctx context.Context, gatewayID, sensorID uint) (*model.Assignement, error) {
	var assignement model.Assignement
	err := r.db.DB.WithContext(ctx).
		Where("gateway_id = ? AND sensor_id = ?", gatewayID, sensorID).
		First(&assignement).Error
	if err != nil {
		return nil, translateError(err, "failed to get assignement")
	}
	return &assignement, nil
}

// ListSensorIDsByGateway returns the sensors assigned to the gateway.
func (r *AssignementRepository) ListSensorIDsByGateway(ctx context.Context, gatewayID uint) ([]uint, error) {
	ids := []uint{}
	err := r.db.DB.WithContext(ctx).
		Model(&model.Assignement{}).
		Where("gateway_id = ?", gatewayID).
		Pluck("sensor_id", &ids).Error
	if err != nil {
		return nil, translateError(err, "failed to list assignements by gateway")
	}
	return ids, nil
}

// ListGatewayIDsBySensor returns the gateways the sensor is assigned to.
func (r *AssignementRepository) ListGatewayIDsBySensor(ctx context.Context, sensorID uint) ([]uint, error) {
	ids := []uint{}
	err := r.db.DB.WithContext(ctx).
		Model(&model.Assignement{}).
		Where("sensor_id = ?", sensorID).
		Pluck("gateway_id", &ids).Error
	if err != nil {
		return nil, translateError(err, "failed to list assignements by sensor")
	}
	return ids, nil
}

// Update re-keys the assignement tuple. Zero rows affected means the old
// tuple does not exist.
func (r *AssignementRepository) Update(ctx context.Context, gatewayID, sensorID, newGatewayID, newSensorID uint) error {
	result := r.db.DB.WithContext(ctx).
		Model(&model.Assignement{}).
		Where("gateway_id = ? AND sensor_id = ?", gatewayID, sensorID).
		Updates(map[string]interface{}{
			"gateway_id": newGatewayID,
			"sensor_id":  newSensorID,
		})

	if result.Error != nil {
		return translateError(result.Error, "failed to update assignement")
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *AssignementRepository) Delete(ctx context.Context, gatewayID, sensorID uint) error {
	result := r.db.DB.WithContext(ctx).
		Where("gateway_id = ? AND sensor_id = ?", gatewayID, sensorID).
		Delete(&model.Assignement{})

	if result.Error != nil {
		return translateError(result.Error, "failed to delete assignement")
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
