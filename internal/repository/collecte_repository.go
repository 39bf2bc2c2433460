package repository

import (
	"context"
	"time"

	"iot-fleet-inventory/internal/database"
	"iot-fleet-inventory/internal/model"
	apperrors "iot-fleet-inventory/pkg/errors"
)

type CollecteRepository struct {
	db *database.Database
}

func NewCollecteRepository(db *database.Database) *CollecteRepository {
	return &CollecteRepository{db: db}
}

// Create inserts a new measurement row. The creation instant completes the
// primary key, so the same (gateway, sensor) pair may be inserted repeatedly.
func (r *CollecteRepository) Create(ctx context.Context, collecte *model.Collecte) error {
	now := time.Now()
	if collecte.CreatedAt.IsZero() {
		collecte.CreatedAt = now
	}
	collecte.UpdatedAt = now

	if err := r.db.DB.WithContext(ctx).Create(collecte).Error; err != nil {
		return translateError(err, "failed to create collecte")
	}
	return nil
}

func (r *CollecteRepository) List(ctx context.Context) ([]model.Collecte, error) {
	collectes := []model.Collecte{}
	if err := r.db.DB.WithContext(ctx).Find(&collectes).Error; err != nil {
		return nil, translateError(err, "failed to list collectes")
	}
	return collectes, nil
}

// GetByIDs looks up by the (sensor, gateway) prefix of the three-column key.
// When several rows share the pair the result is the first match in storage
// order — which one is implementation-defined. Callers needing a specific row
// must qualify by created_at.
func (r *CollecteRepository) GetByIDs(ctx context.Context, sensorID, gatewayID uint) (*model.Collecte, error) {
	var collecte model.Collecte
	err := r.db.DB.WithContext(ctx).
		Where("sensor_id = ? AND gateway_id = ?", sensorID, gatewayID).
		First(&collecte).Error
	if err != nil {
		return nil, translateError(err, "failed to get collecte")
	}
	return &collecte, nil
}

func (r *CollecteRepository) ListBySensor(ctx context.Context, sensorID uint) ([]model.Collecte, error) {
	collectes := []model.Collecte{}
	err := r.db.DB.WithContext(ctx).
		Where("sensor_id = ?", sensorID).
		Find(&collectes).Error
	if err != nil {
		return nil, translateError(err, "failed to list collectes by sensor")
	}
	return collectes, nil
}

func (r *CollecteRepository) ListByGateway(ctx context.Context, gatewayID uint) ([]model.Collecte, error) {
	collectes := []model.Collecte{}
	err := r.db.DB.WithContext(ctx).
		Where("gateway_id = ?", gatewayID).
		Find(&collectes).Error
	if err != nil {
		return nil, translateError(err, "failed to list collectes by gateway")
	}
	return collectes, nil
}

// Update rewrites the measurement fields of every row matching the pair.
func (r *CollecteRepository) Update(ctx context.Context, sensorID, gatewayID uint, collecte *model.Collecte) error {
	result := r.db.DB.WithContext(ctx).
		Model(&model.Collecte{}).
		Where("sensor_id = ? AND gateway_id = ?", sensorID, gatewayID).
		Updates(map[string]interface{}{
			"measurement": collecte.Measurement,
			"error_rate":  collecte.ErrorRate,
			"unit":        collecte.Unit,
		})

	if result.Error != nil {
		return translateError(result.Error, "failed to update collecte")
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Delete removes every row matching the pair, regardless of created_at.
func (r *CollecteRepository) Delete(ctx context.Context, sensorID, gatewayID uint) error {
	result := r.db.DB.WithContext(ctx).
		Where("sensor_id = ? AND gateway_id = ?", sensorID, gatewayID).
		Delete(&model.Collecte{})

	if result.Error != nil {
		return translateError(result.Error, "failed to delete collecte")
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
