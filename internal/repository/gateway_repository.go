package repository

import (
	"context"
	"fmt"
	"time"

	"iot-fleet-inventory/internal/database"
	"iot-fleet-inventory/internal/model"
	apperrors "iot-fleet-inventory/pkg/errors"
)

type GatewayRepository struct {
	db *database.Database
}

func NewGatewayRepository(db *database.Database) *GatewayRepository {
	return &GatewayRepository{db: db}
}

func (r *GatewayRepository) Create(ctx context.Context, gateway *model.Gateway) error {
	if gateway.Status == "" {
		gateway.Status = model.GatewayStatusOffline
	}
	if !gateway.Status.Valid() {
		return fmt.Errorf("%w: %q", apperrors.ErrInvalidStatus, gateway.Status)
	}

	now := time.Now()
	gateway.CreatedAt = now
	gateway.UpdatedAt = now

	if err := r.db.DB.WithContext(ctx).Create(gateway).Error; err != nil {
		return translateError(err, "failed to create gateway")
	}
	return nil
}

func (r *GatewayRepository) List(ctx context.Context) ([]model.Gateway, error) {
	gateways := []model.Gateway{}
	if err := r.db.DB.WithContext(ctx).Find(&gateways).Error; err != nil {
		return nil, translateError(err, "failed to list gateways")
	}
	return gateways, nil
}

func (r *GatewayRepository) GetByID(ctx context.Context, id uint) (*model.Gateway, error) {
	var gateway model.Gateway
	err := r.db.DB.WithContext(ctx).
		Where("gateway_id = ?", id).
		First(&gateway).Error
	if err != nil {
		return nil, translateError(err, "failed to get gateway")
	}
	return &gateway, nil
}

// Update is a conditional full replace of the non-key columns; zero rows
// affected means the gateway does not exist. Deleting a gateway cascades to
// its composition rows but leaves assignement rows behind.
func (r *GatewayRepository) Update(ctx context.Context, id uint, gateway *model.Gateway) error {
	if !gateway.Status.Valid() {
		return fmt.Errorf("%w: %q", apperrors.ErrInvalidStatus, gateway.Status)
	}

	result := r.db.DB.WithContext(ctx).
		Model(&model.Gateway{}).
		Where("gateway_id = ?", id).
		Updates(map[string]interface{}{
			"name":        gateway.Name,
			"ip_address":  gateway.IPAddress,
			"mac_address": gateway.MACAddress,
			"type":        gateway.Type,
			"status":      gateway.Status,
		})

	if result.Error != nil {
		return translateError(result.Error, "failed to update gateway")
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *GatewayRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.DB.WithContext(ctx).
		Where("gateway_id = ?", id).
		Delete(&model.Gateway{})

	if result.Error != nil {
		return translateError(result.Error, "failed to delete gateway")
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
