package repository

import (
	"context"
	"time"

	"iot-fleet-inventory/internal/database"
	"iot-fleet-inventory/internal/model"
	apperrors "iot-fleet-inventory/pkg/errors"
)

type CompositionRepository struct {
	db *database.Database
}

func NewCompositionRepository(db *database.Database) *CompositionRepository {
	return &CompositionRepository{db: db}
}

func (r *CompositionRepository) Create(ctx context.Context, composition *model.Composition) error {
	now := time.Now()
	composition.CreatedAt = now
	composition.UpdatedAt = now

	if err := r.db.DB.WithContext(ctx).Create(composition).Error; err != nil {
		return translateError(err, "failed to create composition")
	}
	return nil
}

func (r *CompositionRepository) List(ctx context.Context) ([]model.Composition, error) {
	compositions := []model.Composition{}
	if err := r.db.DB.WithContext(ctx).Find(&compositions).Error; err != nil {
		return nil, translateError(err, "failed to list compositions")
	}
	return compositions, nil
}

func (r *CompositionRepository) GetByIDs(ctx context.Context, gatewayID, productID uint) (*model.Composition, error) {
	var composition model.Composition
	err := r.db.DB.WithContext(ctx).
		Where("gateway_id = ? AND product_id = ?", gatewayID, productID).
		First(&composition).Error
	if err != nil {
		return nil, translateError(err, "failed to get composition")
	}
	return &composition, nil
}

// ListProductIDsByGateway returns the product side of every composition row
// for the gateway.
func (r *CompositionRepository) ListProductIDsByGateway(ctx context.Context, gatewayID uint) ([]uint, error) {
	ids := []uint{}
	err := r.db.DB.WithContext(ctx).
		Model(&model.Composition{}).
		Where("gateway_id = ?", gatewayID).
		Pluck("product_id", &ids).Error
	if err != nil {
		return nil, translateError(err, "failed to list compositions by gateway")
	}
	return ids, nil
}

// ListGatewayIDsByProduct returns the gateway side of every composition row
// for the product.
func (r *CompositionRepository) ListGatewayIDsByProduct(ctx context.Context, productID uint) ([]uint, error) {
	ids := []uint{}
	err := r.db.DB.WithContext(ctx).
		Model(&model.Composition{}).
		Where("product_id = ?", productID).
		Pluck("gateway_id", &ids).Error
	if err != nil {
		return nil, translateError(err, "failed to list compositions by product")
	}
	return ids, nil
}

// Update re-keys the composition: the row matching the old tuple is rewritten
// with the new one. Zero rows affected means the old tuple does not exist.
func (r *CompositionRepository) Update(ctx context.Context, gatewayID, productID, newGatewayID, newProductID uint) error {
	result := r.db.DB.WithContext(ctx).
		Model(&model.Composition{}).
		Where("gateway_id = ? AND product_id = ?", gatewayID, productID).
		Updates(map[string]interface{}{
			"gateway_id": newGatewayID,
			"product_id": newProductID,
		})

	if result.Error != nil {
		return translateError(result.Error, "failed to update composition")
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *CompositionRepository) Delete(ctx context.Context, gatewayID, productID uint) error {
	result := r.db.DB.WithContext(ctx).
		Where("gateway_id = ? AND product_id = ?", gatewayID, productID).
		Delete(&model.Composition{})

	if result.Error != nil {
		return translateError(result.Error, "failed to delete composition")
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
