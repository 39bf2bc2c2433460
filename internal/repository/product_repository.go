package repository

import (
	"context"
	"fmt"
	"time"

	"iot-fleet-inventory/internal/database"
	"iot-fleet-inventory/internal/model"
	apperrors "iot-fleet-inventory/pkg/errors"
)

type ProductRepository struct {
	db *database.Database
}

func NewProductRepository(db *database.Database) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(ctx context.Context, product *model.Product) error {
	if product.Status == "" {
		product.Status = model.ProductStatusAvailable
	}
	if !product.Status.Valid() {
		return fmt.Errorf("%w: %q", apperrors.ErrInvalidStatus, product.Status)
	}

	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	if err := r.db.DB.WithContext(ctx).Create(product).Error; err != nil {
		return translateError(err, "failed to create product")
	}
	return nil
}

func (r *ProductRepository) List(ctx context.Context) ([]model.Product, error) {
	products := []model.Product{}
	if err := r.db.DB.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, translateError(err, "failed to list products")
	}
	return products, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id uint) (*model.Product, error) {
	var product model.Product
	err := r.db.DB.WithContext(ctx).
		Where("idprod = ?", id).
		First(&product).Error
	if err != nil {
		return nil, translateError(err, "failed to get product")
	}
	return &product, nil
}

func (r *ProductRepository) Update(ctx context.Context, id uint, product *model.Product) error {
	if !product.Status.Valid() {
		return fmt.Errorf("%w: %q", apperrors.ErrInvalidStatus, product.Status)
	}

	result := r.db.DB.WithContext(ctx).
		Model(&model.Product{}).
		Where("idprod = ?", id).
		Updates(map[string]interface{}{
			"name":        product.Name,
			"category":    product.Category,
			"description": product.Description,
			"unit_price":  product.UnitPrice,
			"quantity":    product.Quantity,
			"status":      product.Status,
		})

	if result.Error != nil {
		return translateError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Delete cascades to composition rows referencing the product.
func (r *ProductRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.DB.WithContext(ctx).
		Where("idprod = ?", id).
		Delete(&model.Product{})

	if result.Error != nil {
		return translateError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
