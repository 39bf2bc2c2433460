package repository

import (
	"context"
	"time"

	"iot-fleet-inventory/internal/database"
	"iot-fleet-inventory/internal/model"
	apperrors "iot-fleet-inventory/pkg/errors"
)

type AdminRepository struct {
	db *database.Database
}

func NewAdminRepository(db *database.Database) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) Create(ctx context.Context, admin *model.Admin) error {
	now := time.Now()
	admin.CreatedAt = now
	admin.UpdatedAt = now

	if err := r.db.DB.WithContext(ctx).Create(admin).Error; err != nil {
		return translateError(err, "failed to create admin")
	}
	return nil
}

func (r *AdminRepository) List(ctx context.Context) ([]model.Admin, error) {
	admins := []model.Admin{}
	if err := r.db.DB.WithContext(ctx).Find(&admins).Error; err != nil {
		return nil, translateError(err, "failed to list admins")
	}
	return admins, nil
}

func (r *AdminRepository) GetByID(ctx context.Context, id uint) (*model.Admin, error) {
	var admin model.Admin
	err := r.db.DB.WithContext(ctx).
		Where("idadmin = ?", id).
		First(&admin).Error
	if err != nil {
		return nil, translateError(err, "failed to get admin")
	}
	return &admin, nil
}

func (r *AdminRepository) Update(ctx context.Context, id uint, admin *model.Admin) error {
	result := r.db.DB.WithContext(ctx).
		Model(&model.Admin{}).
		Where("idadmin = ?", id).
		Updates(map[string]interface{}{
			"name":    admin.Name,
			"surname": admin.Surname,
			"mail":    admin.Mail,
			"role":    admin.Role,
		})

	if result.Error != nil {
		return translateError(result.Error, "failed to update admin")
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *AdminRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.DB.WithContext(ctx).
		Where("idadmin = ?", id).
		Delete(&model.Admin{})

	if result.Error != nil {
		return translateError(result.Error, "failed to delete admin")
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
