package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/zsmartex/passbook/models"
)

type TypeSavingRepository struct {
	db *gorm.DB
}

func NewTypeSavingRepository(db *gorm.DB) *TypeSavingRepository {
	return &TypeSavingRepository{db: db}
}

// FindAll returns every type saving ordered by id. The result is never nil.
func (r *TypeSavingRepository) FindAll(ctx context.Context) ([]models.TypeSaving, error) {
	type_savings := make([]models.TypeSaving, 0)

	if err := r.db.WithContext(ctx).Order("typeid asc").Find(&type_savings).Error; err != nil {
		return nil, dataAccessError("find type savings", err)
	}

	return type_savings, nil
}

// FindByID returns nil without an error when no row has id.
func (r *TypeSavingRepository) FindByID(ctx context.Context, id int64) (*models.TypeSaving, error) {
	var type_saving models.TypeSaving

	result := r.db.WithContext(ctx).First(&type_saving, "typeid = ?", id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	} else if result.Error != nil {
		return nil, dataAccessError("find type saving", result.Error)
	}

	return &type_saving, nil
}

func (r *TypeSavingRepository) Update(ctx context.Context, id int64, patch models.Patch) (*models.TypeSaving, error) {
	result := r.db.WithContext(ctx).
		Model(&models.TypeSaving{}).
		Where("typeid = ?", id).
		Updates(map[string]interface{}(patch))

	if result.Error != nil {
		return nil, dataAccessError("update type saving", result.Error)
	}

	if result.RowsAffected == 0 {
		return nil, ErrRecordNotFound
	}

	type_saving, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if type_saving == nil {
		return nil, ErrRecordNotFound
	}

	return type_saving, nil
}
