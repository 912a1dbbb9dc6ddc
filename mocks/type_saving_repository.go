package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/zsmartex/passbook/models"
)

type TypeSavingRepository struct {
	mock.Mock
}

func (m *TypeSavingRepository) FindAll(ctx context.Context) ([]models.TypeSaving, error) {
	args := m.Called(ctx)

	type_savings, _ := args.Get(0).([]models.TypeSaving)
	return type_savings, args.Error(1)
}

func (m *TypeSavingRepository) FindByID(ctx context.Context, id int64) (*models.TypeSaving, error) {
	args := m.Called(ctx, id)

	type_saving, _ := args.Get(0).(*models.TypeSaving)
	return type_saving, args.Error(1)
}

func (m *TypeSavingRepository) Update(ctx context.Context, id int64, patch models.Patch) (*models.TypeSaving, error) {
	args := m.Called(ctx, id, patch)

	type_saving, _ := args.Get(0).(*models.TypeSaving)
	return type_saving, args.Error(1)
}
