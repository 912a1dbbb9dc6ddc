package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/zsmartex/passbook/models"
)

type ReportRepository struct {
	mock.Mock
}

func (m *ReportRepository) GetDailyData(ctx context.Context, date string) (*models.DailyData, error) {
	args := m.Called(ctx, date)

	data, _ := args.Get(0).(*models.DailyData)
	return data, args.Error(1)
}

func (m *ReportRepository) GetMonthlyData(ctx context.Context, typeSavingID int64, month time.Month, year int) (*models.MonthlyData, error) {
	args := m.Called(ctx, typeSavingID, month, year)

	data, _ := args.Get(0).(*models.MonthlyData)
	return data, args.Error(1)
}
