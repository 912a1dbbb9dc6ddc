package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/zsmartex/passbook/calendar"
	"github.com/zsmartex/passbook/models"
	"github.com/zsmartex/passbook/services"
)

type ReportRepository struct {
	db          *gorm.DB
	type_saving *TypeSavingRepository
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{
		db:          db,
		type_saving: NewTypeSavingRepository(db),
	}
}

// GetDailyData loads every type saving and the transactions of date, each
// with its saving book.
func (r *ReportRepository) GetDailyData(ctx context.Context, date string) (*models.DailyData, error) {
	day, err := calendar.ParseDate(date)
	if err != nil {
		return nil, services.NewValidationError("%s", err.Error())
	}

	types, err := r.type_saving.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	transactions := make([]models.Transaction, 0)
	if err := r.db.WithContext(ctx).
		Preload("SavingBook").
		Where("CAST(\"transactiondate\" AS DATE) = ?", day.String()).
		Order("transactionid asc").
		Find(&transactions).Error; err != nil {
		return nil, dataAccessError("find daily transactions", err)
	}

	return &models.DailyData{
		Types:        types,
		Transactions: transactions,
	}, nil
}

// GetMonthlyData loads the saving books of typeSavingID registered or closed
// within month of year.
func (r *ReportRepository) GetMonthlyData(ctx context.Context, typeSavingID int64, month time.Month, year int) (*models.MonthlyData, error) {
	first, last := calendar.MonthBounds(year, month)

	type_info, err := r.type_saving.FindByID(ctx, typeSavingID)
	if err != nil {
		return nil, err
	}

	new_books := make([]models.SavingBook, 0)
	if err := r.db.WithContext(ctx).
		Where("typeid = ? AND CAST(\"registertime\" AS DATE) BETWEEN ? AND ?", typeSavingID, first.String(), last.String()).
		Order("bookid asc").
		Find(&new_books).Error; err != nil {
		return nil, dataAccessError("find new saving books", err)
	}

	closed_books := make([]models.SavingBook, 0)
	if err := r.db.WithContext(ctx).
		Where("typeid = ? AND closeddate IS NOT NULL AND CAST(\"closeddate\" AS DATE) BETWEEN ? AND ?", typeSavingID, first.String(), last.String()).
		Order("bookid asc").
		Find(&closed_books).Error; err != nil {
		return nil, dataAccessError("find closed saving books", err)
	}

	return &models.MonthlyData{
		TypeInfo:    type_info,
		NewBooks:    new_books,
		ClosedBooks: closed_books,
	}, nil
}
