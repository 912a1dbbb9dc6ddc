package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/zsmartex/passbook/calendar"
	"github.com/zsmartex/passbook/config"
	"github.com/zsmartex/passbook/models"
	"github.com/zsmartex/passbook/services/report_service"
)

// Cache is satisfied by config.CacheService.
type Cache interface {
	GetKey(key string, src interface{}) error
	SetKey(key string, value interface{}, expiration time.Duration) error
}

// TypeSavingFinder is satisfied by TypeSavingRepository.
type TypeSavingFinder interface {
	FindAll(ctx context.Context) ([]models.TypeSaving, error)
	FindByID(ctx context.Context, id int64) (*models.TypeSaving, error)
}

// CachedReportRepository serves the saving books and transactions of closed
// periods from the cache. Type savings are always read from the store, since
// rates and names can change after the period closed. The current day and the
// current month always reach the store.
type CachedReportRepository struct {
	report_service.Repository

	type_savings TypeSavingFinder
	cache        Cache
	ttl          time.Duration
	now          func() time.Time
}

func NewCachedReportRepository(repository report_service.Repository, type_savings TypeSavingFinder, cache Cache, ttl time.Duration) *CachedReportRepository {
	return &CachedReportRepository{
		Repository:   repository,
		type_savings: type_savings,
		cache:        cache,
		ttl:          ttl,
		now:          time.Now,
	}
}

func dailyKey(date string) string {
	return "passbook:reports:daily:" + date
}

func monthlyKey(typeSavingID int64, month time.Month, year int) string {
	return fmt.Sprintf("passbook:reports:monthly:%d:%04d-%02d", typeSavingID, year, int(month))
}

func (r *CachedReportRepository) today() calendar.Date {
	return calendar.DateOf(r.now())
}

func (r *CachedReportRepository) load(key string, dst interface{}) bool {
	err := r.cache.GetKey(key, dst)
	if err == nil {
		return true
	}

	if !config.IsCacheMiss(err) {
		config.Logger.WithField("key", key).Warnf("Failed to read report cache: %v", err)
	}

	return false
}

func (r *CachedReportRepository) store(key string, value interface{}) {
	if err := r.cache.SetKey(key, value, r.ttl); err != nil {
		config.Logger.WithField("key", key).Warnf("Failed to write report cache: %v", err)
	}
}

func (r *CachedReportRepository) GetDailyData(ctx context.Context, date string) (*models.DailyData, error) {
	day, err := calendar.ParseDate(date)
	if err != nil || !day.Before(r.today()) {
		return r.Repository.GetDailyData(ctx, date)
	}

	key := dailyKey(day.String())

	var cached models.DailyData
	if r.load(key, &cached) {
		types, err := r.type_savings.FindAll(ctx)
		if err != nil {
			return nil, err
		}

		cached.Types = types

		return &cached, nil
	}

	data, err := r.Repository.GetDailyData(ctx, date)
	if err != nil {
		return nil, err
	}

	r.store(key, models.DailyData{Transactions: data.Transactions})

	return data, nil
}

func (r *CachedReportRepository) GetMonthlyData(ctx context.Context, typeSavingID int64, month time.Month, year int) (*models.MonthlyData, error) {
	if !calendar.MonthEndsBefore(year, month, r.today()) {
		return r.Repository.GetMonthlyData(ctx, typeSavingID, month, year)
	}

	key := monthlyKey(typeSavingID, month, year)

	var cached models.MonthlyData
	if r.load(key, &cached) {
		type_info, err := r.type_savings.FindByID(ctx, typeSavingID)
		if err != nil {
			return nil, err
		}

		cached.TypeInfo = type_info

		return &cached, nil
	}

	data, err := r.Repository.GetMonthlyData(ctx, typeSavingID, month, year)
	if err != nil {
		return nil, err
	}

	r.store(key, models.MonthlyData{NewBooks: data.NewBooks, ClosedBooks: data.ClosedBooks})

	return data, nil
}
