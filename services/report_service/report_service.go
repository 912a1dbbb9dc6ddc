package report_service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/zsmartex/passbook/calendar"
	"github.com/zsmartex/passbook/models"
	"github.com/zsmartex/passbook/services"
)

const UnknownTypeName = "Unknown"

// Repository returns report inputs already restricted to the requested
// period; the service itself never filters by date, month or type.
type Repository interface {
	GetDailyData(ctx context.Context, date string) (*models.DailyData, error)
	GetMonthlyData(ctx context.Context, typeSavingID int64, month time.Month, year int) (*models.MonthlyData, error)
}

type ReportService struct {
	repository Repository
}

func NewReportService(repository Repository) *ReportService {
	return &ReportService{repository: repository}
}

func (s *ReportService) GetDailyReport(ctx context.Context, date string) (*DailyReport, error) {
	data, err := s.repository.GetDailyData(ctx, date)
	if err != nil {
		return nil, err
	}
	if data == nil {
		data = &models.DailyData{}
	}

	report := &DailyReport{
		Date:         date,
		ByTypeSaving: make([]TypeSavingRow, 0, len(data.Types)),
		Summary: DailySummary{
			TotalDeposits:    decimal.Zero,
			TotalWithdrawals: decimal.Zero,
			Difference:       decimal.Zero,
		},
	}

	for _, type_saving := range data.Types {
		deposits := decimal.Zero
		withdrawals := decimal.Zero

		for i := range data.Transactions {
			transaction := &data.Transactions[i]
			if !transaction.BelongsToType(type_saving.TypeID) {
				continue
			}

			if transaction.IsDeposit() {
				deposits = deposits.Add(transaction.Amount)
			} else if transaction.IsWithdraw() {
				withdrawals = withdrawals.Add(transaction.Amount)
			}
		}

		row := TypeSavingRow{
			TypeSavingID:     type_saving.TypeID,
			TypeName:         type_saving.TypeName,
			TotalDeposits:    deposits,
			TotalWithdrawals: withdrawals,
			Difference:       deposits.Sub(withdrawals),
		}

		report.ByTypeSaving = append(report.ByTypeSaving, row)
		report.Summary.add(row)
	}

	return report, nil
}

// GetDailyTransactionStatistics counts and totals the day's deposits and
// withdrawals across all type savings.
func (s *ReportService) GetDailyTransactionStatistics(ctx context.Context, date string) (*TransactionStatistics, error) {
	data, err := s.repository.GetDailyData(ctx, date)
	if err != nil {
		return nil, err
	}

	statistics := &TransactionStatistics{
		Date:             date,
		TotalDeposits:    decimal.Zero,
		TotalWithdrawals: decimal.Zero,
		TotalAmount:      decimal.Zero,
	}
	if data == nil {
		return statistics, nil
	}

	for i := range data.Transactions {
		transaction := &data.Transactions[i]

		switch {
		case transaction.IsDeposit():
			statistics.DepositCount++
			statistics.TotalDeposits = statistics.TotalDeposits.Add(transaction.Amount)
		case transaction.IsWithdraw():
			statistics.WithdrawalCount++
			statistics.TotalWithdrawals = statistics.TotalWithdrawals.Add(transaction.Amount)
		default:
			continue
		}

		statistics.TotalAmount = statistics.TotalAmount.Add(transaction.Amount)
	}

	return statistics, nil
}

// GetMonthlyReport buckets opened and closed saving books by calendar day.
// ByDay always holds one row per day of the month.
func (s *ReportService) GetMonthlyReport(ctx context.Context, typeSavingID int64, month int, year int) (*MonthlyReport, error) {
	days := calendar.DaysIn(year, time.Month(month))
	if days == 0 {
		return nil, services.NewValidationError("Invalid month %d", month)
	}

	data, err := s.repository.GetMonthlyData(ctx, typeSavingID, time.Month(month), year)
	if err != nil {
		return nil, err
	}
	if data == nil {
		data = &models.MonthlyData{}
	}

	by_day := make([]DayRow, days)
	for i := range by_day {
		by_day[i].Day = i + 1
	}

	for _, book := range data.NewBooks {
		if day := calendar.DateOf(book.RegisterTime).Day; day >= 1 && day <= days {
			by_day[day-1].NewSavingBooks++
		}
	}

	for _, book := range data.ClosedBooks {
		if !book.IsClosed() {
			continue
		}

		if day := calendar.DateOf(book.ClosedDate.Time).Day; day >= 1 && day <= days {
			by_day[day-1].ClosedSavingBooks++
		}
	}

	report := &MonthlyReport{
		Month:        month,
		Year:         year,
		TypeSavingID: typeSavingID,
		TypeName:     UnknownTypeName,
		ByDay:        by_day,
	}

	if data.TypeInfo != nil {
		report.TypeName = data.TypeInfo.TypeName
	}

	for i := range by_day {
		by_day[i].Difference = by_day[i].NewSavingBooks - by_day[i].ClosedSavingBooks
		report.Summary.add(by_day[i])
	}

	return report, nil
}
