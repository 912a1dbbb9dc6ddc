package report_service

import (
	"github.com/shopspring/decimal"
)

type DailyReport struct {
	Date         string          `json:"date"`
	ByTypeSaving []TypeSavingRow `json:"byTypeSaving"`
	Summary      DailySummary    `json:"summary"`
}

type TypeSavingRow struct {
	TypeSavingID     int64           `json:"typeSavingId"`
	TypeName         string          `json:"typeName"`
	TotalDeposits    decimal.Decimal `json:"totalDeposits"`
	TotalWithdrawals decimal.Decimal `json:"totalWithdrawals"`
	Difference       decimal.Decimal `json:"difference"`
}

// DailySummary is the column sum of the per type rows.
type DailySummary struct {
	TotalDeposits    decimal.Decimal `json:"totalDeposits"`
	TotalWithdrawals decimal.Decimal `json:"totalWithdrawals"`
	Difference       decimal.Decimal `json:"difference"`
}

func (s *DailySummary) add(row TypeSavingRow) {
	s.TotalDeposits = s.TotalDeposits.Add(row.TotalDeposits)
	s.TotalWithdrawals = s.TotalWithdrawals.Add(row.TotalWithdrawals)
	s.Difference = s.Difference.Add(row.Difference)
}

type MonthlyReport struct {
	Month        int            `json:"month"`
	Year         int            `json:"year"`
	TypeSavingID int64          `json:"typeSavingId"`
	TypeName     string         `json:"typeName"`
	ByDay        []DayRow       `json:"byDay"`
	Summary      MonthlySummary `json:"summary"`
}

type DayRow struct {
	Day               int `json:"day"`
	NewSavingBooks    int `json:"newSavingBooks"`
	ClosedSavingBooks int `json:"closedSavingBooks"`
	Difference        int `json:"difference"`
}

type MonthlySummary struct {
	NewSavingBooks    int `json:"newSavingBooks"`
	ClosedSavingBooks int `json:"closedSavingBooks"`
	Difference        int `json:"difference"`
}

func (s *MonthlySummary) add(row DayRow) {
	s.NewSavingBooks += row.NewSavingBooks
	s.ClosedSavingBooks += row.ClosedSavingBooks
	s.Difference += row.Difference
}

type TransactionStatistics struct {
	Date             string          `json:"date"`
	DepositCount     int             `json:"depositCount"`
	WithdrawalCount  int             `json:"withdrawCount"`
	TotalDeposits    decimal.Decimal `json:"totalDeposits"`
	TotalWithdrawals decimal.Decimal `json:"totalWithdrawals"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
}
