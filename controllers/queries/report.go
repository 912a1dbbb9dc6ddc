package queries

type DailyReportQueries struct {
	Date string `query:"date" validate:"required"`
}

type MonthlyReportQueries struct {
	TypeSavingID int64 `query:"typeSavingId" validate:"required|min:1"`
	Month        int   `query:"month" validate:"required|min:1|max:12"`
	Year         int   `query:"year" validate:"required|min:2000"`
}
