package models

// DailyData is the raw input of a daily report, already restricted to one date.
type DailyData struct {
	Types        []TypeSaving  `json:"types"`
	Transactions []Transaction `json:"transactions"`
}

// MonthlyData is the raw input of a monthly report, already restricted to one
// type saving and one month.
type MonthlyData struct {
	TypeInfo    *TypeSaving  `json:"type_info"`
	NewBooks    []SavingBook `json:"new_books"`
	ClosedBooks []SavingBook `json:"closed_books"`
}
