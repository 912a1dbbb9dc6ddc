package models

// Patch is a partial column set keyed by column name, applied with gorm Updates.
type Patch = map[string]interface{}

// Column names written through Patch.
const (
	ColumnTypeName       = "typename"
	ColumnMinimumBalance = "minimumbalance"
	ColumnMinimumTerm    = "minimumterm"
	ColumnTermPeriod     = "termperiod"
	ColumnInterest       = "interest"
)
