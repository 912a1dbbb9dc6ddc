package models

import (
	"github.com/shopspring/decimal"
)

type TypeSaving struct {
	TypeID         int64           `json:"type_id" gorm:"column:typeid;primaryKey"`
	TypeName       string          `json:"type_name" gorm:"column:typename"`
	MinimumBalance decimal.Decimal `json:"minimum_balance" gorm:"column:minimumbalance"`
	MinimumTerm    int64           `json:"minimum_term" gorm:"column:minimumterm"`
	TermPeriod     int64           `json:"term_period" gorm:"column:termperiod"`
	Interest       decimal.Decimal `json:"interest" gorm:"column:interest"`
}

func (TypeSaving) TableName() string {
	return "typesaving"
}
