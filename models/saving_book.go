package models

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/volatiletech/null"
)

type SavingBook struct {
	BookID         int64           `json:"book_id" gorm:"column:bookid;primaryKey"`
	TypeID         int64           `json:"type_id" gorm:"column:typeid"`
	CustomerID     int64           `json:"customer_id" gorm:"column:customerid"`
	RegisterTime   time.Time       `json:"register_time" gorm:"column:registertime"`
	MaturityDate   null.Time       `json:"maturity_date" gorm:"column:maturitydate"`
	ClosedDate     null.Time       `json:"closed_date" gorm:"column:closeddate"`
	Status         string          `json:"status" gorm:"column:status"`
	CurrentBalance decimal.Decimal `json:"current_balance" gorm:"column:currentbalance"`
}

func (SavingBook) TableName() string {
	return "savingbook"
}

func (b *SavingBook) IsClosed() bool {
	return b.ClosedDate.Valid
}
