package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType = string

// Stored literals, matched case-sensitively.
var (
	TransactionTypeDeposit  TransactionType = "Deposit"
	TransactionTypeWithdraw TransactionType = "WithDraw"
)

type Transaction struct {
	TransactionID   int64           `json:"transaction_id" gorm:"column:transactionid;primaryKey"`
	BookID          int64           `json:"book_id" gorm:"column:bookid"`
	Amount          decimal.Decimal `json:"amount" gorm:"column:amount"`
	TransactionType TransactionType `json:"transaction_type" gorm:"column:transactiontype"`
	TransactionDate time.Time       `json:"transaction_date" gorm:"column:transactiondate"`
	SavingBook      *SavingBook     `json:"saving_book,omitempty" gorm:"foreignKey:BookID;references:BookID"`
}

func (Transaction) TableName() string {
	return "transaction"
}

// BelongsToType reports whether the transaction's saving book is of typeID.
func (t *Transaction) BelongsToType(typeID int64) bool {
	return t.SavingBook != nil && t.SavingBook.TypeID == typeID
}

func (t *Transaction) IsDeposit() bool {
	return t.TransactionType == TransactionTypeDeposit
}

func (t *Transaction) IsWithdraw() bool {
	return t.TransactionType == TransactionTypeWithdraw
}
