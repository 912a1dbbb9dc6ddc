package entities

import (
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null"
)

type UpdateRegulationsPayload struct {
	MinimumBalance  decimal.NullDecimal `json:"minimumBalance"`
	MinimumTermDays null.Int64          `json:"minimumTermDays"`
	// Older clients send the misspelled key.
	MinimunBalance decimal.NullDecimal `json:"minimunBalance"`
}

func (p *UpdateRegulationsPayload) Balance() decimal.NullDecimal {
	if !p.MinimumBalance.Valid && p.MinimunBalance.Valid {
		return p.MinimunBalance
	}

	return p.MinimumBalance
}

type RegulationRateEntity struct {
	TypeSavingID int64           `json:"typeSavingId" validate:"required|min:1"`
	TypeName     string          `json:"typeName" validate:"required"`
	Rate         decimal.Decimal `json:"rate"`
	Term         int64           `json:"term" validate:"min:0"`
}

func (e RegulationRateEntity) HasNegativeRate() bool {
	return e.Rate.IsNegative()
}
