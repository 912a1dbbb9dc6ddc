package regulation_service

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/volatiletech/null"

	"github.com/zsmartex/passbook/config"
	"github.com/zsmartex/passbook/models"
	"github.com/zsmartex/passbook/services"
)

// DefaultAnchorTypeName names the type saving that carries the global
// regulations. Matching is exact and case-sensitive.
const DefaultAnchorTypeName = "No term"

const RatesUpdatedMessage = "Regulations updated successfully."

// DefaultRegulation is reported when no anchor record exists. It is never
// written to the store.
var DefaultRegulation = Regulation{
	MinimumBalance:  decimal.NewFromInt(100000),
	MinimumTermDays: 15,
}

type TypeSavingRepository interface {
	FindAll(ctx context.Context) ([]models.TypeSaving, error)
	FindByID(ctx context.Context, id int64) (*models.TypeSaving, error)
	Update(ctx context.Context, id int64, patch models.Patch) (*models.TypeSaving, error)
}

type Regulation struct {
	MinimumBalance  decimal.Decimal `json:"minimumBalance"`
	MinimumTermDays int64           `json:"minimumTermDays"`
	// Persisted is false when the values come from, or were not written to,
	// an anchor record.
	Persisted bool `json:"persisted"`
}

type RegulationRate struct {
	TypeSavingID   int64           `json:"typeSavingId"`
	TypeName       string          `json:"typeName"`
	Rate           decimal.Decimal `json:"rate"`
	MinimumBalance decimal.Decimal `json:"minimumBalance"`
	Term           int64           `json:"term"`
	Editable       bool            `json:"editable"`
}

type RateUpdate struct {
	TypeSavingID int64           `json:"typeSavingId"`
	TypeName     string          `json:"typeName"`
	Rate         decimal.Decimal `json:"rate"`
	Term         int64           `json:"term"`
}

type UpdateResult struct {
	Message string `json:"message"`
}

type RegulationService struct {
	repository TypeSavingRepository
	anchorName string
}

func NewRegulationService(repository TypeSavingRepository, anchorName string) *RegulationService {
	if len(anchorName) == 0 {
		anchorName = DefaultAnchorTypeName
	}

	return &RegulationService{
		repository: repository,
		anchorName: anchorName,
	}
}

func (s *RegulationService) AnchorName() string {
	return s.anchorName
}

func (s *RegulationService) findAnchor(type_savings []models.TypeSaving) *models.TypeSaving {
	for i := range type_savings {
		if type_savings[i].TypeName == s.anchorName {
			return &type_savings[i]
		}
	}

	return nil
}

func (s *RegulationService) GetAllRegulations(ctx context.Context) (*Regulation, error) {
	type_savings, err := s.repository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	anchor := s.findAnchor(type_savings)
	if anchor == nil {
		regulation := DefaultRegulation
		return &regulation, nil
	}

	return &Regulation{
		MinimumBalance:  anchor.MinimumBalance,
		MinimumTermDays: anchor.MinimumTerm,
		Persisted:       true,
	}, nil
}

// UpdateRegulations writes the global minimum balance and minimum term to the
// anchor record. A zero minimum balance counts as missing. Without an anchor
// record nothing is written and the result has Persisted set to false.
//
// The read and the write are separate store calls: concurrent callers race
// and the last write wins.
func (s *RegulationService) UpdateRegulations(ctx context.Context, minimumBalance decimal.NullDecimal, minimumTermDays null.Int64) (*Regulation, error) {
	if !minimumBalance.Valid || minimumBalance.Decimal.IsZero() || !minimumTermDays.Valid {
		return nil, services.NewValidationError("Minimum balance and minimum term days are required")
	}

	if !minimumBalance.Decimal.IsPositive() {
		return nil, services.NewValidationError("Minimum balance must be greater than 0")
	}

	if minimumTermDays.Int64 < 0 {
		return nil, services.NewValidationError("Minimum term days must not be negative")
	}

	type_savings, err := s.repository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if type_savings == nil {
		return nil, services.NewValidationError("Invalid type saving data")
	}

	regulation := &Regulation{
		MinimumBalance:  minimumBalance.Decimal,
		MinimumTermDays: minimumTermDays.Int64,
	}

	anchor := s.findAnchor(type_savings)
	if anchor == nil {
		config.Logger.WithField("anchor", s.anchorName).Warn("Regulation anchor not found, regulations were not persisted")
		return regulation, nil
	}

	if _, err := s.repository.Update(ctx, anchor.TypeID, models.Patch{
		models.ColumnMinimumBalance: minimumBalance.Decimal,
		models.ColumnMinimumTerm:    minimumTermDays.Int64,
	}); err != nil {
		return nil, err
	}

	config.Logger.WithFields(logrus.Fields{
		"type_id":           anchor.TypeID,
		"minimum_balance":   minimumBalance.Decimal.String(),
		"minimum_term_days": minimumTermDays.Int64,
	}).Info("Regulations updated")

	regulation.Persisted = true

	return regulation, nil
}

func (s *RegulationService) GetRegulationRates(ctx context.Context) ([]RegulationRate, error) {
	type_savings, err := s.repository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	rates := make([]RegulationRate, 0, len(type_savings))
	for _, type_saving := range type_savings {
		rates = append(rates, RegulationRate{
			TypeSavingID:   type_saving.TypeID,
			TypeName:       type_saving.TypeName,
			Rate:           type_saving.Interest,
			MinimumBalance: type_saving.MinimumBalance,
			Term:           type_saving.TermPeriod,
			Editable:       true,
		})
	}

	return rates, nil
}

// UpdateRegulation applies each rate update in order with one store call per
// element. The first failure stops the loop; earlier writes stay applied.
func (s *RegulationService) UpdateRegulation(ctx context.Context, updates []RateUpdate) (*UpdateResult, error) {
	if len(updates) == 0 {
		return nil, services.NewValidationError("No updates provided")
	}

	for _, update := range updates {
		if _, err := s.repository.Update(ctx, update.TypeSavingID, models.Patch{
			models.ColumnTypeName:   update.TypeName,
			models.ColumnInterest:   update.Rate,
			models.ColumnTermPeriod: update.Term,
		}); err != nil {
			config.Logger.WithField("type_id", update.TypeSavingID).Errorf("Failed to update regulation rate: %v", err)
			return nil, err
		}
	}

	config.Logger.Infof("Updated %d regulation rates", len(updates))

	return &UpdateResult{Message: RatesUpdatedMessage}, nil
}
