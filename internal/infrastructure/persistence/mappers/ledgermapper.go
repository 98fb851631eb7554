package mappers

import (
	"encoding/json"
	"fmt"

	"github.com/ledgerline/ledgerline/internal/domain/ledger"
	"github.com/ledgerline/ledgerline/internal/infrastructure/persistence/models"
)

type LedgerMapper interface {
	TransactionToEntity(model *models.TransactionModel) ledger.Transaction
	TransactionsToEntities(models []*models.TransactionModel) []ledger.Transaction
	SalesConfigToEntity(model *models.SalesConfigModel) (*ledger.SalesConfig, error)
}

type LedgerMapperImpl struct{}

func NewLedgerMapper() LedgerMapper {
	return &LedgerMapperImpl{}
}

func (m *LedgerMapperImpl) TransactionToEntity(model *models.TransactionModel) ledger.Transaction {
	return ledger.Transaction{
		ID:       model.ID,
		TenantID: model.TenantID,
		Amount:   model.Amount,
		Status:   ledger.TransactionStatus(model.Status),
		Date:     model.Date,
	}
}

func (m *LedgerMapperImpl) TransactionsToEntities(txModels []*models.TransactionModel) []ledger.Transaction {
	entities := make([]ledger.Transaction, 0, len(txModels))
	for _, model := range txModels {
		entities = append(entities, m.TransactionToEntity(model))
	}
	return entities
}

func (m *LedgerMapperImpl) SalesConfigToEntity(model *models.SalesConfigModel) (*ledger.SalesConfig, error) {
	if model == nil {
		return nil, nil
	}

	var taxes []ledger.CustomTax
	if len(model.CustomTaxes) > 0 {
		if err := json.Unmarshal(model.CustomTaxes, &taxes); err != nil {
			return nil, fmt.Errorf("failed to unmarshal custom taxes: %w", err)
		}
	}

	return &ledger.SalesConfig{
		TenantID:               model.TenantID,
		ManualGrossRevenue:     model.ManualGrossRevenue,
		ManualDailyAverage:     model.ManualDailyAverage,
		ManualProjectionDays:   model.ManualProjectionDays,
		PlatformFeePercentage:  model.PlatformFeePercentage,
		ExpertSplitPercentage:  model.ExpertSplitPercentage,
		TeamSplitPercentage:    model.TeamSplitPercentage,
		CustomTaxes:            taxes,
		FinancialGoalTarget:    model.FinancialGoalTarget,
		FinancialGoalStartDate: model.FinancialGoalStartDate,
	}, nil
}
