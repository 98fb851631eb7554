package mappers

import (
	"github.com/ledgerline/ledgerline/internal/domain/tenant"
	"github.com/ledgerline/ledgerline/internal/infrastructure/persistence/models"
)

type TenantMapper interface {
	ProfileToEntity(model *models.AccountProfileModel) *tenant.AccountProfile
	MembershipToEntity(model *models.TenantMembershipModel) *tenant.TenantMembership
}

type TenantMapperImpl struct{}

func NewTenantMapper() TenantMapper {
	return &TenantMapperImpl{}
}

func (m *TenantMapperImpl) ProfileToEntity(model *models.AccountProfileModel) *tenant.AccountProfile {
	if model == nil {
		return nil
	}
	return &tenant.AccountProfile{
		ID:        model.ID,
		AccountID: model.AccountID,
		Email:     model.Email,
	}
}

func (m *TenantMapperImpl) MembershipToEntity(model *models.TenantMembershipModel) *tenant.TenantMembership {
	if model == nil {
		return nil
	}
	return &tenant.TenantMembership{
		ID:        model.ID,
		AccountID: model.AccountID,
		TenantID:  model.TenantID,
	}
}
