package mapper

import (
	"circletel-admin-be/internal/entity"
	"circletel-admin-be/internal/model"
)

type CustomerServiceMapper struct{}

func NewCustomerServiceMapper() *CustomerServiceMapper {
	return &CustomerServiceMapper{}
}

func (m *CustomerServiceMapper) ToEntity(s *model.CustomerService) *entity.CustomerService {
	if s == nil {
		return nil
	}
	return &entity.CustomerService{
		Id:                  s.Id,
		CustomerId:          s.CustomerId,
		ServiceType:         s.ServiceType,
		PackageName:         s.PackageName,
		SpeedDownMbps:       s.SpeedDownMbps,
		SpeedUpMbps:         s.SpeedUpMbps,
		DataCapGB:           s.DataCapGB,
		InstallationAddress: s.InstallationAddress,
		MonthlyPrice:        s.MonthlyPrice,
		SetupFee:            s.SetupFee,
		Status:              s.Status,
		Active:              s.Active,
		ActivationDate:      s.ActivationDate,
		ProviderName:        s.ProviderName,
		ProviderCode:        s.ProviderCode,
		ContractMonths:      s.ContractMonths,
		ContractStartDate:   s.ContractStartDate,
		ContractEndDate:     s.ContractEndDate,
		CreatedAt:           s.CreatedAt,
		UpdatedAt:           s.UpdatedAt,
	}
}

func (m *CustomerServiceMapper) ToModel(s *entity.CustomerService) *model.CustomerService {
	if s == nil {
		return nil
	}
	return &model.CustomerService{
		Id:                  s.Id,
		CustomerId:          s.CustomerId,
		ServiceType:         s.ServiceType,
		PackageName:         s.PackageName,
		SpeedDownMbps:       s.SpeedDownMbps,
		SpeedUpMbps:         s.SpeedUpMbps,
		DataCapGB:           s.DataCapGB,
		InstallationAddress: s.InstallationAddress,
		MonthlyPrice:        s.MonthlyPrice,
		SetupFee:            s.SetupFee,
		Status:              s.Status,
		Active:              s.Active,
		ActivationDate:      s.ActivationDate,
		ProviderName:        s.ProviderName,
		ProviderCode:        s.ProviderCode,
		ContractMonths:      s.ContractMonths,
		ContractStartDate:   s.ContractStartDate,
		ContractEndDate:     s.ContractEndDate,
		CreatedAt:           s.CreatedAt,
		UpdatedAt:           s.UpdatedAt,
	}
}
