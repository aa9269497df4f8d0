package mapper

import (
	"encoding/json"

	"circletel-admin-be/internal/entity"
	"circletel-admin-be/internal/model"

	"gorm.io/datatypes"
)

type PaymentMethodMapper struct{}

func NewPaymentMethodMapper() *PaymentMethodMapper {
	return &PaymentMethodMapper{}
}

func (m *PaymentMethodMapper) ToEntity(p *model.CustomerPaymentMethod) *entity.PaymentMethod {
	if p == nil {
		return nil
	}

	var details map[string]interface{}
	if len(p.EncryptedDetails) > 0 {
		// A blob we cannot parse is treated as unverified, not as an error.
		_ = json.Unmarshal(p.EncryptedDetails, &details)
	}

	return &entity.PaymentMethod{
		Id:               p.Id,
		CustomerId:       p.CustomerId,
		MethodType:       p.MethodType,
		MandateStatus:    p.MandateStatus,
		IsActive:         p.IsActive,
		IsPrimary:        p.IsPrimary,
		EncryptedDetails: details,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func (m *PaymentMethodMapper) ToModel(p *entity.PaymentMethod) *model.CustomerPaymentMethod {
	if p == nil {
		return nil
	}

	var details datatypes.JSON
	if p.EncryptedDetails != nil {
		if raw, err := json.Marshal(p.EncryptedDetails); err == nil {
			details = raw
		}
	}

	return &model.CustomerPaymentMethod{
		Id:               p.Id,
		CustomerId:       p.CustomerId,
		MethodType:       p.MethodType,
		MandateStatus:    p.MandateStatus,
		IsActive:         p.IsActive,
		IsPrimary:        p.IsPrimary,
		EncryptedDetails: details,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
