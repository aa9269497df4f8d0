package mapper

import (
	"circletel-admin-be/internal/entity"
	"circletel-admin-be/internal/model"
	"circletel-admin-be/pkg/lifecycle"
)

type OrderMapper struct{}

func NewOrderMapper() *OrderMapper {
	return &OrderMapper{}
}

func (m *OrderMapper) ToEntity(o *model.ConsumerOrder) *entity.Order {
	if o == nil {
		return nil
	}
	return &entity.Order{
		Id:            o.Id,
		OrderNumber:   o.OrderNumber,
		CustomerId:    o.CustomerId,
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,

		PackageName:     o.PackageName,
		PackageSpeed:    o.PackageSpeed,
		PackagePrice:    o.PackagePrice,
		InstallationFee: o.InstallationFee,

		InstallationAddress: o.InstallationAddress,
		Suburb:              o.Suburb,
		City:                o.City,
		Province:            o.Province,
		PostalCode:          o.PostalCode,

		Status:                    lifecycle.Status(o.Status),
		InstallationScheduledDate: o.InstallationScheduledDate,
		InstallationDocumentUrl:   o.InstallationDocumentUrl,
		PaymentMethodId:           o.PaymentMethodId,

		AccountNumber: o.AccountNumber,
		ConnectionId:  o.ConnectionId,
		InternalNotes: o.InternalNotes,

		ActivationDate:     o.ActivationDate,
		BillingActive:      o.BillingActive,
		BillingActivatedAt: o.BillingActivatedAt,
		BillingStartDate:   o.BillingStartDate,
		NextBillingDate:    o.NextBillingDate,
		BillingCycleDay:    o.BillingCycleDay,
		ProrataAmount:      o.ProrataAmount,
		ProrataDays:        o.ProrataDays,

		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func (m *OrderMapper) ToModel(o *entity.Order) *model.ConsumerOrder {
	if o == nil {
		return nil
	}
	return &model.ConsumerOrder{
		Id:            o.Id,
		OrderNumber:   o.OrderNumber,
		CustomerId:    o.CustomerId,
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,

		PackageName:     o.PackageName,
		PackageSpeed:    o.PackageSpeed,
		PackagePrice:    o.PackagePrice,
		InstallationFee: o.InstallationFee,

		InstallationAddress: o.InstallationAddress,
		Suburb:              o.Suburb,
		City:                o.City,
		Province:            o.Province,
		PostalCode:          o.PostalCode,

		Status:                    string(o.Status),
		InstallationScheduledDate: o.InstallationScheduledDate,
		InstallationDocumentUrl:   o.InstallationDocumentUrl,
		PaymentMethodId:           o.PaymentMethodId,

		AccountNumber: o.AccountNumber,
		ConnectionId:  o.ConnectionId,
		InternalNotes: o.InternalNotes,

		ActivationDate:     o.ActivationDate,
		BillingActive:      o.BillingActive,
		BillingActivatedAt: o.BillingActivatedAt,
		BillingStartDate:   o.BillingStartDate,
		NextBillingDate:    o.NextBillingDate,
		BillingCycleDay:    o.BillingCycleDay,
		ProrataAmount:      o.ProrataAmount,
		ProrataDays:        o.ProrataDays,

		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}
