package service

import (
	"context"
	"errors"
	"time"

	"circletel-admin-be/internal/dto"
	"circletel-admin-be/internal/entity"
	"circletel-admin-be/internal/repository/specification"
	"circletel-admin-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

var ErrPaymentMethodNotFound = errors.New("payment method not found")

type IPaymentMethodService interface {
	Show(ctx context.Context, id uuid.UUID) (*dto.PaymentMethodResponse, error)
	ListByCustomer(ctx context.Context, customerId uuid.UUID) ([]*dto.PaymentMethodResponse, error)
}

type paymentMethodService struct {
	uowFactory unitofwork.RepositoryFactory
	// Payment methods change rarely but are read on every activation
	// validation; a short TTL keeps the validator cheap.
	cache *cache.Cache
}

func NewPaymentMethodService(uowFactory unitofwork.RepositoryFactory) IPaymentMethodService {
	return &paymentMethodService{
		uowFactory: uowFactory,
		cache:      cache.New(30*time.Second, 5*time.Minute),
	}
}

func (s *paymentMethodService) Show(ctx context.Context, id uuid.UUID) (*dto.PaymentMethodResponse, error) {
	if x, found := s.cache.Get(id.String()); found {
		return x.(*dto.PaymentMethodResponse), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	method, err := uow.PaymentMethodRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if method == nil {
		return nil, ErrPaymentMethodNotFound
	}

	res := toPaymentMethodResponse(method)
	s.cache.Set(id.String(), res, cache.DefaultExpiration)
	return res, nil
}

func (s *paymentMethodService) ListByCustomer(ctx context.Context, customerId uuid.UUID) ([]*dto.PaymentMethodResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	methods, err := uow.PaymentMethodRepository().FindAll(ctx,
		specification.ByCustomerId{CustomerId: customerId},
		specification.PrimaryFirst{},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.PaymentMethodResponse, 0, len(methods))
	for _, m := range methods {
		res = append(res, toPaymentMethodResponse(m))
	}
	return res, nil
}

func toPaymentMethodResponse(m *entity.PaymentMethod) *dto.PaymentMethodResponse {
	return &dto.PaymentMethodResponse{
		Id:            m.Id,
		CustomerId:    m.CustomerId,
		MethodType:    m.MethodType,
		MandateStatus: m.MandateStatus,
		Verified:      m.Verified(),
		IsActive:      m.IsActive,
		IsPrimary:     m.IsPrimary,
		CreatedAt:     m.CreatedAt,
	}
}
