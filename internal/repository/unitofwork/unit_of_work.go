package unitofwork

import (
	"context"

	"circletel-admin-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	OrderRepository() contract.OrderRepository
	PaymentMethodRepository() contract.PaymentMethodRepository
	StatusHistoryRepository() contract.StatusHistoryRepository
	CustomerServiceRepository() contract.CustomerServiceRepository
	AdminUserRepository() contract.AdminUserRepository
}
