package contract

import (
	"context"

	"circletel-admin-be/internal/entity"
	"circletel-admin-be/internal/repository/specification"
)

type CustomerServiceRepository interface {
	Create(ctx context.Context, service *entity.CustomerService) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CustomerService, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CustomerService, error)
}
