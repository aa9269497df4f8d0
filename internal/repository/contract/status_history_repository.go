package contract

import (
	"context"

	"circletel-admin-be/internal/entity"
	"circletel-admin-be/internal/repository/specification"
)

type StatusHistoryRepository interface {
	Create(ctx context.Context, record *entity.OrderStatusHistory) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.OrderStatusHistory, error)
}
