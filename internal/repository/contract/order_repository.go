package contract

import (
	"context"

	"circletel-admin-be/internal/entity"
	"circletel-admin-be/internal/repository/specification"
	"circletel-admin-be/pkg/lifecycle"

	"github.com/google/uuid"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	Update(ctx context.Context, order *entity.Order) error
	// UpdateStatusGuarded applies updates only while the row still holds
	// expectedStatus. Returns the number of rows changed; zero means a
	// concurrent transition won.
	UpdateStatusGuarded(ctx context.Context, id uuid.UUID, expectedStatus lifecycle.Status, updates map[string]interface{}) (int64, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Order, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Order, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
