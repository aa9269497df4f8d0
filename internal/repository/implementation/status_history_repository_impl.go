package implementation

import (
	"context"

	"circletel-admin-be/internal/entity"
	"circletel-admin-be/internal/mapper"
	"circletel-admin-be/internal/model"
	"circletel-admin-be/internal/repository/contract"
	"circletel-admin-be/internal/repository/specification"

	"gorm.io/gorm"
)

type StatusHistoryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.StatusHistoryMapper
}

func NewStatusHistoryRepository(db *gorm.DB) contract.StatusHistoryRepository {
	return &StatusHistoryRepositoryImpl{
		db:     db,
		mapper: mapper.NewStatusHistoryMapper(),
	}
}

func (r *StatusHistoryRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *StatusHistoryRepositoryImpl) Create(ctx context.Context, record *entity.OrderStatusHistory) error {
	m := r.mapper.ToModel(record)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*record = *r.mapper.ToEntity(m)
	return nil
}

func (r *StatusHistoryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.OrderStatusHistory, error) {
	var models []*model.OrderStatusHistory
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.OrderStatusHistory, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}
