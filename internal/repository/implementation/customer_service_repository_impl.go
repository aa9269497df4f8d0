package implementation

import (
	"context"
	"errors"

	"circletel-admin-be/internal/entity"
	"circletel-admin-be/internal/mapper"
	"circletel-admin-be/internal/model"
	"circletel-admin-be/internal/repository/contract"
	"circletel-admin-be/internal/repository/specification"

	"gorm.io/gorm"
)

type CustomerServiceRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CustomerServiceMapper
}

func NewCustomerServiceRepository(db *gorm.DB) contract.CustomerServiceRepository {
	return &CustomerServiceRepositoryImpl{
		db:     db,
		mapper: mapper.NewCustomerServiceMapper(),
	}
}

func (r *CustomerServiceRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CustomerServiceRepositoryImpl) Create(ctx context.Context, service *entity.CustomerService) error {
	m := r.mapper.ToModel(service)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*service = *r.mapper.ToEntity(m)
	return nil
}

func (r *CustomerServiceRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CustomerService, error) {
	var m model.CustomerService
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CustomerServiceRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CustomerService, error) {
	var models []*model.CustomerService
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.CustomerService, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}
