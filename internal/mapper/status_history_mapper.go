package mapper

import (
	"circletel-admin-be/internal/entity"
	"circletel-admin-be/internal/model"
	"circletel-admin-be/pkg/lifecycle"
)

type StatusHistoryMapper struct{}

func NewStatusHistoryMapper() *StatusHistoryMapper {
	return &StatusHistoryMapper{}
}

func (m *StatusHistoryMapper) ToEntity(h *model.OrderStatusHistory) *entity.OrderStatusHistory {
	if h == nil {
		return nil
	}
	return &entity.OrderStatusHistory{
		Id:               h.Id,
		EntityType:       h.EntityType,
		EntityId:         h.EntityId,
		OldStatus:        lifecycle.Status(h.OldStatus),
		NewStatus:        lifecycle.Status(h.NewStatus),
		ChangeReason:     h.ChangeReason,
		ChangedBy:        h.ChangedBy,
		Automated:        h.Automated,
		CustomerNotified: h.CustomerNotified,
		StatusChangedAt:  h.StatusChangedAt,
		CreatedAt:        h.CreatedAt,
	}
}

func (m *StatusHistoryMapper) ToModel(h *entity.OrderStatusHistory) *model.OrderStatusHistory {
	if h == nil {
		return nil
	}
	return &model.OrderStatusHistory{
		Id:               h.Id,
		EntityType:       h.EntityType,
		EntityId:         h.EntityId,
		OldStatus:        string(h.OldStatus),
		NewStatus:        string(h.NewStatus),
		ChangeReason:     h.ChangeReason,
		ChangedBy:        h.ChangedBy,
		Automated:        h.Automated,
		CustomerNotified: h.CustomerNotified,
		StatusChangedAt:  h.StatusChangedAt,
		CreatedAt:        h.CreatedAt,
	}
}
