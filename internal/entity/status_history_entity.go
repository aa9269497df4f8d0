package entity

import (
	"time"

	"circletel-admin-be/pkg/lifecycle"

	"github.com/google/uuid"
)

const EntityTypeConsumerOrder = "consumer_order"

type OrderStatusHistory struct {
	Id               uuid.UUID
	EntityType       string
	EntityId         uuid.UUID
	OldStatus        lifecycle.Status
	NewStatus        lifecycle.Status
	ChangeReason     string
	ChangedBy        *uuid.UUID
	Automated        bool
	CustomerNotified bool
	StatusChangedAt  time.Time
	CreatedAt        time.Time
}
