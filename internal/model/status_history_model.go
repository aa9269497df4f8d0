package model

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatusHistory struct {
	Id               uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EntityType       string     `gorm:"type:varchar(50);not null"`
	EntityId         uuid.UUID  `gorm:"type:uuid;not null;index"`
	OldStatus        string     `gorm:"type:varchar(50);not null"`
	NewStatus        string     `gorm:"type:varchar(50);not null"`
	ChangeReason     string     `gorm:"type:text"`
	ChangedBy        *uuid.UUID `gorm:"type:uuid"`
	Automated        bool       `gorm:"default:false"`
	CustomerNotified bool       `gorm:"default:false"`
	StatusChangedAt  time.Time  `gorm:"type:timestamptz;not null"`
	CreatedAt        time.Time  `gorm:"autoCreateTime"`
}

func (OrderStatusHistory) TableName() string {
	return "order_status_history"
}
