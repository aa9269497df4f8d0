package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type CustomerPaymentMethod struct {
	Id               uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CustomerId       uuid.UUID      `gorm:"type:uuid;not null;index"`
	MethodType       string         `gorm:"type:varchar(50);not null"`
	MandateStatus    string         `gorm:"type:varchar(50);default:'pending'"`
	IsActive         bool           `gorm:"default:true;index"`
	IsPrimary        bool           `gorm:"default:false"`
	EncryptedDetails datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt        time.Time      `gorm:"autoCreateTime"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime"`
}

func (CustomerPaymentMethod) TableName() string {
	return "customer_payment_methods"
}
