package model

import (
	"time"

	"github.com/google/uuid"
)

type CustomerService struct {
	Id                  uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CustomerId          uuid.UUID  `gorm:"type:uuid;not null;index"`
	ServiceType         string     `gorm:"type:varchar(50);not null"`
	PackageName         string     `gorm:"type:varchar(255);not null"`
	SpeedDownMbps       *int       `gorm:"column:speed_down"`
	SpeedUpMbps         *int       `gorm:"column:speed_up"`
	DataCapGB           *int       `gorm:"column:data_cap_gb"`
	InstallationAddress string     `gorm:"type:text"`
	MonthlyPrice        float64    `gorm:"type:numeric(10,2);not null"`
	SetupFee            float64    `gorm:"type:numeric(10,2);default:0"`
	Status              string     `gorm:"type:varchar(50);not null;default:'active'"`
	Active              bool       `gorm:"default:true"`
	ActivationDate      *time.Time `gorm:"type:date"`
	ProviderName        string     `gorm:"type:varchar(100)"`
	ProviderCode        string     `gorm:"type:varchar(50)"`
	ContractMonths      int        `gorm:"default:24"`
	ContractStartDate   *time.Time `gorm:"type:date"`
	ContractEndDate     *time.Time `gorm:"type:date"`
	CreatedAt           time.Time  `gorm:"autoCreateTime"`
	UpdatedAt           time.Time  `gorm:"autoUpdateTime"`
}

func (CustomerService) TableName() string {
	return "customer_services"
}
