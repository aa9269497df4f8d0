package model

import (
	"time"

	"github.com/google/uuid"
)

type ConsumerOrder struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderNumber   string    `gorm:"type:varchar(50);not null;uniqueIndex"`
	CustomerId    uuid.UUID `gorm:"type:uuid;not null;index"`
	CustomerName  string    `gorm:"type:varchar(255);not null"`
	CustomerEmail string    `gorm:"type:varchar(255);not null"`

	PackageName     string  `gorm:"type:varchar(255);not null"`
	PackageSpeed    string  `gorm:"type:varchar(50)"`
	PackagePrice    float64 `gorm:"type:numeric(10,2);not null"`
	InstallationFee float64 `gorm:"type:numeric(10,2);default:0"`

	InstallationAddress string `gorm:"type:text"`
	Suburb              string `gorm:"type:varchar(255)"`
	City                string `gorm:"type:varchar(255)"`
	Province            string `gorm:"type:varchar(255)"`
	PostalCode          string `gorm:"type:varchar(20)"`

	Status                    string     `gorm:"type:order_status;not null;default:'pending';index"`
	InstallationScheduledDate *time.Time `gorm:"type:timestamptz"`
	InstallationDocumentUrl   *string    `gorm:"type:text"`
	PaymentMethodId           *uuid.UUID `gorm:"type:uuid;index"`

	AccountNumber *string `gorm:"type:varchar(50)"`
	ConnectionId  *string `gorm:"type:varchar(100)"`
	InternalNotes *string `gorm:"type:text"`

	ActivationDate     *time.Time `gorm:"type:date"`
	BillingActive      bool       `gorm:"default:false"`
	BillingActivatedAt *time.Time `gorm:"type:timestamptz"`
	BillingStartDate   *time.Time `gorm:"type:date"`
	NextBillingDate    *time.Time `gorm:"type:date"`
	BillingCycleDay    *int       `gorm:"type:smallint"`
	ProrataAmount      *float64   `gorm:"type:numeric(10,2)"`
	ProrataDays        *int       `gorm:"type:smallint"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (ConsumerOrder) TableName() string {
	return "consumer_orders"
}
