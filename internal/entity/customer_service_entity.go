package entity

import (
	"time"

	"github.com/google/uuid"
)

// CustomerService is the billable service record created when an order is
// activated. The invoice generation cron picks services up from here.
type CustomerService struct {
	Id                  uuid.UUID
	CustomerId          uuid.UUID
	ServiceType         string
	PackageName         string
	SpeedDownMbps       *int
	SpeedUpMbps         *int
	DataCapGB           *int
	InstallationAddress string
	MonthlyPrice        float64
	SetupFee            float64
	Status              string
	Active              bool
	ActivationDate      *time.Time
	ProviderName        string
	ProviderCode        string
	ContractMonths      int
	ContractStartDate   *time.Time
	ContractEndDate     *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
