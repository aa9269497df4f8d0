package entity

import (
	"time"

	"circletel-admin-be/pkg/lifecycle"

	"github.com/google/uuid"
)

type Order struct {
	Id            uuid.UUID
	OrderNumber   string
	CustomerId    uuid.UUID
	CustomerName  string
	CustomerEmail string

	PackageName     string
	PackageSpeed    string
	PackagePrice    float64
	InstallationFee float64

	InstallationAddress string
	Suburb              string
	City                string
	Province            string
	PostalCode          string

	Status                    lifecycle.Status
	InstallationScheduledDate *time.Time
	InstallationDocumentUrl   *string
	PaymentMethodId           *uuid.UUID

	AccountNumber *string
	ConnectionId  *string
	InternalNotes *string

	ActivationDate     *time.Time
	BillingActive      bool
	BillingActivatedAt *time.Time
	BillingStartDate   *time.Time
	NextBillingDate    *time.Time
	BillingCycleDay    *int
	ProrataAmount      *float64
	ProrataDays        *int

	CreatedAt time.Time
	UpdatedAt time.Time
}
