package dto

import (
	"time"

	"github.com/google/uuid"
)

// PaymentMethodResponse is what the activation validator and the admin UI
// read. Encrypted details never leave the server; only derived flags do.
type PaymentMethodResponse struct {
	Id            uuid.UUID `json:"id"`
	CustomerId    uuid.UUID `json:"customer_id"`
	MethodType    string    `json:"method_type"`
	MandateStatus string    `json:"mandate_status"`
	Verified      bool      `json:"verified"`
	IsActive      bool      `json:"is_active"`
	IsPrimary     bool      `json:"is_primary"`
	CreatedAt     time.Time `json:"created_at"`
}
