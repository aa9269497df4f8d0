package entity

import (
	"time"

	"github.com/google/uuid"
)

const MethodTypeDebitOrder = "debit_order"

type PaymentMethod struct {
	Id            uuid.UUID
	CustomerId    uuid.UUID
	MethodType    string
	MandateStatus string
	IsActive      bool
	IsPrimary     bool
	// EncryptedDetails is the opaque blob written by the e-mandate flow.
	// Verification state lives inside it.
	EncryptedDetails map[string]interface{}
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Verified reads the verification flag out of the encrypted details blob.
// The mandate flow has historically written it as both bool and "true".
func (p *PaymentMethod) Verified() bool {
	if p.EncryptedDetails == nil {
		return false
	}
	switch v := p.EncryptedDetails["verified"].(type) {
	case bool:
		return v
	case string:
		return v == "true"
	default:
		return false
	}
}

// RequiresMandate reports whether this method needs an active debit-order
// mandate before it can fund an activation.
func (p *PaymentMethod) RequiresMandate() bool {
	return p.MethodType == MethodTypeDebitOrder
}
