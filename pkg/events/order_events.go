package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeOrderStatusChanged = "ORDER_STATUS_CHANGED"
	TypeOrderActivated     = "ORDER_ACTIVATED"
	TypeDocumentUploaded   = "ORDER_DOCUMENT_UPLOADED"
)

// NewOrderStatusChanged records a transition on the order lifecycle.
func NewOrderStatusChanged(orderId uuid.UUID, orderNumber, oldStatus, newStatus, reason string) Event {
	return BaseEvent{
		Type: TypeOrderStatusChanged,
		Data: map[string]interface{}{
			"order_id":     orderId.String(),
			"order_number": orderNumber,
			"old_status":   oldStatus,
			"new_status":   newStatus,
			"reason":       reason,
		},
		OccurredAt: time.Now(),
	}
}

// NewOrderActivated records a successful activation with its billing outcome.
func NewOrderActivated(orderId uuid.UUID, orderNumber string, prorataAmount float64, nextBillingDate time.Time) Event {
	return BaseEvent{
		Type: TypeOrderActivated,
		Data: map[string]interface{}{
			"order_id":          orderId.String(),
			"order_number":      orderNumber,
			"prorata_amount":    prorataAmount,
			"next_billing_date": nextBillingDate.Format("2006-01-02"),
		},
		OccurredAt: time.Now(),
	}
}

// NewDocumentUploaded records an installation document attach/replace.
func NewDocumentUploaded(orderId uuid.UUID, orderNumber, documentUrl string) Event {
	return BaseEvent{
		Type: TypeDocumentUploaded,
		Data: map[string]interface{}{
			"order_id":     orderId.String(),
			"order_number": orderNumber,
			"document_url": documentUrl,
		},
		OccurredAt: time.Now(),
	}
}
