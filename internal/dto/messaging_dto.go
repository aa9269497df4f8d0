package dto

import "github.com/google/uuid"

// Email job kinds handled by the consumer worker.
const (
	EmailJobServiceActivated      = "service_activated"
	EmailJobInstallationScheduled = "installation_scheduled"
)

// EmailJobMessage is the payload queued for the email worker. Everything
// the worker needs beyond the kind lives on the order row, so the message
// stays minimal and safely re-deliverable.
type EmailJobMessage struct {
	Kind    string    `json:"kind"`
	OrderId uuid.UUID `json:"order_id"`
}
