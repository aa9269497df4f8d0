package dto

import (
	"time"

	"github.com/google/uuid"
)

// OrderResponse mirrors the admin order detail payload.
type OrderResponse struct {
	Id                        uuid.UUID  `json:"id"`
	OrderNumber               string     `json:"order_number"`
	CustomerId                uuid.UUID  `json:"customer_id"`
	CustomerName              string     `json:"customer_name"`
	CustomerEmail             string     `json:"customer_email"`
	PackageName               string     `json:"package_name"`
	PackageSpeed              string     `json:"package_speed,omitempty"`
	PackagePrice              float64    `json:"package_price"`
	InstallationFee           float64    `json:"installation_fee"`
	InstallationAddress       string     `json:"installation_address,omitempty"`
	Status                    string     `json:"status"`
	InstallationScheduledDate *time.Time `json:"installation_scheduled_date,omitempty"`
	InstallationDocumentUrl   *string    `json:"installation_document_url,omitempty"`
	PaymentMethodId           *uuid.UUID `json:"payment_method_id,omitempty"`
	AccountNumber             *string    `json:"account_number,omitempty"`
	ConnectionId              *string    `json:"connection_id,omitempty"`
	ActivationDate            *time.Time `json:"activation_date,omitempty"`
	BillingActive             bool       `json:"billing_active"`
	NextBillingDate           *time.Time `json:"next_billing_date,omitempty"`
	BillingCycleDay           *int       `json:"billing_cycle_day,omitempty"`
	ProrataAmount             *float64   `json:"prorata_amount,omitempty"`
	ProrataDays               *int       `json:"prorata_days,omitempty"`
	CreatedAt                 time.Time  `json:"created_at"`
	UpdatedAt                 time.Time  `json:"updated_at"`
}

// OrderListResponse is the paginated admin list payload.
type OrderListResponse struct {
	Orders []*OrderResponse `json:"orders"`
	Total  int64            `json:"total"`
	Page   int              `json:"page"`
	Limit  int              `json:"limit"`
}

// StatusUpdateRequest is the body of PATCH /orders/:id/status.
type StatusUpdateRequest struct {
	Status        string `json:"status" validate:"required"`
	Notes         string `json:"notes,omitempty"`
	ScheduledDate string `json:"scheduledDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// ActivationRequest is the body of POST /orders/:id/activate.
type ActivationRequest struct {
	AccountNumber    string `json:"accountNumber,omitempty"`
	ConnectionId     string `json:"connectionId,omitempty"`
	Notes            string `json:"notes,omitempty"`
	BillingStartDate string `json:"billing_start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// BillingPreviewResponse is ephemeral: recomputed per request, never stored.
// Field names match what the activation modal renders.
type BillingPreviewResponse struct {
	ActivationDate  string  `json:"activationDate"`
	ProrataAmount   float64 `json:"prorataAmount"`
	ProrataDays     int     `json:"prorataDays"`
	NextBillingDate string  `json:"nextBillingDate"`
	BillingCycleDay int     `json:"billingCycleDay"`
	MonthlyAmount   float64 `json:"monthlyAmount"`
}

// ActivationValidationResponse aggregates every blocking issue at once so
// the UI never plays error whack-a-mole.
type ActivationValidationResponse struct {
	CanActivate    bool                    `json:"canActivate"`
	Errors         []string                `json:"errors"`
	Warnings       []string                `json:"warnings"`
	BillingPreview *BillingPreviewResponse `json:"billingPreview,omitempty"`
}

// ActivationResponse is returned from a successful activation.
type ActivationResponse struct {
	Order   *OrderResponse          `json:"order"`
	Billing *BillingPreviewResponse `json:"billing"`
}

// StatusActionResponse describes one allowed move from the current status.
type StatusActionResponse struct {
	Status        string `json:"status"`
	Label         string `json:"label"`
	Flow          string `json:"flow"`
	RequiresNotes bool   `json:"requires_notes"`
	RequiresDate  bool   `json:"requires_date"`
}

// StatusHistoryResponse is one entry of the order's audit trail.
type StatusHistoryResponse struct {
	Id              uuid.UUID `json:"id"`
	OldStatus       string    `json:"old_status"`
	NewStatus       string    `json:"new_status"`
	ChangeReason    string    `json:"change_reason,omitempty"`
	Automated       bool      `json:"automated"`
	StatusChangedAt time.Time `json:"status_changed_at"`
}

// CompleteInstallationResponse reports the document stored (if any).
type CompleteInstallationResponse struct {
	Order       *OrderResponse `json:"order"`
	DocumentUrl *string        `json:"document_url,omitempty"`
}
