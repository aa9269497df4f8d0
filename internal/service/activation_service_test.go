package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"circletel-admin-be/internal/dto"
	"circletel-admin-be/internal/entity"
	"circletel-admin-be/pkg/lifecycle"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activationFixture() (*fakeUow, *entity.Order, *entity.PaymentMethod) {
	uow := newFakeUow()

	method := &entity.PaymentMethod{
		Id:            uuid.New(),
		CustomerId:    uuid.New(),
		MethodType:    "debit_order",
		MandateStatus: "active",
		IsActive:      true,
		EncryptedDetails: map[string]interface{}{
			"verified": true,
		},
	}
	uow.methods.Create(context.Background(), method)

	order := &entity.Order{
		Id:                      uuid.New(),
		OrderNumber:             "ORD-2025-00042",
		CustomerId:              method.CustomerId,
		CustomerName:            "Thabo Mokoena",
		CustomerEmail:           "thabo@example.co.za",
		PackageName:             "HomeFibre Premium",
		PackageSpeed:            "100/50 Mbps",
		PackagePrice:            899,
		Status:                  lifecycle.StatusInstallationCompleted,
		InstallationDocumentUrl: strPtr("/uploads/doc.pdf"),
		PaymentMethodId:         &method.Id,
	}
	uow.orders.Create(context.Background(), order)

	return uow, order, method
}

func newActivationService(uow *fakeUow, pub *fakePublisher) IActivationService {
	return NewActivationService(&fakeFactory{uow: uow}, pub, nil, nopLogger{})
}

func TestValidateAllChecksPass(t *testing.T) {
	uow, order, _ := activationFixture()
	svc := newActivationService(uow, &fakePublisher{})

	res, err := svc.Validate(context.Background(), order.Id)
	require.NoError(t, err)

	assert.True(t, res.CanActivate)
	assert.Empty(t, res.Errors)
	require.NotNil(t, res.BillingPreview)
	assert.Equal(t, float64(899), res.BillingPreview.MonthlyAmount)
}

func TestValidateCollectsAllErrors(t *testing.T) {
	uow, order, _ := activationFixture()
	order.InstallationDocumentUrl = nil
	order.PaymentMethodId = nil
	svc := newActivationService(uow, &fakePublisher{})

	res, err := svc.Validate(context.Background(), order.Id)
	require.NoError(t, err)

	assert.False(t, res.CanActivate)
	// Document missing + payment method missing, and nothing else.
	require.Len(t, res.Errors, 2)
}

func TestValidateWrongStatus(t *testing.T) {
	uow, order, _ := activationFixture()
	order.Status = lifecycle.StatusPending
	svc := newActivationService(uow, &fakePublisher{})

	res, err := svc.Validate(context.Background(), order.Id)
	require.NoError(t, err)

	assert.False(t, res.CanActivate)
	require.NotEmpty(t, res.Errors)
	assert.Contains(t, res.Errors[0], "installation_completed")
}

func TestValidatePaymentMethodChecks(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(m *entity.PaymentMethod)
		wantErr string
	}{
		{
			name:    "inactive method",
			mutate:  func(m *entity.PaymentMethod) { m.IsActive = false },
			wantErr: "not active",
		},
		{
			name:    "unverified method",
			mutate:  func(m *entity.PaymentMethod) { m.EncryptedDetails["verified"] = false },
			wantErr: "verified",
		},
		{
			name:    "pending mandate",
			mutate:  func(m *entity.PaymentMethod) { m.MandateStatus = "pending" },
			wantErr: "mandate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uow, order, method := activationFixture()
			tt.mutate(method)
			svc := newActivationService(uow, &fakePublisher{})

			res, err := svc.Validate(context.Background(), order.Id)
			require.NoError(t, err)

			assert.False(t, res.CanActivate)
			found := false
			for _, e := range res.Errors {
				if strings.Contains(strings.ToLower(e), tt.wantErr) {
					found = true
				}
			}
			assert.True(t, found, "expected an error mentioning %q, got %v", tt.wantErr, res.Errors)
		})
	}
}

func TestValidateVerifiedAsString(t *testing.T) {
	// The e-mandate flow has historically written verified as "true".
	uow, order, method := activationFixture()
	method.EncryptedDetails["verified"] = "true"
	svc := newActivationService(uow, &fakePublisher{})

	res, err := svc.Validate(context.Background(), order.Id)
	require.NoError(t, err)
	assert.True(t, res.CanActivate)
}

func TestValidateOrderNotFound(t *testing.T) {
	uow := newFakeUow()
	svc := newActivationService(uow, &fakePublisher{})

	_, err := svc.Validate(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestValidateLateMonthWarning(t *testing.T) {
	uow, order, _ := activationFixture()
	s := &activationService{uowFactory: &fakeFactory{uow: uow}, logger: nopLogger{}}

	res := s.validateOrder(context.Background(), uow, order, time.Date(2025, time.November, 27, 0, 0, 0, 0, time.UTC))
	assert.True(t, res.CanActivate)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, 1, res.BillingPreview.BillingCycleDay)
}

func TestActivateHappyPath(t *testing.T) {
	uow, order, _ := activationFixture()
	pub := &fakePublisher{}
	svc := newActivationService(uow, pub)

	res, err := svc.Activate(context.Background(), uuid.New(), order.Id, &dto.ActivationRequest{
		ConnectionId: "VUMA-123456",
	})
	require.NoError(t, err)

	assert.Equal(t, string(lifecycle.StatusActive), res.Order.Status)
	assert.True(t, res.Order.BillingActive)
	require.NotNil(t, res.Order.AccountNumber)
	assert.True(t, strings.HasPrefix(*res.Order.AccountNumber, "CT-"))
	require.NotNil(t, res.Billing)
	assert.GreaterOrEqual(t, res.Billing.ProrataAmount, 0.0)

	// Transaction wrapped the writes.
	assert.True(t, uow.began)
	assert.True(t, uow.committed)

	// Billable service record for the invoicing cron.
	require.Len(t, uow.services.services, 1)
	created := uow.services.services[0]
	assert.Equal(t, 24, created.ContractMonths)
	assert.Equal(t, "fibre", created.ServiceType)
	require.NotNil(t, created.SpeedDownMbps)
	assert.Equal(t, 100, *created.SpeedDownMbps)
	assert.Equal(t, 50, *created.SpeedUpMbps)

	// Audit trail entry.
	require.Len(t, uow.history.records, 1)
	assert.Equal(t, lifecycle.StatusActive, uow.history.records[0].NewStatus)

	// Welcome email queued for the worker.
	require.Len(t, pub.payloads, 1)
	var job dto.EmailJobMessage
	require.NoError(t, json.Unmarshal(pub.payloads[0], &job))
	assert.Equal(t, dto.EmailJobServiceActivated, job.Kind)
	assert.Equal(t, order.Id, job.OrderId)
}

func TestActivateKeepsSuppliedAccountNumber(t *testing.T) {
	uow, order, _ := activationFixture()
	svc := newActivationService(uow, &fakePublisher{})

	res, err := svc.Activate(context.Background(), uuid.New(), order.Id, &dto.ActivationRequest{
		AccountNumber: "CT-2025-90001",
	})
	require.NoError(t, err)
	assert.Equal(t, "CT-2025-90001", *res.Order.AccountNumber)
}

func TestActivateBlockedReturnsValidation(t *testing.T) {
	uow, order, _ := activationFixture()
	order.InstallationDocumentUrl = nil
	svc := newActivationService(uow, &fakePublisher{})

	_, err := svc.Activate(context.Background(), uuid.New(), order.Id, &dto.ActivationRequest{})
	require.Error(t, err)

	var blocked *ActivationBlockedError
	require.ErrorAs(t, err, &blocked)
	assert.False(t, blocked.Validation.CanActivate)
	assert.NotEmpty(t, blocked.Validation.Errors)

	// Nothing was written.
	assert.Empty(t, uow.services.services)
	assert.Empty(t, uow.history.records)
}

func TestActivateConcurrentLoser(t *testing.T) {
	uow, order, _ := activationFixture()
	uow.orders.guardFails = true
	svc := newActivationService(uow, &fakePublisher{})

	_, err := svc.Activate(context.Background(), uuid.New(), order.Id, &dto.ActivationRequest{})
	assert.ErrorIs(t, err, ErrConcurrentUpdate)
	assert.False(t, uow.committed)
}

func TestActivateFutureBillingStart(t *testing.T) {
	uow, order, _ := activationFixture()
	svc := newActivationService(uow, &fakePublisher{})

	res, err := svc.Activate(context.Background(), uuid.New(), order.Id, &dto.ActivationRequest{
		BillingStartDate: "2026-03-15",
	})
	require.NoError(t, err)

	// No pro-rata accrues before billing begins.
	assert.Equal(t, 0.0, res.Billing.ProrataAmount)
	assert.Equal(t, 0, res.Billing.ProrataDays)
	assert.Equal(t, "2026-03-15", res.Billing.NextBillingDate)
	assert.Equal(t, 15, res.Billing.BillingCycleDay)
}

func TestInferServiceType(t *testing.T) {
	assert.Equal(t, "lte", inferServiceType("HomeLTE Unlimited"))
	assert.Equal(t, "fixed_5g", inferServiceType("Home 5G Plus"))
	assert.Equal(t, "fibre", inferServiceType("HomeFibre Premium"))
}

func TestParseSpeed(t *testing.T) {
	down, up, ok := parseSpeed("100/50 Mbps")
	require.True(t, ok)
	assert.Equal(t, 100, down)
	assert.Equal(t, 50, up)

	_, _, ok = parseSpeed("")
	assert.False(t, ok)

	_, _, ok = parseSpeed("fast")
	assert.False(t, ok)
}
