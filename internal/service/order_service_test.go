package service

import (
	"context"
	"encoding/json"
	"testing"

	"circletel-admin-be/internal/dto"
	"circletel-admin-be/internal/entity"
	"circletel-admin-be/pkg/lifecycle"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderFixture(status lifecycle.Status) (*fakeUow, *entity.Order) {
	uow := newFakeUow()
	order := &entity.Order{
		Id:            uuid.New(),
		OrderNumber:   "ORD-2025-00007",
		CustomerId:    uuid.New(),
		CustomerName:  "Lerato Dlamini",
		CustomerEmail: "lerato@example.co.za",
		PackageName:   "HomeFibre Essential",
		PackagePrice:  599,
		Status:        status,
	}
	uow.orders.Create(context.Background(), order)
	return uow, order
}

func newOrderService(uow *fakeUow, pub *fakePublisher) IOrderService {
	return NewOrderService(&fakeFactory{uow: uow}, pub, nil, nopLogger{})
}

func TestUpdateStatusValidTransition(t *testing.T) {
	uow, order := orderFixture(lifecycle.StatusPending)
	svc := newOrderService(uow, &fakePublisher{})

	res, err := svc.UpdateStatus(context.Background(), uuid.New(), order.Id, &dto.StatusUpdateRequest{
		Status: string(lifecycle.StatusPaymentMethodPending),
	})
	require.NoError(t, err)

	assert.Equal(t, string(lifecycle.StatusPaymentMethodPending), res.Status)
	require.Len(t, uow.history.records, 1)
	assert.Equal(t, lifecycle.StatusPending, uow.history.records[0].OldStatus)
	assert.Equal(t, lifecycle.StatusPaymentMethodPending, uow.history.records[0].NewStatus)
}

func TestUpdateStatusInvalidTransition(t *testing.T) {
	uow, order := orderFixture(lifecycle.StatusPending)
	svc := newOrderService(uow, &fakePublisher{})

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), order.Id, &dto.StatusUpdateRequest{
		Status: string(lifecycle.StatusActive),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not allowed")
	assert.Equal(t, lifecycle.StatusPending, order.Status)
}

func TestUpdateStatusActivationNotReachableViaPatch(t *testing.T) {
	// Activation has a dedicated flow; a plain status PATCH must not do it.
	uow, order := orderFixture(lifecycle.StatusInstallationCompleted)
	svc := newOrderService(uow, &fakePublisher{})

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), order.Id, &dto.StatusUpdateRequest{
		Status: string(lifecycle.StatusActive),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not allowed")
}

func TestUpdateStatusNotesRequired(t *testing.T) {
	uow, order := orderFixture(lifecycle.StatusPending)
	svc := newOrderService(uow, &fakePublisher{})

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), order.Id, &dto.StatusUpdateRequest{
		Status: string(lifecycle.StatusCancelled),
	})
	assert.ErrorIs(t, err, ErrNotesRequired)
}

func TestUpdateStatusScheduleRequiresDate(t *testing.T) {
	uow, order := orderFixture(lifecycle.StatusPaymentMethodRegistered)
	svc := newOrderService(uow, &fakePublisher{})

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), order.Id, &dto.StatusUpdateRequest{
		Status: string(lifecycle.StatusInstallationScheduled),
		Notes:  "Installer booked",
	})
	assert.ErrorIs(t, err, ErrDateRequired)
}

func TestUpdateStatusScheduleQueuesEmail(t *testing.T) {
	uow, order := orderFixture(lifecycle.StatusPaymentMethodRegistered)
	pub := &fakePublisher{}
	svc := newOrderService(uow, pub)

	res, err := svc.UpdateStatus(context.Background(), uuid.New(), order.Id, &dto.StatusUpdateRequest{
		Status:        string(lifecycle.StatusInstallationScheduled),
		Notes:         "Installer booked",
		ScheduledDate: "2025-12-03",
	})
	require.NoError(t, err)

	require.NotNil(t, res.InstallationScheduledDate)
	assert.Equal(t, "2025-12-03", res.InstallationScheduledDate.Format("2006-01-02"))

	require.Len(t, pub.payloads, 1)
	var job dto.EmailJobMessage
	require.NoError(t, json.Unmarshal(pub.payloads[0], &job))
	assert.Equal(t, dto.EmailJobInstallationScheduled, job.Kind)
}

func TestUpdateStatusConcurrentLoser(t *testing.T) {
	uow, order := orderFixture(lifecycle.StatusPending)
	uow.orders.guardFails = true
	svc := newOrderService(uow, &fakePublisher{})

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), order.Id, &dto.StatusUpdateRequest{
		Status: string(lifecycle.StatusPaymentMethodPending),
	})
	assert.ErrorIs(t, err, ErrConcurrentUpdate)
	assert.Empty(t, uow.history.records)
}

func TestUpdateStatusUnknownTarget(t *testing.T) {
	uow, order := orderFixture(lifecycle.StatusPending)
	svc := newOrderService(uow, &fakePublisher{})

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), order.Id, &dto.StatusUpdateRequest{
		Status: "shipped",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown order status")
}

func TestActionsForCurrentStatus(t *testing.T) {
	uow, order := orderFixture(lifecycle.StatusInstallationCompleted)
	svc := newOrderService(uow, &fakePublisher{})

	actions, err := svc.Actions(context.Background(), order.Id)
	require.NoError(t, err)
	require.Len(t, actions, 3)

	flows := map[string]bool{}
	for _, a := range actions {
		flows[a.Flow] = true
	}
	assert.True(t, flows["activation"])
	assert.True(t, flows["upload_document"])
}

func TestActionsTerminalStatus(t *testing.T) {
	uow, order := orderFixture(lifecycle.StatusCancelled)
	svc := newOrderService(uow, &fakePublisher{})

	actions, err := svc.Actions(context.Background(), order.Id)
	require.NoError(t, err)
	assert.Empty(t, actions)
}

func TestCompleteInstallation(t *testing.T) {
	uow, order := orderFixture(lifecycle.StatusInstallationInProgress)
	svc := newOrderService(uow, &fakePublisher{})

	doc := "/uploads/site-report.pdf"
	res, err := svc.CompleteInstallation(context.Background(), uuid.New(), order.Id, "Fibre spliced and tested", &doc)
	require.NoError(t, err)

	assert.Equal(t, string(lifecycle.StatusInstallationCompleted), res.Order.Status)
	require.NotNil(t, res.DocumentUrl)
	assert.Equal(t, doc, *res.DocumentUrl)
	require.Len(t, uow.history.records, 1)
}

func TestCompleteInstallationWrongStatus(t *testing.T) {
	uow, order := orderFixture(lifecycle.StatusPending)
	svc := newOrderService(uow, &fakePublisher{})

	_, err := svc.CompleteInstallation(context.Background(), uuid.New(), order.Id, "", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not allowed")
}

func TestAttachDocumentKeepsStatus(t *testing.T) {
	uow, order := orderFixture(lifecycle.StatusActive)
	svc := newOrderService(uow, &fakePublisher{})

	res, err := svc.AttachDocument(context.Background(), uuid.New(), order.Id, "/uploads/replacement.pdf")
	require.NoError(t, err)

	assert.Equal(t, string(lifecycle.StatusActive), res.Status)
	require.NotNil(t, res.InstallationDocumentUrl)
	assert.Equal(t, "/uploads/replacement.pdf", *res.InstallationDocumentUrl)
}

func TestAttachDocumentRejectedEarlyInLifecycle(t *testing.T) {
	uow, order := orderFixture(lifecycle.StatusPending)
	svc := newOrderService(uow, &fakePublisher{})

	_, err := svc.AttachDocument(context.Background(), uuid.New(), order.Id, "/uploads/too-early.pdf")
	assert.ErrorIs(t, err, ErrUploadNotAllowed)
}

func TestListFiltersByStatus(t *testing.T) {
	uow, _ := orderFixture(lifecycle.StatusPending)
	active := &entity.Order{
		Id:          uuid.New(),
		OrderNumber: "ORD-2025-00008",
		CustomerId:  uuid.New(),
		Status:      lifecycle.StatusActive,
	}
	uow.orders.Create(context.Background(), active)
	svc := newOrderService(uow, &fakePublisher{})

	res, err := svc.List(context.Background(), "active", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Total)
	require.Len(t, res.Orders, 1)
	assert.Equal(t, "ORD-2025-00008", res.Orders[0].OrderNumber)
}

func TestListRejectsUnknownStatusFilter(t *testing.T) {
	uow, _ := orderFixture(lifecycle.StatusPending)
	svc := newOrderService(uow, &fakePublisher{})

	_, err := svc.List(context.Background(), "shipped", 1, 20)
	require.Error(t, err)
}

func TestShowNotFound(t *testing.T) {
	uow := newFakeUow()
	svc := newOrderService(uow, &fakePublisher{})

	_, err := svc.Show(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
