package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"circletel-admin-be/internal/dto"
	"circletel-admin-be/internal/entity"
	"circletel-admin-be/internal/pkg/logger"
	"circletel-admin-be/internal/repository/specification"
	"circletel-admin-be/internal/repository/unitofwork"
	"circletel-admin-be/pkg/events"
	"circletel-admin-be/pkg/lifecycle"
	pktNats "circletel-admin-be/pkg/nats"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	// ErrConcurrentUpdate means another admin changed the order between
	// the read and the guarded write.
	ErrConcurrentUpdate = errors.New("order was modified by another admin, please refresh")
	ErrNotesRequired    = errors.New("notes are required for this status change")
	ErrDateRequired     = errors.New("a scheduled date is required for this status change")
	ErrUploadNotAllowed = errors.New("documents can only be attached after installation is completed")
)

type IOrderService interface {
	List(ctx context.Context, status string, page, limit int) (*dto.OrderListResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.OrderResponse, error)
	Actions(ctx context.Context, id uuid.UUID) ([]*dto.StatusActionResponse, error)
	History(ctx context.Context, id uuid.UUID) ([]*dto.StatusHistoryResponse, error)
	UpdateStatus(ctx context.Context, adminId uuid.UUID, id uuid.UUID, req *dto.StatusUpdateRequest) (*dto.OrderResponse, error)
	CompleteInstallation(ctx context.Context, adminId uuid.UUID, id uuid.UUID, notes string, documentUrl *string) (*dto.CompleteInstallationResponse, error)
	AttachDocument(ctx context.Context, adminId uuid.UUID, id uuid.UUID, documentUrl string) (*dto.OrderResponse, error)
}

type orderService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	logger           logger.ILogger
}

func NewOrderService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IOrderService {
	return &orderService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		logger:           log,
	}
}

func (s *orderService) List(ctx context.Context, status string, page, limit int) (*dto.OrderListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	filterSpecs := []specification.Specification{}
	if status != "" {
		st := lifecycle.Status(status)
		if !lifecycle.IsValid(st) {
			return nil, fmt.Errorf("unknown order status: %q", status)
		}
		filterSpecs = append(filterSpecs, specification.ByStatus{Status: st})
	}

	total, err := uow.OrderRepository().Count(ctx, filterSpecs...)
	if err != nil {
		return nil, err
	}

	listSpecs := append(filterSpecs,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: (page - 1) * limit},
	)
	orders, err := uow.OrderRepository().FindAll(ctx, listSpecs...)
	if err != nil {
		return nil, err
	}

	res := &dto.OrderListResponse{
		Orders: make([]*dto.OrderResponse, 0, len(orders)),
		Total:  total,
		Page:   page,
		Limit:  limit,
	}
	for _, o := range orders {
		res.Orders = append(res.Orders, toOrderResponse(o))
	}
	return res, nil
}

func (s *orderService) Show(ctx context.Context, id uuid.UUID) (*dto.OrderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	order, err := uow.OrderRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return toOrderResponse(order), nil
}

// Actions returns the moves the admin UI may offer for the order's current
// status, straight from the transition table.
func (s *orderService) Actions(ctx context.Context, id uuid.UUID) ([]*dto.StatusActionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	order, err := uow.OrderRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	actions, err := lifecycle.ActionsFor(order.Status)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.StatusActionResponse, 0, len(actions))
	for _, a := range actions {
		res = append(res, &dto.StatusActionResponse{
			Status:        string(a.Target),
			Label:         a.Label,
			Flow:          string(a.Flow),
			RequiresNotes: a.RequiresNotes,
			RequiresDate:  a.RequiresDate,
		})
	}
	return res, nil
}

func (s *orderService) History(ctx context.Context, id uuid.UUID) ([]*dto.StatusHistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	order, err := uow.OrderRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	records, err := uow.StatusHistoryRepository().FindAll(ctx,
		specification.Filter("entity_type", entity.EntityTypeConsumerOrder),
		specification.Filter("entity_id", id),
		specification.OrderBy{Field: "status_changed_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.StatusHistoryResponse, 0, len(records))
	for _, r := range records {
		res = append(res, &dto.StatusHistoryResponse{
			Id:              r.Id,
			OldStatus:       string(r.OldStatus),
			NewStatus:       string(r.NewStatus),
			ChangeReason:    r.ChangeReason,
			Automated:       r.Automated,
			StatusChangedAt: r.StatusChangedAt,
		})
	}
	return res, nil
}

// UpdateStatus performs a generic lifecycle transition. Dedicated flows
// (completion, activation, document upload) are rejected here and must go
// through their own endpoints.
func (s *orderService) UpdateStatus(ctx context.Context, adminId uuid.UUID, id uuid.UUID, req *dto.StatusUpdateRequest) (*dto.OrderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	order, err := uow.OrderRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	target := lifecycle.Status(req.Status)
	if !lifecycle.IsValid(target) {
		return nil, fmt.Errorf("unknown order status: %q", req.Status)
	}

	action, err := lifecycle.Find(order.Status, target)
	if err != nil {
		return nil, err
	}
	if action.RequiresNotes && req.Notes == "" {
		return nil, ErrNotesRequired
	}

	updates := map[string]interface{}{
		"status": string(target),
	}
	if req.Notes != "" {
		updates["internal_notes"] = req.Notes
	}

	var scheduledDate *time.Time
	if action.RequiresDate {
		if req.ScheduledDate == "" {
			return nil, ErrDateRequired
		}
		d, err := time.Parse("2006-01-02", req.ScheduledDate)
		if err != nil {
			return nil, fmt.Errorf("invalid scheduled date: %w", err)
		}
		scheduledDate = &d
		updates["installation_scheduled_date"] = d
	}

	affected, err := uow.OrderRepository().UpdateStatusGuarded(ctx, id, order.Status, updates)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrConcurrentUpdate
	}

	if err := s.recordHistory(ctx, uow, order, target, req.Notes, adminId); err != nil {
		s.logger.Error("OrderService", "Failed to record status history", map[string]interface{}{"order_id": id, "error": err.Error()})
	}

	s.publishEvent(ctx, events.NewOrderStatusChanged(order.Id, order.OrderNumber, string(order.Status), string(target), req.Notes))

	if target == lifecycle.StatusInstallationScheduled && scheduledDate != nil {
		s.queueEmail(ctx, dto.EmailJobMessage{Kind: dto.EmailJobInstallationScheduled, OrderId: order.Id})
	}

	updated, err := uow.OrderRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(updated), nil
}

// CompleteInstallation moves installation_in_progress to
// installation_completed, optionally attaching the uploaded document in
// the same write.
func (s *orderService) CompleteInstallation(ctx context.Context, adminId uuid.UUID, id uuid.UUID, notes string, documentUrl *string) (*dto.CompleteInstallationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	order, err := uow.OrderRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.Status != lifecycle.StatusInstallationInProgress {
		return nil, fmt.Errorf("transition %s -> %s is not allowed", order.Status, lifecycle.StatusInstallationCompleted)
	}

	updates := map[string]interface{}{
		"status": string(lifecycle.StatusInstallationCompleted),
	}
	if notes != "" {
		updates["internal_notes"] = notes
	}
	if documentUrl != nil {
		updates["installation_document_url"] = *documentUrl
	}

	affected, err := uow.OrderRepository().UpdateStatusGuarded(ctx, id, order.Status, updates)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrConcurrentUpdate
	}

	reason := notes
	if reason == "" {
		reason = "Installation completed"
	}
	if err := s.recordHistory(ctx, uow, order, lifecycle.StatusInstallationCompleted, reason, adminId); err != nil {
		s.logger.Error("OrderService", "Failed to record status history", map[string]interface{}{"order_id": id, "error": err.Error()})
	}

	s.publishEvent(ctx, events.NewOrderStatusChanged(order.Id, order.OrderNumber, string(order.Status), string(lifecycle.StatusInstallationCompleted), reason))
	if documentUrl != nil {
		s.publishEvent(ctx, events.NewDocumentUploaded(order.Id, order.OrderNumber, *documentUrl))
	}

	updated, err := uow.OrderRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	return &dto.CompleteInstallationResponse{
		Order:       toOrderResponse(updated),
		DocumentUrl: updated.InstallationDocumentUrl,
	}, nil
}

// AttachDocument replaces the installation document without touching the
// status. Allowed only where the transition table offers the upload action.
func (s *orderService) AttachDocument(ctx context.Context, adminId uuid.UUID, id uuid.UUID, documentUrl string) (*dto.OrderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	order, err := uow.OrderRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	actions, err := lifecycle.ActionsFor(order.Status)
	if err != nil {
		return nil, err
	}
	allowed := false
	for _, a := range actions {
		if a.SideEffectOnly() {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, ErrUploadNotAllowed
	}

	affected, err := uow.OrderRepository().UpdateStatusGuarded(ctx, id, order.Status, map[string]interface{}{
		"installation_document_url": documentUrl,
	})
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrConcurrentUpdate
	}

	if err := s.recordHistory(ctx, uow, order, order.Status, "Installation document uploaded", adminId); err != nil {
		s.logger.Error("OrderService", "Failed to record status history", map[string]interface{}{"order_id": id, "error": err.Error()})
	}

	s.publishEvent(ctx, events.NewDocumentUploaded(order.Id, order.OrderNumber, documentUrl))

	updated, err := uow.OrderRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(updated), nil
}

func (s *orderService) recordHistory(ctx context.Context, uow unitofwork.UnitOfWork, order *entity.Order, newStatus lifecycle.Status, reason string, adminId uuid.UUID) error {
	changedBy := adminId
	return uow.StatusHistoryRepository().Create(ctx, &entity.OrderStatusHistory{
		Id:              uuid.New(),
		EntityType:      entity.EntityTypeConsumerOrder,
		EntityId:        order.Id,
		OldStatus:       order.Status,
		NewStatus:       newStatus,
		ChangeReason:    reason,
		ChangedBy:       &changedBy,
		Automated:       false,
		StatusChangedAt: time.Now(),
		CreatedAt:       time.Now(),
	})
}

// publishEvent pushes to the event bus; notifications are auxiliary and
// never fail the request.
func (s *orderService) publishEvent(ctx context.Context, evt events.Event) {
	if s.eventPublisher == nil {
		return
	}
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.logger.Warn("OrderService", "Failed to publish event", map[string]interface{}{"type": evt.EventType(), "error": err.Error()})
	}
}

func (s *orderService) queueEmail(ctx context.Context, job dto.EmailJobMessage) {
	if s.publisherService == nil {
		return
	}
	payload, err := json.Marshal(job)
	if err != nil {
		return
	}
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.logger.Warn("OrderService", "Failed to queue email job", map[string]interface{}{"kind": job.Kind, "error": err.Error()})
	}
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	return &dto.OrderResponse{
		Id:                        o.Id,
		OrderNumber:               o.OrderNumber,
		CustomerId:                o.CustomerId,
		CustomerName:              o.CustomerName,
		CustomerEmail:             o.CustomerEmail,
		PackageName:               o.PackageName,
		PackageSpeed:              o.PackageSpeed,
		PackagePrice:              o.PackagePrice,
		InstallationFee:           o.InstallationFee,
		InstallationAddress:       o.InstallationAddress,
		Status:                    string(o.Status),
		InstallationScheduledDate: o.InstallationScheduledDate,
		InstallationDocumentUrl:   o.InstallationDocumentUrl,
		PaymentMethodId:           o.PaymentMethodId,
		AccountNumber:             o.AccountNumber,
		ConnectionId:              o.ConnectionId,
		ActivationDate:            o.ActivationDate,
		BillingActive:             o.BillingActive,
		NextBillingDate:           o.NextBillingDate,
		BillingCycleDay:           o.BillingCycleDay,
		ProrataAmount:             o.ProrataAmount,
		ProrataDays:               o.ProrataDays,
		CreatedAt:                 o.CreatedAt,
		UpdatedAt:                 o.UpdatedAt,
	}
}
