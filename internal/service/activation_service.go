package service

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
	"time"

	"circletel-admin-be/internal/dto"
	"circletel-admin-be/internal/entity"
	"circletel-admin-be/internal/pkg/logger"
	"circletel-admin-be/internal/repository/specification"
	"circletel-admin-be/internal/repository/unitofwork"
	"circletel-admin-be/pkg/billing"
	"circletel-admin-be/pkg/events"
	"circletel-admin-be/pkg/lifecycle"
	pktNats "circletel-admin-be/pkg/nats"

	"github.com/google/uuid"
)

// ActivationBlockedError carries the full validation result so the client
// can show every blocking issue at once.
type ActivationBlockedError struct {
	Validation *dto.ActivationValidationResponse
}

func (e *ActivationBlockedError) Error() string {
	if e.Validation != nil && len(e.Validation.Errors) > 0 {
		return strings.Join(e.Validation.Errors, "; ")
	}
	return "order cannot be activated"
}

type IActivationService interface {
	Validate(ctx context.Context, id uuid.UUID) (*dto.ActivationValidationResponse, error)
	Activate(ctx context.Context, adminId uuid.UUID, id uuid.UUID, req *dto.ActivationRequest) (*dto.ActivationResponse, error)
}

type activationService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	logger           logger.ILogger
}

func NewActivationService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IActivationService {
	return &activationService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		logger:           log,
	}
}

// Validate runs every activation precondition and collects all failures.
// No short-circuiting: the admin sees the complete list in one round trip.
func (s *activationService) Validate(ctx context.Context, id uuid.UUID) (*dto.ActivationValidationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	order, err := uow.OrderRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return s.validateOrder(ctx, uow, order, time.Now()), nil
}

func (s *activationService) validateOrder(ctx context.Context, uow unitofwork.UnitOfWork, order *entity.Order, activationDate time.Time) *dto.ActivationValidationResponse {
	res := &dto.ActivationValidationResponse{
		Errors:   []string{},
		Warnings: []string{},
	}

	if order.Status != lifecycle.StatusInstallationCompleted {
		res.Errors = append(res.Errors, fmt.Sprintf("Order must be in installation_completed status (currently %s)", order.Status))
	}

	if order.InstallationDocumentUrl == nil || *order.InstallationDocumentUrl == "" {
		res.Errors = append(res.Errors, "Installation document has not been uploaded")
	}

	if order.PaymentMethodId == nil {
		res.Errors = append(res.Errors, "Customer has no registered payment method")
	} else {
		method, err := uow.PaymentMethodRepository().FindOne(ctx, specification.ByID{ID: *order.PaymentMethodId})
		if err != nil {
			// A lookup failure blocks activation; it is never retried here.
			res.Errors = append(res.Errors, "Could not verify the customer's payment method")
			s.logger.Error("ActivationService", "Payment method lookup failed", map[string]interface{}{"order_id": order.Id, "error": err.Error()})
		} else if method == nil {
			res.Errors = append(res.Errors, "Customer has no registered payment method")
		} else {
			if !method.IsActive {
				res.Errors = append(res.Errors, "Payment method is not active")
			}
			if !method.Verified() {
				res.Errors = append(res.Errors, "Payment method has not been verified")
			}
			if method.RequiresMandate() && method.MandateStatus != "active" {
				res.Errors = append(res.Errors, "Debit order mandate is not active")
			}
		}
	}

	preview := billing.Calculate(order.PackagePrice, activationDate)
	if activationDate.Day() >= 25 {
		res.Warnings = append(res.Warnings, "Activating after the 25th: the first full invoice will only be raised on the 1st of next month")
	}

	res.CanActivate = len(res.Errors) == 0
	res.BillingPreview = toBillingPreview(order.PackagePrice, activationDate, preview)
	return res
}

// Activate performs the activation transaction. Preconditions are
// re-checked here, not just in the read-only validator, and the final
// status write is guarded so a concurrent activation loses cleanly.
func (s *activationService) Activate(ctx context.Context, adminId uuid.UUID, id uuid.UUID, req *dto.ActivationRequest) (*dto.ActivationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	order, err := uow.OrderRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	now := time.Now()
	validation := s.validateOrder(ctx, uow, order, now)
	if !validation.CanActivate {
		return nil, &ActivationBlockedError{Validation: validation}
	}

	var prorata billing.ProRata
	var billingStart *time.Time
	if req.BillingStartDate != "" {
		d, err := time.Parse("2006-01-02", req.BillingStartDate)
		if err != nil {
			return nil, fmt.Errorf("invalid billing start date: %w", err)
		}
		billingStart = &d
		prorata = billing.ForFutureStart(d)
	} else {
		prorata = billing.Calculate(order.PackagePrice, now)
	}

	accountNumber := req.AccountNumber
	if accountNumber == "" {
		accountNumber, err = generateAccountNumber(now)
		if err != nil {
			return nil, err
		}
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	updates := map[string]interface{}{
		"status":               string(lifecycle.StatusActive),
		"account_number":       accountNumber,
		"activation_date":      now,
		"billing_active":       true,
		"billing_activated_at": now,
		"next_billing_date":    prorata.NextBillingDate,
		"billing_cycle_day":    prorata.CycleDay,
		"prorata_amount":       prorata.Amount,
		"prorata_days":         prorata.Days,
	}
	if req.ConnectionId != "" {
		updates["connection_id"] = req.ConnectionId
	}
	if req.Notes != "" {
		updates["internal_notes"] = req.Notes
	}
	if billingStart != nil {
		updates["billing_start_date"] = *billingStart
	}

	affected, err := uow.OrderRepository().UpdateStatusGuarded(ctx, id, lifecycle.StatusInstallationCompleted, updates)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		// Another admin activated (or failed) the order first.
		return nil, ErrConcurrentUpdate
	}

	service := buildCustomerService(order, accountNumber, now)
	if err := uow.CustomerServiceRepository().Create(ctx, service); err != nil {
		return nil, err
	}

	changedBy := adminId
	if err := uow.StatusHistoryRepository().Create(ctx, &entity.OrderStatusHistory{
		Id:              uuid.New(),
		EntityType:      entity.EntityTypeConsumerOrder,
		EntityId:        order.Id,
		OldStatus:       lifecycle.StatusInstallationCompleted,
		NewStatus:       lifecycle.StatusActive,
		ChangeReason:    "Service activated",
		ChangedBy:       &changedBy,
		Automated:       false,
		StatusChangedAt: now,
		CreatedAt:       now,
	}); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	// Auxiliary: notifications and email must not fail the activation.
	if s.eventPublisher != nil {
		if err := s.eventPublisher.Publish(ctx, events.NewOrderActivated(order.Id, order.OrderNumber, prorata.Amount, prorata.NextBillingDate)); err != nil {
			s.logger.Warn("ActivationService", "Failed to publish activation event", map[string]interface{}{"order_id": order.Id, "error": err.Error()})
		}
	}
	if s.publisherService != nil {
		payload, _ := json.Marshal(dto.EmailJobMessage{Kind: dto.EmailJobServiceActivated, OrderId: order.Id})
		if err := s.publisherService.Publish(ctx, payload); err != nil {
			s.logger.Warn("ActivationService", "Failed to queue activation email", map[string]interface{}{"order_id": order.Id, "error": err.Error()})
		}
	}

	updated, err := uow.OrderRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	return &dto.ActivationResponse{
		Order:   toOrderResponse(updated),
		Billing: toBillingPreview(order.PackagePrice, now, prorata),
	}, nil
}

func toBillingPreview(monthlyPrice float64, activationDate time.Time, p billing.ProRata) *dto.BillingPreviewResponse {
	return &dto.BillingPreviewResponse{
		ActivationDate:  activationDate.Format("2006-01-02"),
		ProrataAmount:   p.Amount,
		ProrataDays:     p.Days,
		NextBillingDate: p.NextBillingDate.Format("2006-01-02"),
		BillingCycleDay: p.CycleDay,
		MonthlyAmount:   monthlyPrice,
	}
}

// generateAccountNumber produces a CT-YYYY-XXXXX account number when the
// admin leaves the field blank.
func generateAccountNumber(now time.Time) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(100000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("CT-%d-%05d", now.Year(), n), nil
}

// buildCustomerService derives the billable service record the invoicing
// cron consumes. Speeds come from the package speed string ("100/50 Mbps").
func buildCustomerService(order *entity.Order, accountNumber string, activatedAt time.Time) *entity.CustomerService {
	contractEnd := activatedAt.AddDate(0, 24, 0)

	svc := &entity.CustomerService{
		Id:                  uuid.New(),
		CustomerId:          order.CustomerId,
		ServiceType:         inferServiceType(order.PackageName),
		PackageName:         order.PackageName,
		InstallationAddress: order.InstallationAddress,
		MonthlyPrice:        order.PackagePrice,
		SetupFee:            order.InstallationFee,
		Status:              "active",
		Active:              true,
		ActivationDate:      &activatedAt,
		ProviderName:        "CircleTel",
		ProviderCode:        accountNumber,
		ContractMonths:      24,
		ContractStartDate:   &activatedAt,
		ContractEndDate:     &contractEnd,
		CreatedAt:           activatedAt,
		UpdatedAt:           activatedAt,
	}

	if down, up, ok := parseSpeed(order.PackageSpeed); ok {
		svc.SpeedDownMbps = &down
		svc.SpeedUpMbps = &up
	}
	return svc
}

func inferServiceType(packageName string) string {
	name := strings.ToLower(packageName)
	switch {
	case strings.Contains(name, "lte"):
		return "lte"
	case strings.Contains(name, "5g"):
		return "fixed_5g"
	default:
		return "fibre"
	}
}

func parseSpeed(speed string) (down, up int, ok bool) {
	if speed == "" {
		return 0, 0, false
	}
	if _, err := fmt.Sscanf(speed, "%d/%d", &down, &up); err != nil {
		return 0, 0, false
	}
	return down, up, true
}
