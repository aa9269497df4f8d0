package service

import (
	"context"
	"time"

	"circletel-admin-be/internal/entity"
	"circletel-admin-be/internal/repository/contract"
	"circletel-admin-be/internal/repository/specification"
	"circletel-admin-be/internal/repository/unitofwork"
	"circletel-admin-be/pkg/lifecycle"

	"github.com/google/uuid"
)

// In-memory fakes standing in for the GORM repositories.

type fakeOrderRepo struct {
	orders map[uuid.UUID]*entity.Order
	// guardFails simulates a concurrent transition winning the race.
	guardFails bool
}

func newFakeOrderRepo(orders ...*entity.Order) *fakeOrderRepo {
	r := &fakeOrderRepo{orders: map[uuid.UUID]*entity.Order{}}
	for _, o := range orders {
		r.orders[o.Id] = o
	}
	return r
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	r.orders[order.Id] = order
	return nil
}

func (r *fakeOrderRepo) Update(ctx context.Context, order *entity.Order) error {
	r.orders[order.Id] = order
	return nil
}

func (r *fakeOrderRepo) UpdateStatusGuarded(ctx context.Context, id uuid.UUID, expectedStatus lifecycle.Status, updates map[string]interface{}) (int64, error) {
	o, ok := r.orders[id]
	if !ok || o.Status != expectedStatus || r.guardFails {
		return 0, nil
	}
	for key, value := range updates {
		switch key {
		case "status":
			o.Status = lifecycle.Status(value.(string))
		case "internal_notes":
			s := value.(string)
			o.InternalNotes = &s
		case "installation_scheduled_date":
			d := value.(time.Time)
			o.InstallationScheduledDate = &d
		case "installation_document_url":
			s := value.(string)
			o.InstallationDocumentUrl = &s
		case "account_number":
			s := value.(string)
			o.AccountNumber = &s
		case "connection_id":
			s := value.(string)
			o.ConnectionId = &s
		case "activation_date":
			d := value.(time.Time)
			o.ActivationDate = &d
		case "billing_active":
			o.BillingActive = value.(bool)
		case "billing_activated_at":
			d := value.(time.Time)
			o.BillingActivatedAt = &d
		case "billing_start_date":
			d := value.(time.Time)
			o.BillingStartDate = &d
		case "next_billing_date":
			d := value.(time.Time)
			o.NextBillingDate = &d
		case "billing_cycle_day":
			n := value.(int)
			o.BillingCycleDay = &n
		case "prorata_amount":
			f := value.(float64)
			o.ProrataAmount = &f
		case "prorata_days":
			n := value.(int)
			o.ProrataDays = &n
		}
	}
	return 1, nil
}

// copyOrder mirrors the real repository, which maps a fresh entity per
// read instead of handing out the stored row.
func copyOrder(o *entity.Order) *entity.Order {
	if o == nil {
		return nil
	}
	c := *o
	return &c
}

func (r *fakeOrderRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Order, error) {
	for _, s := range specs {
		if byID, ok := s.(specification.ByID); ok {
			return copyOrder(r.orders[byID.ID]), nil
		}
	}
	for _, o := range r.orders {
		return copyOrder(o), nil
	}
	return nil, nil
}

func (r *fakeOrderRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.orders {
		keep := true
		for _, s := range specs {
			if byStatus, ok := s.(specification.ByStatus); ok && o.Status != byStatus.Status {
				keep = false
			}
		}
		if keep {
			out = append(out, copyOrder(o))
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	orders, _ := r.FindAll(ctx, specs...)
	return int64(len(orders)), nil
}

type fakePaymentMethodRepo struct {
	methods map[uuid.UUID]*entity.PaymentMethod
}

func newFakePaymentMethodRepo(methods ...*entity.PaymentMethod) *fakePaymentMethodRepo {
	r := &fakePaymentMethodRepo{methods: map[uuid.UUID]*entity.PaymentMethod{}}
	for _, m := range methods {
		r.methods[m.Id] = m
	}
	return r
}

func (r *fakePaymentMethodRepo) Create(ctx context.Context, m *entity.PaymentMethod) error {
	r.methods[m.Id] = m
	return nil
}

func (r *fakePaymentMethodRepo) Update(ctx context.Context, m *entity.PaymentMethod) error {
	r.methods[m.Id] = m
	return nil
}

func (r *fakePaymentMethodRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PaymentMethod, error) {
	for _, s := range specs {
		if byID, ok := s.(specification.ByID); ok {
			return r.methods[byID.ID], nil
		}
	}
	return nil, nil
}

func (r *fakePaymentMethodRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PaymentMethod, error) {
	var out []*entity.PaymentMethod
	for _, m := range r.methods {
		out = append(out, m)
	}
	return out, nil
}

type fakeStatusHistoryRepo struct {
	records []*entity.OrderStatusHistory
}

func (r *fakeStatusHistoryRepo) Create(ctx context.Context, record *entity.OrderStatusHistory) error {
	r.records = append(r.records, record)
	return nil
}

func (r *fakeStatusHistoryRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.OrderStatusHistory, error) {
	return r.records, nil
}

type fakeCustomerServiceRepo struct {
	services []*entity.CustomerService
}

func (r *fakeCustomerServiceRepo) Create(ctx context.Context, svc *entity.CustomerService) error {
	r.services = append(r.services, svc)
	return nil
}

func (r *fakeCustomerServiceRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CustomerService, error) {
	if len(r.services) == 0 {
		return nil, nil
	}
	return r.services[0], nil
}

func (r *fakeCustomerServiceRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CustomerService, error) {
	return r.services, nil
}

type fakeAdminUserRepo struct {
	users map[uuid.UUID]*entity.AdminUser
}

func (r *fakeAdminUserRepo) Create(ctx context.Context, u *entity.AdminUser) error {
	if r.users == nil {
		r.users = map[uuid.UUID]*entity.AdminUser{}
	}
	r.users[u.Id] = u
	return nil
}

func (r *fakeAdminUserRepo) Update(ctx context.Context, u *entity.AdminUser) error {
	return r.Create(ctx, u)
}

func (r *fakeAdminUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AdminUser, error) {
	for _, s := range specs {
		if byEmail, ok := s.(specification.ByEmail); ok {
			for _, u := range r.users {
				if u.Email == byEmail.Email {
					return u, nil
				}
			}
			return nil, nil
		}
	}
	return nil, nil
}

// fakeUow wires the fakes together and records transaction usage.
type fakeUow struct {
	orders    *fakeOrderRepo
	methods   *fakePaymentMethodRepo
	history   *fakeStatusHistoryRepo
	services  *fakeCustomerServiceRepo
	admins    *fakeAdminUserRepo
	began     bool
	committed bool
}

func newFakeUow() *fakeUow {
	return &fakeUow{
		orders:   newFakeOrderRepo(),
		methods:  newFakePaymentMethodRepo(),
		history:  &fakeStatusHistoryRepo{},
		services: &fakeCustomerServiceRepo{},
		admins:   &fakeAdminUserRepo{},
	}
}

func (u *fakeUow) Begin(ctx context.Context) error { u.began = true; return nil }
func (u *fakeUow) Commit() error                   { u.committed = true; return nil }
func (u *fakeUow) Rollback() error                 { return nil }

func (u *fakeUow) OrderRepository() contract.OrderRepository {
	return u.orders
}

func (u *fakeUow) PaymentMethodRepository() contract.PaymentMethodRepository {
	return u.methods
}

func (u *fakeUow) StatusHistoryRepository() contract.StatusHistoryRepository {
	return u.history
}

func (u *fakeUow) CustomerServiceRepository() contract.CustomerServiceRepository {
	return u.services
}

func (u *fakeUow) AdminUserRepository() contract.AdminUserRepository {
	return u.admins
}

type fakeFactory struct {
	uow *fakeUow
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func strPtr(s string) *string { return &s }

// fakePublisher records queued email jobs.
type fakePublisher struct {
	payloads [][]byte
}

func (p *fakePublisher) Publish(ctx context.Context, payload []byte) error {
	p.payloads = append(p.payloads, payload)
	return nil
}
