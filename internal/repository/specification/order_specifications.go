package specification

import (
	"circletel-admin-be/pkg/lifecycle"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByStatus filters orders on their lifecycle status.
type ByStatus struct {
	Status lifecycle.Status
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", string(s.Status))
}

// ByCustomerId filters on the owning customer.
type ByCustomerId struct {
	CustomerId uuid.UUID
}

func (s ByCustomerId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("customer_id = ?", s.CustomerId)
}

// ByOrderNumber filters on the human-facing order number.
type ByOrderNumber struct {
	OrderNumber string
}

func (s ByOrderNumber) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("order_number = ?", s.OrderNumber)
}

// ByEmail filters on an email column (admin users, order lookups).
type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

// ActiveOnly keeps rows flagged is_active.
type ActiveOnly struct{}

func (s ActiveOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

// PrimaryFirst orders payment methods so the primary one comes first.
type PrimaryFirst struct{}

func (s PrimaryFirst) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("is_primary DESC")
}
