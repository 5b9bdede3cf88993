package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	OrderPending   = "PENDING"
	OrderPaid      = "PAID"
	OrderCompleted = "COMPLETED"
	OrderCancelled = "CANCELLED"
)

const (
	PaymentCash   = "CASH"
	PaymentPayNow = "PAYNOW"
)

type Order struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	OrderNumber  string      `gorm:"size:32;uniqueIndex;not null" json:"order_number"`
	UserID       uint        `gorm:"not null;index" json:"user_id"`
	User         User        `json:"user,omitempty"`
	TotalAmount  float64     `gorm:"not null;default:0" json:"total_amount"`
	PaymentType  string      `gorm:"type:enum('CASH','PAYNOW');not null" json:"payment_type"`
	Status       string      `gorm:"type:enum('PENDING','PAID','COMPLETED','CANCELLED');default:'PENDING'" json:"status"`
	RejectReason *string     `gorm:"type:text" json:"reject_reason,omitempty"`
	Items        []OrderItem `json:"items"`

	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	PaidAt      *time.Time     `json:"paid_at,omitempty"`
	CompletedAt *time.Time     `json:"completed_at,omitempty"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `gorm:"not null;index" json:"order_id"`
	ProductID uint    `gorm:"not null" json:"product_id"`
	Name      string  `gorm:"size:128;not null" json:"name"`
	Price     float64 `gorm:"not null" json:"price"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	Subtotal  float64 `gorm:"not null" json:"subtotal"`
}

// IsTerminal reports whether no further transition is allowed.
func (o *Order) IsTerminal() bool {
	return o.Status == OrderCompleted || o.Status == OrderCancelled
}

// CanPay: only a PENDING PAYNOW order moves to PAID via the payment
// provider; cash is settled at handover and never enters PAID.
func (o *Order) CanPay() bool {
	return o.Status == OrderPending && o.PaymentType == PaymentPayNow
}

// CanComplete: PAID orders always, PENDING only for CASH (cash is
// collected at handover, so there is no PAID step to skip).
func (o *Order) CanComplete() bool {
	if o.Status == OrderPaid {
		return true
	}
	return o.Status == OrderPending && o.PaymentType == PaymentCash
}

// CanReject: PENDING or PAID orders can be cancelled.
func (o *Order) CanReject() bool {
	return o.Status == OrderPending || o.Status == OrderPaid
}

func ValidOrderStatus(s string) bool {
	switch s {
	case OrderPending, OrderPaid, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

func ValidPaymentType(s string) bool {
	return s == PaymentCash || s == PaymentPayNow
}
