package dtos

import "time"

type ScanQRInput struct {
	QRData string `json:"qrData" binding:"required"`
}

type RejectOrderInput struct {
	Reason *string `json:"reason,omitempty"`
}

type ScannedOrderItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Subtotal float64 `json:"subtotal"`
}

type ScannedOrderCustomer struct {
	Name  string  `json:"name"`
	Phone *string `json:"phone,omitempty"`
}

type OrderSummary struct {
	ID          uint               `json:"id"`
	OrderNumber string             `json:"orderNumber"`
	TotalAmount float64            `json:"totalAmount"`
	PaymentType string             `json:"paymentType"`
	Status      string             `json:"status"`
	CreatedAt   time.Time          `json:"createdAt"`
	Items       []ScannedOrderItem `json:"items"`
}

type PaymentInfo struct {
	Type    string     `json:"type"`
	PaidAt  *time.Time `json:"paidAt,omitempty"`
	DueCash *float64   `json:"dueCash,omitempty"`
}

// ScannedOrder is what the admin confirms against before committing the
// pickup. Ephemeral: never persisted, rebuilt on every scan.
type ScannedOrder struct {
	OrderSummary OrderSummary         `json:"orderSummary"`
	Customer     ScannedOrderCustomer `json:"customer"`
	Payment      PaymentInfo          `json:"payment"`
	Instructions []string             `json:"instructions"`
}
