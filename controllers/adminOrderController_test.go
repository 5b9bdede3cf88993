package controllers

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"gorm.io/gorm"

	"mart-api/models"
)

func TestDecideCompletion(t *testing.T) {
	keyFor := func(orderID uint, action string) *models.IdempotencyKey {
		return &models.IdempotencyKey{Key: "3b1f7a52-9c41-4a59-8f0e-1d2c3b4a5f60", OrderID: orderID, Action: action}
	}

	tests := []struct {
		name     string
		existing *models.IdempotencyKey
		order    models.Order
		want     completionDecision
	}{
		{"fresh key, paid order", nil,
			models.Order{ID: 1, Status: models.OrderPaid, PaymentType: models.PaymentPayNow}, completionProceed},
		{"fresh key, pending cash order", nil,
			models.Order{ID: 1, Status: models.OrderPending, PaymentType: models.PaymentCash}, completionProceed},
		{"fresh key, pending paynow order", nil,
			models.Order{ID: 1, Status: models.OrderPending, PaymentType: models.PaymentPayNow}, completionRejected},
		{"fresh key, completed order", nil,
			models.Order{ID: 1, Status: models.OrderCompleted, PaymentType: models.PaymentCash}, completionRejected},
		{"fresh key, cancelled order", nil,
			models.Order{ID: 1, Status: models.OrderCancelled, PaymentType: models.PaymentCash}, completionRejected},
		{"recorded key, same order", keyFor(1, "complete"),
			models.Order{ID: 1, Status: models.OrderCompleted, PaymentType: models.PaymentPayNow}, completionReplay},
		{"recorded key, other order", keyFor(2, "complete"),
			models.Order{ID: 1, Status: models.OrderPaid, PaymentType: models.PaymentPayNow}, completionConflict},
		{"recorded key, other action", keyFor(1, "reject"),
			models.Order{ID: 1, Status: models.OrderPaid, PaymentType: models.PaymentPayNow}, completionConflict},
	}
	for _, tc := range tests {
		got, message := decideCompletion(tc.existing, &tc.order)
		if got != tc.want {
			t.Errorf("%s: decideCompletion = %v, want %v", tc.name, got, tc.want)
		}
		if got != completionProceed && message == "" {
			t.Errorf("%s: no message for a non-proceed decision", tc.name)
		}
	}
}

// One key, one effect: the first completion proceeds, replaying the same key
// answers success, and a fresh key against the now-completed order is refused
// rather than applied again.
func TestDecideCompletionOneEffectPerKey(t *testing.T) {
	order := models.Order{ID: 7, Status: models.OrderPaid, PaymentType: models.PaymentPayNow}

	if got, _ := decideCompletion(nil, &order); got != completionProceed {
		t.Fatalf("first attempt = %v, want proceed", got)
	}

	// the transition was applied and the key recorded
	order.Status = models.OrderCompleted
	recorded := &models.IdempotencyKey{Key: "8e0f4f1c-6d3a-4e2b-9a7c-5b6d7e8f9a0b", OrderID: 7, Action: "complete"}

	if got, message := decideCompletion(recorded, &order); got != completionReplay {
		t.Errorf("replay = %v, want replay success", got)
	} else if message != "Order already completed" {
		t.Errorf("replay message = %q", message)
	}

	// a distinct key is a distinct action, and the order is already terminal
	if got, _ := decideCompletion(nil, &order); got != completionRejected {
		t.Errorf("fresh key on completed order = %v, want rejected", got)
	}
}

func TestIsDuplicateKeyError(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{gorm.ErrDuplicatedKey, true},
		{fmt.Errorf("create record: %w", gorm.ErrDuplicatedKey), true},
		{errors.New("some other failure"), false},
		{gorm.ErrRecordNotFound, false},
	}
	for _, tc := range tests {
		if got := isDuplicateKeyError(tc.err); got != tc.want {
			t.Errorf("isDuplicateKeyError(%v) = %v, want %v", tc.err, got, tc.want)
		}
	}
}

func TestRestockQuantities(t *testing.T) {
	items := []models.OrderItem{
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 1},
		{ProductID: 1, Quantity: 3}, // same product listed twice
	}

	counts := restockQuantities(items)

	if len(counts) != 2 {
		t.Fatalf("len(counts) = %d, want 2", len(counts))
	}
	if counts[1] != 5 {
		t.Errorf("counts[1] = %d, want 5", counts[1])
	}
	if counts[2] != 1 {
		t.Errorf("counts[2] = %d, want 1", counts[2])
	}
	if len(restockQuantities(nil)) != 0 {
		t.Error("nil items should restock nothing")
	}
}

func TestBuildScannedOrderCash(t *testing.T) {
	order := &models.Order{
		ID:          2,
		OrderNumber: "ORD-2024-002",
		TotalAmount: 32.50,
		PaymentType: models.PaymentCash,
		Status:      models.OrderPending,
		User:        models.User{Name: "Jamie Tan"},
		Items: []models.OrderItem{
			{Name: "Kaya Toast Box", Price: 4.50, Quantity: 1, Subtotal: 4.50},
			{Name: "Laksa Bowl", Price: 7.00, Quantity: 4, Subtotal: 28.00},
		},
	}

	scanned := buildScannedOrder(order)

	if scanned.OrderSummary.TotalAmount != 32.50 {
		t.Errorf("totalAmount = %v, want 32.50", scanned.OrderSummary.TotalAmount)
	}
	if scanned.OrderSummary.OrderNumber != "ORD-2024-002" {
		t.Errorf("orderNumber = %s", scanned.OrderSummary.OrderNumber)
	}
	if len(scanned.OrderSummary.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(scanned.OrderSummary.Items))
	}

	joined := strings.ToLower(strings.Join(scanned.Instructions, " "))
	if !strings.Contains(joined, "cash") {
		t.Errorf("instructions do not mention cash collection: %v", scanned.Instructions)
	}

	// cash not collected yet, so the due amount is surfaced
	if scanned.Payment.DueCash == nil || *scanned.Payment.DueCash != 32.50 {
		t.Errorf("dueCash = %v, want 32.50", scanned.Payment.DueCash)
	}
}

func TestBuildScannedOrderPayNow(t *testing.T) {
	order := &models.Order{
		ID:          3,
		OrderNumber: "ORD-2024-003",
		TotalAmount: 11.00,
		PaymentType: models.PaymentPayNow,
		Status:      models.OrderPaid,
		User:        models.User{Name: "Jamie Tan"},
		Items: []models.OrderItem{
			{Name: "Milo Dinosaur", Price: 4.00, Quantity: 1, Subtotal: 4.00},
			{Name: "Laksa Bowl", Price: 7.00, Quantity: 1, Subtotal: 7.00},
		},
	}

	scanned := buildScannedOrder(order)

	joined := strings.ToLower(strings.Join(scanned.Instructions, " "))
	if !strings.Contains(joined, "paynow") {
		t.Errorf("instructions do not mention PayNow verification: %v", scanned.Instructions)
	}
	if scanned.Payment.DueCash != nil {
		t.Errorf("dueCash set for PayNow order: %v", *scanned.Payment.DueCash)
	}
	if !strings.Contains(joined, "2 items") {
		t.Errorf("instructions do not count the units to hand over: %v", scanned.Instructions)
	}
}
