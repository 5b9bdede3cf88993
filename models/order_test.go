package models

import "testing"

func TestCanComplete(t *testing.T) {
	tests := []struct {
		status      string
		paymentType string
		want        bool
	}{
		{OrderPaid, PaymentCash, true},
		{OrderPaid, PaymentPayNow, true},
		{OrderPending, PaymentCash, true}, // manual cash path
		{OrderPending, PaymentPayNow, false},
		{OrderCompleted, PaymentCash, false},
		{OrderCompleted, PaymentPayNow, false},
		{OrderCancelled, PaymentCash, false},
		{OrderCancelled, PaymentPayNow, false},
	}
	for _, tc := range tests {
		o := Order{Status: tc.status, PaymentType: tc.paymentType}
		if got := o.CanComplete(); got != tc.want {
			t.Errorf("CanComplete(%s/%s) = %v, want %v",
				tc.status, tc.paymentType, got, tc.want)
		}
	}
}

func TestCanReject(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{OrderPending, true},
		{OrderPaid, true},
		{OrderCompleted, false},
		{OrderCancelled, false},
	}
	for _, tc := range tests {
		o := Order{Status: tc.status}
		if got := o.CanReject(); got != tc.want {
			t.Errorf("CanReject(%s) = %v, want %v", tc.status, got, tc.want)
		}
	}
}

func TestCanPay(t *testing.T) {
	tests := []struct {
		status      string
		paymentType string
		want        bool
	}{
		{OrderPending, PaymentPayNow, true},
		{OrderPending, PaymentCash, false}, // cash settles at handover
		{OrderPaid, PaymentPayNow, false},
		{OrderCompleted, PaymentPayNow, false},
		{OrderCancelled, PaymentPayNow, false},
	}
	for _, tc := range tests {
		o := Order{Status: tc.status, PaymentType: tc.paymentType}
		if got := o.CanPay(); got != tc.want {
			t.Errorf("CanPay(%s/%s) = %v, want %v",
				tc.status, tc.paymentType, got, tc.want)
		}
	}
}

func TestTerminalStatesAcceptNoTransition(t *testing.T) {
	for _, status := range []string{OrderCompleted, OrderCancelled} {
		o := Order{Status: status, PaymentType: PaymentCash}
		if !o.IsTerminal() {
			t.Errorf("IsTerminal(%s) = false, want true", status)
		}
		if o.CanPay() || o.CanComplete() || o.CanReject() {
			t.Errorf("terminal order %s still allows a transition", status)
		}
	}
}

func TestValidOrderStatus(t *testing.T) {
	for _, s := range []string{OrderPending, OrderPaid, OrderCompleted, OrderCancelled} {
		if !ValidOrderStatus(s) {
			t.Errorf("ValidOrderStatus(%s) = false", s)
		}
	}
	for _, s := range []string{"", "pending", "DRAFT", "DONE"} {
		if ValidOrderStatus(s) {
			t.Errorf("ValidOrderStatus(%q) = true, want false", s)
		}
	}
}

func TestValidPaymentType(t *testing.T) {
	if !ValidPaymentType(PaymentCash) || !ValidPaymentType(PaymentPayNow) {
		t.Error("known payment types rejected")
	}
	for _, s := range []string{"", "cash", "CARD"} {
		if ValidPaymentType(s) {
			t.Errorf("ValidPaymentType(%q) = true, want false", s)
		}
	}
}
