package common

import (
	"strings"
	"testing"

	"mart-api/models"
)

func TestPickupInstructionsCash(t *testing.T) {
	steps := PickupInstructions(models.PaymentCash, 32.50, 2)

	joined := strings.ToLower(strings.Join(steps, " "))
	if !strings.Contains(joined, "cash") {
		t.Errorf("cash instructions missing cash step: %v", steps)
	}
	if !strings.Contains(joined, "$32.50") {
		t.Errorf("cash instructions missing amount: %v", steps)
	}
	if !strings.Contains(joined, "2 items") {
		t.Errorf("instructions missing item count: %v", steps)
	}
}

func TestPickupInstructionsPayNow(t *testing.T) {
	steps := PickupInstructions(models.PaymentPayNow, 10, 1)

	joined := strings.ToLower(strings.Join(steps, " "))
	if !strings.Contains(joined, "paynow") {
		t.Errorf("paynow instructions missing verification step: %v", steps)
	}
	if strings.Contains(joined, "cash") {
		t.Errorf("paynow instructions should not mention cash: %v", steps)
	}
	if !strings.Contains(joined, "1 item") || strings.Contains(joined, "1 items") {
		t.Errorf("singular item count not used: %v", steps)
	}
}
