package common

import (
	"fmt"

	"mart-api/models"
)

// PickupInstructions lists the physical steps staff confirm before handover:
// settle payment first, then hand over the items.
func PickupInstructions(paymentType string, totalAmount float64, itemCount int) []string {
	var steps []string

	switch paymentType {
	case models.PaymentCash:
		steps = append(steps, fmt.Sprintf("Collect cash payment of $%.2f", totalAmount))
	case models.PaymentPayNow:
		steps = append(steps, "Verify PayNow payment confirmation")
	}

	unit := "items"
	if itemCount == 1 {
		unit = "item"
	}
	steps = append(steps, fmt.Sprintf("Hand over %d %s to the customer", itemCount, unit))
	steps = append(steps, "Confirm pickup to complete the order")

	return steps
}
