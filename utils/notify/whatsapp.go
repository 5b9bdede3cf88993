package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"mart-api/models"
)

// SendWhatsAppNotification kirim notifikasi WhatsApp lewat API fonnte.com
func SendWhatsAppNotification(phone, message string) error {
	apiURL := "https://api.fonnte.com/send"
	token := os.Getenv("FONNTE_TOKEN")

	if token == "" {
		return fmt.Errorf("FONNTE_TOKEN not set")
	}

	payload := map[string]string{
		"target":  phone,
		"message": message,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %v", err)
	}

	req, err := http.NewRequest("POST", apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to build request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", token)

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("API returned status: %d", resp.StatusCode)
	}

	return nil
}

// FormatOrderReadyMessage tells the customer the order is paid and ready
// for pickup, with the QR reminder.
func FormatOrderReadyMessage(order *models.Order) string {
	message := "ORDER READY FOR PICKUP\n\n"
	message += fmt.Sprintf("Order: %s\n", order.OrderNumber)
	message += fmt.Sprintf("Total: $%.2f\n", order.TotalAmount)
	message += fmt.Sprintf("Payment: %s\n\n", order.PaymentType)
	message += "*Items:*\n"

	for i, item := range order.Items {
		message += fmt.Sprintf("%d. %s x%d\n", i+1, item.Name, item.Quantity)
	}

	message += "\nShow the QR code in your order page at the counter."
	message += fmt.Sprintf("\n_%s_", time.Now().Format("02/01/2006 15:04:05"))

	return message
}
