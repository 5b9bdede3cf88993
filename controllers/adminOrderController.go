package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"mart-api/config"
	"mart-api/dtos"
	"mart-api/models"
	"mart-api/utils/common"
	auditlog "mart-api/utils/log"
	"mart-api/utils/pagination"
	"mart-api/utils/response"
	"mart-api/utils/token"
)

// GET /admin/orders?page=&limit=&status=&paymentType=&date=
func GetOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	p := pagination.New(page, limit)

	query := config.DB.Model(&models.Order{})

	if status := c.Query("status"); status != "" {
		if !models.ValidOrderStatus(status) {
			response.Fail(c, http.StatusBadRequest, "Unknown order status")
			return
		}
		query = query.Where("status = ?", status)
	}

	if paymentType := c.Query("paymentType"); paymentType != "" {
		if !models.ValidPaymentType(paymentType) {
			response.Fail(c, http.StatusBadRequest, "Unknown payment type")
			return
		}
		query = query.Where("payment_type = ?", paymentType)
	}

	// filter per day
	if filterDate := c.Query("date"); filterDate != "" {
		start, err := time.Parse("2006-01-02", filterDate)
		if err != nil {
			response.Fail(c, http.StatusBadRequest, "Date must be YYYY-MM-DD")
			return
		}
		end := start.Add(24 * time.Hour)
		query = query.Where("created_at >= ? AND created_at < ?", start, end)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		response.FailWithError(c, http.StatusInternalServerError, "Failed to load orders", err)
		return
	}

	var orders []models.Order
	if err := query.Preload("Items").Preload("User").
		Order("created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&orders).Error; err != nil {
		response.FailWithError(c, http.StatusInternalServerError, "Failed to load orders", err)
		return
	}

	response.Success(c, http.StatusOK, "Orders loaded", gin.H{
		"orders":     orders,
		"pagination": pagination.BuildMeta(p.Page, p.Limit, total),
	})
}

// POST /admin/orders/scan-qr — read-only: decodes the token, checks the
// order is in a pickable state and returns the summary for the admin to
// confirm against. Completion is a separate explicit call.
func ScanQR(c *gin.Context) {
	var input dtos.ScanQRInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.FailWithError(c, http.StatusBadRequest, "QR data is required", err)
		return
	}

	claims, err := token.ParsePickupToken(input.QRData)
	if err != nil {
		response.FailWithSuggestion(c, http.StatusBadRequest,
			"Invalid or expired QR code",
			"Ask the customer to refresh the QR code in their order page")
		return
	}

	var order models.Order
	if err := config.DB.Preload("Items").Preload("User").
		First(&order, claims.OrderID).Error; err != nil {
		response.Fail(c, http.StatusNotFound, "Order not found")
		return
	}

	// token bound to a stale order number means the order changed hands
	if order.OrderNumber != claims.OrderNumber {
		response.Fail(c, http.StatusBadRequest, "QR code does not match the order")
		return
	}

	switch {
	case order.Status == models.OrderCompleted:
		response.FailWithSuggestion(c, http.StatusBadRequest,
			"This QR code has already been used",
			"Order already completed")
		return
	case order.Status == models.OrderCancelled:
		response.FailWithSuggestion(c, http.StatusBadRequest,
			"Order has been cancelled",
			"Check the order history for the cancellation reason")
		return
	case order.Status == models.OrderPending && order.PaymentType == models.PaymentPayNow:
		response.FailWithSuggestion(c, http.StatusBadRequest,
			"Order has not been paid",
			"Ask the customer to complete the PayNow payment first")
		return
	}

	response.Success(c, http.StatusOK, "Order verified", buildScannedOrder(&order))
}

func buildScannedOrder(order *models.Order) dtos.ScannedOrder {
	items := make([]dtos.ScannedOrderItem, len(order.Items))
	itemCount := 0
	for i, item := range order.Items {
		items[i] = dtos.ScannedOrderItem{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
			Subtotal: item.Subtotal,
		}
		itemCount += item.Quantity
	}

	payment := dtos.PaymentInfo{
		Type:   order.PaymentType,
		PaidAt: order.PaidAt,
	}
	if order.PaymentType == models.PaymentCash && order.PaidAt == nil {
		due := order.TotalAmount
		payment.DueCash = &due
	}

	return dtos.ScannedOrder{
		OrderSummary: dtos.OrderSummary{
			ID:          order.ID,
			OrderNumber: order.OrderNumber,
			TotalAmount: order.TotalAmount,
			PaymentType: order.PaymentType,
			Status:      order.Status,
			CreatedAt:   order.CreatedAt,
			Items:       items,
		},
		Customer: dtos.ScannedOrderCustomer{
			Name:  order.User.Name,
			Phone: order.User.Phone,
		},
		Payment:      payment,
		Instructions: common.PickupInstructions(order.PaymentType, order.TotalAmount, itemCount),
	}
}

type completionDecision int

const (
	completionProceed completionDecision = iota
	completionReplay
	completionConflict
	completionRejected
)

// decideCompletion resolves the recorded idempotency key (nil when the key
// has never been seen) and the order's current state into what the complete
// endpoint does: replay the earlier success, refuse the key, refuse the
// transition, or go ahead.
func decideCompletion(existing *models.IdempotencyKey, order *models.Order) (completionDecision, string) {
	if existing != nil {
		if existing.OrderID == order.ID && existing.Action == "complete" {
			return completionReplay, "Order already completed"
		}
		return completionConflict, "Idempotency key already used for another action"
	}

	if order.Status == models.OrderCompleted {
		return completionRejected, "Order is already completed"
	}
	if !order.CanComplete() {
		return completionRejected, fmt.Sprintf("Order is %s and cannot be completed", order.Status)
	}

	return completionProceed, ""
}

func isDuplicateKeyError(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// restockQuantities folds order items into per-product return counts.
func restockQuantities(items []models.OrderItem) map[uint]int {
	counts := make(map[uint]int, len(items))
	for _, item := range items {
		counts[item.ProductID] += item.Quantity
	}
	return counts
}

var errKeyAlreadyRecorded = errors.New("idempotency key already recorded")

// PATCH /admin/orders/:id/complete
// Requires x-idempotency-key; replaying a recorded key for the same order
// answers success without a second transition.
func CompleteOrder(c *gin.Context) {
	key := c.GetHeader("x-idempotency-key")
	if key == "" {
		response.Fail(c, http.StatusBadRequest, "x-idempotency-key header is required")
		return
	}
	if _, err := uuid.Parse(key); err != nil {
		response.Fail(c, http.StatusBadRequest, "x-idempotency-key must be a UUID")
		return
	}

	var order models.Order
	if err := config.DB.Preload("Items").First(&order, c.Param("orderId")).Error; err != nil {
		response.Fail(c, http.StatusNotFound, "Order not found")
		return
	}

	var recorded *models.IdempotencyKey
	var existing models.IdempotencyKey
	if err := config.DB.Where("`key` = ?", key).First(&existing).Error; err == nil {
		recorded = &existing
	}

	decision, message := decideCompletion(recorded, &order)
	switch decision {
	case completionReplay:
		response.Success(c, http.StatusOK, message, order)
		return
	case completionConflict:
		response.Fail(c, http.StatusConflict, message)
		return
	case completionRejected:
		response.Fail(c, http.StatusBadRequest, message)
		return
	}

	oldCopy := order
	now := time.Now()

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		order.Status = models.OrderCompleted
		order.CompletedAt = &now

		if err := tx.Save(&order).Error; err != nil {
			return err
		}

		record := models.IdempotencyKey{
			Key:     key,
			OrderID: order.ID,
			Action:  "complete",
		}
		if err := tx.Create(&record).Error; err != nil {
			// a concurrent request with the same key got here first
			if isDuplicateKeyError(err) {
				return errKeyAlreadyRecorded
			}
			return err
		}

		description := fmt.Sprintf("Order %s completed (pickup confirmed)", order.OrderNumber)
		return auditlog.CreateOrderAuditLog(tx, "update", order.ID, &oldCopy, &order,
			common.GetUserID(c), c.ClientIP(), description)
	})

	if errors.Is(err, errKeyAlreadyRecorded) {
		// the winner already applied this exact action, answer as a replay
		config.DB.Preload("Items").First(&order, order.ID)
		response.Success(c, http.StatusOK, "Order already completed", order)
		return
	}
	if err != nil {
		response.FailWithError(c, http.StatusInternalServerError, "Failed to complete order", err)
		return
	}

	response.Success(c, http.StatusOK, "Order completed", order)
}

// PATCH /admin/orders/:id/reject — reason is stored verbatim when given;
// reserved stock goes back on the shelf.
func RejectOrder(c *gin.Context) {
	var input dtos.RejectOrderInput
	// reason is optional, an empty body means no reason given
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			response.FailWithError(c, http.StatusBadRequest, "Invalid request body", err)
			return
		}
	}

	var order models.Order
	if err := config.DB.Preload("Items").First(&order, c.Param("orderId")).Error; err != nil {
		response.Fail(c, http.StatusNotFound, "Order not found")
		return
	}

	if !order.CanReject() {
		response.Fail(c, http.StatusBadRequest,
			fmt.Sprintf("Order is %s and cannot be rejected", order.Status))
		return
	}

	oldCopy := order

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		// Unscoped so stock on a since-deleted product still comes back
		for productID, qty := range restockQuantities(order.Items) {
			var product models.Product
			if err := tx.Unscoped().First(&product, productID).Error; err != nil {
				log.Printf("reject %s: stock restore skipped for product %d: %v",
					order.OrderNumber, productID, err)
				continue
			}
			product.Stock += qty
			if err := tx.Unscoped().Save(&product).Error; err != nil {
				return err
			}
		}

		order.Status = models.OrderCancelled
		order.RejectReason = input.Reason

		if err := tx.Save(&order).Error; err != nil {
			return err
		}

		description := fmt.Sprintf("Order %s rejected", order.OrderNumber)
		if input.Reason != nil {
			description = fmt.Sprintf("Order %s rejected: %s", order.OrderNumber, *input.Reason)
		}
		return auditlog.CreateOrderAuditLog(tx, "update", order.ID, &oldCopy, &order,
			common.GetUserID(c), c.ClientIP(), description)
	})

	if err != nil {
		response.FailWithError(c, http.StatusInternalServerError, "Failed to reject order", err)
		return
	}

	response.Success(c, http.StatusOK, "Order rejected", order)
}
