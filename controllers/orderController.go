package controllers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"mart-api/config"
	"mart-api/models"
	"mart-api/utils/common"
	auditlog "mart-api/utils/log"
	"mart-api/utils/notify"
	"mart-api/utils/response"
	"mart-api/utils/token"
)

func nextOrderNumber(tx *gorm.DB) (string, error) {
	year := time.Now().Year()
	start := time.Date(year, 1, 1, 0, 0, 0, 0, time.Local)

	var count int64
	if err := tx.Model(&models.Order{}).Unscoped().
		Where("created_at >= ?", start).
		Count(&count).Error; err != nil {
		return "", err
	}

	return common.FormatOrderNumber(year, count+1), nil
}

// POST /checkout — turns the caller's cart into a PENDING order. Stock is
// reserved here; reject puts it back.
func Checkout(c *gin.Context) {
	userID := common.GetUserID(c)

	var input struct {
		PaymentType string `json:"paymentType" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.FailWithError(c, http.StatusBadRequest, "Invalid checkout data", err)
		return
	}

	if !models.ValidPaymentType(input.PaymentType) {
		response.Fail(c, http.StatusBadRequest, "Payment type must be CASH or PAYNOW")
		return
	}

	var cartItems []models.CartItem
	if err := config.DB.Preload("Product").
		Where("user_id = ?", *userID).
		Find(&cartItems).Error; err != nil {
		response.FailWithError(c, http.StatusInternalServerError, "Failed to load cart", err)
		return
	}

	if len(cartItems) == 0 {
		response.Fail(c, http.StatusBadRequest, "Cart is empty")
		return
	}

	var order models.Order
	var err error

	// the order number is a count-based sequence, so a concurrent checkout
	// can claim the same one; the loser recounts and tries again
	for attempt := 0; attempt < 3; attempt++ {
		order = models.Order{}
		err = checkoutTransaction(c, *userID, input.PaymentType, cartItems, &order)
		if err == nil || !isDuplicateKeyError(err) {
			break
		}
	}

	if err != nil {
		response.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	nextStep := "pickup"
	if order.PaymentType == models.PaymentPayNow {
		nextStep = "payment"
	}

	response.Success(c, http.StatusCreated, "Order placed", gin.H{
		"orderId":     order.ID,
		"orderNumber": order.OrderNumber,
		"totalAmount": order.TotalAmount,
		"paymentType": order.PaymentType,
		"status":      order.Status,
		"nextStep":    nextStep,
	})
}

func checkoutTransaction(c *gin.Context, userID uint, paymentType string, cartItems []models.CartItem, order *models.Order) error {
	return config.DB.Transaction(func(tx *gorm.DB) error {
		var total float64
		var orderItems []models.OrderItem

		for _, ci := range cartItems {
			var product models.Product
			if err := tx.First(&product, ci.ProductID).Error; err != nil {
				return fmt.Errorf("product %d not found", ci.ProductID)
			}

			if product.Stock < ci.Quantity {
				return fmt.Errorf("insufficient stock for '%s' (available: %d)", product.Name, product.Stock)
			}

			product.Stock -= ci.Quantity
			if err := tx.Save(&product).Error; err != nil {
				return err
			}

			subtotal := float64(ci.Quantity) * product.Price
			total += subtotal

			orderItems = append(orderItems, models.OrderItem{
				ProductID: product.ID,
				Name:      product.Name,
				Price:     product.Price,
				Quantity:  ci.Quantity,
				Subtotal:  subtotal,
			})
		}

		orderNumber, err := nextOrderNumber(tx)
		if err != nil {
			return err
		}

		*order = models.Order{
			OrderNumber: orderNumber,
			UserID:      userID,
			TotalAmount: total,
			PaymentType: paymentType,
			Status:      models.OrderPending,
			Items:       orderItems,
		}

		if err := tx.Create(order).Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}

		description := fmt.Sprintf("Order %s created via checkout", order.OrderNumber)
		return auditlog.CreateOrderAuditLog(tx, "create", order.ID, nil, order, &userID, c.ClientIP(), description)
	})
}

// POST /orders/:id/pay — payment-provider confirmation. Only this path
// moves PENDING to PAID and stamps paid_at.
func PayOrder(c *gin.Context) {
	userID := common.GetUserID(c)

	var order models.Order
	if err := config.DB.Preload("Items").Preload("User").
		Where("user_id = ?", *userID).
		First(&order, c.Param("id")).Error; err != nil {
		response.Fail(c, http.StatusNotFound, "Order not found")
		return
	}

	if !order.CanPay() {
		if order.PaymentType == models.PaymentCash {
			response.Fail(c, http.StatusBadRequest, "CASH orders are settled at pickup")
			return
		}
		response.Fail(c, http.StatusBadRequest,
			fmt.Sprintf("Order is %s, only PENDING orders can be paid", order.Status))
		return
	}

	oldCopy := order
	now := time.Now()

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		order.Status = models.OrderPaid
		order.PaidAt = &now

		if err := tx.Save(&order).Error; err != nil {
			return err
		}

		description := fmt.Sprintf("Order %s paid", order.OrderNumber)
		return auditlog.CreateOrderAuditLog(tx, "update", order.ID, &oldCopy, &order, userID, c.ClientIP(), description)
	})

	if err != nil {
		response.FailWithError(c, http.StatusInternalServerError, "Failed to confirm payment", err)
		return
	}

	// best effort, payment already committed
	if order.User.Phone != nil {
		go func(phone string, o models.Order) {
			if err := notify.SendWhatsAppNotification(phone, notify.FormatOrderReadyMessage(&o)); err != nil {
				log.Println("whatsapp notify failed:", err)
			}
		}(*order.User.Phone, order)
	}

	response.Success(c, http.StatusOK, "Payment confirmed", order)
}

func GetMyOrders(c *gin.Context) {
	userID := common.GetUserID(c)

	var orders []models.Order
	if err := config.DB.Preload("Items").
		Where("user_id = ?", *userID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		response.FailWithError(c, http.StatusInternalServerError, "Failed to load orders", err)
		return
	}

	response.Success(c, http.StatusOK, "Orders loaded", orders)
}

func GetOrderByID(c *gin.Context) {
	var order models.Order
	query := config.DB.Preload("Items").Preload("User")

	// customers only see their own orders
	if common.GetUserRole(c) != "admin" {
		query = query.Where("user_id = ?", *common.GetUserID(c))
	}

	if err := query.First(&order, c.Param("id")).Error; err != nil {
		response.Fail(c, http.StatusNotFound, "Order not found")
		return
	}

	response.Success(c, http.StatusOK, "Order loaded", order)
}

// GET /orders/:id/qr — the opaque pickup credential the customer shows at
// the counter. Unpaid PAYNOW orders have nothing to pick up yet.
func GetOrderQR(c *gin.Context) {
	userID := common.GetUserID(c)

	var order models.Order
	if err := config.DB.Where("user_id = ?", *userID).
		First(&order, c.Param("id")).Error; err != nil {
		response.Fail(c, http.StatusNotFound, "Order not found")
		return
	}

	if order.IsTerminal() {
		response.Fail(c, http.StatusBadRequest,
			fmt.Sprintf("Order is already %s", order.Status))
		return
	}

	if order.Status == models.OrderPending && order.PaymentType == models.PaymentPayNow {
		response.Fail(c, http.StatusBadRequest, "Complete the PayNow payment first")
		return
	}

	qr, err := token.GeneratePickupToken(order.ID, order.OrderNumber)
	if err != nil {
		response.FailWithError(c, http.StatusInternalServerError, "Failed to generate QR token", err)
		return
	}

	response.Success(c, http.StatusOK, "QR token generated", gin.H{
		"orderNumber": order.OrderNumber,
		"qrData":      qr,
		"expiresIn":   int(token.PickupTTL.Seconds()),
	})
}
