package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"mart-api/config"
	"mart-api/models"
	"mart-api/utils/response"
)

type statusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// GET /admin/orders/stats
func GetOrderStats(c *gin.Context) {
	var counts []statusCount
	if err := config.DB.Model(&models.Order{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&counts).Error; err != nil {
		response.FailWithError(c, http.StatusInternalServerError, "Failed to load stats", err)
		return
	}

	byStatus := map[string]int64{
		models.OrderPending:   0,
		models.OrderPaid:      0,
		models.OrderCompleted: 0,
		models.OrderCancelled: 0,
	}
	var totalOrders int64
	for _, sc := range counts {
		byStatus[sc.Status] = sc.Count
		totalOrders += sc.Count
	}

	// revenue counts money actually collected or committed
	var revenue float64
	config.DB.Model(&models.Order{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("status IN ?", []string{models.OrderPaid, models.OrderCompleted}).
		Scan(&revenue)

	today := time.Now().Format("2006-01-02")

	var todayOrders int64
	config.DB.Model(&models.Order{}).
		Where("DATE(created_at) = ?", today).
		Count(&todayOrders)

	var todayRevenue float64
	config.DB.Model(&models.Order{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("status = ? AND DATE(completed_at) = ?", models.OrderCompleted, today).
		Scan(&todayRevenue)

	var lowStock int64
	config.DB.Model(&models.Product{}).Where("stock < ?", 5).Count(&lowStock)

	response.Success(c, http.StatusOK, "Stats loaded", gin.H{
		"pending":       byStatus[models.OrderPending],
		"paid":          byStatus[models.OrderPaid],
		"completed":     byStatus[models.OrderCompleted],
		"cancelled":     byStatus[models.OrderCancelled],
		"total_orders":  totalOrders,
		"revenue":       revenue,
		"today_orders":  todayOrders,
		"today_revenue": todayRevenue,
		"low_stock":     lowStock,
	})
}
