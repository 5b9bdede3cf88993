package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"mart-api/config"
	"mart-api/models"
	"mart-api/utils/response"
)

func OpenCashSession(c *gin.Context) {
	db := config.DB

	userID := c.MustGet("user_id").(uint)

	var input struct {
		OpeningCash float64 `json:"opening_cash" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		response.FailWithError(c, http.StatusBadRequest, "Invalid session data", err)
		return
	}

	var existing models.CashSession
	if err := db.Where("user_id = ? AND status = 'open'", userID).
		First(&existing).Error; err == nil {
		response.Fail(c, http.StatusBadRequest, "A cash session is still open")
		return
	}

	session := models.CashSession{
		UserID:      userID,
		OpeningCash: input.OpeningCash,
		Status:      "open",
		OpenedAt:    time.Now(),
	}

	if err := db.Create(&session).Error; err != nil {
		response.FailWithError(c, http.StatusInternalServerError, "Failed to open session", err)
		return
	}

	response.Success(c, http.StatusCreated, "Cash session opened", session)
}

func GetCurrentCashSession(c *gin.Context) {
	db := config.DB
	userID := c.MustGet("user_id").(uint)

	var session models.CashSession
	if err := db.Where("user_id = ? AND status = 'open'", userID).
		First(&session).Error; err != nil {
		response.Fail(c, http.StatusNotFound, "No active cash session")
		return
	}

	response.Success(c, http.StatusOK, "Cash session loaded", session)
}

// PATCH /admin/cash-sessions/close — takings are the CASH pickups
// completed while the session was open.
func CloseCashSession(c *gin.Context) {
	db := config.DB
	userID := c.MustGet("user_id").(uint)

	var input struct {
		ClosingCash float64 `json:"closing_cash" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.FailWithError(c, http.StatusBadRequest, "Invalid session data", err)
		return
	}

	var session models.CashSession
	if err := db.Where("user_id = ? AND status = 'open'", userID).
		First(&session).Error; err != nil {
		response.Fail(c, http.StatusNotFound, "No active cash session")
		return
	}

	now := time.Now()

	var takings float64
	db.Model(&models.Order{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("payment_type = ? AND status = ? AND completed_at >= ? AND completed_at <= ?",
			models.PaymentCash, models.OrderCompleted, session.OpenedAt, now).
		Scan(&takings)

	session.Status = "closed"
	session.ClosingCash = &input.ClosingCash
	session.Takings = &takings
	session.ClosedAt = &now

	if err := db.Save(&session).Error; err != nil {
		response.FailWithError(c, http.StatusInternalServerError, "Failed to close session", err)
		return
	}

	response.Success(c, http.StatusOK, "Cash session closed", session)
}
