package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"mart-api/config"
	"mart-api/models"
	"mart-api/utils/pagination"
	"mart-api/utils/response"
)

// GET /admin/audit-logs?entity_type=&entity_id=&page=&limit=
func GetAuditLogs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	p := pagination.New(page, limit)

	query := config.DB.Model(&models.AuditLog{})

	if entityType := c.Query("entity_type"); entityType != "" {
		query = query.Where("entity_type = ?", entityType)
	}
	if entityID := c.Query("entity_id"); entityID != "" {
		query = query.Where("entity_id = ?", entityID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		response.FailWithError(c, http.StatusInternalServerError, "Failed to load audit logs", err)
		return
	}

	var logs []models.AuditLog
	if err := query.Preload("User").
		Order("created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&logs).Error; err != nil {
		response.FailWithError(c, http.StatusInternalServerError, "Failed to load audit logs", err)
		return
	}

	response.Success(c, http.StatusOK, "Audit logs loaded", gin.H{
		"logs":       logs,
		"pagination": pagination.BuildMeta(p.Page, p.Limit, total),
	})
}
