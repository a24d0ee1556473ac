package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"prorab-finance/internal/database"
	"prorab-finance/internal/models"
)

// Последние записи журнала действий пользователя.
func ListAuditLogs(c *gin.Context) {
	var logs []models.AuditLog
	if err := database.DB.
		Where("user_id = ?", currentUserID(c)).
		Order("created_at desc").
		Limit(200).
		Find(&logs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load audit log"})
		return
	}

	c.JSON(http.StatusOK, logs)
}
