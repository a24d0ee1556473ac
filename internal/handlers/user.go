package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"prorab-finance/internal/database"
	"prorab-finance/internal/models"
)

type userListItem struct {
	ID    uint            `json:"id"`
	Email string          `json:"email"`
	Role  models.UserRole `json:"role"`
}

// Список зарегистрированных пользователей — только для админа.
func ListUsers(c *gin.Context) {
	var users []models.User
	if err := database.DB.Order("created_at asc").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load users"})
		return
	}

	items := make([]userListItem, 0, len(users))
	for _, u := range users {
		items = append(items, userListItem{ID: u.ID, Email: u.Email, Role: u.Role})
	}
	c.JSON(http.StatusOK, items)
}
