package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"prorab-finance/internal/database"
	"prorab-finance/internal/models"
	"prorab-finance/internal/storage"
)

//
// ДОП. РАБОТЫ
//

func ListWorks(c *gin.Context) {
	userID := currentUserID(c)
	projectID, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	// объект должен принадлежать пользователю
	if _, err := storage.NewProjectStore(database.DB).Get(userID, projectID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load project"})
		return
	}

	works, err := storage.NewLedgerStore(database.DB).WorksByProject(projectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load additional works"})
		return
	}
	c.JSON(http.StatusOK, works)
}

type workInput struct {
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

func CreateWork(c *gin.Context) {
	userID := currentUserID(c)
	projectID, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	if _, err := storage.NewProjectStore(database.DB).Get(userID, projectID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load project"})
		return
	}

	var input workInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := parseDate(input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	// знак суммы не проверяем: отрицательная доп. работа — это скидка
	work := models.AdditionalWork{
		ProjectID:   projectID,
		Date:        date,
		Amount:      input.Amount,
		Description: strings.TrimSpace(input.Description),
	}
	if err := storage.NewLedgerStore(database.DB).CreateWork(&work); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create additional work"})
		return
	}

	database.CreateAuditLog(userID, "additional_work", work.ID, "create", "Добавлена доп. работа")

	c.JSON(http.StatusCreated, work)
}

func DeleteWork(c *gin.Context) {
	userID := currentUserID(c)
	id, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	err := storage.NewLedgerStore(database.DB).DeleteWork(userID, id)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "additional work not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete additional work"})
		return
	}

	database.CreateAuditLog(userID, "additional_work", id, "delete", "Удалена доп. работа")

	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
