package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"prorab-finance/internal/database"
	"prorab-finance/internal/models"
	"prorab-finance/internal/storage"
)

//
// РАСХОДЫ
//

// GET /api/expenses?project_id=&from=&to=
// Без project_id отдаются общие расходы бизнеса.
func ListExpenses(c *gin.Context) {
	userID := currentUserID(c)

	var filter storage.ExpenseFilter

	if pidStr := c.Query("project_id"); pidStr != "" {
		pid, err := strconv.Atoi(pidStr)
		if err != nil || pid <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project_id"})
			return
		}
		projectID := uint(pid)
		if _, err := storage.NewProjectStore(database.DB).Get(userID, projectID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load project"})
			return
		}
		filter.ProjectID = &projectID
	}

	if fromStr := c.Query("from"); fromStr != "" {
		from, err := parseDate(fromStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date, expected YYYY-MM-DD"})
			return
		}
		filter.From = &from
	}
	if toStr := c.Query("to"); toStr != "" {
		to, err := parseDate(toStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date, expected YYYY-MM-DD"})
			return
		}
		filter.To = &to
	}

	expenses, err := storage.NewLedgerStore(database.DB).Expenses(userID, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load expenses"})
		return
	}
	c.JSON(http.StatusOK, expenses)
}

type expenseInput struct {
	ProjectID       *uint   `json:"projectId"` // nil — общий расход
	Date            string  `json:"date"`
	Amount          float64 `json:"amount"`
	CategoryID      string  `json:"categoryId"`
	PaymentMethodID string  `json:"paymentMethodId"`
	Note            string  `json:"note"`
}

func CreateExpense(c *gin.Context) {
	userID := currentUserID(c)

	var input expenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.ProjectID != nil {
		if _, err := storage.NewProjectStore(database.DB).Get(userID, *input.ProjectID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load project"})
			return
		}
	}

	date, err := parseDate(input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	expense := models.Expense{
		UserID:          userID,
		ProjectID:       input.ProjectID,
		Date:            date,
		Amount:          input.Amount,
		CategoryID:      input.CategoryID,
		PaymentMethodID: input.PaymentMethodID,
		Note:            strings.TrimSpace(input.Note),
	}
	if err := storage.NewLedgerStore(database.DB).CreateExpense(&expense); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create expense"})
		return
	}

	database.CreateAuditLog(userID, "expense", expense.ID, "create", "Добавлен расход")

	c.JSON(http.StatusCreated, expense)
}

func DeleteExpense(c *gin.Context) {
	userID := currentUserID(c)
	id, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	err := storage.NewLedgerStore(database.DB).DeleteExpense(userID, id)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "expense not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete expense"})
		return
	}

	database.CreateAuditLog(userID, "expense", id, "delete", "Удалён расход")

	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
