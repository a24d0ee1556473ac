package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"prorab-finance/internal/database"
	"prorab-finance/internal/models"
	"prorab-finance/internal/storage"
)

//
// ОПЛАТЫ ОТ ЗАКАЗЧИКА
//

func ListPayments(c *gin.Context) {
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

	payments, err := storage.NewLedgerStore(database.DB).PaymentsByProject(projectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load payments"})
		return
	}
	c.JSON(http.StatusOK, payments)
}

type paymentInput struct {
	Date            string  `json:"date"`
	Amount          float64 `json:"amount"`
	PaymentMethodID string  `json:"paymentMethodId"`
}

func CreatePayment(c *gin.Context) {
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

	var input paymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := parseDate(input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	payment := models.ClientPayment{
		ProjectID:       projectID,
		Date:            date,
		Amount:          input.Amount,
		PaymentMethodID: input.PaymentMethodID,
	}
	if err := storage.NewLedgerStore(database.DB).CreatePayment(&payment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create payment"})
		return
	}

	database.CreateAuditLog(userID, "payment", payment.ID, "create", "Добавлена оплата")

	c.JSON(http.StatusCreated, payment)
}

func DeletePayment(c *gin.Context) {
	userID := currentUserID(c)
	id, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	err := storage.NewLedgerStore(database.DB).DeletePayment(userID, id)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "payment not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete payment"})
		return
	}

	database.CreateAuditLog(userID, "payment", id, "delete", "Удалена оплата")

	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
