package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"prorab-finance/internal/database"
	"prorab-finance/internal/finance"
	"prorab-finance/internal/storage"
)

//
// СВОДНЫЙ ОТЧЁТ
//

// GET /api/report?from=YYYY-MM-DD&to=YYYY-MM-DD
//
// Сводка всегда строится с нуля из текущих строк журнала. Движок отчёта
// оперирует только id категорий и способов оплаты; имена для отображения
// резолвятся здесь, поверх готовой сводки. Ключ "unknown" уходит на фронт
// как есть.
func PortfolioReport(c *gin.Context) {
	userID := currentUserID(c)

	from, err := parseDate(c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date, expected YYYY-MM-DD"})
		return
	}
	to, err := parseDate(c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date, expected YYYY-MM-DD"})
		return
	}

	projects := storage.NewProjectStore(database.DB)
	ledger := storage.NewLedgerStore(database.DB)
	refs := storage.NewReferenceStore(database.DB)

	list, err := projects.List(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load projects"})
		return
	}
	works, err := ledger.WorksByOwner(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load additional works"})
		return
	}
	payments, err := ledger.PaymentsByOwner(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load payments"})
		return
	}
	objectExpenses, err := ledger.ObjectExpenses(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load expenses"})
		return
	}
	globalExpenses, err := ledger.GlobalExpenses(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load expenses"})
		return
	}

	report := finance.BuildReport(finance.ReportInput{
		Projects:        list,
		AdditionalWorks: works,
		Payments:        payments,
		ObjectExpenses:  objectExpenses,
		GlobalExpenses:  globalExpenses,
	}, from, to)

	categoryNames, err := refs.CategoryNames(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load categories"})
		return
	}
	methodNames, err := refs.PaymentMethodNames(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load payment methods"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"report": report,
		"names": gin.H{
			"categories":     categoryNames,
			"paymentMethods": methodNames,
		},
	})
}
