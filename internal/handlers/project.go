package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"prorab-finance/internal/database"
	"prorab-finance/internal/finance"
	"prorab-finance/internal/models"
	"prorab-finance/internal/storage"
)

//
// СПИСОК ОБЪЕКТОВ
//

type projectListItem struct {
	ID      uint                   `json:"id"`
	Name    string                 `json:"name"`
	Status  models.ProjectStatus   `json:"status"`
	Version int                    `json:"version"`
	Finance finance.ProjectFinance `json:"finance"`
}

// Список объектов пользователя, каждый с пересчитанным финансовым
// состоянием: остатки всегда считаются из текущих строк журнала.
func ListProjects(c *gin.Context) {
	userID := currentUserID(c)
	projects := storage.NewProjectStore(database.DB)
	ledger := storage.NewLedgerStore(database.DB)

	list, err := projects.List(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load projects"})
		return
	}

	worksByProject, err := ledger.WorksByOwner(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load additional works"})
		return
	}
	paymentsByProject, err := ledger.PaymentsByOwner(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load payments"})
		return
	}

	items := make([]projectListItem, 0, len(list))
	for _, p := range list {
		items = append(items, projectListItem{
			ID:      p.ID,
			Name:    p.Name,
			Status:  p.Status,
			Version: p.Version,
			Finance: finance.Reconcile(p.ContractPrice, worksByProject[p.ID], paymentsByProject[p.ID]),
		})
	}

	c.JSON(http.StatusOK, items)
}

//
// СОЗДАНИЕ
//

type projectInput struct {
	Name          string  `json:"name"`
	ContractPrice float64 `json:"contractPrice"`
}

func CreateProject(c *gin.Context) {
	userID := currentUserID(c)

	var input projectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	project, err := storage.NewProjectStore(database.DB).Create(userID, input.Name, input.ContractPrice)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create project"})
		return
	}

	database.CreateAuditLog(userID, "project", project.ID, "create", "Создан объект: "+project.Name)

	c.JSON(http.StatusCreated, project)
}

//
// КАРТОЧКА ОБЪЕКТА
//

func GetProject(c *gin.Context) {
	userID := currentUserID(c)
	id, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	projects := storage.NewProjectStore(database.DB)
	ledger := storage.NewLedgerStore(database.DB)

	project, err := projects.Get(userID, id)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load project"})
		return
	}

	works, err := ledger.WorksByProject(project.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load additional works"})
		return
	}
	payments, err := ledger.PaymentsByProject(project.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load payments"})
		return
	}
	expenses, err := ledger.ExpensesByProject(project.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load expenses"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"project": project,
		"finance": finance.Reconcile(project.ContractPrice, works, payments),
		"profit":  finance.ProjectProfit(project.ContractPrice, works, expenses),
	})
}

//
// РЕДАКТИРОВАНИЕ С ПРОВЕРКОЙ ВЕРСИИ
//

type projectUpdateInput struct {
	Version       int      `json:"version"`
	Name          *string  `json:"name"`
	ContractPrice *float64 `json:"contractPrice"`
}

// Протокол для вызывающего: прочитать объект (запомнив version), изменить
// поля локально, прислать PUT с той же версией. 409 значит, что объект
// правили из другой сессии; UI обязан предложить "перечитать" или
// "перезаписать" (POST /force), сервер никогда не сливает правки сам.
func UpdateProject(c *gin.Context) {
	userID := currentUserID(c)
	id, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	var input projectUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Version < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "version is required"})
		return
	}
	if input.Name != nil {
		trimmed := strings.TrimSpace(*input.Name)
		if trimmed == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name must not be empty"})
			return
		}
		input.Name = &trimmed
	}

	patch := storage.ProjectPatch{
		Name:          input.Name,
		ContractPrice: input.ContractPrice,
	}

	project, err := storage.NewProjectStore(database.DB).UpdateWithVersion(userID, id, input.Version, patch)
	if errors.Is(err, storage.ErrConflict) {
		c.JSON(http.StatusConflict, gin.H{"error": "conflict"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update project"})
		return
	}

	database.CreateAuditLog(userID, "project", project.ID, "update", "Объект обновлён: "+project.Name)

	c.JSON(http.StatusOK, project)
}

type projectForceInput struct {
	Name          *string  `json:"name"`
	ContractPrice *float64 `json:"contractPrice"`
}

// Безусловная перезапись — только после явного выбора пользователя
// в диалоге конфликта.
func ForceUpdateProject(c *gin.Context) {
	userID := currentUserID(c)
	id, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	var input projectForceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Name != nil {
		trimmed := strings.TrimSpace(*input.Name)
		if trimmed == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name must not be empty"})
			return
		}
		input.Name = &trimmed
	}

	patch := storage.ProjectPatch{
		Name:          input.Name,
		ContractPrice: input.ContractPrice,
	}

	project, err := storage.NewProjectStore(database.DB).ForceUpdate(userID, id, patch)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update project"})
		return
	}

	database.CreateAuditLog(userID, "project", project.ID, "force_update", "Объект перезаписан: "+project.Name)

	c.JSON(http.StatusOK, project)
}

//
// ЗАКРЫТИЕ / ОТКРЫТИЕ
//

type projectStatusInput struct {
	Version int `json:"version"`
}

// Закрытие объекта — смена статуса, а не удаление; строки журнала остаются.
func CloseProject(c *gin.Context) {
	changeProjectStatus(c, models.StatusClosed, "close", "Объект закрыт")
}

func ReopenProject(c *gin.Context) {
	changeProjectStatus(c, models.StatusOpen, "reopen", "Объект открыт заново")
}

func changeProjectStatus(c *gin.Context, status models.ProjectStatus, action, details string) {
	userID := currentUserID(c)
	id, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	var input projectStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Version < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "version is required"})
		return
	}

	patch := storage.ProjectPatch{Status: &status}

	project, err := storage.NewProjectStore(database.DB).UpdateWithVersion(userID, id, input.Version, patch)
	if errors.Is(err, storage.ErrConflict) {
		c.JSON(http.StatusConflict, gin.H{"error": "conflict"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update project"})
		return
	}

	database.CreateAuditLog(userID, "project", project.ID, action, details+": "+project.Name)

	c.JSON(http.StatusOK, project)
}
