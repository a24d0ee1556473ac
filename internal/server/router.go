package server

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"prorab-finance/internal/config"
	"prorab-finance/internal/handlers"
	"prorab-finance/internal/middleware"
	"prorab-finance/internal/models"
)

func NewRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("prorab_session", store))

	// AUTH
	r.POST("/register", handlers.Register)
	r.POST("/login", handlers.Login)
	r.POST("/logout", handlers.Logout)

	api := r.Group("/api")
	api.Use(middleware.RequireAuth())

	// ОБЪЕКТЫ
	api.GET("/projects", handlers.ListProjects)
	api.POST("/projects", handlers.CreateProject)
	api.GET("/projects/:id", handlers.GetProject)
	api.PUT("/projects/:id", handlers.UpdateProject)
	api.POST("/projects/:id/force", handlers.ForceUpdateProject)
	api.POST("/projects/:id/close", handlers.CloseProject)
	api.POST("/projects/:id/reopen", handlers.ReopenProject)

	// ДОП. РАБОТЫ
	api.GET("/projects/:id/works", handlers.ListWorks)
	api.POST("/projects/:id/works", handlers.CreateWork)
	api.DELETE("/works/:id", handlers.DeleteWork)

	// ОПЛАТЫ
	api.GET("/projects/:id/payments", handlers.ListPayments)
	api.POST("/projects/:id/payments", handlers.CreatePayment)
	api.DELETE("/payments/:id", handlers.DeletePayment)

	// РАСХОДЫ
	api.GET("/expenses", handlers.ListExpenses)
	api.POST("/expenses", handlers.CreateExpense)
	api.DELETE("/expenses/:id", handlers.DeleteExpense)

	// СПРАВОЧНИКИ
	api.GET("/categories", handlers.ListCategories)
	api.POST("/categories", handlers.CreateCategory)
	api.DELETE("/categories/:id", handlers.DeleteCategory)
	api.GET("/payment-methods", handlers.ListPaymentMethods)
	api.POST("/payment-methods", handlers.CreatePaymentMethod)
	api.DELETE("/payment-methods/:id", handlers.DeletePaymentMethod)

	// ОТЧЁТ
	api.GET("/report", handlers.PortfolioReport)

	// АУДИТ
	api.GET("/audit", handlers.ListAuditLogs)

	// АДМИНКА
	api.GET("/admin/users",
		middleware.RequireRole(models.RoleAdmin),
		handlers.ListUsers,
	)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
