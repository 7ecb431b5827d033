// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/finance-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/finance-ledger/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	authController      *controller.AuthController
	incomeController    *controller.LedgerController
	expenseController   *controller.LedgerController
	budgetController    *controller.BudgetController
	dashboardController *controller.DashboardController
	reportController    *controller.ReportController
	loginRateLimiter    *middleware.RateLimiter
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	incomeController *controller.LedgerController,
	expenseController *controller.LedgerController,
	budgetController *controller.BudgetController,
	dashboardController *controller.DashboardController,
	reportController *controller.ReportController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:    healthController,
		authController:      authController,
		incomeController:    incomeController,
		expenseController:   expenseController,
		budgetController:    budgetController,
		dashboardController: dashboardController,
		reportController:    reportController,
		loginRateLimiter:    loginRateLimiter,
		authMiddleware:      authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
			}
		}

		// Income routes (require authentication)
		if r.incomeController != nil && r.authMiddleware != nil {
			r.setupLedgerRoutes(v1, "/incomes", r.incomeController)
		}

		// Expense routes (require authentication)
		if r.expenseController != nil && r.authMiddleware != nil {
			r.setupLedgerRoutes(v1, "/expenses", r.expenseController)
		}

		// Budget routes (require authentication)
		if r.budgetController != nil && r.authMiddleware != nil {
			budgets := v1.Group("/budgets")
			budgets.Use(r.authMiddleware.Authenticate())
			{
				budgets.GET("", r.budgetController.List)
				budgets.POST("", r.budgetController.Create)
				budgets.GET("/:id", r.budgetController.Get)
				budgets.PATCH("/:id", r.budgetController.Update)
				budgets.DELETE("/:id", r.budgetController.Delete)
			}
		}

		// Dashboard routes (require authentication)
		if r.dashboardController != nil && r.authMiddleware != nil {
			dashboard := v1.Group("/dashboard")
			dashboard.Use(r.authMiddleware.Authenticate())
			{
				dashboard.GET("", r.dashboardController.GetDashboard)
				dashboard.GET("/trends", r.dashboardController.GetTrends)
				dashboard.POST("/refresh", r.dashboardController.RefreshAggregate)
			}
		}

		// Report routes (require authentication)
		if r.reportController != nil && r.authMiddleware != nil {
			reports := v1.Group("/reports")
			reports.Use(r.authMiddleware.Authenticate())
			{
				reports.GET("", r.reportController.List)
				reports.POST("/generate", r.reportController.Generate)
				reports.POST("/export/:format", r.reportController.Export)
			}
		}
	}
}

// setupLedgerRoutes wires one ledger controller under the given path prefix.
func (r *Router) setupLedgerRoutes(v1 *gin.RouterGroup, path string, ledgerController *controller.LedgerController) {
	entries := v1.Group(path)
	entries.Use(r.authMiddleware.Authenticate())
	{
		entries.GET("", ledgerController.List)
		entries.POST("", ledgerController.Create)
		entries.GET("/:id", ledgerController.Get)
		entries.PATCH("/:id", ledgerController.Update)
		entries.DELETE("/:id", ledgerController.Delete)
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
