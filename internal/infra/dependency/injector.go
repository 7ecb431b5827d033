// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/finance-ledger/backend/config"
	"github.com/finance-ledger/backend/internal/application/adapter"
	"github.com/finance-ledger/backend/internal/application/usecase/aggregate"
	"github.com/finance-ledger/backend/internal/application/usecase/auth"
	"github.com/finance-ledger/backend/internal/application/usecase/budget"
	"github.com/finance-ledger/backend/internal/application/usecase/dashboard"
	"github.com/finance-ledger/backend/internal/application/usecase/ledger"
	"github.com/finance-ledger/backend/internal/application/usecase/report"
	"github.com/finance-ledger/backend/internal/domain/entity"
	"github.com/finance-ledger/backend/internal/infra/server/router"
	"github.com/finance-ledger/backend/internal/integration/adapters"
	"github.com/finance-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/finance-ledger/backend/internal/integration/entrypoint/middleware"
	"github.com/finance-ledger/backend/internal/integration/export"
	"github.com/finance-ledger/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.Client
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	ledgerRepo := persistence.NewLedgerRepository(db)
	aggregateRepo := persistence.NewAggregateRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)
	reportRepo := persistence.NewReportRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Create aggregate use cases
	recomputeUseCase := aggregate.NewRecomputeAggregateUseCase(ledgerRepo, aggregateRepo)
	fetchAggregateUseCase := aggregate.NewFetchAggregateUseCase(aggregateRepo)

	// Create ledger use cases (shared by income and expense routes)
	createEntryUseCase := ledger.NewCreateEntryUseCase(ledgerRepo, recomputeUseCase)
	listEntriesUseCase := ledger.NewListEntriesUseCase(ledgerRepo)
	getEntryUseCase := ledger.NewGetEntryUseCase(ledgerRepo)
	updateEntryUseCase := ledger.NewUpdateEntryUseCase(ledgerRepo, recomputeUseCase)
	deleteEntryUseCase := ledger.NewDeleteEntryUseCase(ledgerRepo, recomputeUseCase)

	// Create budget use cases
	tracker := budget.NewTracker(ledgerRepo)
	createBudgetUseCase := budget.NewCreateBudgetUseCase(budgetRepo, tracker)
	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo, tracker)
	getBudgetUseCase := budget.NewGetBudgetUseCase(budgetRepo, tracker)
	updateBudgetUseCase := budget.NewUpdateBudgetUseCase(budgetRepo, tracker)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo)

	// Create dashboard use cases
	getDashboardUseCase := dashboard.NewGetDashboardUseCase(fetchAggregateUseCase, ledgerRepo, budgetRepo, tracker)
	getTrendsUseCase := dashboard.NewGetTrendsUseCase(ledgerRepo)

	// Create report use cases and renderers
	assembleReportUseCase := report.NewAssembleReportUseCase(ledgerRepo, budgetRepo, reportRepo)
	listReportsUseCase := report.NewListReportsUseCase(reportRepo)
	exportReportUseCase := report.NewExportReportUseCase(assembleReportUseCase, map[string]adapter.ReportRenderer{
		"xlsx": export.NewXLSXRenderer(),
		"pdf":  export.NewPDFRenderer(cfg.Export.CurrencyCode),
	})

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	incomeController := controller.NewLedgerController(
		entity.EntryKindIncome,
		createEntryUseCase,
		listEntriesUseCase,
		getEntryUseCase,
		updateEntryUseCase,
		deleteEntryUseCase,
	)

	expenseController := controller.NewLedgerController(
		entity.EntryKindExpense,
		createEntryUseCase,
		listEntriesUseCase,
		getEntryUseCase,
		updateEntryUseCase,
		deleteEntryUseCase,
	)

	budgetController := controller.NewBudgetController(
		createBudgetUseCase,
		listBudgetsUseCase,
		getBudgetUseCase,
		updateBudgetUseCase,
		deleteBudgetUseCase,
	)

	dashboardController := controller.NewDashboardController(
		getDashboardUseCase,
		getTrendsUseCase,
		recomputeUseCase,
	)

	reportController := controller.NewReportController(
		assembleReportUseCase,
		listReportsUseCase,
		exportReportUseCase,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(redisClient, 1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter(redisClient)
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		incomeController,
		expenseController,
		budgetController,
		dashboardController,
		reportController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Router: r,
	}
}
