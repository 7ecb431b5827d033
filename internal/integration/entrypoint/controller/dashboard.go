// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-ledger/backend/internal/application/usecase/aggregate"
	"github.com/finance-ledger/backend/internal/application/usecase/dashboard"
	domainerror "github.com/finance-ledger/backend/internal/domain/error"
	"github.com/finance-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/finance-ledger/backend/internal/integration/entrypoint/middleware"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	getDashboardUseCase *dashboard.GetDashboardUseCase
	getTrendsUseCase    *dashboard.GetTrendsUseCase
	recomputeUseCase    *aggregate.RecomputeAggregateUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	getDashboardUseCase *dashboard.GetDashboardUseCase,
	getTrendsUseCase *dashboard.GetTrendsUseCase,
	recomputeUseCase *aggregate.RecomputeAggregateUseCase,
) *DashboardController {
	return &DashboardController{
		getDashboardUseCase: getDashboardUseCase,
		getTrendsUseCase:    getTrendsUseCase,
		recomputeUseCase:    recomputeUseCase,
	}
}

// GetDashboard handles GET /dashboard requests.
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	output, err := c.getDashboardUseCase.Execute(ctx.Request.Context(), dashboard.GetDashboardInput{
		UserID: userID,
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardResponse(output))
}

// GetTrends handles GET /dashboard/trends requests. The window query
// parameter selects daily or weekly bucketing and defaults to weekly.
func (c *DashboardController) GetTrends(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	window := ctx.DefaultQuery("window", string(dashboard.WindowKindWeekly))

	output, err := c.getTrendsUseCase.Execute(ctx.Request.Context(), dashboard.GetTrendsInput{
		UserID: userID,
		Window: dashboard.WindowKind(window),
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTrendsResponse(output))
}

// RefreshAggregate handles POST /dashboard/refresh requests, forcing a full
// rescan of the user's ledger.
func (c *DashboardController) RefreshAggregate(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	output, err := c.recomputeUseCase.Execute(ctx.Request.Context(), aggregate.RecomputeAggregateInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to recompute aggregate",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAggregateResponse(output.Aggregate))
}

// handleDashboardError handles dashboard errors and returns appropriate HTTP responses.
func (c *DashboardController) handleDashboardError(ctx *gin.Context, err error) {
	var dashErr *domainerror.DashboardError
	if errors.As(err, &dashErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: dashErr.Message,
			Code:  string(dashErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
