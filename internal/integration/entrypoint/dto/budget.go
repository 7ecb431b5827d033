// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finance-ledger/backend/internal/domain/entity"
)

// CreateBudgetRequest represents the request body for budget creation.
type CreateBudgetRequest struct {
	Category      string  `json:"category" binding:"required,min=1,max=100"`
	PlannedAmount float64 `json:"planned_amount" binding:"required,gt=0"`
	Period        string  `json:"period" binding:"required,oneof=weekly monthly yearly"`
}

// UpdateBudgetRequest represents the request body for a partial budget update.
type UpdateBudgetRequest struct {
	Category      *string  `json:"category,omitempty" binding:"omitempty,min=1,max=100"`
	PlannedAmount *float64 `json:"planned_amount,omitempty" binding:"omitempty,gt=0"`
	Period        *string  `json:"period,omitempty" binding:"omitempty,oneof=weekly monthly yearly"`
}

// BudgetResponse represents a budget in API responses. Actual spend fields
// are derived from the expense ledger at read time.
type BudgetResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Category      string    `json:"category"`
	PlannedAmount string    `json:"planned_amount"`
	ActualAmount  string    `json:"actual_amount"`
	Progress      string    `json:"progress"`
	ProgressRaw   string    `json:"progress_raw"`
	Status        string    `json:"status"`
	Period        string    `json:"period"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// BudgetListResponse represents a list of budgets in API responses.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// ToBudgetResponse converts a domain BudgetView to a BudgetResponse DTO.
func ToBudgetResponse(view *entity.BudgetView) BudgetResponse {
	return BudgetResponse{
		ID:            view.Budget.ID.String(),
		UserID:        view.Budget.UserID.String(),
		Category:      view.Budget.Category,
		PlannedAmount: view.Budget.PlannedAmount.StringFixed(2),
		ActualAmount:  view.ActualAmount.StringFixed(2),
		Progress:      view.ClampedProgress().StringFixed(1),
		ProgressRaw:   view.Progress().StringFixed(1),
		Status:        string(view.Status()),
		Period:        string(view.Budget.Period),
		CreatedAt:     view.Budget.CreatedAt,
		UpdatedAt:     view.Budget.UpdatedAt,
	}
}

// ToBudgetListResponse converts domain BudgetViews to a BudgetListResponse DTO.
func ToBudgetListResponse(views []*entity.BudgetView) BudgetListResponse {
	responses := make([]BudgetResponse, len(views))
	for i, view := range views {
		responses[i] = ToBudgetResponse(view)
	}
	return BudgetListResponse{Budgets: responses}
}
