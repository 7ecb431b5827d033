// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-ledger/backend/internal/application/usecase/ledger"
	"github.com/finance-ledger/backend/internal/domain/entity"
	domainerror "github.com/finance-ledger/backend/internal/domain/error"
	"github.com/finance-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/finance-ledger/backend/internal/integration/entrypoint/middleware"
)

// LedgerController handles ledger entry endpoints for one entry kind. The
// same controller serves /incomes and /expenses; the kind is fixed at
// construction so an income route can never touch expense rows.
type LedgerController struct {
	kind          entity.EntryKind
	createUseCase *ledger.CreateEntryUseCase
	listUseCase   *ledger.ListEntriesUseCase
	getUseCase    *ledger.GetEntryUseCase
	updateUseCase *ledger.UpdateEntryUseCase
	deleteUseCase *ledger.DeleteEntryUseCase
}

// NewLedgerController creates a new ledger controller instance for one kind.
func NewLedgerController(
	kind entity.EntryKind,
	createUseCase *ledger.CreateEntryUseCase,
	listUseCase *ledger.ListEntriesUseCase,
	getUseCase *ledger.GetEntryUseCase,
	updateUseCase *ledger.UpdateEntryUseCase,
	deleteUseCase *ledger.DeleteEntryUseCase,
) *LedgerController {
	return &LedgerController{
		kind:          kind,
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST requests for entry creation.
func (c *LedgerController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	var req dto.CreateEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingEntryFields),
		})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidEntryDate),
		})
		return
	}

	input := ledger.CreateEntryInput{
		UserID:   userID,
		Kind:     c.kind,
		Label:    req.Label,
		Amount:   decimal.NewFromFloat(req.Amount),
		Date:     date,
		Category: req.Category,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToEntryResponse(output.Entry))
}

// List handles GET requests for listing entries.
func (c *LedgerController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), ledger.ListEntriesInput{
		UserID: userID,
		Kind:   c.kind,
	})
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEntryListResponse(output.Entries))
}

// Get handles GET requests for a single entry.
func (c *LedgerController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	entryID, ok := c.parseEntryID(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), ledger.GetEntryInput{
		ID:     entryID,
		UserID: userID,
		Kind:   c.kind,
	})
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEntryResponse(output.Entry))
}

// Update handles PATCH requests for a partial entry update.
func (c *LedgerController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	entryID, ok := c.parseEntryID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingEntryFields),
		})
		return
	}

	input := ledger.UpdateEntryInput{
		ID:       entryID,
		UserID:   userID,
		Kind:     c.kind,
		Label:    req.Label,
		Category: req.Category,
	}

	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		input.Amount = &amount
	}

	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidEntryDate),
			})
			return
		}
		input.Date = &date
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEntryResponse(output.Entry))
}

// Delete handles DELETE requests for an entry.
func (c *LedgerController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	entryID, ok := c.parseEntryID(ctx)
	if !ok {
		return
	}

	_, err := c.deleteUseCase.Execute(ctx.Request.Context(), ledger.DeleteEntryInput{
		ID:     entryID,
		UserID: userID,
		Kind:   c.kind,
	})
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Entry deleted successfully",
	})
}

// parseEntryID parses the :id path parameter, writing the error response itself.
func (c *LedgerController) parseEntryID(ctx *gin.Context) (uuid.UUID, bool) {
	entryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Ledger entry not found",
			Code:  string(domainerror.ErrCodeEntryNotFound),
		})
		return uuid.Nil, false
	}
	return entryID, true
}

// handleLedgerError handles ledger errors and returns appropriate HTTP responses.
func (c *LedgerController) handleLedgerError(ctx *gin.Context, err error) {
	var ledgerErr *domainerror.LedgerError
	if errors.As(err, &ledgerErr) {
		statusCode := http.StatusBadRequest
		if ledgerErr.Code == domainerror.ErrCodeEntryNotFound {
			statusCode = http.StatusNotFound
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: ledgerErr.Message,
			Code:  string(ledgerErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// respondUnauthorized writes the shared missing-authentication response.
func respondUnauthorized(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "Authentication required",
		Code:  string(domainerror.ErrCodeMissingToken),
	})
}
