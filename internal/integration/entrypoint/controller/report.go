// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-ledger/backend/internal/application/usecase/report"
	domainerror "github.com/finance-ledger/backend/internal/domain/error"
	"github.com/finance-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/finance-ledger/backend/internal/integration/entrypoint/middleware"
)

// ReportController handles report endpoints.
type ReportController struct {
	assembleUseCase *report.AssembleReportUseCase
	listUseCase     *report.ListReportsUseCase
	exportUseCase   *report.ExportReportUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	assembleUseCase *report.AssembleReportUseCase,
	listUseCase *report.ListReportsUseCase,
	exportUseCase *report.ExportReportUseCase,
) *ReportController {
	return &ReportController{
		assembleUseCase: assembleUseCase,
		listUseCase:     listUseCase,
		exportUseCase:   exportUseCase,
	}
}

// Generate handles POST /reports/generate requests.
func (c *ReportController) Generate(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	input, ok := c.parseAssembleInput(ctx, userID)
	if !ok {
		return
	}

	output, err := c.assembleUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReportResponse(output))
}

// List handles GET /reports requests.
func (c *ReportController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), report.ListReportsInput{
		UserID: userID,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReportListResponse(output.Reports))
}

// Export handles POST /reports/export/:format requests, streaming the
// rendered document as a download.
func (c *ReportController) Export(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	assembleInput, ok := c.parseAssembleInput(ctx, userID)
	if !ok {
		return
	}

	output, err := c.exportUseCase.Execute(ctx.Request.Context(), report.ExportReportInput{
		AssembleReportInput: assembleInput,
		Format:              ctx.Param("format"),
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.FileName))
	ctx.Data(http.StatusOK, output.ContentType, output.Content)
}

// parseAssembleInput binds and parses the report request body, writing the
// error response itself.
func (c *ReportController) parseAssembleInput(ctx *gin.Context, userID uuid.UUID) (report.AssembleReportInput, bool) {
	var req dto.GenerateReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingReportFields),
		})
		return report.AssembleReportInput{}, false
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid start date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidReportRange),
		})
		return report.AssembleReportInput{}, false
	}

	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid end date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidReportRange),
		})
		return report.AssembleReportInput{}, false
	}

	return report.AssembleReportInput{
		UserID:     userID,
		ReportType: req.ReportType,
		StartDate:  startDate,
		EndDate:    endDate,
	}, true
}

// handleReportError handles report errors and returns appropriate HTTP responses.
func (c *ReportController) handleReportError(ctx *gin.Context, err error) {
	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) {
		statusCode := http.StatusBadRequest
		if reportErr.Code == domainerror.ErrCodeRenderFailed {
			statusCode = http.StatusInternalServerError
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: reportErr.Message,
			Code:  string(reportErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
