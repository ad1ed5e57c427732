package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/rpgo/incometax/internal/config"
	"github.com/rpgo/incometax/internal/domain"
	"github.com/rpgo/incometax/internal/output"
)

// CalculateRequest is the body of POST /tax/calculate
type CalculateRequest struct {
	AnnualIncome *decimal.Decimal      `json:"annualIncome" binding:"required"`
	Regime       string                `json:"regime" binding:"required,oneof=old new"`
	IsSalaried   bool                  `json:"isSalaried"`
	Deductions   domain.DeductionInput `json:"deductions"`
	FiscalYear   string                `json:"fiscalYear"`
}

// CompareRequest is the body of POST /tax/compare; the regime is optional
type CompareRequest struct {
	AnnualIncome *decimal.Decimal      `json:"annualIncome" binding:"required"`
	Regime       string                `json:"regime" binding:"omitempty,oneof=old new"`
	IsSalaried   bool                  `json:"isSalaried"`
	Deductions   domain.DeductionInput `json:"deductions"`
	FiscalYear   string                `json:"fiscalYear"`
}

// ErrorResponse is returned for every non-2xx response
type ErrorResponse struct {
	Error         string `json:"error"`
	CorrelationID string `json:"correlation_id,omitempty"`
}

func toDomainRequest(income *decimal.Decimal, regime string, salaried bool, deductions domain.DeductionInput, fy string) domain.TaxRequest {
	req := domain.TaxRequest{
		Regime:     domain.Regime(regime),
		IsSalaried: salaried,
		Deductions: deductions,
		FiscalYear: fy,
	}
	if income != nil {
		req.AnnualIncome = *income
	}
	return req
}

// sendError logs the failure and writes an ErrorResponse carrying the correlation ID
func (s *Server) sendError(c *gin.Context, statusCode int, message string, err error) {
	id := correlationID(c)
	s.logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.String("correlation_id", id),
	)
	c.JSON(statusCode, ErrorResponse{Error: message, CorrelationID: id})
}

// handleEngineError maps engine errors to HTTP status codes
func (s *Server) handleEngineError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		s.sendError(c, http.StatusBadRequest, err.Error(), err)
	default:
		s.sendError(c, http.StatusInternalServerError, "Internal server error", err)
	}
}

// Calculate godoc
// @Summary      Calculate income tax
// @Tags         tax
// @Accept       json
// @Produce      json
// @Param        request body CalculateRequest true "Tax request"
// @Success      200 {object} output.AssessmentView
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /tax/calculate [post]
func (s *Server) Calculate(c *gin.Context) {
	var body CalculateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		s.sendError(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), err)
		return
	}
	req := toDomainRequest(body.AnnualIncome, body.Regime, body.IsSalaried, body.Deductions, body.FiscalYear)
	if err := config.ValidateRequest(&req, true); err != nil {
		s.sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	assessment, err := s.engine.Assess(req)
	if err != nil {
		s.handleEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, output.NewAssessmentView(assessment))
}

// Compare godoc
// @Summary      Compare old and new regimes
// @Tags         tax
// @Accept       json
// @Produce      json
// @Param        request body CompareRequest true "Tax request (regime optional)"
// @Success      200 {object} output.ComparisonView
// @Failure      400 {object} ErrorResponse
// @Router       /tax/compare [post]
func (s *Server) Compare(c *gin.Context) {
	var body CompareRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		s.sendError(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), err)
		return
	}
	req := toDomainRequest(body.AnnualIncome, body.Regime, body.IsSalaried, body.Deductions, body.FiscalYear)
	if err := config.ValidateRequest(&req, false); err != nil {
		s.sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	comparison, err := s.engine.CompareRegimes(req)
	if err != nil {
		s.handleEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, output.NewComparisonView(comparison))
}

// Slabs godoc
// @Summary      List the slab table of a regime
// @Tags         tax
// @Produce      json
// @Param        regime path string true "Regime" Enums(old, new)
// @Success      200 {object} output.SlabTableView
// @Failure      400 {object} ErrorResponse
// @Router       /tax/slabs/{regime} [get]
func (s *Server) Slabs(c *gin.Context) {
	regime, err := domain.ParseRegime(c.Param("regime"))
	if err != nil {
		s.sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}
	view, err := output.NewSlabTableView(s.engine.Rules(), regime)
	if err != nil {
		s.sendError(c, http.StatusInternalServerError, "Internal server error", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Health reports liveness and the bound rules year
func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"rulesYear": s.engine.Rules().Year,
	})
}
