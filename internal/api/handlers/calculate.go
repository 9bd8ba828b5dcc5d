package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Eronmosele95/electrical-dashboard/internal/api/models"
	"github.com/Eronmosele95/electrical-dashboard/internal/metrics"
	"github.com/Eronmosele95/electrical-dashboard/internal/model"
	"github.com/Eronmosele95/electrical-dashboard/internal/validate"
)

// CalculateHandler handles power calculation requests
type CalculateHandler struct {
	defaults model.Defaults
	limits   validate.Limits
}

// NewCalculateHandler creates a new calculate handler
func NewCalculateHandler(defaults model.Defaults, limits validate.Limits) *CalculateHandler {
	return &CalculateHandler{defaults: defaults, limits: limits}
}

// Calculate handles POST /api/v1/calculate
func (h *CalculateHandler) Calculate(c *gin.Context) {
	var req models.CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	inputs, err := inputsFromRequest(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_PHASE",
				Message: err.Error(),
			},
		})
		return
	}

	schedule, err := parseTOU(req.TOU)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_TOU",
				Message: err.Error(),
			},
		})
		return
	}

	if v := validate.Check(inputs, h.limits); !v.Valid {
		respondValidationFailed(c, v)
		return
	}

	resolved := model.Resolve(inputs, h.defaults)
	result := model.Calculate(resolved)
	metrics.RecordCalculation(resolved.Phase.String())

	c.JSON(http.StatusOK, models.CalculationResponse{
		Result: result,
		TOU:    touPayload(schedule, result.AdjustedPowerKW),
	})
}

// Compare handles POST /api/v1/calculate/compare
func (h *CalculateHandler) Compare(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	results := make([]models.CompareResult, 0, len(req.Variations))
	for _, variation := range req.Variations {
		results = append(results, h.runVariation(variation.Name, variation.Overrides.Apply(req.Base)))
	}

	c.JSON(http.StatusOK, models.CompareResponse{Results: results})
}

// Validate handles POST /api/v1/validate
func (h *CalculateHandler) Validate(c *gin.Context) {
	var req models.CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	inputs, err := inputsFromRequest(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_PHASE",
				Message: err.Error(),
			},
		})
		return
	}

	v := validate.Check(inputs, h.limits)
	if !v.Valid {
		metrics.RecordValidationFailure()
	}
	c.JSON(http.StatusOK, models.NewValidationResponse(v))
}

// runVariation evaluates one comparison entry. Bad variations report their
// errors in place instead of dropping out of the response.
func (h *CalculateHandler) runVariation(name string, req models.CalculateRequest) models.CompareResult {
	inputs, err := inputsFromRequest(req)
	if err != nil {
		return models.CompareResult{Name: name, Errors: []string{err.Error()}}
	}

	schedule, err := parseTOU(req.TOU)
	if err != nil {
		return models.CompareResult{Name: name, Errors: []string{err.Error()}}
	}

	if v := validate.Check(inputs, h.limits); !v.Valid {
		return models.CompareResult{Name: name, Errors: v.Errors}
	}

	resolved := model.Resolve(inputs, h.defaults)
	result := model.Calculate(resolved)
	metrics.RecordCalculation(resolved.Phase.String())

	return models.CompareResult{
		Name:   name,
		Result: &result,
		TOU:    touPayload(schedule, result.AdjustedPowerKW),
	}
}

// Helper functions shared across handlers

func inputsFromRequest(req models.CalculateRequest) (model.Inputs, error) {
	phase := model.SinglePhase
	if req.Phase != 0 {
		parsed, err := model.ParsePhase(req.Phase)
		if err != nil {
			return model.Inputs{}, err
		}
		phase = parsed
	}

	return model.Inputs{
		Voltage:     req.Voltage,
		Current:     req.Current,
		Phase:       phase,
		PowerFactor: req.PowerFactor,
		Efficiency:  req.Efficiency,
		Rate:        req.Rate,
	}, nil
}

func parseTOU(cfg *models.TOUConfig) (*model.TOUSchedule, error) {
	if cfg == nil {
		return nil, nil
	}
	schedule, err := model.NewTOUSchedule(cfg.PeakStart, cfg.PeakEnd, cfg.PeakRate, cfg.OffPeakRate)
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

func touPayload(s *model.TOUSchedule, adjustedKW float64) *models.TOUResult {
	if s == nil {
		return nil
	}
	cost := s.Cost(adjustedKW)
	return &models.TOUResult{
		PeakHours:    cost.PeakHours,
		OffPeakHours: cost.OffPeakHours,
		PeakRate:     s.PeakRate,
		OffPeakRate:  s.OffPeakRate,
		CostPerDay:   cost.CostPerDay,
		CostPerMonth: cost.CostPerMonth,
		CostPerYear:  cost.CostPerYear,
	}
}

func respondValidationFailed(c *gin.Context, v validate.Result) {
	metrics.RecordValidationFailure()
	c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "VALIDATION_FAILED",
			Message: "One or more inputs are out of range",
			Details: map[string]any{"errors": v.Errors},
		},
	})
}
