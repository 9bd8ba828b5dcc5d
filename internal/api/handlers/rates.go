package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Eronmosele95/electrical-dashboard/internal/api/models"
	"github.com/Eronmosele95/electrical-dashboard/internal/model"
	"github.com/Eronmosele95/electrical-dashboard/internal/rates"
	"github.com/Eronmosele95/electrical-dashboard/internal/validate"
)

// RatesHandler serves the rate preset catalog and rankings
type RatesHandler struct {
	catalog  *rates.Catalog
	defaults model.Defaults
	limits   validate.Limits
}

// NewRatesHandler creates a new rates handler
func NewRatesHandler(catalog *rates.Catalog, defaults model.Defaults, limits validate.Limits) *RatesHandler {
	return &RatesHandler{catalog: catalog, defaults: defaults, limits: limits}
}

// ListRates handles GET /api/v1/rates
func (h *RatesHandler) ListRates(c *gin.Context) {
	c.JSON(http.StatusOK, models.RatesResponse{
		UpdatedAt: h.catalog.UpdatedAt,
		Presets:   h.catalog.Presets,
		Count:     len(h.catalog.Presets),
	})
}

// RankRates handles GET /api/v1/rates/rank
func (h *RatesHandler) RankRates(c *gin.Context) {
	var req models.RateRankRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	inputs, err := inputsFromRequest(models.CalculateRequest{
		Voltage:     req.Voltage,
		Current:     req.Current,
		Phase:       req.Phase,
		PowerFactor: req.PowerFactor,
		Efficiency:  req.Efficiency,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_PHASE",
				Message: err.Error(),
			},
		})
		return
	}

	if v := validate.Check(inputs, h.limits); !v.Valid {
		respondValidationFailed(c, v)
		return
	}

	ranked := rates.RankByAnnualCost(h.catalog.Presets, model.Resolve(inputs, h.defaults))
	if req.Limit > 0 && req.Limit < len(ranked) {
		ranked = ranked[:req.Limit]
	}

	rankings := make([]models.RateRanking, len(ranked))
	for i, r := range ranked {
		rankings[i] = models.RateRanking{
			Rank:         i + 1,
			ID:           r.ID,
			Region:       r.Region,
			RatePerKWh:   r.RatePerKWh,
			CostPerMonth: r.CostPerMonth,
			CostPerYear:  r.CostPerYear,
		}
	}

	c.JSON(http.StatusOK, models.RateRankResponse{Rankings: rankings})
}
