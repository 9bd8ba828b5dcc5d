package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Eronmosele95/electrical-dashboard/internal/api/models"
	"github.com/Eronmosele95/electrical-dashboard/internal/model"
	"github.com/Eronmosele95/electrical-dashboard/internal/validate"
)

// RulesHandler serves the validation rules and defaults so clients can
// mirror server-side checks in their forms.
type RulesHandler struct {
	defaults model.Defaults
	limits   validate.Limits
}

// NewRulesHandler creates a new rules handler
func NewRulesHandler(defaults model.Defaults, limits validate.Limits) *RulesHandler {
	return &RulesHandler{defaults: defaults, limits: limits}
}

// ListRules handles GET /api/v1/rules
func (h *RulesHandler) ListRules(c *gin.Context) {
	c.JSON(http.StatusOK, models.RulesResponse{
		Rules: []models.FieldRule{
			fieldRule("voltage", h.limits.Voltage),
			fieldRule("current", h.limits.Current),
			fieldRule("power_factor", h.limits.PowerFactor),
			fieldRule("efficiency", h.limits.Efficiency),
		},
		Defaults: models.DefaultsPayload{
			PowerFactor: h.defaults.PowerFactor,
			Efficiency:  h.defaults.Efficiency,
			Rate:        h.defaults.Rate,
		},
	})
}

func fieldRule(name string, r validate.Rule) models.FieldRule {
	return models.FieldRule{
		Field:       name,
		Min:         r.Min,
		Max:         r.Max,
		Required:    r.Required,
		Description: r.Description,
	}
}
