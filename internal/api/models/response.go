package models

import (
	"github.com/Eronmosele95/electrical-dashboard/internal/history"
	"github.com/Eronmosele95/electrical-dashboard/internal/model"
	"github.com/Eronmosele95/electrical-dashboard/internal/rates"
	"github.com/Eronmosele95/electrical-dashboard/internal/validate"
)

// CalculationResponse returns the derived figures for one request.
type CalculationResponse struct {
	Result model.Result `json:"result"`
	TOU    *TOUResult   `json:"tou,omitempty"`
}

// TOUResult is the extra cost block computed when the request carried a
// time-of-use tariff.
type TOUResult struct {
	PeakHours    float64 `json:"peak_hours"`
	OffPeakHours float64 `json:"off_peak_hours"`
	PeakRate     float64 `json:"peak_rate"`
	OffPeakRate  float64 `json:"off_peak_rate"`
	CostPerDay   float64 `json:"cost_per_day"`
	CostPerMonth float64 `json:"cost_per_month"`
	CostPerYear  float64 `json:"cost_per_year"`
}

// ValidationResponse is the validator verdict, reported without running the
// calculation.
type ValidationResponse struct {
	IsValid bool     `json:"is_valid"`
	Errors  []string `json:"errors"`
}

// NewValidationResponse keeps the errors array present (never null) so UI
// consumers can iterate it unconditionally.
func NewValidationResponse(v validate.Result) ValidationResponse {
	errs := v.Errors
	if errs == nil {
		errs = []string{}
	}
	return ValidationResponse{IsValid: v.Valid, Errors: errs}
}

// CompareResponse holds one entry per requested variation, in request order.
type CompareResponse struct {
	Results []CompareResult `json:"results"`
}

// CompareResult is the outcome of one variation: either a result or the
// validation errors that blocked it.
type CompareResult struct {
	Name   string        `json:"name"`
	Result *model.Result `json:"result,omitempty"`
	TOU    *TOUResult    `json:"tou,omitempty"`
	Errors []string      `json:"errors,omitempty"`
}

// FieldRule describes one validation rule in the rules listing.
type FieldRule struct {
	Field       string  `json:"field"`
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	Required    bool    `json:"required"`
	Description string  `json:"description"`
}

// DefaultsPayload echoes the values substituted for absent optional inputs.
type DefaultsPayload struct {
	PowerFactor float64 `json:"power_factor"`
	Efficiency  float64 `json:"efficiency"`
	Rate        float64 `json:"rate"`
}

// RulesResponse publishes the active rule table and defaults so a client
// can hint limits before submitting.
type RulesResponse struct {
	Rules    []FieldRule     `json:"rules"`
	Defaults DefaultsPayload `json:"defaults"`
}

// HistoryListResponse lists saved calculations, newest first.
type HistoryListResponse struct {
	Items []history.Item `json:"items"`
	Count int            `json:"count"`
}

// ThemeResponse reports the active theme.
type ThemeResponse struct {
	Theme string `json:"theme"`
}

// RatesResponse lists the available rate presets.
type RatesResponse struct {
	UpdatedAt string         `json:"updated_at,omitempty"`
	Presets   []rates.Preset `json:"presets"`
	Count     int            `json:"count"`
}

// RateRanking is one row of the rate ranking, cheapest first.
type RateRanking struct {
	Rank         int     `json:"rank"`
	ID           string  `json:"id"`
	Region       string  `json:"region"`
	RatePerKWh   float64 `json:"rate_per_kwh"`
	CostPerMonth float64 `json:"cost_per_month"`
	CostPerYear  float64 `json:"cost_per_year"`
}

// RateRankResponse holds the ranked presets for one load.
type RateRankResponse struct {
	Rankings []RateRanking `json:"rankings"`
}

// LiveMessage is one server reply on the live socket: a result for a valid
// request, the validator messages for an invalid one, or a request error.
type LiveMessage struct {
	Type    string        `json:"type"` // "result" | "validation_error" | "error"
	Result  *model.Result `json:"result,omitempty"`
	TOU     *TOUResult    `json:"tou,omitempty"`
	Errors  []string      `json:"errors,omitempty"`
	Message string        `json:"message,omitempty"`
}

// ErrorResponse is the error envelope every non-2xx response uses.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}
