// Package validate checks calculation inputs against a bounded rule table
// before any math runs.
package validate

import (
	"fmt"
	"math"
	"strconv"

	"github.com/Eronmosele95/electrical-dashboard/internal/model"
)

// Rule bounds one numeric input field. Rules are built once from
// configuration and never mutated.
type Rule struct {
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	Required    bool    `json:"required"`
	Description string  `json:"description"`
}

// Check reports whether v satisfies the rule. Required rules treat the
// minimum as exclusive: zero volts or amps is not a measurement. Optional
// rules accept an absent (nil or NaN) value and use inclusive bounds.
func (r Rule) Check(v *float64) bool {
	if v == nil || math.IsNaN(*v) {
		return !r.Required
	}
	if r.Required {
		return *v > r.Min && *v <= r.Max
	}
	return *v >= r.Min && *v <= r.Max
}

// Limits is the rule table for the four checked fields. Rate and phase are
// not validated here: any non-negative rate is meaningful and phase is
// checked at parse time.
type Limits struct {
	Voltage     Rule
	Current     Rule
	PowerFactor Rule
	Efficiency  Rule
}

// DefaultLimits returns the standard rule table.
func DefaultLimits() Limits {
	return Limits{
		Voltage:     Rule{Min: 0, Max: 1_000_000, Required: true, Description: "Supply voltage in volts"},
		Current:     Rule{Min: 0, Max: 100_000, Required: true, Description: "Load current in amps"},
		PowerFactor: Rule{Min: 0.5, Max: 1.0, Required: false, Description: "Ratio of real to apparent power"},
		Efficiency:  Rule{Min: 0, Max: 100, Required: false, Description: "Load efficiency in percent"},
	}
}

// Result is the verdict for one input set. Errors holds one human-readable
// message per failed rule, in field order: voltage, current, power factor,
// efficiency.
type Result struct {
	Valid  bool     `json:"is_valid"`
	Errors []string `json:"errors"`
}

// Check applies every rule independently and accumulates failures; it never
// short-circuits, so the caller sees all problems at once.
func Check(in model.Inputs, lim Limits) Result {
	errs := make([]string, 0, 4)
	if !lim.Voltage.Check(&in.Voltage) {
		errs = append(errs, requiredMessage("Voltage", "V", in.Voltage, lim.Voltage))
	}
	if !lim.Current.Check(&in.Current) {
		errs = append(errs, requiredMessage("Current", "A", in.Current, lim.Current))
	}
	if !lim.PowerFactor.Check(in.PowerFactor) {
		errs = append(errs, rangeMessage("Power factor", lim.PowerFactor))
	}
	if !lim.Efficiency.Check(in.Efficiency) {
		errs = append(errs, rangeMessage("Efficiency", lim.Efficiency))
	}
	return Result{Valid: len(errs) == 0, Errors: errs}
}

func requiredMessage(field, unit string, v float64, r Rule) string {
	if !math.IsNaN(v) && v > r.Max {
		return fmt.Sprintf("%s cannot exceed %s %s", field, formatBound(r.Max), unit)
	}
	return fmt.Sprintf("%s must be a number greater than %s", field, formatBound(r.Min))
}

func rangeMessage(field string, r Rule) string {
	return fmt.Sprintf("%s must be between %s and %s", field, formatBound(r.Min), formatBound(r.Max))
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
