package model

import "math"

// Fixed calendar approximations used for cost projection. Everything scales
// from the hourly figure; months are 30 days and years 365 regardless of
// calendar.
const (
	HoursPerDay  = 24
	DaysPerMonth = 30
	DaysPerYear  = 365
)

// Result carries the derived power and cost figures for one calculation.
// Units:
// - ApparentPowerKVA: kVA
// - RealPowerKW, AdjustedPowerKW: kW
// - ReactivePowerKVAR: kVAR
// - Cost*: currency, at RatePerKWh
//
// The resolved power factor, efficiency and rate are echoed back so a
// consumer (or a saved history item) can see exactly what the calculation
// used.
type Result struct {
	ApparentPowerKVA  float64 `json:"kva"`
	RealPowerKW       float64 `json:"kw"`
	ReactivePowerKVAR float64 `json:"kvar"`
	AdjustedPowerKW   float64 `json:"adjusted_kw"`

	PowerFactor float64 `json:"power_factor"`
	Efficiency  float64 `json:"efficiency"`
	RatePerKWh  float64 `json:"rate"`
	Phase       Phase   `json:"phase"`

	CostPerHour  float64 `json:"cost_per_hour"`
	CostPerDay   float64 `json:"cost_per_day"`
	CostPerMonth float64 `json:"cost_per_month"`
	CostPerYear  float64 `json:"cost_per_year"`
}

// Calculate derives the power and cost figures from a resolved input set.
// Apparent power uses the single-phase formula only for SinglePhase; any
// other phase value takes the three-phase branch.
func Calculate(r Resolved) Result {
	kva := r.Voltage * r.Current / 1000
	if r.Phase != SinglePhase {
		kva = math.Sqrt(3) * r.Voltage * r.Current / 1000
	}
	kw := kva * r.PowerFactor
	adjusted := kw * r.Efficiency / 100

	// The radicand can dip a hair below zero when the power factor sits at
	// or near 1; clamp so the root stays in domain.
	kvar := math.Sqrt(math.Max(0, kva*kva-kw*kw))

	hourly := adjusted * r.RatePerKWh
	daily := hourly * HoursPerDay

	return Result{
		ApparentPowerKVA:  kva,
		RealPowerKW:       kw,
		ReactivePowerKVAR: kvar,
		AdjustedPowerKW:   adjusted,
		PowerFactor:       r.PowerFactor,
		Efficiency:        r.Efficiency,
		RatePerKWh:        r.RatePerKWh,
		Phase:             r.Phase,
		CostPerHour:       hourly,
		CostPerDay:        daily,
		CostPerMonth:      daily * DaysPerMonth,
		CostPerYear:       daily * DaysPerYear,
	}
}
