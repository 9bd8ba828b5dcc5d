package model

import "math"

// Inputs are the raw readings for one calculation.
// Units:
// - Voltage: volts
// - Current: amps
// - PowerFactor: ratio, 0..1
// - Efficiency: percent, 0..100
// - Rate: currency per kWh
//
// Optional fields are pointers; nil means the caller left the field blank.
// A NaN value counts as blank too: it is an unparseable reading, not a
// measurement.
type Inputs struct {
	Voltage     float64
	Current     float64
	Phase       Phase
	PowerFactor *float64
	Efficiency  *float64
	Rate        *float64
}

// Defaults are substituted for absent optional inputs. Substitution is
// decided by presence, never by value: an explicit zero rate stays zero.
type Defaults struct {
	PowerFactor float64
	Efficiency  float64
	Rate        float64
}

// StandardDefaults returns the built-in defaults used when no configuration
// overrides them.
func StandardDefaults() Defaults {
	return Defaults{PowerFactor: 0.9, Efficiency: 100, Rate: 0.12}
}

// Resolved is a full input set with every optional field filled in. It is
// what Calculate consumes and what a saved history item records, so loading
// an item back reproduces its result exactly.
type Resolved struct {
	Voltage     float64
	Current     float64
	Phase       Phase
	PowerFactor float64
	Efficiency  float64
	RatePerKWh  float64
}

// Resolve fills absent optional inputs from defaults.
func Resolve(in Inputs, d Defaults) Resolved {
	out := Resolved{
		Voltage:     in.Voltage,
		Current:     in.Current,
		Phase:       in.Phase,
		PowerFactor: d.PowerFactor,
		Efficiency:  d.Efficiency,
		RatePerKWh:  d.Rate,
	}
	if present(in.PowerFactor) {
		out.PowerFactor = *in.PowerFactor
	}
	if present(in.Efficiency) {
		out.Efficiency = *in.Efficiency
	}
	if present(in.Rate) {
		out.RatePerKWh = *in.Rate
	}
	return out
}

func present(v *float64) bool {
	return v != nil && !math.IsNaN(*v)
}
