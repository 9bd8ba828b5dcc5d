package models

// CalculateRequest carries the raw input fields for one calculation.
// Optional fields are pointers: absent means "use the configured default",
// while an explicit zero is honored as zero. Phase 0 counts as omitted and
// defaults to single-phase.
type CalculateRequest struct {
	Voltage     float64    `json:"voltage"`
	Current     float64    `json:"current"`
	Phase       int        `json:"phase,omitempty"`
	PowerFactor *float64   `json:"power_factor,omitempty"`
	Efficiency  *float64   `json:"efficiency,omitempty"`
	Rate        *float64   `json:"rate,omitempty"`
	TOU         *TOUConfig `json:"tou,omitempty"`
}

// TOUConfig is an optional time-of-use tariff block: one peak window per
// day, "HH:MM" bounds on a 24h clock.
type TOUConfig struct {
	PeakStart   string  `json:"peak_start"`
	PeakEnd     string  `json:"peak_end"`
	PeakRate    float64 `json:"peak_rate"`
	OffPeakRate float64 `json:"off_peak_rate"`
}

// CompareRequest runs one base input set plus named variations in a single
// call.
type CompareRequest struct {
	Base       CalculateRequest `json:"base"`
	Variations []Variation      `json:"variations" binding:"required"`
}

// Variation names a partial override of the base request.
type Variation struct {
	Name      string    `json:"name" binding:"required"`
	Overrides Overrides `json:"overrides"`
}

// Overrides replaces part of a base request. Only non-nil fields apply.
type Overrides struct {
	Voltage     *float64 `json:"voltage,omitempty"`
	Current     *float64 `json:"current,omitempty"`
	Phase       *int     `json:"phase,omitempty"`
	PowerFactor *float64 `json:"power_factor,omitempty"`
	Efficiency  *float64 `json:"efficiency,omitempty"`
	Rate        *float64 `json:"rate,omitempty"`
}

// Apply overlays the non-nil override fields onto base.
func (o Overrides) Apply(base CalculateRequest) CalculateRequest {
	merged := base
	if o.Voltage != nil {
		merged.Voltage = *o.Voltage
	}
	if o.Current != nil {
		merged.Current = *o.Current
	}
	if o.Phase != nil {
		merged.Phase = *o.Phase
	}
	if o.PowerFactor != nil {
		merged.PowerFactor = o.PowerFactor
	}
	if o.Efficiency != nil {
		merged.Efficiency = o.Efficiency
	}
	if o.Rate != nil {
		merged.Rate = o.Rate
	}
	return merged
}

// ThemeRequest sets the dashboard theme.
type ThemeRequest struct {
	Theme string `json:"theme" binding:"required"`
}

// RateRankRequest holds the query parameters for ranking rate presets
// against one load.
type RateRankRequest struct {
	Voltage     float64  `form:"voltage"`
	Current     float64  `form:"current"`
	Phase       int      `form:"phase"`
	PowerFactor *float64 `form:"power_factor"`
	Efficiency  *float64 `form:"efficiency"`
	Limit       int      `form:"limit"`
}
