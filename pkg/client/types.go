package client

// CalculateRequest is the body for calculate, validate and history-save
// calls. Optional fields are pointers; nil fields take server defaults.
type CalculateRequest struct {
	Voltage     float64    `json:"voltage"`
	Current     float64    `json:"current"`
	Phase       int        `json:"phase,omitempty"`
	PowerFactor *float64   `json:"power_factor,omitempty"`
	Efficiency  *float64   `json:"efficiency,omitempty"`
	Rate        *float64   `json:"rate,omitempty"`
	TOU         *TOUConfig `json:"tou,omitempty"`
}

// TOUConfig is an optional time-of-use tariff: one daily peak window with
// "HH:MM" bounds.
type TOUConfig struct {
	PeakStart   string  `json:"peak_start"`
	PeakEnd     string  `json:"peak_end"`
	PeakRate    float64 `json:"peak_rate"`
	OffPeakRate float64 `json:"off_peak_rate"`
}

// Result carries the derived power and cost figures for one calculation.
type Result struct {
	KVA          float64 `json:"kva"`
	KW           float64 `json:"kw"`
	KVAR         float64 `json:"kvar"`
	AdjustedKW   float64 `json:"adjusted_kw"`
	PowerFactor  float64 `json:"power_factor"`
	Efficiency   float64 `json:"efficiency"`
	Rate         float64 `json:"rate"`
	Phase        int     `json:"phase"`
	CostPerHour  float64 `json:"cost_per_hour"`
	CostPerDay   float64 `json:"cost_per_day"`
	CostPerMonth float64 `json:"cost_per_month"`
	CostPerYear  float64 `json:"cost_per_year"`
}

// TOUCost is the cost block computed when a request carried a tariff.
type TOUCost struct {
	PeakHours    float64 `json:"peak_hours"`
	OffPeakHours float64 `json:"off_peak_hours"`
	PeakRate     float64 `json:"peak_rate"`
	OffPeakRate  float64 `json:"off_peak_rate"`
	CostPerDay   float64 `json:"cost_per_day"`
	CostPerMonth float64 `json:"cost_per_month"`
	CostPerYear  float64 `json:"cost_per_year"`
}

// Calculation is the calculate endpoint's response.
type Calculation struct {
	Result Result   `json:"result"`
	TOU    *TOUCost `json:"tou,omitempty"`
}

// ValidationResult is the validate endpoint's verdict.
type ValidationResult struct {
	IsValid bool     `json:"is_valid"`
	Errors  []string `json:"errors"`
}

// FieldRule describes one server-side validation rule.
type FieldRule struct {
	Field       string  `json:"field"`
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	Required    bool    `json:"required"`
	Description string  `json:"description"`
}

// Defaults are the values the server substitutes for absent optional inputs.
type Defaults struct {
	PowerFactor float64 `json:"power_factor"`
	Efficiency  float64 `json:"efficiency"`
	Rate        float64 `json:"rate"`
}

// Rules is the rules endpoint's response.
type Rules struct {
	Rules    []FieldRule `json:"rules"`
	Defaults Defaults    `json:"defaults"`
}

// HistoryItem is one saved calculation.
type HistoryItem struct {
	ID          string  `json:"id"`
	Timestamp   int64   `json:"timestamp"` // epoch milliseconds
	Voltage     float64 `json:"voltage"`
	Current     float64 `json:"current"`
	Phase       int     `json:"phase"`
	PowerFactor float64 `json:"power_factor"`
	Efficiency  float64 `json:"efficiency"`
	Rate        float64 `json:"rate"`
	Result      Result  `json:"result"`
}

// HistoryList is the history listing, newest first.
type HistoryList struct {
	Items []HistoryItem `json:"items"`
	Count int           `json:"count"`
}

// Preset is one regional electricity rate.
type Preset struct {
	ID         string  `json:"id"`
	Region     string  `json:"region"`
	RatePerKWh float64 `json:"rate_per_kwh"`
	Note       string  `json:"note,omitempty"`
}

// RatesList is the rate preset catalog.
type RatesList struct {
	UpdatedAt string   `json:"updated_at,omitempty"`
	Presets   []Preset `json:"presets"`
	Count     int      `json:"count"`
}

// RateRanking is one ranked preset, cheapest first.
type RateRanking struct {
	Rank         int     `json:"rank"`
	ID           string  `json:"id"`
	Region       string  `json:"region"`
	RatePerKWh   float64 `json:"rate_per_kwh"`
	CostPerMonth float64 `json:"cost_per_month"`
	CostPerYear  float64 `json:"cost_per_year"`
}

// RateRankParams select the load used for a rate ranking. Zero-valued
// optional fields are omitted from the query.
type RateRankParams struct {
	Voltage     float64
	Current     float64
	Phase       int
	PowerFactor *float64
	Efficiency  *float64
	Limit       int
}

type themePayload struct {
	Theme string `json:"theme"`
}

type rateRankPayload struct {
	Rankings []RateRanking `json:"rankings"`
}

type compareResponse struct {
	Results []CompareResult `json:"results"`
}

// CompareVariation names a partial override of the base request in a
// comparison call.
type CompareVariation struct {
	Name      string           `json:"name"`
	Overrides CompareOverrides `json:"overrides"`
}

// CompareOverrides replaces part of the base request. Only non-nil fields
// apply.
type CompareOverrides struct {
	Voltage     *float64 `json:"voltage,omitempty"`
	Current     *float64 `json:"current,omitempty"`
	Phase       *int     `json:"phase,omitempty"`
	PowerFactor *float64 `json:"power_factor,omitempty"`
	Efficiency  *float64 `json:"efficiency,omitempty"`
	Rate        *float64 `json:"rate,omitempty"`
}

// CompareResult is the outcome of one variation: a result, or the errors
// that blocked it.
type CompareResult struct {
	Name   string   `json:"name"`
	Result *Result  `json:"result,omitempty"`
	TOU    *TOUCost `json:"tou,omitempty"`
	Errors []string `json:"errors,omitempty"`
}
