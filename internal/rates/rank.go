package rates

import (
	"sort"

	"github.com/Eronmosele95/electrical-dashboard/internal/model"
)

// RankedPreset pairs a preset with the projected cost of running one load
// under it.
type RankedPreset struct {
	Preset
	CostPerMonth float64
	CostPerYear  float64
}

// RankByAnnualCost projects the load in base under every preset's rate and
// returns the presets cheapest-first. base's own rate is ignored.
func RankByAnnualCost(presets []Preset, base model.Resolved) []RankedPreset {
	out := make([]RankedPreset, 0, len(presets))
	for _, p := range presets {
		r := base
		r.RatePerKWh = p.RatePerKWh
		res := model.Calculate(r)
		out = append(out, RankedPreset{
			Preset:       p,
			CostPerMonth: res.CostPerMonth,
			CostPerYear:  res.CostPerYear,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CostPerYear < out[j].CostPerYear
	})
	return out
}
