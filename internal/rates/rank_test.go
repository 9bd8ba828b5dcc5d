package rates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Eronmosele95/electrical-dashboard/internal/model"
)

func TestRankByAnnualCost(t *testing.T) {
	presets := []Preset{
		{ID: "pricey", Region: "Pricey", RatePerKWh: 0.40},
		{ID: "cheap", Region: "Cheap", RatePerKWh: 0.05},
		{ID: "middle", Region: "Middle", RatePerKWh: 0.20},
	}
	base := model.Resolve(model.Inputs{
		Voltage: 480,
		Current: 100,
		Phase:   model.ThreePhase,
	}, model.StandardDefaults())

	ranked := RankByAnnualCost(presets, base)
	require.Len(t, ranked, 3)

	assert.Equal(t, "cheap", ranked[0].ID)
	assert.Equal(t, "middle", ranked[1].ID)
	assert.Equal(t, "pricey", ranked[2].ID)

	for i := 1; i < len(ranked); i++ {
		assert.LessOrEqual(t, ranked[i-1].CostPerYear, ranked[i].CostPerYear)
	}

	// Doubling the rate doubles the projected cost: the load is identical
	// across presets.
	assert.InDelta(t, ranked[1].CostPerYear*2, ranked[2].CostPerYear, 1e-6)
}

func TestRankIgnoresBaseRate(t *testing.T) {
	presets := []Preset{{ID: "only", Region: "Only", RatePerKWh: 0.10}}

	cheapBase := model.Resolve(model.Inputs{Voltage: 120, Current: 10, Phase: model.SinglePhase, Rate: ptr(0.01)}, model.StandardDefaults())
	priceyBase := cheapBase
	priceyBase.RatePerKWh = 9.99

	a := RankByAnnualCost(presets, cheapBase)
	b := RankByAnnualCost(presets, priceyBase)
	assert.InDelta(t, a[0].CostPerYear, b[0].CostPerYear, 1e-9)
}

func TestRankEmptyPresets(t *testing.T) {
	base := model.Resolve(model.Inputs{Voltage: 120, Current: 10, Phase: model.SinglePhase}, model.StandardDefaults())
	ranked := RankByAnnualCost(nil, base)
	assert.NotNil(t, ranked)
	assert.Empty(t, ranked)
}

func ptr(v float64) *float64 { return &v }
