package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTOUScheduleCost(t *testing.T) {
	sched, err := NewTOUSchedule("17:00", "21:00", 0.30, 0.10)
	require.NoError(t, err)

	assert.InDelta(t, 4, sched.PeakHoursPerDay(), 1e-9)

	// 1 kW constant: 4h * 0.30 + 20h * 0.10 = 3.20/day.
	res := sched.Cost(1.0)
	assert.InDelta(t, 4, res.PeakHours, 1e-9)
	assert.InDelta(t, 20, res.OffPeakHours, 1e-9)
	assert.InDelta(t, 3.20, res.CostPerDay, 1e-9)
	assert.InDelta(t, 96.0, res.CostPerMonth, 1e-9)
	assert.InDelta(t, 1168.0, res.CostPerYear, 1e-9)
}

func TestTOUScheduleWrapsMidnight(t *testing.T) {
	sched, err := NewTOUSchedule("22:00", "06:00", 0.30, 0.10)
	require.NoError(t, err)

	assert.InDelta(t, 8, sched.PeakHoursPerDay(), 1e-9)
}

func TestTOUScheduleEmptyWindow(t *testing.T) {
	sched, err := NewTOUSchedule("08:00", "08:00", 0.30, 0.10)
	require.NoError(t, err)

	assert.Zero(t, sched.PeakHoursPerDay())

	// With an empty window the whole day is off-peak.
	res := sched.Cost(2.0)
	assert.InDelta(t, 2.0*24*0.10, res.CostPerDay, 1e-9)
}

func TestNewTOUScheduleRejectsBadInput(t *testing.T) {
	tests := []struct {
		name                  string
		start, end            string
		peakRate, offPeakRate float64
	}{
		{"missing colon", "1700", "21:00", 0.3, 0.1},
		{"hour out of range", "25:00", "21:00", 0.3, 0.1},
		{"minute out of range", "17:75", "21:00", 0.3, 0.1},
		{"non-numeric", "ab:cd", "21:00", 0.3, 0.1},
		{"bad end bound", "17:00", "9pm", 0.3, 0.1},
		{"negative peak rate", "17:00", "21:00", -0.3, 0.1},
		{"negative off-peak rate", "17:00", "21:00", 0.3, -0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTOUSchedule(tt.start, tt.end, tt.peakRate, tt.offPeakRate)
			assert.Error(t, err)
		})
	}
}
