package model

import (
	"errors"
	"fmt"
	"strings"
)

const minutesPerDay = 24 * 60

// TOUSchedule is an optional time-of-use tariff: one peak window per day at
// PeakRate, the rest of the day at OffPeakRate. Window bounds are minutes of
// day on a 24h clock; the window may wrap across midnight. Equal bounds mean
// an empty peak window.
type TOUSchedule struct {
	peakStartMins int
	peakEndMins   int

	PeakRate    float64 // currency per kWh inside the window
	OffPeakRate float64 // currency per kWh outside the window
}

// NewTOUSchedule parses "HH:MM" window bounds into a schedule.
func NewTOUSchedule(peakStart, peakEnd string, peakRate, offPeakRate float64) (TOUSchedule, error) {
	start, err := parseHHMM(peakStart)
	if err != nil {
		return TOUSchedule{}, err
	}
	end, err := parseHHMM(peakEnd)
	if err != nil {
		return TOUSchedule{}, err
	}
	if peakRate < 0 || offPeakRate < 0 {
		return TOUSchedule{}, errors.New("tou rates must be >= 0")
	}
	return TOUSchedule{
		peakStartMins: start,
		peakEndMins:   end,
		PeakRate:      peakRate,
		OffPeakRate:   offPeakRate,
	}, nil
}

// PeakHoursPerDay returns the daily length of the peak window in hours.
func (s TOUSchedule) PeakHoursPerDay() float64 {
	return float64(s.peakMinutes()) / 60
}

func (s TOUSchedule) peakMinutes() int {
	start, end := s.peakStartMins, s.peakEndMins
	if start == end {
		return 0
	}
	if start < end {
		return end - start
	}
	// window wraps across midnight
	return (minutesPerDay - start) + end
}

// TOUResult projects the cost of a constant load under the schedule.
type TOUResult struct {
	PeakHours    float64
	OffPeakHours float64
	CostPerDay   float64
	CostPerMonth float64
	CostPerYear  float64
}

// Cost projects a constant adjusted load (kW) through the schedule.
func (s TOUSchedule) Cost(adjustedKW float64) TOUResult {
	peak := s.PeakHoursPerDay()
	off := HoursPerDay - peak
	daily := adjustedKW * (peak*s.PeakRate + off*s.OffPeakRate)
	return TOUResult{
		PeakHours:    peak,
		OffPeakHours: off,
		CostPerDay:   daily,
		CostPerMonth: daily * DaysPerMonth,
		CostPerYear:  daily * DaysPerYear,
	}
}

// parseHHMM parses "HH:MM" (24h clock) into minutes since midnight.
func parseHHMM(s string) (int, error) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	var h, m int
	if _, err := fmt.Sscanf(parts[0], "%d", &h); err != nil {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	if _, err := fmt.Sscanf(parts[1], "%d", &m); err != nil {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("time %q out of range", s)
	}
	return h*60 + m, nil
}
