// Package render maps calculation results onto the labeled rows the results
// panel displays, so the CLI and demo print figures the same way.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/Eronmosele95/electrical-dashboard/internal/model"
)

// Row is one labeled line of output.
type Row struct {
	Label string
	Value string
}

// ResultRows maps a result to display rows, in panel order.
func ResultRows(res model.Result) []Row {
	return []Row{
		{"Apparent power", FormatKVA(res.ApparentPowerKVA)},
		{"Real power", FormatKW(res.RealPowerKW)},
		{"Reactive power", FormatKVAR(res.ReactivePowerKVAR)},
		{"Adjusted power", FormatKW(res.AdjustedPowerKW)},
		{"Power factor", fmt.Sprintf("%.2f", res.PowerFactor)},
		{"Efficiency", fmt.Sprintf("%.1f%%", res.Efficiency)},
		{"Phase", FormatPhase(res.Phase)},
		{"Rate", fmt.Sprintf("%.4f/kWh", res.RatePerKWh)},
		{"Cost per hour", FormatMoneyPrecise(res.CostPerHour)},
		{"Cost per day", FormatMoney(res.CostPerDay)},
		{"Cost per month", FormatMoney(res.CostPerMonth)},
		{"Cost per year", FormatMoney(res.CostPerYear)},
	}
}

// TOURows maps a time-of-use projection to display rows.
func TOURows(res model.TOUResult) []Row {
	return []Row{
		{"Peak hours/day", fmt.Sprintf("%.1f h", res.PeakHours)},
		{"Off-peak hours/day", fmt.Sprintf("%.1f h", res.OffPeakHours)},
		{"Cost per day", FormatMoney(res.CostPerDay)},
		{"Cost per month", FormatMoney(res.CostPerMonth)},
		{"Cost per year", FormatMoney(res.CostPerYear)},
	}
}

// Table renders rows as aligned "Label:  value" lines.
func Table(rows []Row) string {
	width := 0
	for _, r := range rows {
		if len(r.Label) > width {
			width = len(r.Label)
		}
	}
	var b strings.Builder
	for _, r := range rows {
		fmt.Fprintf(&b, "%-*s %s\n", width+1, r.Label+":", r.Value)
	}
	return b.String()
}

func FormatKW(v float64) string   { return fmt.Sprintf("%.2f kW", v) }
func FormatKVA(v float64) string  { return fmt.Sprintf("%.2f kVA", v) }
func FormatKVAR(v float64) string { return fmt.Sprintf("%.2f kVAR", v) }

// FormatMoney renders a daily-or-larger cost figure.
func FormatMoney(v float64) string { return fmt.Sprintf("$%.2f", v) }

// FormatMoneyPrecise keeps four decimals for small hourly figures that
// two-decimal rounding would flatten.
func FormatMoneyPrecise(v float64) string { return fmt.Sprintf("$%.4f", v) }

func FormatPhase(p model.Phase) string {
	switch p {
	case model.SinglePhase:
		return "1-phase"
	case model.ThreePhase:
		return "3-phase"
	default:
		return fmt.Sprintf("%d-phase", int(p))
	}
}

// FormatTimestamp renders an epoch-milliseconds timestamp as RFC 3339 UTC.
func FormatTimestamp(ms int64) string {
	if ms == 0 {
		return ""
	}
	return time.UnixMilli(ms).UTC().Format(time.RFC3339)
}
