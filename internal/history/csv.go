package history

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

// WriteCSV writes the history list to path, one row per item, in the order
// given (List returns newest first).
func WriteCSV(path string, items []Item) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"id",
		"saved_at",
		"voltage",
		"current",
		"phase",
		"power_factor",
		"efficiency",
		"rate",
		"kva",
		"kw",
		"kvar",
		"adjusted_kw",
		"cost_per_hour",
		"cost_per_day",
		"cost_per_month",
		"cost_per_year",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, it := range items {
		row := []string{
			it.ID,
			fmtTimestamp(it.Timestamp),
			fmtFloat(it.Voltage),
			fmtFloat(it.Current),
			strconv.Itoa(int(it.Phase)),
			fmtFloat(it.PowerFactor),
			fmtFloat(it.Efficiency),
			fmtFloat(it.Rate),
			fmtFloat(it.Result.ApparentPowerKVA),
			fmtFloat(it.Result.RealPowerKW),
			fmtFloat(it.Result.ReactivePowerKVAR),
			fmtFloat(it.Result.AdjustedPowerKW),
			fmtFloat(it.Result.CostPerHour),
			fmtFloat(it.Result.CostPerDay),
			fmtFloat(it.Result.CostPerMonth),
			fmtFloat(it.Result.CostPerYear),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func fmtTimestamp(ms int64) string {
	if ms == 0 {
		return ""
	}
	return time.UnixMilli(ms).UTC().Format(time.RFC3339)
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
