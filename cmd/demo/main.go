package main

import (
	"flag"
	"fmt"

	"go.uber.org/zap"

	"github.com/Eronmosele95/electrical-dashboard/internal/history"
	"github.com/Eronmosele95/electrical-dashboard/internal/model"
	"github.com/Eronmosele95/electrical-dashboard/internal/render"
	"github.com/Eronmosele95/electrical-dashboard/internal/storage"
	"github.com/Eronmosele95/electrical-dashboard/internal/theme"
)

// Demo:
// - Run a few sample loads through the calculation core
// - Project one of them under a time-of-use tariff
// - Save them to an in-memory history and list it newest-first
// - Flip the theme toggle
func main() {
	rate := flag.Float64("rate", 0.12, "Rate per kWh for the sample loads")
	flag.Parse()

	samples := []struct {
		name   string
		inputs model.Inputs
	}{
		{"Residential heater", model.Inputs{Voltage: 120, Current: 12.5, Phase: model.SinglePhase, Rate: rate}},
		{"Workshop compressor", model.Inputs{Voltage: 240, Current: 30, Phase: model.SinglePhase, PowerFactor: ptr(0.85), Rate: rate}},
		{"Industrial motor", model.Inputs{Voltage: 480, Current: 100, Phase: model.ThreePhase, PowerFactor: ptr(0.9), Efficiency: ptr(92), Rate: rate}},
	}

	store := storage.NewMemStore()
	hist := history.NewStore(store, history.DefaultMaxEntries, zap.NewNop())

	var last model.Result
	for _, s := range samples {
		resolved := model.Resolve(s.inputs, model.StandardDefaults())
		res := model.Calculate(resolved)
		last = res

		fmt.Printf("%s (%.0fV %.1fA %s)\n", s.name, resolved.Voltage, resolved.Current, render.FormatPhase(resolved.Phase))
		fmt.Print(render.Table(render.ResultRows(res)))
		fmt.Println("")

		if err := hist.Save(history.NewItem(resolved, res)); err != nil {
			panic(err)
		}
	}

	// The industrial motor under an evening peak tariff.
	schedule, err := model.NewTOUSchedule("17:00", "21:00", 0.32, 0.10)
	if err != nil {
		panic(err)
	}
	fmt.Println("Industrial motor under a 17:00-21:00 peak tariff:")
	fmt.Print(render.Table(render.TOURows(schedule.Cost(last.AdjustedPowerKW))))
	fmt.Println("")

	items, err := hist.List()
	if err != nil {
		panic(err)
	}
	fmt.Printf("History holds %d entries, newest first:\n", len(items))
	for i, it := range items {
		fmt.Printf("  %d. %.0fV %.1fA %s  %s\n",
			i+1, it.Voltage, it.Current, render.FormatPhase(it.Phase), render.FormatKW(it.Result.AdjustedPowerKW))
	}
	fmt.Println("")

	themes := theme.NewManager(store)
	before, err := themes.Get()
	if err != nil {
		panic(err)
	}
	after, err := themes.Toggle()
	if err != nil {
		panic(err)
	}
	fmt.Printf("Theme toggled: %s -> %s\n", before, after)
}

func ptr(v float64) *float64 { return &v }
