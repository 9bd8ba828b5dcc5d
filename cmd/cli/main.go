package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"math"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/Eronmosele95/electrical-dashboard/internal/history"
	"github.com/Eronmosele95/electrical-dashboard/internal/model"
	"github.com/Eronmosele95/electrical-dashboard/internal/rates"
	"github.com/Eronmosele95/electrical-dashboard/internal/render"
	"github.com/Eronmosele95/electrical-dashboard/internal/storage"
	"github.com/Eronmosele95/electrical-dashboard/internal/theme"
	"github.com/Eronmosele95/electrical-dashboard/internal/validate"
	"github.com/Eronmosele95/electrical-dashboard/pkg/client"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "calc":
		cmdCalc(os.Args[2:])
	case "history":
		cmdHistory(os.Args[2:])
	case "theme":
		cmdTheme(os.Args[2:])
	case "rates":
		cmdRates(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli calc --voltage 480 --current 100 --phase 3 [--pf 0.9 --eff 90 --rate 0.12] [--save]")
	fmt.Println("  cli calc --voltage 480 --current 100 --server http://localhost:8080")
	fmt.Println("  cli history [--show ID | --delete ID | --clear | --export history.csv]")
	fmt.Println("  cli theme [show | set light|dark | toggle]")
	fmt.Println("  cli rates [list | rank --voltage 480 --current 100 --phase 3]")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - omitted --pf/--eff/--rate take the defaults 0.9 / 100% / 0.12")
	fmt.Println("  - --save keeps the newest 10 calculations under --data-dir")
}

func cmdCalc(args []string) {
	fs := flag.NewFlagSet("calc", flag.ExitOnError)
	voltage := fs.Float64("voltage", math.NaN(), "Supply voltage in volts (required)")
	current := fs.Float64("current", math.NaN(), "Load current in amps (required)")
	phase := fs.Int("phase", 1, "Phase: 1 or 3")
	pf := fs.Float64("pf", math.NaN(), "Power factor 0.5..1 (default 0.9)")
	eff := fs.Float64("eff", math.NaN(), "Load efficiency percent (default 100)")
	rate := fs.Float64("rate", math.NaN(), "Rate per kWh (default 0.12)")
	peakWindow := fs.String("peak-window", "", "Time-of-use peak window, e.g. 17:00-21:00")
	peakRate := fs.Float64("peak-rate", 0, "Peak rate per kWh (with --peak-window)")
	offPeakRate := fs.Float64("off-peak-rate", 0, "Off-peak rate per kWh (with --peak-window)")
	save := fs.Bool("save", false, "Save the calculation to history")
	dataDir := fs.String("data-dir", defaultDataDir(), "History storage directory")
	server := fs.String("server", "", "Calculate via a running API server instead of locally")
	_ = fs.Parse(args)

	if math.IsNaN(*voltage) || math.IsNaN(*current) {
		fmt.Println("--voltage and --current are required")
		os.Exit(2)
	}

	var peakStart, peakEnd string
	if *peakWindow != "" {
		var err error
		peakStart, peakEnd, err = splitWindow(*peakWindow)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
	}

	if *server != "" {
		req := client.CalculateRequest{
			Voltage:     *voltage,
			Current:     *current,
			Phase:       *phase,
			PowerFactor: optional(*pf),
			Efficiency:  optional(*eff),
			Rate:        optional(*rate),
		}
		if *peakWindow != "" {
			req.TOU = &client.TOUConfig{
				PeakStart:   peakStart,
				PeakEnd:     peakEnd,
				PeakRate:    *peakRate,
				OffPeakRate: *offPeakRate,
			}
		}
		calcViaServer(*server, req)
		return
	}

	ph, err := model.ParsePhase(*phase)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	inputs := model.Inputs{
		Voltage:     *voltage,
		Current:     *current,
		Phase:       ph,
		PowerFactor: optional(*pf),
		Efficiency:  optional(*eff),
		Rate:        optional(*rate),
	}

	if v := validate.Check(inputs, validate.DefaultLimits()); !v.Valid {
		for _, msg := range v.Errors {
			fmt.Println(msg)
		}
		os.Exit(1)
	}

	resolved := model.Resolve(inputs, model.StandardDefaults())
	res := model.Calculate(resolved)
	fmt.Print(render.Table(render.ResultRows(res)))

	if *peakWindow != "" {
		schedule, err := model.NewTOUSchedule(peakStart, peakEnd, *peakRate, *offPeakRate)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		fmt.Println("")
		fmt.Println("Time-of-use:")
		fmt.Print(render.Table(render.TOURows(schedule.Cost(res.AdjustedPowerKW))))
	}

	if *save {
		store := history.NewStore(storage.NewFileStore(*dataDir), history.DefaultMaxEntries, zap.NewNop())
		item := history.NewItem(resolved, res)
		if err := store.Save(item); err != nil {
			panic(err)
		}
		fmt.Printf("Saved as %s\n", item.ID)
	}
}

// calcViaServer round-trips the request through a running API server and
// prints the same table the local path does.
func calcViaServer(baseURL string, req client.CalculateRequest) {
	calc, err := client.New(baseURL).Calculate(req)
	if err != nil {
		exitAPIError(err)
	}

	res := model.Result{
		ApparentPowerKVA:  calc.Result.KVA,
		RealPowerKW:       calc.Result.KW,
		ReactivePowerKVAR: calc.Result.KVAR,
		AdjustedPowerKW:   calc.Result.AdjustedKW,
		PowerFactor:       calc.Result.PowerFactor,
		Efficiency:        calc.Result.Efficiency,
		RatePerKWh:        calc.Result.Rate,
		Phase:             model.Phase(calc.Result.Phase),
		CostPerHour:       calc.Result.CostPerHour,
		CostPerDay:        calc.Result.CostPerDay,
		CostPerMonth:      calc.Result.CostPerMonth,
		CostPerYear:       calc.Result.CostPerYear,
	}
	fmt.Print(render.Table(render.ResultRows(res)))

	if calc.TOU != nil {
		fmt.Println("")
		fmt.Println("Time-of-use:")
		fmt.Print(render.Table(render.TOURows(model.TOUResult{
			PeakHours:    calc.TOU.PeakHours,
			OffPeakHours: calc.TOU.OffPeakHours,
			CostPerDay:   calc.TOU.CostPerDay,
			CostPerMonth: calc.TOU.CostPerMonth,
			CostPerYear:  calc.TOU.CostPerYear,
		})))
	}
}

func exitAPIError(err error) {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		fmt.Println(apiErr.Message)
		for _, msg := range apiErr.Errors {
			fmt.Println("  " + msg)
		}
		os.Exit(1)
	}
	panic(err)
}

func cmdHistory(args []string) {
	fs := flag.NewFlagSet("history", flag.ExitOnError)
	show := fs.String("show", "", "Print one saved calculation by id")
	del := fs.String("delete", "", "Delete one saved calculation by id")
	clear := fs.Bool("clear", false, "Delete all saved calculations")
	yes := fs.Bool("yes", false, "Skip the confirmation prompt for --clear")
	export := fs.String("export", "", "Write the history to a CSV file")
	dataDir := fs.String("data-dir", defaultDataDir(), "History storage directory")
	_ = fs.Parse(args)

	store := history.NewStore(storage.NewFileStore(*dataDir), history.DefaultMaxEntries, zap.NewNop())

	switch {
	case *show != "":
		item, err := store.Load(*show)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Printf("%s  saved %s\n", item.ID, render.FormatTimestamp(item.Timestamp))
		fmt.Print(render.Table(render.ResultRows(item.Result)))
	case *del != "":
		if err := store.Delete(*del); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Println("Deleted", *del)
	case *clear:
		if !*yes && !confirm("Delete all saved calculations?") {
			fmt.Println("Aborted")
			return
		}
		if err := store.Clear(); err != nil {
			panic(err)
		}
		fmt.Println("History cleared")
	case *export != "":
		items, err := store.List()
		if err != nil {
			panic(err)
		}
		if err := history.WriteCSV(*export, items); err != nil {
			panic(err)
		}
		fmt.Printf("Wrote %d rows to %s\n", len(items), *export)
	default:
		items, err := store.List()
		if err != nil {
			panic(err)
		}
		if len(items) == 0 {
			fmt.Println("No saved calculations")
			return
		}
		fmt.Printf("%-38s %-22s %-24s %-12s %s\n", "id", "saved", "load", "power", "cost/mo")
		for _, it := range items {
			load := fmt.Sprintf("%.0fV %.1fA %s", it.Voltage, it.Current, render.FormatPhase(it.Phase))
			fmt.Printf("%-38s %-22s %-24s %-12s %s\n",
				it.ID,
				render.FormatTimestamp(it.Timestamp),
				load,
				render.FormatKW(it.Result.AdjustedPowerKW),
				render.FormatMoney(it.Result.CostPerMonth),
			)
		}
	}
}

func cmdTheme(args []string) {
	action := "show"
	rest := args
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		action = args[0]
		rest = args[1:]
	}

	var value string
	if action == "set" {
		if len(rest) == 0 || strings.HasPrefix(rest[0], "-") {
			fmt.Println("theme set requires a value: light or dark")
			os.Exit(2)
		}
		value = rest[0]
		rest = rest[1:]
	}

	fs := flag.NewFlagSet("theme", flag.ExitOnError)
	dataDir := fs.String("data-dir", defaultDataDir(), "Theme storage directory")
	_ = fs.Parse(rest)

	manager := theme.NewManager(storage.NewFileStore(*dataDir))

	switch action {
	case "show":
		cur, err := manager.Get()
		if err != nil {
			panic(err)
		}
		fmt.Println(cur)
	case "set":
		if err := manager.Set(theme.Theme(value)); err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		fmt.Println(value)
	case "toggle":
		next, err := manager.Toggle()
		if err != nil {
			panic(err)
		}
		fmt.Println(next)
	default:
		fmt.Printf("unknown theme action %q\n", action)
		os.Exit(2)
	}
}

func cmdRates(args []string) {
	action := "list"
	rest := args
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		action = args[0]
		rest = args[1:]
	}

	switch action {
	case "list":
		fs := flag.NewFlagSet("rates list", flag.ExitOnError)
		ratesFile := fs.String("rates-file", "", "Rate preset JSON (default: bundled presets)")
		_ = fs.Parse(rest)

		catalog := loadCatalog(*ratesFile)
		fmt.Printf("%-16s %-26s %-8s %s\n", "id", "region", "$/kWh", "note")
		for _, p := range catalog.Presets {
			fmt.Printf("%-16s %-26s %-8.2f %s\n", p.ID, p.Region, p.RatePerKWh, p.Note)
		}
	case "rank":
		fs := flag.NewFlagSet("rates rank", flag.ExitOnError)
		voltage := fs.Float64("voltage", math.NaN(), "Supply voltage in volts (required)")
		current := fs.Float64("current", math.NaN(), "Load current in amps (required)")
		phase := fs.Int("phase", 1, "Phase: 1 or 3")
		pf := fs.Float64("pf", math.NaN(), "Power factor (default 0.9)")
		eff := fs.Float64("eff", math.NaN(), "Load efficiency percent (default 100)")
		limit := fs.Int("limit", 0, "Only print the cheapest N presets (0=all)")
		ratesFile := fs.String("rates-file", "", "Rate preset JSON (default: bundled presets)")
		_ = fs.Parse(rest)

		if math.IsNaN(*voltage) || math.IsNaN(*current) {
			fmt.Println("--voltage and --current are required")
			os.Exit(2)
		}
		ph, err := model.ParsePhase(*phase)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}

		inputs := model.Inputs{
			Voltage:     *voltage,
			Current:     *current,
			Phase:       ph,
			PowerFactor: optional(*pf),
			Efficiency:  optional(*eff),
		}
		if v := validate.Check(inputs, validate.DefaultLimits()); !v.Valid {
			for _, msg := range v.Errors {
				fmt.Println(msg)
			}
			os.Exit(1)
		}

		catalog := loadCatalog(*ratesFile)
		ranked := rates.RankByAnnualCost(catalog.Presets, model.Resolve(inputs, model.StandardDefaults()))
		if *limit > 0 && *limit < len(ranked) {
			ranked = ranked[:*limit]
		}

		fmt.Printf("%-4s %-16s %-26s %-8s %-12s %s\n", "rank", "id", "region", "$/kWh", "cost/mo", "cost/yr")
		for i, r := range ranked {
			fmt.Printf("%-4d %-16s %-26s %-8.2f %-12.2f %.2f\n",
				i+1, r.ID, r.Region, r.RatePerKWh, r.CostPerMonth, r.CostPerYear)
		}
	default:
		fmt.Printf("unknown rates action %q\n", action)
		os.Exit(2)
	}
}

func loadCatalog(path string) *rates.Catalog {
	if path == "" {
		path = os.Getenv("RATES_FILE")
	}
	catalog, err := rates.LoadOrBuiltin(path)
	if err != nil {
		panic(err)
	}
	return catalog
}

// optional maps the flag sentinel (NaN) to an absent optional input.
func optional(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}

func defaultDataDir() string {
	if dir := os.Getenv("DATA_DIR"); dir != "" {
		return dir
	}
	return "./data"
}

func splitWindow(s string) (start, end string, err error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid peak window %q, expected HH:MM-HH:MM", s)
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), nil
}

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
