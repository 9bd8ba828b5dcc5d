package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/Eronmosele95/electrical-dashboard/internal/rates"
)

// stringsFlag collects repeated --set flags.
type stringsFlag []string

func (s *stringsFlag) String() string { return strings.Join(*s, ",") }

func (s *stringsFlag) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func main() {
	var sets stringsFlag
	var (
		outputPath = flag.String("output", "", "Output file path (default: ./data/rates.json or $RATES_FILE)")
		seedFile   = flag.String("seed", "", "Path to an existing rates file to use as seed")
		list       = flag.Bool("list", false, "Print the effective catalog instead of writing it")
	)
	flag.Var(&sets, "set", "Rate override as id=rate, repeatable (e.g. --set us_texas=0.16)")
	flag.Parse()

	if *outputPath == "" {
		*outputPath = rates.DefaultPath()
	}

	catalog := loadSeed(*seedFile, *outputPath)

	if len(sets) == 0 && !*list {
		log.Fatal("at least one --set id=rate is required (or --list)")
	}

	for _, s := range sets {
		id, rate, err := parseSet(s)
		if err != nil {
			log.Fatalf("Invalid --set %q: %v", s, err)
		}
		if applyRate(catalog, id, rate) {
			fmt.Printf("  ✓ Updated: %s = %.4f\n", id, rate)
		} else {
			fmt.Printf("  + Added: %s = %.4f\n", id, rate)
		}
	}

	if len(sets) > 0 {
		catalog.UpdatedAt = time.Now().Format(time.RFC3339)
	}

	if *list {
		printCatalog(catalog)
		return
	}

	if err := rates.Save(catalog, *outputPath); err != nil {
		log.Fatalf("Failed to save rates: %v", err)
	}
	fmt.Printf("Saved %d presets to %s\n", len(catalog.Presets), *outputPath)
}

// loadSeed picks the starting catalog: an explicit seed file, else the
// current output file, else the bundled presets.
func loadSeed(seedFile, outputPath string) *rates.Catalog {
	if seedFile != "" {
		c, err := rates.Load(seedFile)
		if err != nil {
			log.Fatalf("Failed to load seed file: %v", err)
		}
		fmt.Printf("Loaded %d presets from seed file\n", len(c.Presets))
		return c
	}
	if c, err := rates.Load(outputPath); err == nil {
		fmt.Printf("Loaded %d presets from %s\n", len(c.Presets), outputPath)
		return c
	}
	c := rates.Builtin()
	fmt.Printf("Starting from the %d bundled presets\n", len(c.Presets))
	return c
}

func parseSet(s string) (string, float64, error) {
	id, raw, ok := strings.Cut(s, "=")
	if !ok || id == "" {
		return "", 0, fmt.Errorf("expected id=rate")
	}
	rate, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return "", 0, fmt.Errorf("invalid rate %q", raw)
	}
	if rate < 0 {
		return "", 0, fmt.Errorf("rate cannot be negative")
	}
	return id, rate, nil
}

// applyRate updates the preset with the given id, or appends a new one.
// Reports whether an existing preset was updated.
func applyRate(c *rates.Catalog, id string, rate float64) bool {
	for i := range c.Presets {
		if c.Presets[i].ID == id {
			c.Presets[i].RatePerKWh = rate
			return true
		}
	}
	c.Presets = append(c.Presets, rates.Preset{
		ID:         id,
		Region:     regionFromID(id),
		RatePerKWh: rate,
	})
	return false
}

// regionFromID derives a readable region label from a preset id like
// "us_new_york".
func regionFromID(id string) string {
	parts := strings.Split(id, "_")
	for i, p := range parts {
		if p == "us" || p == "uk" {
			parts[i] = strings.ToUpper(p)
			continue
		}
		if len(p) > 0 {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, " ")
}

func printCatalog(c *rates.Catalog) {
	if c.UpdatedAt != "" {
		fmt.Printf("Updated at: %s\n", c.UpdatedAt)
	}
	fmt.Printf("%-16s %-26s %-8s %s\n", "id", "region", "$/kWh", "note")
	for _, p := range c.Presets {
		fmt.Printf("%-16s %-26s %-8.2f %s\n", p.ID, p.Region, p.RatePerKWh, p.Note)
	}
}
