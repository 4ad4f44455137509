// Command validate performs integrity checks on an hourly observation CSV
// before it is served by the dashboard: header and type checks via the real
// loader, timestamp cadence, physical value ranges, and month coverage.
//
// Usage:
//
//	go run ./cmd/validate -data data/open-meteo-subset.csv
package main

import (
	"fmt"
	"os"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/ficus22/meteo-dashboard/internal/dataset"
	"github.com/ficus22/meteo-dashboard/internal/domain"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	dataPath := flag.String("data", "", "path to the observation CSV")
	flag.Parse()

	if *dataPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	os.Exit(run(*dataPath))
}

func run(path string) int {
	fmt.Println("=== Observation Data Integrity Validation ===")
	fmt.Println()

	table, err := dataset.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
		return 1
	}

	phases := []*phase{
		validateCadence(table),
		validateRanges(table),
		validateCoverage(table),
	}

	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Printf("  %-42s %s\n", p.name, status)
	}

	fmt.Println()
	fmt.Printf("Rows: %d, months: %d\n", table.NumRows(), len(table.Months()))

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Println("\nAll validations passed.")
		return 0
	}
	fmt.Println("\nValidation FAILED.")
	return 1
}

// ── Phase 1: Cadence ──
// Timestamps must be strictly increasing and hourly-spaced.

func validateCadence(t *dataset.Table) *phase {
	p := &phase{name: "Phase 1: Timestamp Cadence"}

	times := t.Times()
	if len(times) == 0 {
		p.errorf("no rows")
		return p
	}

	const maxReported = 20
	for i := 1; i < len(times); i++ {
		if gap := times[i].Sub(times[i-1]); gap != time.Hour {
			p.errorf("line %d: gap %s from previous row (want 1h)", i+2, gap)
			if len(p.errors) >= maxReported {
				p.errorf("(further cadence errors suppressed)")
				break
			}
		}
	}
	return p
}

// ── Phase 2: Value Ranges ──
// Physical plausibility limits per measurement.

func validateRanges(t *dataset.Table) *phase {
	p := &phase{name: "Phase 2: Value Ranges"}

	limits := []struct {
		col    domain.Column
		lo, hi float64
	}{
		{domain.ColumnTemperature, -60, 60},
		{domain.ColumnPrecipitation, 0, 500},
		{domain.ColumnWindSpeed, 0, 120},
		{domain.ColumnWindDirection, 0, 360},
	}

	for _, lim := range limits {
		for i, v := range t.Column(lim.col) {
			if v < lim.lo || v > lim.hi {
				p.errorf("line %d: %s = %g outside [%g, %g]", i+2, lim.col, v, lim.lo, lim.hi)
			}
		}
	}
	return p
}

// ── Phase 3: Month Coverage ──
// Reports rows per month; a served year is expected to cover all twelve.

func validateCoverage(t *dataset.Table) *phase {
	p := &phase{name: "Phase 3: Month Coverage"}

	counts := map[time.Month]int{}
	for _, tm := range t.Times() {
		counts[tm.Month()]++
	}

	for m := time.January; m <= time.December; m++ {
		if counts[m] == 0 {
			p.errorf("no rows for %s", m)
		}
	}

	fmt.Print("  rows per month:")
	for _, m := range t.Months() {
		fmt.Printf(" %s=%d", m.String()[:3], counts[m])
	}
	fmt.Println()
	return p
}
