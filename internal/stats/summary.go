// Package stats computes the per-month descriptive statistics shown in the
// dashboard's summary table. The statistic set mirrors a pandas-style
// describe: count, mean, std, min, quartiles, max.
package stats

import (
	"time"

	mstats "github.com/aclements/go-moremath/stats"

	"github.com/ficus22/meteo-dashboard/internal/dataset"
	"github.com/ficus22/meteo-dashboard/internal/domain"
)

// Descriptive summarizes one measurement over one month.
type Descriptive struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	P25    float64 `json:"p25"`
	Median float64 `json:"median"`
	P75    float64 `json:"p75"`
	Max    float64 `json:"max"`
}

// MonthSummary is one row of the monthly summary table.
type MonthSummary struct {
	Month time.Month                    `json:"month"`
	Name  string                        `json:"name"`
	Rows  int                           `json:"rows"`
	Stats map[domain.Column]Descriptive `json:"stats"`
}

// Monthly groups the table by calendar month and describes every measurement
// column. Months with no rows are absent; output is sorted by month.
func Monthly(t *dataset.Table) []MonthSummary {
	times := t.Times()
	columns := make(map[domain.Column][]float64, 4)
	for _, c := range domain.Columns() {
		columns[c] = t.Column(c)
	}

	// Bucket row values per month, preserving row order.
	buckets := make(map[time.Month]map[domain.Column][]float64)
	for i, tm := range times {
		b, ok := buckets[tm.Month()]
		if !ok {
			b = make(map[domain.Column][]float64, 4)
			buckets[tm.Month()] = b
		}
		for _, c := range domain.Columns() {
			b[c] = append(b[c], columns[c][i])
		}
	}

	var out []MonthSummary
	for m := time.January; m <= time.December; m++ {
		b, ok := buckets[m]
		if !ok {
			continue
		}
		s := MonthSummary{
			Month: m,
			Name:  m.String(),
			Rows:  len(b[domain.ColumnTemperature]),
			Stats: make(map[domain.Column]Descriptive, 4),
		}
		for _, c := range domain.Columns() {
			s.Stats[c] = Describe(b[c])
		}
		out = append(out, s)
	}
	return out
}

// Describe computes descriptive statistics for one value slice. The input is
// not modified. Std is zero for fewer than two values (the sample standard
// deviation is undefined there, and NaN does not serialize).
func Describe(xs []float64) Descriptive {
	if len(xs) == 0 {
		return Descriptive{}
	}

	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sample := mstats.Sample{Xs: sorted}
	sample.Sort()

	minV, maxV := sample.Bounds()
	d := Descriptive{
		Count:  len(xs),
		Mean:   sample.Mean(),
		Min:    minV,
		P25:    sample.Quantile(0.25),
		Median: sample.Quantile(0.5),
		P75:    sample.Quantile(0.75),
		Max:    maxV,
	}
	if len(xs) >= 2 {
		d.Std = sample.StdDev()
	}
	return d
}
