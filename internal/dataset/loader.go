// Package dataset loads the hourly observation file into an in-memory table.
//
// The table is a gota dataframe with the measurement columns typed as floats
// plus two derived columns: "month" (calendar month number, used by the
// filter view) and "ts" (Unix seconds, used to rebuild the time index after
// a filter). A Table is immutable after load; Filter returns a new one.
package dataset

import (
	"math"
	"os"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/ficus22/meteo-dashboard/internal/domain"
)

// timeColumn is the header of the timestamp column in the source file.
const timeColumn = "time"

// timeLayouts are the accepted timestamp formats, tried in order. The
// Open-Meteo export uses the first.
var timeLayouts = []string{
	"2006-01-02T15:04",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// Table holds the full year of observations, read-only for the process
// lifetime.
type Table struct {
	df       dataframe.DataFrame
	times    []time.Time
	LoadedAt time.Time
}

// Load reads and parses the observation CSV at path. Any failure (missing
// file, missing columns, row arity mismatch, non-numeric measurement cell,
// unparseable timestamp) returns a *domain.ParseError and no table.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &domain.ParseError{Path: path, Reason: "open data file", Err: err}
	}
	defer f.Close()

	types := map[string]series.Type{timeColumn: series.String}
	for _, c := range domain.Columns() {
		types[c.CSVHeader()] = series.Float
	}

	df := dataframe.ReadCSV(f, dataframe.WithTypes(types))
	if df.Err != nil {
		return nil, &domain.ParseError{Path: path, Reason: "read csv", Err: df.Err}
	}

	if err := checkColumns(path, df); err != nil {
		return nil, err
	}
	if err := checkNumeric(path, df); err != nil {
		return nil, err
	}

	times, err := parseTimes(path, df)
	if err != nil {
		return nil, err
	}

	df, err = deriveIndexColumns(path, df, times)
	if err != nil {
		return nil, err
	}

	return &Table{df: df, times: times, LoadedAt: clock.Now()}, nil
}

// checkColumns verifies that the timestamp column and all four measurement
// columns are present under their expected header names.
func checkColumns(path string, df dataframe.DataFrame) error {
	present := make(map[string]bool, df.Ncol())
	for _, name := range df.Names() {
		present[name] = true
	}
	if !present[timeColumn] {
		return &domain.ParseError{Path: path, Line: 1, Reason: "missing column \"time\""}
	}
	for _, c := range domain.Columns() {
		if !present[c.CSVHeader()] {
			return &domain.ParseError{Path: path, Line: 1, Reason: "missing column \"" + c.CSVHeader() + "\""}
		}
	}
	return nil
}

// checkNumeric rejects files with non-numeric measurement cells. Gota parses
// such cells as NaN rather than failing, so the check walks each float
// column looking for them.
func checkNumeric(path string, df dataframe.DataFrame) error {
	for _, c := range domain.Columns() {
		col := df.Col(c.CSVHeader())
		if !col.HasNaN() {
			continue
		}
		for i, v := range col.Float() {
			if math.IsNaN(v) {
				return &domain.ParseError{
					Path:   path,
					Line:   i + 2, // +1 for the header, +1 for 1-based lines
					Reason: "non-numeric value in column \"" + c.CSVHeader() + "\"",
				}
			}
		}
	}
	return nil
}

// parseTimes converts the timestamp column to time.Time values.
func parseTimes(path string, df dataframe.DataFrame) ([]time.Time, error) {
	recs := df.Col(timeColumn).Records()
	times := make([]time.Time, len(recs))
	for i, rec := range recs {
		t, err := parseTime(rec)
		if err != nil {
			return nil, &domain.ParseError{Path: path, Line: i + 2, Reason: "bad timestamp \"" + rec + "\"", Err: err}
		}
		times[i] = t
	}
	return times, nil
}

func parseTime(s string) (time.Time, error) {
	var err error
	for _, layout := range timeLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, err
}

// deriveIndexColumns attaches the "month" and "ts" columns used for
// filtering and for reconstructing the time index of filtered tables.
func deriveIndexColumns(path string, df dataframe.DataFrame, times []time.Time) (dataframe.DataFrame, error) {
	months := make([]int, len(times))
	ts := make([]int, len(times))
	for i, t := range times {
		months[i] = int(t.Month())
		ts[i] = int(t.Unix())
	}

	df = df.Mutate(series.New(months, series.Int, "month"))
	if df.Err != nil {
		return df, &domain.ParseError{Path: path, Reason: "derive month column", Err: df.Err}
	}
	df = df.Mutate(series.New(ts, series.Int, "ts"))
	if df.Err != nil {
		return df, &domain.ParseError{Path: path, Reason: "derive ts column", Err: df.Err}
	}
	return df, nil
}

// NumRows returns the number of observation rows.
func (t *Table) NumRows() int {
	if t == nil {
		return 0
	}
	return len(t.times)
}

// Times returns the chronological index. Callers must not mutate it.
func (t *Table) Times() []time.Time { return t.times }

// Column returns the values of one measurement column, aligned with Times.
func (t *Table) Column(c domain.Column) []float64 {
	if t.NumRows() == 0 {
		return nil
	}
	return t.df.Col(c.CSVHeader()).Float()
}

// Months returns the distinct calendar months present, in ascending order.
func (t *Table) Months() []time.Month {
	seen := [13]bool{}
	for _, tm := range t.times {
		seen[tm.Month()] = true
	}
	var months []time.Month
	for m := time.January; m <= time.December; m++ {
		if seen[m] {
			months = append(months, m)
		}
	}
	return months
}

// Filter returns the sub-table whose rows fall inside the month range. A
// range matching nothing (including a reversed range) yields an empty table.
func (t *Table) Filter(r domain.MonthRange) *Table {
	filtered := t.df.FilterAggregation(
		dataframe.And,
		dataframe.F{Colname: "month", Comparator: series.GreaterEq, Comparando: int(r.From)},
		dataframe.F{Colname: "month", Comparator: series.LessEq, Comparando: int(r.To)},
	)
	if filtered.Err != nil || filtered.Nrow() == 0 {
		return &Table{LoadedAt: t.LoadedAt}
	}

	ts := filtered.Col("ts").Float()
	times := make([]time.Time, len(ts))
	for i, v := range ts {
		times[i] = time.Unix(int64(v), 0).UTC()
	}
	return &Table{df: filtered, times: times, LoadedAt: t.LoadedAt}
}

// Observation materializes row i as a domain value.
func (t *Table) Observation(i int) domain.Observation {
	return domain.Observation{
		Time:          t.times[i],
		Temperature:   t.df.Col(domain.ColumnTemperature.CSVHeader()).Elem(i).Float(),
		Precipitation: t.df.Col(domain.ColumnPrecipitation.CSVHeader()).Elem(i).Float(),
		WindSpeed:     t.df.Col(domain.ColumnWindSpeed.CSVHeader()).Elem(i).Float(),
		WindDirection: t.df.Col(domain.ColumnWindDirection.CSVHeader()).Elem(i).Float(),
	}
}
