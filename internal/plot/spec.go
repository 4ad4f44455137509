// Package plot assembles chart specifications from the observation table.
// Specs are plain data consumed by the charting collaborators: the embedded
// dashboard page renders them with ECharts, and the PNG exporter feeds them
// to go-chart. Nothing here mutates the underlying table; the precipitation
// rescaling on the grouped plot exists only inside the emitted spec.
package plot

import (
	"fmt"
	"time"

	"github.com/ficus22/meteo-dashboard/internal/dataset"
	"github.com/ficus22/meteo-dashboard/internal/domain"
	"github.com/ficus22/meteo-dashboard/internal/view"
)

// Spec kinds.
const (
	KindLine     = "line"
	KindWindRose = "windrose"
)

// timeLabelLayout formats x-axis tick labels.
const timeLabelLayout = "2006-01-02 15:04"

// Series is one plotted line. Scale is the display multiplier already
// applied to Data; dividing Data by Scale recovers the source values.
type Series struct {
	Name  string    `json:"name"`
	Data  []float64 `json:"data"`
	Scale float64   `json:"scale"`
}

// Spec describes a line chart over a shared time axis.
type Spec struct {
	Kind   string   `json:"kind"`
	Title  string   `json:"title"`
	YLabel string   `json:"y_label,omitempty"`
	X      []string `json:"x"`
	Series []Series `json:"series"`
}

// Single builds the single-series line spec of a filtered view. An empty
// view produces a spec with zero points.
func Single(v view.View) Spec {
	return Spec{
		Kind:   KindLine,
		Title:  fmt.Sprintf("%s (%s)", v.Label, v.Range),
		YLabel: v.Column.Unit(),
		X:      timeLabels(v.Times),
		Series: []Series{{Name: v.Label, Data: v.Values, Scale: 1}},
	}
}

// Grouped builds the four-measurement line spec over a filtered table, with
// precipitation multiplied by precipScale so its magnitude is readable on
// the shared axis. A precipScale of zero or one disables the rescaling.
func Grouped(sub *dataset.Table, r domain.MonthRange, precipScale float64) Spec {
	if precipScale == 0 {
		precipScale = 1
	}

	spec := Spec{
		Kind:  KindLine,
		Title: fmt.Sprintf("Weather measurements (%s)", r),
		X:     timeLabels(sub.Times()),
	}
	for _, c := range domain.Columns() {
		s := Series{Name: c.Label(), Data: sub.Column(c), Scale: 1}
		if c == domain.ColumnPrecipitation && precipScale != 1 {
			scaled := make([]float64, len(s.Data))
			for i, v := range s.Data {
				scaled[i] = v * precipScale
			}
			s.Data = scaled
			s.Scale = precipScale
			s.Name = fmt.Sprintf("%s ×%g", c.Label(), precipScale)
		}
		spec.Series = append(spec.Series, s)
	}
	return spec
}

func timeLabels(times []time.Time) []string {
	labels := make([]string, len(times))
	for i, t := range times {
		labels[i] = t.Format(timeLabelLayout)
	}
	return labels
}
