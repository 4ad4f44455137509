package plot

import (
	"errors"
	"fmt"
	"io"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
)

// ErrEmptySpec is returned when a PNG is requested for a spec with no
// points. The interactive dashboard renders empty specs as blank charts, but
// go-chart refuses zero-value series, so the exporter declines instead.
var ErrEmptySpec = errors.New("plot: spec has no points")

// RenderPNG renders a line spec to a PNG image for download.
func RenderPNG(spec Spec, w io.Writer) error {
	if len(spec.X) == 0 || len(spec.Series) == 0 {
		return ErrEmptySpec
	}

	times := make([]time.Time, len(spec.X))
	for i, label := range spec.X {
		t, err := time.Parse(timeLabelLayout, label)
		if err != nil {
			return fmt.Errorf("parse x label %q: %w", label, err)
		}
		times[i] = t
	}

	graph := chart.Chart{
		Title:  spec.Title,
		Width:  1100,
		Height: 420,
		YAxis:  chart.YAxis{Name: spec.YLabel},
	}
	for _, s := range spec.Series {
		graph.Series = append(graph.Series, chart.TimeSeries{
			Name:    s.Name,
			XValues: times,
			YValues: s.Data,
		})
	}
	if len(spec.Series) > 1 {
		graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	}

	return graph.Render(chart.PNG, w)
}
