// Package view derives the ephemeral filtered view the dashboard renders:
// the rows whose month falls in the selected range, restricted to the
// selected column plus the timestamp. Views are recreated on every
// interaction and never cached inside the table.
package view

import (
	"fmt"
	"time"

	"github.com/ficus22/meteo-dashboard/internal/dataset"
	"github.com/ficus22/meteo-dashboard/internal/domain"
)

// Selection is the widget state a render pass is keyed by.
type Selection struct {
	Range  domain.MonthRange
	Column domain.Column
}

// Key returns a stable cache key for the selection.
func (s Selection) Key() string {
	return fmt.Sprintf("%d|%d|%s", s.Range.From, s.Range.To, s.Column)
}

// View is a row- and column-slice of the observation table.
type View struct {
	Column domain.Column     `json:"column"`
	Label  string            `json:"label"`
	Range  domain.MonthRange `json:"range"`
	Times  []time.Time       `json:"times"`
	Values []float64         `json:"values"`
}

// Build filters the table by the selection and slices out the chosen column.
// A selection matching no rows yields an empty view.
func Build(t *dataset.Table, sel Selection) View {
	return FromTable(t.Filter(sel.Range), sel)
}

// FromTable builds the view from an already-filtered table. Useful when the
// caller also needs the filtered table for other plots.
func FromTable(sub *dataset.Table, sel Selection) View {
	return View{
		Column: sel.Column,
		Label:  sel.Column.Label(),
		Range:  sel.Range,
		Times:  sub.Times(),
		Values: sub.Column(sel.Column),
	}
}

// Len returns the number of rows in the view.
func (v View) Len() int { return len(v.Times) }
