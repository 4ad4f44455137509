// Package dashboard wires the loaded observation table to the filter view
// and plot assembler. It is the shell behind the single-page UI: every
// widget change maps to one Render call, whose output is discarded by the
// client on the next interaction.
package dashboard

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/ficus22/meteo-dashboard/internal/dataset"
	"github.com/ficus22/meteo-dashboard/internal/observability"
	"github.com/ficus22/meteo-dashboard/internal/plot"
	"github.com/ficus22/meteo-dashboard/internal/stats"
	"github.com/ficus22/meteo-dashboard/internal/view"
)

// RenderResult bundles everything one interaction displays: the filtered
// view and the three plot specs.
type RenderResult struct {
	View     view.View         `json:"view"`
	Single   plot.Spec         `json:"single"`
	Grouped  plot.Spec         `json:"grouped"`
	WindRose plot.WindRoseSpec `json:"windrose"`
}

// Dashboard holds the process-wide read-only state (table, monthly summary)
// and produces per-interaction render results. Results are deterministic for
// a loaded table, so they are memoized in a small LRU.
type Dashboard struct {
	table       *dataset.Table
	summary     []stats.MonthSummary
	precipScale float64
	cache       *lruCache
	logger      *slog.Logger
	metrics     *observability.Metrics
}

// New creates a Dashboard over a loaded table and computes the monthly
// summary once.
func New(table *dataset.Table, precipScale float64, cacheSize int, logger *slog.Logger, metrics *observability.Metrics) *Dashboard {
	return &Dashboard{
		table:       table,
		summary:     stats.Monthly(table),
		precipScale: precipScale,
		cache:       newLRUCache(cacheSize),
		logger:      logger,
		metrics:     metrics,
	}
}

// Table returns the full observation table.
func (d *Dashboard) Table() *dataset.Table { return d.table }

// Summary returns the monthly summary rows, sorted by month.
func (d *Dashboard) Summary() []stats.MonthSummary { return d.summary }

// PrecipScale returns the display scale applied to the grouped plot's
// precipitation series.
func (d *Dashboard) PrecipScale() float64 { return d.precipScale }

// Render runs one render pass for the selection: filter the table, slice the
// column, assemble the three plot specs. Selections matching no rows come
// back as empty views and zero-point specs.
func (d *Dashboard) Render(sel view.Selection) *RenderResult {
	key := sel.Key()
	if res, ok := d.cache.get(key); ok {
		d.metrics.RenderCacheLookups.WithLabelValues("hit").Inc()
		return res
	}
	d.metrics.RenderCacheLookups.WithLabelValues("miss").Inc()

	start := time.Now()
	sub := d.table.Filter(sel.Range)
	v := view.FromTable(sub, sel)
	res := &RenderResult{
		View:     v,
		Single:   plot.Single(v),
		Grouped:  plot.Grouped(sub, sel.Range, d.precipScale),
		WindRose: plot.WindRose(sub),
	}

	d.metrics.RenderPasses.Inc()
	d.metrics.RenderDuration.Observe(time.Since(start).Seconds())
	d.logger.Debug("render pass",
		"range", sel.Range.String(),
		"column", string(sel.Column),
		"rows", v.Len(),
		"duration", time.Since(start),
	)

	d.cache.put(key, res)
	return res
}

// CheckReadiness returns nil once a non-empty table is loaded.
func (d *Dashboard) CheckReadiness(_ context.Context) error {
	if d.table.NumRows() == 0 {
		return errors.New("observation table is empty")
	}
	return nil
}
