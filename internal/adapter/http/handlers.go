package http

import (
	"errors"
	"net/http"
	"time"

	json "github.com/goccy/go-json"

	"github.com/ficus22/meteo-dashboard/internal/domain"
	"github.com/ficus22/meteo-dashboard/internal/plot"
	"github.com/ficus22/meteo-dashboard/internal/view"
)

// columnInfo describes one selectable measurement column to the UI.
type columnInfo struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Unit  string `json:"unit"`
}

func (s *Server) handleColumns(w http.ResponseWriter, _ *http.Request) {
	cols := make([]columnInfo, 0, 4)
	for _, c := range domain.Columns() {
		cols = append(cols, columnInfo{Name: string(c), Label: c.Label(), Unit: c.Unit()})
	}
	writeJSON(w, http.StatusOK, cols)
}

func (s *Server) handleSummary(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"rows":      s.dash.Table().NumRows(),
		"loaded_at": s.dash.Table().LoadedAt.Format(time.RFC3339),
		"months":    s.dash.Table().Months(),
		"summary":   s.dash.Summary(),
	})
}

func (s *Server) handleTable(w http.ResponseWriter, r *http.Request) {
	sel, err := parseSelection(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, s.dash.Render(sel).View)
}

func (s *Server) handlePlots(w http.ResponseWriter, r *http.Request) {
	sel, err := parseSelection(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, s.dash.Render(sel))
}

func (s *Server) handleSinglePNG(w http.ResponseWriter, r *http.Request) {
	sel, err := parseSelection(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	s.renderPNG(w, s.dash.Render(sel).Single)
}

func (s *Server) handleGroupedPNG(w http.ResponseWriter, r *http.Request) {
	sel, err := parseSelection(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	s.renderPNG(w, s.dash.Render(sel).Grouped)
}

func (s *Server) renderPNG(w http.ResponseWriter, spec plot.Spec) {
	w.Header().Set("Content-Type", "image/png")
	if err := plot.RenderPNG(spec, w); err != nil {
		if errors.Is(err, plot.ErrEmptySpec) {
			w.Header().Del("Content-Type")
			w.WriteHeader(http.StatusNoContent)
			return
		}
		s.logger.Error("png render failed", "error", err)
		// Headers are already sent for mid-render failures; nothing to do.
	}
}

// parseSelection reads the from/to/column query parameters. Missing "from"
// selects the full year; missing "column" defaults to temperature. Malformed
// values are a client error, while months absent from the data simply select
// nothing.
func parseSelection(r *http.Request) (view.Selection, error) {
	q := r.URL.Query()

	rng := domain.MonthRange{From: time.January, To: time.December}
	if from := q.Get("from"); from != "" {
		var err error
		rng, err = domain.ParseMonthRange(from, q.Get("to"))
		if err != nil {
			return view.Selection{}, err
		}
	}

	col := domain.ColumnTemperature
	if name := q.Get("column"); name != "" {
		var err error
		col, err = domain.ParseColumn(name)
		if err != nil {
			return view.Selection{}, err
		}
	}

	return view.Selection{Range: rng, Column: col}, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
