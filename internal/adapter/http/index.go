package http

import (
	_ "embed"
	"html/template"
	"net/http"
	"time"

	"github.com/ficus22/meteo-dashboard/internal/domain"
)

//go:embed static/index.html
var indexHTML string

var indexTmpl = template.Must(template.New("index").Parse(indexHTML))

type indexData struct {
	Columns []columnInfo
	Months  []indexMonth
}

type indexMonth struct {
	Num  int
	Name string
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	data := indexData{}
	for _, c := range domain.Columns() {
		data.Columns = append(data.Columns, columnInfo{Name: string(c), Label: c.Label(), Unit: c.Unit()})
	}
	for _, m := range s.dash.Table().Months() {
		data.Months = append(data.Months, indexMonth{Num: int(m), Name: time.Month(m).String()})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, data); err != nil {
		s.logger.Error("render index failed", "error", err)
	}
}
