package http_test

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "github.com/ficus22/meteo-dashboard/internal/adapter/http"
	"github.com/ficus22/meteo-dashboard/internal/dashboard"
	"github.com/ficus22/meteo-dashboard/internal/dataset"
	"github.com/ficus22/meteo-dashboard/internal/observability"
)

// newTestServer serves a dashboard over 6 hourly rows: 3 in January, 3 in
// February 2020.
func newTestServer(t *testing.T) *httpadapter.Server {
	t.Helper()

	var rows []string
	for i := 0; i < 3; i++ {
		rows = append(rows, fmt.Sprintf("2020-01-01T%02d:00,%d.0,0.2,3.0,180", i, i))
		rows = append(rows, fmt.Sprintf("2020-02-01T%02d:00,%d.0,0.4,5.0,90", i, 10+i))
	}
	path := filepath.Join(t.TempDir(), "data.csv")
	content := "time,temperature_2m (°C),precipitation (mm),wind_speed_10m (m/s),wind_direction_10m (°)\n" +
		strings.Join(rows, "\n") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	table, err := dataset.Load(path)
	require.NoError(t, err)

	metrics := observability.NewMetricsForTesting()
	dash := dashboard.New(table, 10, 16, slog.Default(), metrics)
	return httpadapter.NewServer(":0", dash, slog.Default(), metrics)
}

func get(t *testing.T, srv *httpadapter.Server, url string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	srv.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func TestHealthzReturns200(t *testing.T) {
	rec := get(t, newTestServer(t), "/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	decode(t, rec, &body)
	assert.Equal(t, "healthy", body["status"])
}

func TestReadyzReturns200WhenLoaded(t *testing.T) {
	rec := get(t, newTestServer(t), "/readyz")

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	decode(t, rec, &body)
	assert.Equal(t, "ready", body["status"])
}

func TestMetricsEndpoint(t *testing.T) {
	rec := get(t, newTestServer(t), "/metrics")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestIndexServesDashboardPage(t *testing.T) {
	rec := get(t, newTestServer(t), "/")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "Weather Observations Dashboard")
	assert.Contains(t, rec.Body.String(), "January")
	assert.Contains(t, rec.Body.String(), "February")
}

func TestColumns(t *testing.T) {
	rec := get(t, newTestServer(t), "/api/columns")

	assert.Equal(t, http.StatusOK, rec.Code)

	var cols []map[string]string
	decode(t, rec, &cols)
	require.Len(t, cols, 4)
	assert.Equal(t, "temperature", cols[0]["name"])
	assert.Equal(t, "Temperature (°C)", cols[0]["label"])
}

func TestSummary(t *testing.T) {
	rec := get(t, newTestServer(t), "/api/summary")

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Rows    int   `json:"rows"`
		Months  []int `json:"months"`
		Summary []struct {
			Month int `json:"month"`
			Rows  int `json:"rows"`
		} `json:"summary"`
	}
	decode(t, rec, &body)

	assert.Equal(t, 6, body.Rows)
	assert.Equal(t, []int{1, 2}, body.Months)
	require.Len(t, body.Summary, 2)
	assert.Equal(t, 3, body.Summary[0].Rows)
	assert.Equal(t, 3, body.Summary[1].Rows)
}

func TestTable_FiltersBySelection(t *testing.T) {
	rec := get(t, newTestServer(t), "/api/table?from=January&column=temperature")

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Column string    `json:"column"`
		Values []float64 `json:"values"`
	}
	decode(t, rec, &body)

	assert.Equal(t, "temperature", body.Column)
	assert.Equal(t, []float64{0, 1, 2}, body.Values)
}

func TestTable_MonthRange(t *testing.T) {
	rec := get(t, newTestServer(t), "/api/table?from=1&to=2&column=wind_speed")

	var body struct {
		Values []float64 `json:"values"`
	}
	decode(t, rec, &body)
	assert.Len(t, body.Values, 6)
}

func TestTable_EmptyMonthIsOKNotError(t *testing.T) {
	rec := get(t, newTestServer(t), "/api/table?from=July&column=temperature")

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Values []float64 `json:"values"`
	}
	decode(t, rec, &body)
	assert.Empty(t, body.Values)
}

func TestTable_BadMonthIs400(t *testing.T) {
	rec := get(t, newTestServer(t), "/api/table?from=13")

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	decode(t, rec, &body)
	assert.Contains(t, body["error"], "out of range")
}

func TestTable_UnknownColumnIs400(t *testing.T) {
	rec := get(t, newTestServer(t), "/api/table?from=1&column=humidity")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPlots(t *testing.T) {
	rec := get(t, newTestServer(t), "/api/plots?from=January&to=February&column=precipitation")

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Single struct {
			Kind   string `json:"kind"`
			Series []struct {
				Data []float64 `json:"data"`
			} `json:"series"`
		} `json:"single"`
		Grouped struct {
			Series []struct {
				Name  string    `json:"name"`
				Data  []float64 `json:"data"`
				Scale float64   `json:"scale"`
			} `json:"series"`
		} `json:"grouped"`
		WindRose struct {
			Sectors []string `json:"sectors"`
			Counts  [][]int  `json:"counts"`
		} `json:"windrose"`
	}
	decode(t, rec, &body)

	assert.Equal(t, "line", body.Single.Kind)
	require.Len(t, body.Single.Series, 1)
	assert.Len(t, body.Single.Series[0].Data, 6)

	require.Len(t, body.Grouped.Series, 4)
	var foundScaled bool
	for _, s := range body.Grouped.Series {
		if s.Scale == 10 {
			foundScaled = true
			assert.Contains(t, s.Name, "Precipitation")
		}
	}
	assert.True(t, foundScaled, "grouped plot carries no scaled precipitation series")

	assert.Len(t, body.WindRose.Sectors, 16)
}

func TestPlots_DefaultsToFullYearTemperature(t *testing.T) {
	rec := get(t, newTestServer(t), "/api/plots")

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		View struct {
			Column string `json:"column"`
		} `json:"view"`
	}
	decode(t, rec, &body)
	assert.Equal(t, "temperature", body.View.Column)
}

func TestSinglePNG(t *testing.T) {
	rec := get(t, newTestServer(t), "/api/plots/single.png?from=1&to=2&column=temperature")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "\x89PNG"))
}

func TestSinglePNG_EmptySelectionIs204(t *testing.T) {
	rec := get(t, newTestServer(t), "/api/plots/single.png?from=July&column=temperature")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Zero(t, rec.Body.Len())
}

func TestAPISetsRequestID(t *testing.T) {
	rec := get(t, newTestServer(t), "/api/columns")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
