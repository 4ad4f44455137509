package domain

import (
	"fmt"
	"strings"
	"time"
)

// Column identifies one of the four measurement columns.
type Column string

const (
	ColumnTemperature   Column = "temperature"
	ColumnPrecipitation Column = "precipitation"
	ColumnWindSpeed     Column = "wind_speed"
	ColumnWindDirection Column = "wind_direction"
)

// Columns lists the measurement columns in display order.
func Columns() []Column {
	return []Column{ColumnTemperature, ColumnPrecipitation, ColumnWindSpeed, ColumnWindDirection}
}

// csvHeaders maps each column to its header name in the Open-Meteo export.
var csvHeaders = map[Column]string{
	ColumnTemperature:   "temperature_2m (°C)",
	ColumnPrecipitation: "precipitation (mm)",
	ColumnWindSpeed:     "wind_speed_10m (m/s)",
	ColumnWindDirection: "wind_direction_10m (°)",
}

// labels maps each column to its human-readable label with unit.
var labels = map[Column]string{
	ColumnTemperature:   "Temperature (°C)",
	ColumnPrecipitation: "Precipitation (mm)",
	ColumnWindSpeed:     "Wind speed (m/s)",
	ColumnWindDirection: "Wind direction (°)",
}

// CSVHeader returns the column's header name in the source file.
func (c Column) CSVHeader() string { return csvHeaders[c] }

// Label returns the column's display label.
func (c Column) Label() string { return labels[c] }

// Unit returns the measurement unit, e.g. "°C".
func (c Column) Unit() string {
	switch c {
	case ColumnTemperature:
		return "°C"
	case ColumnPrecipitation:
		return "mm"
	case ColumnWindSpeed:
		return "m/s"
	case ColumnWindDirection:
		return "°"
	default:
		return ""
	}
}

// ParseColumn resolves a column from its API name or its CSV header name.
func ParseColumn(s string) (Column, error) {
	s = strings.TrimSpace(s)
	for _, c := range Columns() {
		if s == string(c) || s == c.CSVHeader() {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown column %q", s)
}

// Observation is one hourly weather record.
type Observation struct {
	Time          time.Time `json:"time"`
	Temperature   float64   `json:"temperature"`
	Precipitation float64   `json:"precipitation"`
	WindSpeed     float64   `json:"wind_speed"`
	WindDirection float64   `json:"wind_direction"`
}

// Value returns the measurement identified by c.
func (o Observation) Value(c Column) float64 {
	switch c {
	case ColumnTemperature:
		return o.Temperature
	case ColumnPrecipitation:
		return o.Precipitation
	case ColumnWindSpeed:
		return o.WindSpeed
	case ColumnWindDirection:
		return o.WindDirection
	default:
		return 0
	}
}
