// Package domain models hourly weather observations and the selectors the
// dashboard filters them by.
//
// # Data Source
//
// Observations come from an Open-Meteo ERA5 archive export: one CSV covering
// a full year at hourly resolution, UTC timestamps, with the measurement
// columns temperature_2m (°C), precipitation (mm), wind_speed_10m (m/s) and
// wind_direction_10m (°). Timestamps in the export are strictly increasing
// and hourly-spaced; the loader relies on the file for that guarantee and
// cmd/validate checks it explicitly.
//
// # Selectors
//
// The dashboard filters by an inclusive calendar-month range and a single
// measurement column. Months are addressed by number ("3") or English name
// ("March", case-insensitive, three-letter abbreviations accepted) because
// both appear in the UI. A range whose months match no loaded rows selects
// the empty set; it is never an error.
package domain
