package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColumn(t *testing.T) {
	t.Run("api names", func(t *testing.T) {
		for _, c := range Columns() {
			got, err := ParseColumn(string(c))
			require.NoError(t, err)
			assert.Equal(t, c, got)
		}
	})

	t.Run("csv headers", func(t *testing.T) {
		got, err := ParseColumn("temperature_2m (°C)")
		require.NoError(t, err)
		assert.Equal(t, ColumnTemperature, got)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := ParseColumn("humidity")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "humidity")
	})
}

func TestObservation_Value(t *testing.T) {
	o := Observation{
		Time:          time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		Temperature:   -3.1,
		Precipitation: 0.4,
		WindSpeed:     6.2,
		WindDirection: 245,
	}

	assert.Equal(t, -3.1, o.Value(ColumnTemperature))
	assert.Equal(t, 0.4, o.Value(ColumnPrecipitation))
	assert.Equal(t, 6.2, o.Value(ColumnWindSpeed))
	assert.Equal(t, 245.0, o.Value(ColumnWindDirection))
}

func TestParseError_Error(t *testing.T) {
	withLine := &ParseError{Path: "data.csv", Line: 7, Reason: "bad timestamp"}
	assert.Equal(t, "parse data.csv: line 7: bad timestamp", withLine.Error())

	withoutLine := &ParseError{Path: "data.csv", Reason: "open data file"}
	assert.Equal(t, "parse data.csv: open data file", withoutLine.Error())
}
