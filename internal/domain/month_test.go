package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMonth(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Month
	}{
		{"number", "3", time.March},
		{"number with spaces", " 12 ", time.December},
		{"full name", "January", time.January},
		{"lowercase name", "july", time.July},
		{"uppercase name", "OCTOBER", time.October},
		{"abbreviation", "mar", time.March},
		{"abbreviation mixed case", "Dec", time.December},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParseMonth(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, m)
		})
	}
}

func TestParseMonth_Invalid(t *testing.T) {
	for _, input := range []string{"", "0", "13", "-1", "notamonth", "ju"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseMonth(input)
			require.Error(t, err)
		})
	}
}

func TestParseMonthRange(t *testing.T) {
	t.Run("single month when to is empty", func(t *testing.T) {
		r, err := ParseMonthRange("March", "")
		require.NoError(t, err)
		assert.Equal(t, MonthRange{From: time.March, To: time.March}, r)
	})

	t.Run("inclusive range", func(t *testing.T) {
		r, err := ParseMonthRange("2", "May")
		require.NoError(t, err)
		assert.Equal(t, MonthRange{From: time.February, To: time.May}, r)
	})

	t.Run("bad from", func(t *testing.T) {
		_, err := ParseMonthRange("13", "May")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "from")
	})

	t.Run("bad to", func(t *testing.T) {
		_, err := ParseMonthRange("May", "nope")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "to")
	})
}

func TestMonthRange_Contains(t *testing.T) {
	r := MonthRange{From: time.March, To: time.May}

	assert.True(t, r.Contains(time.March))
	assert.True(t, r.Contains(time.April))
	assert.True(t, r.Contains(time.May))
	assert.False(t, r.Contains(time.February))
	assert.False(t, r.Contains(time.June))

	// Reversed range contains nothing.
	reversed := MonthRange{From: time.May, To: time.March}
	for m := time.January; m <= time.December; m++ {
		assert.False(t, reversed.Contains(m))
	}
}

func TestMonthRange_String(t *testing.T) {
	assert.Equal(t, "March", MonthRange{From: time.March, To: time.March}.String())
	assert.Equal(t, "March-May", MonthRange{From: time.March, To: time.May}.String())
}
