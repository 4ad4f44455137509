package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// monthNames indexes English month names (lowercase) by month number.
var monthNames = map[string]time.Month{
	"january": time.January, "february": time.February, "march": time.March,
	"april": time.April, "may": time.May, "june": time.June,
	"july": time.July, "august": time.August, "september": time.September,
	"october": time.October, "november": time.November, "december": time.December,
}

// ParseMonth resolves a month from its number ("3") or English name
// ("March", "mar"). Names are case-insensitive; three-letter abbreviations
// are accepted.
func ParseMonth(s string) (time.Month, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, fmt.Errorf("empty month")
	}

	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > 12 {
			return 0, fmt.Errorf("month number %d out of range 1-12", n)
		}
		return time.Month(n), nil
	}

	if m, ok := monthNames[s]; ok {
		return m, nil
	}
	if len(s) == 3 {
		for name, m := range monthNames {
			if strings.HasPrefix(name, s) {
				return m, nil
			}
		}
	}
	return 0, fmt.Errorf("unknown month %q", s)
}

// MonthRange is an inclusive calendar-month range. A single month is the
// degenerate range From == To. A reversed range (From > To) contains nothing.
type MonthRange struct {
	From time.Month `json:"from"`
	To   time.Month `json:"to"`
}

// ParseMonthRange builds a range from from/to selector strings. An empty
// "to" selects the single month named by "from".
func ParseMonthRange(from, to string) (MonthRange, error) {
	f, err := ParseMonth(from)
	if err != nil {
		return MonthRange{}, fmt.Errorf("from: %w", err)
	}
	if strings.TrimSpace(to) == "" {
		return MonthRange{From: f, To: f}, nil
	}
	t, err := ParseMonth(to)
	if err != nil {
		return MonthRange{}, fmt.Errorf("to: %w", err)
	}
	return MonthRange{From: f, To: t}, nil
}

// Contains reports whether m falls inside the range.
func (r MonthRange) Contains(m time.Month) bool {
	return m >= r.From && m <= r.To
}

func (r MonthRange) String() string {
	if r.From == r.To {
		return r.From.String()
	}
	return r.From.String() + "-" + r.To.String()
}
