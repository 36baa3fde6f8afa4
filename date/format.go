package date

import (
	"fmt"
	"strings"
	"time"
)

// Granularity is the precision at which a date string was written.
type Granularity int

const (
	// Year covers a whole year, e.g. "2024".
	Year Granularity = iota + 1
	// Month covers a whole month, e.g. "2024-08".
	Month
	// Day is a fully specified date, e.g. "2024-08-25".
	Day
)

func (g Granularity) String() string {
	switch g {
	case Year:
		return "year"
	case Month:
		return "month"
	case Day:
		return "day"
	default:
		return "unknown"
	}
}

// Format is a dash-separated Go time layout, year part first (e.g. "2006-01-02").
// Truncating it at a dash yields the layout for the coarser granularities,
// which is how a "2024" or "2024-08" criterion gets parsed.
type Format string

// sub returns the layout truncated to the first n dash-separated parts.
func (f Format) sub(n int) string {
	parts := strings.Split(string(f), "-")
	if n > len(parts) {
		n = len(parts)
	}
	return strings.Join(parts[:n], "-")
}

// Resolve parses a date string of any supported granularity.
// A year or year-month string resolves to the first day of the stated period.
func (f Format) Resolve(s string) (Date, Granularity, error) {
	n := len(strings.Split(s, "-"))
	if n < 1 || n > 3 {
		return Date{}, 0, fmt.Errorf("invalid date %q: want 1 to 3 dash-separated parts, got %d", s, n)
	}
	t, err := time.Parse(f.sub(n), s)
	if err != nil {
		return Date{}, 0, fmt.Errorf("invalid date %q for format %q: %w", s, f, err)
	}
	return New(t.Date()), Granularity(n), nil
}

// ParseDay parses a fully specified date string, rejecting coarser granularities.
func (f Format) ParseDay(s string) (Date, error) {
	d, g, err := f.Resolve(s)
	if err != nil {
		return Date{}, err
	}
	if g != Day {
		return Date{}, fmt.Errorf("invalid date %q: want the full %q format", s, f)
	}
	return d, nil
}

// LowerBound resolves a date string to the first day of the stated period:
// January 1 for a year, the 1st for a year-month, the day itself otherwise.
func (f Format) LowerBound(s string) (Date, error) {
	d, _, err := f.Resolve(s)
	return d, err
}

// UpperBound resolves a date string to the last day of the stated period:
// December 31 for a year, the last day of the month for a year-month,
// the day itself otherwise.
func (f Format) UpperBound(s string) (Date, error) {
	d, g, err := f.Resolve(s)
	if err != nil {
		return Date{}, err
	}
	switch g {
	case Year:
		return New(d.Year(), time.December, 31), nil
	case Month:
		// day 0 of the next month normalizes to the last day of this one.
		return New(d.Year(), d.Month()+1, 0), nil
	default:
		return d, nil
	}
}

// Today returns the current date formatted with this layout.
func (f Format) Today() string { return Today().Format(f.sub(3)) }
