package stockpile

import (
	"fmt"
	"strconv"
)

// currentDateHeader is the single column of the current-date pseudo-ledger.
const currentDateHeader = "current_date"

// CurrentDate is the simulated current date, stored exactly like a one-row
// ledger: reading it back always yields the last value written, and setting
// it replaces the single record instead of appending.
type CurrentDate struct {
	cfg Config
}

// NewCurrentDate returns the simulated clock backed by the configured file.
func NewCurrentDate(cfg Config) CurrentDate { return CurrentDate{cfg: cfg} }

// Get returns the simulated current date, initializing the file with the
// real today on first use.
func (c CurrentDate) Get() (string, error) {
	records, err := readRecords(c.cfg.CurrentDateFile)
	if err != nil {
		return "", err
	}
	if len(records) == 0 {
		today := c.Today()
		if err := c.Set(today); err != nil {
			return "", err
		}
		return today, nil
	}
	return records[0][currentDateHeader], nil
}

// Set replaces the simulated current date.
func (c CurrentDate) Set(day string) error {
	if err := ValidateDate(c.cfg.Format(), day); err != nil {
		return err
	}
	return replaceRecord(c.cfg.CurrentDateFile, []string{currentDateHeader}, []string{day})
}

// Advance moves the simulated date by the given number of days; negative
// values move it back. It returns the new date.
func (c CurrentDate) Advance(days int) (string, error) {
	current, err := c.Get()
	if err != nil {
		return "", err
	}
	if days == 0 {
		return current, nil
	}
	on, err := c.cfg.Format().ParseDay(current)
	if err != nil {
		return "", fmt.Errorf("stored current date is invalid: %w", err)
	}
	moved := on.Add(days).Format(c.cfg.DateFormat)
	if err := c.Set(moved); err != nil {
		return "", err
	}
	return moved, nil
}

// AdvanceBy is like Advance but takes the day count as a string, as it
// arrives from the command line.
func (c CurrentDate) AdvanceBy(days string) (string, error) {
	n, err := strconv.Atoi(days)
	if err != nil {
		return "", fmt.Errorf("%q is not a valid number of days: %w", days, err)
	}
	return c.Advance(n)
}

// Reset puts the simulated date back to the real today.
func (c CurrentDate) Reset() (string, error) {
	today := c.Today()
	if err := c.Set(today); err != nil {
		return "", err
	}
	return today, nil
}

// Today returns the real current date in the configured format.
func (c CurrentDate) Today() string { return c.cfg.Format().Today() }
