package stockpile

import (
	"path/filepath"
	"testing"
)

func testClock(t *testing.T) CurrentDate {
	t.Helper()
	cfg := DefaultConfig()
	cfg.CurrentDateFile = filepath.Join(t.TempDir(), "current_date.csv")
	return NewCurrentDate(cfg)
}

func TestCurrentDateInitializesToToday(t *testing.T) {
	clock := testClock(t)
	got, err := clock.Get()
	if err != nil {
		t.Fatal(err)
	}
	if got != clock.Today() {
		t.Errorf("first Get() = %q, want today %q", got, clock.Today())
	}
}

func TestCurrentDateSetGet(t *testing.T) {
	clock := testClock(t)
	if err := clock.Set("2024-01-01"); err != nil {
		t.Fatal(err)
	}
	got, err := clock.Get()
	if err != nil {
		t.Fatal(err)
	}
	if got != "2024-01-01" {
		t.Errorf("Get() = %q, want 2024-01-01", got)
	}
}

func TestCurrentDateSetRejectsPartialDates(t *testing.T) {
	clock := testClock(t)
	for _, s := range []string{"2024", "2024-01", "garbage"} {
		if err := clock.Set(s); err == nil {
			t.Errorf("Set(%q) should fail", s)
		}
	}
}

func TestCurrentDateAdvance(t *testing.T) {
	clock := testClock(t)
	if err := clock.Set("2024-01-01"); err != nil {
		t.Fatal(err)
	}

	got, err := clock.Advance(2)
	if err != nil {
		t.Fatal(err)
	}
	if got != "2024-01-03" {
		t.Errorf("Advance(2) = %q, want 2024-01-03", got)
	}

	got, err = clock.Advance(-3)
	if err != nil {
		t.Fatal(err)
	}
	if got != "2023-12-31" {
		t.Errorf("Advance(-3) = %q, want 2023-12-31", got)
	}

	got, err = clock.Advance(0)
	if err != nil {
		t.Fatal(err)
	}
	if got != "2023-12-31" {
		t.Errorf("Advance(0) = %q, want the date unchanged", got)
	}
}

func TestCurrentDateAdvanceBy(t *testing.T) {
	clock := testClock(t)
	if err := clock.Set("2024-01-01"); err != nil {
		t.Fatal(err)
	}
	got, err := clock.AdvanceBy("2")
	if err != nil {
		t.Fatal(err)
	}
	if got != "2024-01-03" {
		t.Errorf("AdvanceBy(\"2\") = %q, want 2024-01-03", got)
	}
	if _, err := clock.AdvanceBy("two"); err == nil {
		t.Error("AdvanceBy(\"two\") should fail")
	}
}

func TestCurrentDateReset(t *testing.T) {
	clock := testClock(t)
	if err := clock.Set("2020-06-15"); err != nil {
		t.Fatal(err)
	}
	got, err := clock.Reset()
	if err != nil {
		t.Fatal(err)
	}
	if got != clock.Today() {
		t.Errorf("Reset() = %q, want today %q", got, clock.Today())
	}
}
