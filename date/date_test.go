package date

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNewNormalizes(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		day   int
		want  string
	}{
		{2024, time.January, 1, "2024-01-01"},
		{2024, time.February, 30, "2024-03-01"},
		{2024, time.March, 0, "2024-02-29"}, // leap year
		{2023, time.March, 0, "2023-02-28"},
		{2024, time.December + 1, 5, "2025-01-05"},
	}
	for _, tc := range tests {
		if got := New(tc.year, tc.month, tc.day).String(); got != tc.want {
			t.Errorf("New(%d, %v, %d) = %q, want %q", tc.year, tc.month, tc.day, got, tc.want)
		}
	}
}

func TestAdd(t *testing.T) {
	d := MustParse("2024-01-01")
	if got := d.Add(2).String(); got != "2024-01-03" {
		t.Errorf("Add(2) = %q, want 2024-01-03", got)
	}
	if got := d.Add(-1).String(); got != "2023-12-31" {
		t.Errorf("Add(-1) = %q, want 2023-12-31", got)
	}
	if got := d.Add(31).String(); got != "2024-02-01" {
		t.Errorf("Add(31) = %q, want 2024-02-01", got)
	}
}

func TestBeforeAfter(t *testing.T) {
	a, b := MustParse("2024-01-01"), MustParse("2024-01-02")
	if !a.Before(b) || b.Before(a) {
		t.Error("Before is wrong for consecutive days")
	}
	if !b.After(a) || a.After(b) {
		t.Error("After is wrong for consecutive days")
	}
	if a.Before(a) || a.After(a) {
		t.Error("a day is neither before nor after itself")
	}
}

func TestParseRejectsPartialDates(t *testing.T) {
	for _, s := range []string{"2024", "2024-01", "01-02-2024", "not a date", ""} {
		if _, err := Parse(s); err == nil {
			t.Errorf("Parse(%q) should fail", s)
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	d := MustParse("2024-08-25")
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"2024-08-25"` {
		t.Errorf("Marshal = %s, want \"2024-08-25\"", data)
	}
	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}
}
