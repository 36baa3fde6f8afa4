package stockpile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingLedgerIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bought.csv")
	l, err := LoadBoughtLedger(path)
	if err != nil {
		t.Fatalf("loading a missing ledger should not fail: %v", err)
	}
	if l.Len() != 0 {
		t.Errorf("missing ledger has %d lots, want 0", l.Len())
	}
}

func TestAppendCreatesFileWithHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "bought.csv")
	want := lot(1, "mango", "2.5", 4, "2024-01-01", "2024-01-10")
	if err := appendRecord(path, BoughtHeader, want.record()); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("ledger file has %d lines, want header plus one row:\n%s", len(lines), data)
	}
	if lines[0] != strings.Join(BoughtHeader, ";") {
		t.Errorf("header = %q", lines[0])
	}

	l, err := LoadBoughtLedger(path)
	if err != nil {
		t.Fatal(err)
	}
	if l.Len() != 1 || !l.Lots()[0].Equal(want) {
		t.Errorf("loaded %+v, want %+v", l.Lots(), want)
	}
}

func TestAppendAccumulates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bought.csv")
	for i := 1; i <= 3; i++ {
		l := lot(i, "mango", "2.5", i, "2024-01-01", "2024-01-10")
		if err := appendRecord(path, BoughtHeader, l.record()); err != nil {
			t.Fatal(err)
		}
	}
	l, err := LoadBoughtLedger(path)
	if err != nil {
		t.Fatal(err)
	}
	if l.Len() != 3 {
		t.Errorf("ledger has %d lots, want 3", l.Len())
	}
}

func TestReplaceRecordKeepsOneRow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "current_date.csv")
	header := []string{"current_date"}
	for _, day := range []string{"2024-01-01", "2024-01-02", "2024-01-03"} {
		if err := replaceRecord(path, header, []string{day}); err != nil {
			t.Fatal(err)
		}
	}
	records, err := readRecords(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 || records[0]["current_date"] != "2024-01-03" {
		t.Errorf("records = %v, want just the last value", records)
	}
}

func TestSaveBoughtLedgerCanonical(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bought.csv")
	l := NewBoughtLedger(
		lot(2, "late", "1", 1, "2024-03-01", "2024-04-01"),
		lot(1, "early", "1", 1, "2024-01-01", "2024-02-01"),
	)
	if err := SaveBoughtLedger(path, l); err != nil {
		t.Fatal(err)
	}
	back, err := LoadBoughtLedger(path)
	if err != nil {
		t.Fatal(err)
	}
	got := names(back.Lots())
	if !equalStrings(got, []string{"early", "late"}) {
		t.Errorf("saved order = %v, want sorted by buy date", got)
	}
}
