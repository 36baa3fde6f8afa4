package cmd

import (
	"path/filepath"
	"testing"

	"github.com/evdv/stockpile"
)

func testReportInventory(t *testing.T, day string) *stockpile.Inventory {
	t.Helper()
	dir := t.TempDir()
	cfg := stockpile.DefaultConfig()
	cfg.BoughtFile = filepath.Join(dir, "bought.csv")
	cfg.SoldFile = filepath.Join(dir, "sold.csv")
	cfg.CurrentDateFile = filepath.Join(dir, "current_date.csv")
	inv := stockpile.NewInventory(cfg)
	if err := inv.Clock().Set(day); err != nil {
		t.Fatal(err)
	}
	return inv
}

func TestReportDate(t *testing.T) {
	inv := testReportInventory(t, "2024-01-15")
	tests := []struct {
		name string
		cmd  reportCmd
		want string
	}{
		{"now", reportCmd{now: true}, "2024-01-15"},
		{"today", reportCmd{today: true}, inv.Clock().Today()},
		{"yesterday", reportCmd{yesterday: true}, "2024-01-14"},
		{"explicit date", reportCmd{date: "2024-01"}, "2024-01"},
		{"no restriction", reportCmd{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.cmd.reportDate(inv)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("reportDate() = %q, want %q", got, tt.want)
			}
		})
	}
}
