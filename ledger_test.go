package stockpile

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestBoughtLedgerAppendSorts(t *testing.T) {
	l := NewBoughtLedger()
	l.Append(lot(1, "late", "1", 1, "2024-03-01", "2024-04-01"))
	l.Append(lot(2, "early", "1", 1, "2024-01-01", "2024-02-01"))
	l.Append(lot(3, "middle", "1", 1, "2024-02-01", "2024-03-01"))

	got := names(l.Lots())
	want := []string{"early", "middle", "late"}
	if !equalStrings(got, want) {
		t.Errorf("Lots() order = %v, want %v", got, want)
	}
}

func TestBoughtLedgerSortIsStable(t *testing.T) {
	l := NewBoughtLedger()
	l.Append(lot(1, "first", "1", 1, "2024-01-01", "2024-02-01"))
	l.Append(lot(2, "second", "1", 1, "2024-01-01", "2024-02-01"))

	got := names(l.Lots())
	if !equalStrings(got, []string{"first", "second"}) {
		t.Errorf("same-day lots reordered: %v", got)
	}
}

func TestNextID(t *testing.T) {
	if got := NewBoughtLedger().NextID(); got != 1 {
		t.Errorf("NextID() on empty ledger = %d, want 1", got)
	}
	l := NewBoughtLedger(
		lot(3, "a", "1", 1, "2024-01-01", "2024-02-01"),
		lot(7, "b", "1", 1, "2024-01-02", "2024-02-01"),
	)
	if got := l.NextID(); got != 8 {
		t.Errorf("NextID() = %d, want 8", got)
	}
}

func TestSoldQuantityFor(t *testing.T) {
	price := decimal.RequireFromString("5")
	l := NewSoldLedger(
		NewSoldEntry(1, "mango", price, 2, "2024-01-03"),
		NewSoldEntry(1, "mango", price, 1, "2024-01-04"),
		NewSoldEntry(2, "mango", price, 4, "2024-01-03"),
	)
	if got := l.SoldQuantityFor(1); got != 3 {
		t.Errorf("SoldQuantityFor(1) = %d, want 3", got)
	}
	if got := l.SoldQuantityFor(9); got != 0 {
		t.Errorf("SoldQuantityFor(9) = %d, want 0", got)
	}
}
