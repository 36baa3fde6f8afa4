package stockpile

import (
	"iter"
	"sort"
)

// BoughtLedger is the in-memory view of the bought ledger.
//
// The ledger is append-only: entries are never edited or removed, and ids
// grow monotonically with each purchase.
type BoughtLedger struct {
	lots []BoughtLot
}

// NewBoughtLedger creates a bought ledger from already-decoded lots.
func NewBoughtLedger(lots ...BoughtLot) *BoughtLedger {
	return &BoughtLedger{lots: lots}
}

// Append adds lots to the ledger, keeping it sorted by buy date.
func (l *BoughtLedger) Append(lots ...BoughtLot) {
	l.lots = append(l.lots, lots...)
	l.stableSort()
}

// stableSort sorts by buy date. The sort is stable so that lots bought the
// same day keep their append order.
func (l *BoughtLedger) stableSort() {
	sort.SliceStable(l.lots, func(i, j int) bool {
		return l.lots[i].BuyDate < l.lots[j].BuyDate
	})
}

// Lots returns a copy of the ledger's entries.
func (l *BoughtLedger) Lots() []BoughtLot {
	out := make([]BoughtLot, len(l.lots))
	copy(out, l.lots)
	return out
}

func (l *BoughtLedger) Len() int { return len(l.lots) }

// NextID returns the id for the next purchase: one past the highest id ever
// assigned, or 1 for an empty ledger.
func (l *BoughtLedger) NextID() int {
	max := 0
	for _, lot := range l.lots {
		if lot.ID > max {
			max = lot.ID
		}
	}
	return max + 1
}

// All returns an iterator over the ledger entries in chronological order.
func (l *BoughtLedger) All() iter.Seq[BoughtLot] {
	return func(yield func(BoughtLot) bool) {
		for _, lot := range l.lots {
			if !yield(lot) {
				return
			}
		}
	}
}

// SoldLedger is the in-memory view of the sold ledger. Like the bought
// ledger it is append-only; its entries reference bought lots by id.
type SoldLedger struct {
	entries []SoldEntry
}

// NewSoldLedger creates a sold ledger from already-decoded entries.
func NewSoldLedger(entries ...SoldEntry) *SoldLedger {
	return &SoldLedger{entries: entries}
}

// Append adds entries to the ledger, keeping it sorted by sell date.
func (l *SoldLedger) Append(entries ...SoldEntry) {
	l.entries = append(l.entries, entries...)
	l.stableSort()
}

func (l *SoldLedger) stableSort() {
	sort.SliceStable(l.entries, func(i, j int) bool {
		return l.entries[i].SellDate < l.entries[j].SellDate
	})
}

// Entries returns a copy of the ledger's entries.
func (l *SoldLedger) Entries() []SoldEntry {
	out := make([]SoldEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *SoldLedger) Len() int { return len(l.entries) }

// All returns an iterator over the ledger entries in chronological order.
func (l *SoldLedger) All() iter.Seq[SoldEntry] {
	return func(yield func(SoldEntry) bool) {
		for _, e := range l.entries {
			if !yield(e) {
				return
			}
		}
	}
}

// SoldQuantityFor sums the sold quantity drawn from one bought lot.
func (l *SoldLedger) SoldQuantityFor(lotID int) int {
	total := 0
	for _, e := range l.entries {
		if e.LotID == lotID {
			total += e.Quantity
		}
	}
	return total
}
