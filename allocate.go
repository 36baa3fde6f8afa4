package stockpile

import (
	"sort"

	"github.com/shopspring/decimal"
)

// PlanSale allocates a sell request across the available lots, depleting the
// soonest-to-expire lot first to minimize future spoilage. Each drawn lot
// yields one SoldEntry referencing that lot's id; the walk stops as soon as
// the request is satisfied, so no zero-quantity entry is ever emitted.
//
// The available lots must carry their remaining quantity, as returned by
// Available. The planner does not re-check feasibility: invoked with a
// request larger than the total remainder it silently under-fills, which is
// why Sell verifies the total before calling it.
func PlanSale(available []BoughtLot, price decimal.Decimal, quantity int, sellDate string) []SoldEntry {
	lots := make([]BoughtLot, len(available))
	copy(lots, available)
	sort.SliceStable(lots, func(i, j int) bool {
		return lots[i].ExpirationDate < lots[j].ExpirationDate
	})

	var entries []SoldEntry
	remaining := quantity
	for _, lot := range lots {
		take := remaining
		if lot.Quantity < take {
			take = lot.Quantity
		}
		entries = append(entries, NewSoldEntry(lot.ID, lot.Name, price, take, sellDate))
		remaining -= take
		if remaining == 0 {
			break
		}
	}
	return entries
}
