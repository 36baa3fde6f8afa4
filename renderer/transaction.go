package renderer

import (
	"fmt"
	"strings"

	"github.com/evdv/stockpile"
)

// Bought renders a one-line confirmation for a recorded purchase.
func Bought(lot stockpile.BoughtLot, currency string) string {
	return fmt.Sprintf("Bought %d %s at %s each (lot %d, expires %s)",
		lot.Quantity, lot.Name, stockpile.M(lot.BuyPrice, currency), lot.ID, lot.ExpirationDate)
}

// Sold renders a confirmation for a recorded sale, one line per lot drawn.
func Sold(entries []stockpile.SoldEntry, currency string) string {
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "Sold %d %s at %s each from lot %d\n",
			e.Quantity, e.Name, stockpile.M(e.SellPrice, currency), e.LotID)
	}
	return b.String()
}
