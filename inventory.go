package stockpile

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInsufficientStock is returned by Sell when the requested quantity
// exceeds what is available on the sale date. The sale is rejected wholesale;
// no partial fulfillment ever reaches the sold ledger.
var ErrInsufficientStock = errors.New("not enough stock available")

// Inventory is the reconciliation engine: it loads the two ledgers and
// derives stock levels from them. Every operation reads the full ledgers,
// computes in memory, and appends; nothing is edited in place.
type Inventory struct {
	cfg   Config
	clock CurrentDate
}

// NewInventory creates an inventory over the configured ledger files.
func NewInventory(cfg Config) *Inventory {
	return &Inventory{cfg: cfg, clock: NewCurrentDate(cfg)}
}

// Clock returns the simulated current date of this inventory.
func (inv *Inventory) Clock() CurrentDate { return inv.clock }

// Config returns the configuration the inventory was built with.
func (inv *Inventory) Config() Config { return inv.cfg }

// Bought returns the bought lots matching a product name and buy date, and
// their total quantity. Empty arguments match everything; the date may be
// year- or month-granular (prefix match).
func (inv *Inventory) Bought(name, buyDate string) ([]BoughtLot, int, error) {
	ledger, err := LoadBoughtLedger(inv.cfg.BoughtFile)
	if err != nil {
		return nil, 0, err
	}
	lots := FilterAll(ledger.Lots(), inv.cfg.Format(), "name=="+name, "buy_date=="+buyDate)
	total := 0
	for _, lot := range lots {
		total += lot.Quantity
	}
	return lots, total, nil
}

// Sold returns the sold entries matching a product name and sell date, and
// their total quantity. Empty arguments match everything.
func (inv *Inventory) Sold(name, sellDate string) ([]SoldEntry, int, error) {
	ledger, err := LoadSoldLedger(inv.cfg.SoldFile)
	if err != nil {
		return nil, 0, err
	}
	entries := FilterAll(ledger.Entries(), inv.cfg.Format(), "name=="+name, "sell_date=="+sellDate)
	total := 0
	for _, e := range entries {
		total += e.Quantity
	}
	return entries, total, nil
}

// Available computes the stock on hand on a given date: bought lots whose
// lifetime covers the date, minus every matched sale. The returned lots
// carry their remaining quantity; lots sold out are dropped. An empty result
// is an empty slice with total 0.
func (inv *Inventory) Available(name, onDate string) ([]BoughtLot, int, error) {
	lots, _, err := inv.Bought(name, "")
	if err != nil {
		return nil, 0, err
	}
	lots = FilterAll(lots, inv.cfg.Format(), "buy_date<="+onDate, "expiration_date>="+onDate)

	sold, _, err := inv.Sold(name, "")
	if err != nil {
		return nil, 0, err
	}

	remaining := subtractSales(lots, sold)
	total := 0
	for _, lot := range remaining {
		total += lot.Quantity
	}
	return remaining, total, nil
}

// Expired computes the stock that has passed its expiration date without
// being sold: lots with expiration_date on or before the given date, minus
// only the sales made on or before that date. Later sales are irrelevant:
// the goods were still on the shelf when they expired.
func (inv *Inventory) Expired(name, onDate string) ([]BoughtLot, error) {
	lots, _, err := inv.Bought(name, "")
	if err != nil {
		return nil, err
	}
	lots = FilterAll(lots, inv.cfg.Format(), "expiration_date<="+onDate)

	sold, _, err := inv.Sold(name, "")
	if err != nil {
		return nil, err
	}
	sold = FilterAll(sold, inv.cfg.Format(), "sell_date<="+onDate)

	return subtractSales(lots, sold), nil
}

// subtractSales reduces each lot's quantity by the sales referencing its id,
// accumulating when several sales draw from the same lot, and drops lots
// whose remainder falls to zero or below. Lot order is preserved.
func subtractSales(lots []BoughtLot, sold []SoldEntry) []BoughtLot {
	index := make(map[int]int, len(lots)) // lot id to position
	remaining := make([]BoughtLot, len(lots))
	copy(remaining, lots)
	for i, lot := range remaining {
		index[lot.ID] = i
	}
	for _, e := range sold {
		if i, ok := index[e.LotID]; ok {
			remaining[i].Quantity -= e.Quantity
		}
	}
	survivors := remaining[:0]
	for _, lot := range remaining {
		if lot.Quantity > 0 {
			survivors = append(survivors, lot)
		}
	}
	return survivors
}

// Buy validates and records a purchase, returning the assigned lot id.
// An empty buyDate defaults to the simulated current date. Nothing is
// written when a validation fails.
func (inv *Inventory) Buy(name string, price decimal.Decimal, quantity int, buyDate, expirationDate string) (int, error) {
	if buyDate == "" {
		var err error
		buyDate, err = inv.clock.Get()
		if err != nil {
			return 0, err
		}
	}
	if err := ValidatePrice(price); err != nil {
		return 0, err
	}
	if err := ValidateQuantity(quantity); err != nil {
		return 0, err
	}
	if err := ValidateExpirationDate(inv.cfg.Format(), buyDate, expirationDate); err != nil {
		return 0, err
	}

	ledger, err := LoadBoughtLedger(inv.cfg.BoughtFile)
	if err != nil {
		return 0, err
	}
	lot := NewBoughtLot(ledger.NextID(), name, price, quantity, buyDate, expirationDate)
	if err := inv.appendLot(lot); err != nil {
		return 0, err
	}
	return lot.ID, nil
}

// appendLot appends one lot to the bought ledger file.
func (inv *Inventory) appendLot(lot BoughtLot) error {
	return appendRecord(inv.cfg.BoughtFile, BoughtHeader, lot.record())
}

// Sell validates and records a sale on the simulated current date. The
// request is all-or-nothing: when the available quantity cannot cover it,
// ErrInsufficientStock is returned and the sold ledger stays untouched.
// Otherwise the sale is allocated across the available lots, soonest-to-
// expire first, and every resulting entry is appended.
func (inv *Inventory) Sell(name string, price decimal.Decimal, quantity int) ([]SoldEntry, error) {
	if err := ValidatePrice(price); err != nil {
		return nil, err
	}
	if err := ValidateQuantity(quantity); err != nil {
		return nil, err
	}
	sellDate, err := inv.clock.Get()
	if err != nil {
		return nil, err
	}

	available, total, err := inv.Available(name, sellDate)
	if err != nil {
		return nil, err
	}
	if total < quantity {
		return nil, fmt.Errorf("%w: only %d %q remaining, %d requested", ErrInsufficientStock, total, name, quantity)
	}

	entries := PlanSale(available, price, quantity, sellDate)
	for _, e := range entries {
		if err := appendRecord(inv.cfg.SoldFile, SoldHeader, e.record()); err != nil {
			return nil, err
		}
	}
	return entries, nil
}
