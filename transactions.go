package stockpile

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// Column names of the bought ledger, in persisted order.
var BoughtHeader = []string{"id", "name", "buy_price", "quantity", "buy_date", "expiration_date"}

// Column names of the sold ledger, in persisted order.
var SoldHeader = []string{"id", "name", "sell_price", "quantity", "sell_date"}

// BoughtLot is a single purchased batch of a product. Lots are append-only:
// once written they are never edited, and the remaining quantity is always a
// derived value (quantity minus matched sales), never a stored one.
//
// Date fields stay strings in the record layer; the configured date format
// gives them meaning only at comparison time.
type BoughtLot struct {
	ID             int             // unique, monotonically assigned, starting at 1
	Name           string          // product name
	BuyPrice       decimal.Decimal // unit purchase price
	Quantity       int             // purchased quantity
	BuyDate        string          // purchase date in the configured format
	ExpirationDate string          // expiry date, never before BuyDate
}

// NewBoughtLot creates a bought lot.
func NewBoughtLot(id int, name string, buyPrice decimal.Decimal, quantity int, buyDate, expirationDate string) BoughtLot {
	return BoughtLot{ID: id, Name: name, BuyPrice: buyPrice, Quantity: quantity, BuyDate: buyDate, ExpirationDate: expirationDate}
}

// Field returns the raw string value of a ledger column.
func (l BoughtLot) Field(name string) string {
	switch name {
	case "id":
		return strconv.Itoa(l.ID)
	case "name":
		return l.Name
	case "buy_price":
		return l.BuyPrice.String()
	case "quantity":
		return strconv.Itoa(l.Quantity)
	case "buy_date":
		return l.BuyDate
	case "expiration_date":
		return l.ExpirationDate
	default:
		return ""
	}
}

// record returns the lot as a row in BoughtHeader order.
func (l BoughtLot) record() []string {
	row := make([]string, len(BoughtHeader))
	for i, col := range BoughtHeader {
		row[i] = l.Field(col)
	}
	return row
}

// Cost is the total purchase cost of the lot (quantity times unit price).
func (l BoughtLot) Cost() decimal.Decimal {
	return l.BuyPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

func (l BoughtLot) Equal(o BoughtLot) bool {
	return l.ID == o.ID && l.Name == o.Name && l.BuyPrice.Equal(o.BuyPrice) &&
		l.Quantity == o.Quantity && l.BuyDate == o.BuyDate && l.ExpirationDate == o.ExpirationDate
}

// boughtLotFromRecord parses a ledger row keyed by column name.
func boughtLotFromRecord(rec map[string]string) (BoughtLot, error) {
	id, err := strconv.Atoi(rec["id"])
	if err != nil {
		return BoughtLot{}, fmt.Errorf("invalid bought record id %q: %w", rec["id"], err)
	}
	price, err := decimal.NewFromString(rec["buy_price"])
	if err != nil {
		return BoughtLot{}, fmt.Errorf("invalid bought record buy_price %q: %w", rec["buy_price"], err)
	}
	qty, err := strconv.Atoi(rec["quantity"])
	if err != nil {
		return BoughtLot{}, fmt.Errorf("invalid bought record quantity %q: %w", rec["quantity"], err)
	}
	return BoughtLot{
		ID:             id,
		Name:           rec["name"],
		BuyPrice:       price,
		Quantity:       qty,
		BuyDate:        rec["buy_date"],
		ExpirationDate: rec["expiration_date"],
	}, nil
}

// SoldEntry records a sale drawn from one bought lot. A single sell request
// may produce several entries, one per lot it draws from. LotID references
// the bought lot the sale depletes; it is not an identity of its own, and is
// persisted under the "id" column to keep the ledger shape of the record.
type SoldEntry struct {
	LotID     int             // id of the BoughtLot this sale draws from
	Name      string          // product name
	SellPrice decimal.Decimal // unit sale price
	Quantity  int             // sold quantity, never exceeding the lot's remainder
	SellDate  string          // sale date in the configured format
}

// NewSoldEntry creates a sold-ledger entry.
func NewSoldEntry(lotID int, name string, sellPrice decimal.Decimal, quantity int, sellDate string) SoldEntry {
	return SoldEntry{LotID: lotID, Name: name, SellPrice: sellPrice, Quantity: quantity, SellDate: sellDate}
}

// Field returns the raw string value of a ledger column.
func (e SoldEntry) Field(name string) string {
	switch name {
	case "id":
		return strconv.Itoa(e.LotID)
	case "name":
		return e.Name
	case "sell_price":
		return e.SellPrice.String()
	case "quantity":
		return strconv.Itoa(e.Quantity)
	case "sell_date":
		return e.SellDate
	default:
		return ""
	}
}

// record returns the entry as a row in SoldHeader order.
func (e SoldEntry) record() []string {
	row := make([]string, len(SoldHeader))
	for i, col := range SoldHeader {
		row[i] = e.Field(col)
	}
	return row
}

// Proceeds is the total sale value of the entry (quantity times unit price).
func (e SoldEntry) Proceeds() decimal.Decimal {
	return e.SellPrice.Mul(decimal.NewFromInt(int64(e.Quantity)))
}

func (e SoldEntry) Equal(o SoldEntry) bool {
	return e.LotID == o.LotID && e.Name == o.Name && e.SellPrice.Equal(o.SellPrice) &&
		e.Quantity == o.Quantity && e.SellDate == o.SellDate
}

// soldEntryFromRecord parses a ledger row keyed by column name.
func soldEntryFromRecord(rec map[string]string) (SoldEntry, error) {
	id, err := strconv.Atoi(rec["id"])
	if err != nil {
		return SoldEntry{}, fmt.Errorf("invalid sold record id %q: %w", rec["id"], err)
	}
	price, err := decimal.NewFromString(rec["sell_price"])
	if err != nil {
		return SoldEntry{}, fmt.Errorf("invalid sold record sell_price %q: %w", rec["sell_price"], err)
	}
	qty, err := strconv.Atoi(rec["quantity"])
	if err != nil {
		return SoldEntry{}, fmt.Errorf("invalid sold record quantity %q: %w", rec["quantity"], err)
	}
	return SoldEntry{
		LotID:     id,
		Name:      rec["name"],
		SellPrice: price,
		Quantity:  qty,
		SellDate:  rec["sell_date"],
	}, nil
}

var (
	_ Record = BoughtLot{}
	_ Record = SoldEntry{}
)
