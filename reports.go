package stockpile

import (
	"github.com/evdv/stockpile/date"
	"github.com/shopspring/decimal"
)

// Reports derives the financial figures from the two ledgers. Every figure
// is rounded to cents only at the end, after exact decimal summation.
type Reports struct {
	inv *Inventory
}

// NewReports returns the report engine over an inventory.
func NewReports(inv *Inventory) *Reports { return &Reports{inv: inv} }

// Revenue sums quantity times sell price over the sales matching a product
// name and a sell date, which may be year- or month-granular. Empty
// arguments match everything.
func (r *Reports) Revenue(name, sellDate string) (decimal.Decimal, error) {
	entries, _, err := r.inv.Sold(name, sellDate)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Proceeds())
	}
	return total.Round(2), nil
}

// Cost sums quantity times buy price over the lots matching a product name
// and a buy date. Empty arguments match everything.
func (r *Reports) Cost(name, buyDate string) (decimal.Decimal, error) {
	lots, _, err := r.inv.Bought(name, buyDate)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, lot := range lots {
		total = total.Add(lot.Cost())
	}
	return total.Round(2), nil
}

// Profit is revenue minus cost, applying the same date to the sell side and
// the buy side. Over a full period that is the trading result; for a single
// day it compares that day's sales with that day's purchases, not with the
// purchase cost of the goods sold.
func (r *Reports) Profit(name, onDate string) (decimal.Decimal, error) {
	revenue, err := r.Revenue(name, onDate)
	if err != nil {
		return decimal.Zero, err
	}
	cost, err := r.Cost(name, onDate)
	if err != nil {
		return decimal.Zero, err
	}
	return revenue.Sub(cost).Round(2), nil
}

// DailyFigure is one point of the chart series: the running totals up to and
// including Day.
type DailyFigure struct {
	Day     string
	Cost    decimal.Decimal
	Revenue decimal.Decimal
	Profit  decimal.Decimal
}

// DailySeries walks every day from the first to the last recorded
// transaction and accumulates cost and revenue, yielding the running totals
// per day. An inventory without transactions yields an empty series.
func (r *Reports) DailySeries(name string) ([]DailyFigure, error) {
	lots, _, err := r.inv.Bought(name, "")
	if err != nil {
		return nil, err
	}
	sold, _, err := r.inv.Sold(name, "")
	if err != nil {
		return nil, err
	}
	if len(lots) == 0 && len(sold) == 0 {
		return []DailyFigure{}, nil
	}

	format := r.inv.cfg.Format()
	var first, last date.Date
	seen := false
	observe := func(s string) error {
		d, err := format.ParseDay(s)
		if err != nil {
			return err
		}
		if !seen || d.Before(first) {
			first = d
		}
		if !seen || d.After(last) {
			last = d
		}
		seen = true
		return nil
	}

	costByDay := make(map[string]decimal.Decimal)
	for _, lot := range lots {
		if err := observe(lot.BuyDate); err != nil {
			return nil, err
		}
		costByDay[lot.BuyDate] = costByDay[lot.BuyDate].Add(lot.Cost())
	}
	revenueByDay := make(map[string]decimal.Decimal)
	for _, e := range sold {
		if err := observe(e.SellDate); err != nil {
			return nil, err
		}
		revenueByDay[e.SellDate] = revenueByDay[e.SellDate].Add(e.Proceeds())
	}

	var series []DailyFigure
	cost, revenue := decimal.Zero, decimal.Zero
	for d := first; !d.After(last); d = d.Add(1) {
		day := d.Format(string(format))
		cost = cost.Add(costByDay[day])
		revenue = revenue.Add(revenueByDay[day])
		series = append(series, DailyFigure{
			Day:     day,
			Cost:    cost.Round(2),
			Revenue: revenue.Round(2),
			Profit:  revenue.Sub(cost).Round(2),
		})
	}
	return series, nil
}
