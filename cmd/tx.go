package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/evdv/stockpile"
	"github.com/evdv/stockpile/renderer"
	"github.com/google/subcommands"
)

type txCmd struct {
	ledger string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list raw ledger rows, optionally filtered" }
func (*txCmd) Usage() string {
	return `spl tx [-ledger bought|sold] [<field><op><value> ...]

  Lists the ledger rows as recorded. Each positional argument is a filter
  predicate with one of the operators ==, !=, <=, >=, << or >>; fields
  ending in _date compare as calendar dates, with partial dates matching by
  prefix for equality and expanding to their boundary for ordering.

Usage Examples:
$ spl tx
$ spl tx -ledger sold "sell_date==2024-01"
$ spl tx "name==mango" "buy_date>=2024"

`
}

func (p *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.ledger, "ledger", "bought", "Ledger to list: bought or sold.")
}

func (p *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	inv, err := openInventory()
	if err != nil {
		return fail(err)
	}
	cfg := inv.Config()
	filters := f.Args()

	switch p.ledger {
	case "bought":
		ledger, err := stockpile.LoadBoughtLedger(cfg.BoughtFile)
		if err != nil {
			return fail(err)
		}
		lots := stockpile.FilterAll(ledger.Lots(), cfg.Format(), filters...)
		total := 0
		for _, lot := range lots {
			total += lot.Quantity
		}
		printMarkdown(renderer.RenderProducts(renderer.ProductsView{
			Title: "Bought ledger", Lots: lots, Total: total, Currency: cfg.Currency,
		}))

	case "sold":
		ledger, err := stockpile.LoadSoldLedger(cfg.SoldFile)
		if err != nil {
			return fail(err)
		}
		entries := stockpile.FilterAll(ledger.Entries(), cfg.Format(), filters...)
		total := 0
		for _, e := range entries {
			total += e.Quantity
		}
		printMarkdown(renderer.RenderSales(renderer.SalesView{
			Title: "Sold ledger", Entries: entries, Total: total, Currency: cfg.Currency,
		}))

	default:
		return fail(fmt.Errorf("unknown ledger %q: want bought or sold", p.ledger))
	}
	return subcommands.ExitSuccess
}
