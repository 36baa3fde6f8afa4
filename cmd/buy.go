package cmd

import (
	"context"
	"flag"

	"github.com/evdv/stockpile"
	"github.com/evdv/stockpile/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type buyCmd struct {
	name     string
	price    string
	quantity int
	date     string
	expires  string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record the purchase of a product lot" }
func (*buyCmd) Usage() string {
	return `spl buy -name <product> -price <price> -quantity <n> -expires <date> [-date <date>]

  Appends a lot to the bought ledger. The buy date defaults to the simulated
  current date; the expiration date must not precede it.

Usage Examples:
$ spl buy -name mango -price 2.5 -quantity 4 -expires 2024-01-10

`
}

func (p *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.name, "name", "", "Product name.")
	f.StringVar(&p.price, "price", "", "Buy price per unit.")
	f.IntVar(&p.quantity, "quantity", 0, "Number of units bought.")
	f.StringVar(&p.date, "date", "", "Buy date. Defaults to the simulated current date.")
	f.StringVar(&p.expires, "expires", "", "Expiration date of the lot.")
}

func (p *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	inv, err := openInventory()
	if err != nil {
		return fail(err)
	}
	price, err := decimal.NewFromString(p.price)
	if err != nil {
		return fail(err)
	}

	id, err := inv.Buy(p.name, price, p.quantity, p.date, p.expires)
	if err != nil {
		return fail(err)
	}

	ledger, err := stockpile.LoadBoughtLedger(inv.Config().BoughtFile)
	if err != nil {
		return fail(err)
	}
	for lot := range ledger.All() {
		if lot.ID == id {
			printMarkdown(renderer.Bought(lot, inv.Config().Currency) + "\n")
			break
		}
	}
	return subcommands.ExitSuccess
}
