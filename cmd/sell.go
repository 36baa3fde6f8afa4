package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/evdv/stockpile"
	"github.com/evdv/stockpile/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type sellCmd struct {
	name     string
	price    string
	quantity int
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record the sale of a product" }
func (*sellCmd) Usage() string {
	return `spl sell -name <product> -price <price> -quantity <n>

  Sells on the simulated current date, drawing from the lots closest to
  expiry first. The sale is all-or-nothing: when the stock cannot cover the
  quantity, nothing is written.

Usage Examples:
$ spl sell -name mango -price 5 -quantity 2

`
}

func (p *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.name, "name", "", "Product name.")
	f.StringVar(&p.price, "price", "", "Sell price per unit.")
	f.IntVar(&p.quantity, "quantity", 0, "Number of units sold.")
}

func (p *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	inv, err := openInventory()
	if err != nil {
		return fail(err)
	}
	price, err := decimal.NewFromString(p.price)
	if err != nil {
		return fail(err)
	}

	entries, err := inv.Sell(p.name, price, p.quantity)
	if errors.Is(err, stockpile.ErrInsufficientStock) {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err != nil {
		return fail(err)
	}

	printMarkdown(renderer.Sold(entries, inv.Config().Currency))
	return subcommands.ExitSuccess
}
