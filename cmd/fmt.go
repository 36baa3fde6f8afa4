package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/evdv/stockpile"
	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "rewrite the ledger files in canonical form"
}
func (*fmtCmd) Usage() string {
	return `spl fmt

  Reads both ledgers, sorts the rows by date and writes them back. Useful
  after hand edits or imports from differently ordered sources.

`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	inv, err := openInventory()
	if err != nil {
		return fail(err)
	}
	cfg := inv.Config()

	bought, err := stockpile.LoadBoughtLedger(cfg.BoughtFile)
	if err != nil {
		return fail(err)
	}
	if err := stockpile.SaveBoughtLedger(cfg.BoughtFile, bought); err != nil {
		return fail(err)
	}
	fmt.Fprintf(os.Stderr, "Formatted %s (%d rows)\n", cfg.BoughtFile, bought.Len())

	sold, err := stockpile.LoadSoldLedger(cfg.SoldFile)
	if err != nil {
		return fail(err)
	}
	if err := stockpile.SaveSoldLedger(cfg.SoldFile, sold); err != nil {
		return fail(err)
	}
	fmt.Fprintf(os.Stderr, "Formatted %s (%d rows)\n", cfg.SoldFile, sold.Len())

	return subcommands.ExitSuccess
}
