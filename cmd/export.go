package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type exportCmd struct {
	ledger string
	to     string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export a ledger to a file" }
func (*exportCmd) Usage() string {
	return `spl export -to <file> [-ledger bought|sold]

  Writes a ledger to a CSV, JSON, XML or XLSX file; the extension picks the
  format.

Usage Examples:
$ spl export -to bought.json
$ spl export -ledger sold -to sales.xlsx

`
}

func (p *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.ledger, "ledger", "bought", "Ledger to export: bought or sold.")
	f.StringVar(&p.to, "to", "", "File to export to.")
}

func (p *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.to == "" {
		fmt.Println(p.Usage())
		return subcommands.ExitUsageError
	}
	inv, err := openInventory()
	if err != nil {
		return fail(err)
	}

	switch p.ledger {
	case "bought":
		err = inv.ExportBought(p.to)
	case "sold":
		err = inv.ExportSold(p.to)
	default:
		err = fmt.Errorf("unknown ledger %q: want bought or sold", p.ledger)
	}
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Exported %s ledger to %s\n", p.ledger, p.to)
	return subcommands.ExitSuccess
}
