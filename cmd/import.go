package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type importCmd struct {
	from  string
	query string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import product records into the bought ledger" }
func (*importCmd) Usage() string {
	return `spl import -from <file> [-query <jsonpath>]

  Reads product records from a CSV, JSON, XML or XLSX file (the extension
  picks the format) and appends them to the bought ledger with fresh ids.
  The whole file is parsed before the first write; a malformed record aborts
  the import with the ledger untouched.

Usage Examples:
$ spl import -from delivery.xlsx
$ spl import -from suppliers.json -query "$.deliveries[0].products"

`
}

func (p *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.from, "from", "", "File to import from.")
	f.StringVar(&p.query, "query", "", "jsonpath query selecting the record list in a JSON document.")
}

func (p *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.from == "" {
		fmt.Println(p.Usage())
		return subcommands.ExitUsageError
	}
	inv, err := openInventory()
	if err != nil {
		return fail(err)
	}
	ids, err := inv.ImportBought(p.from, p.query)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Imported %d lots from %s\n", len(ids), p.from)
	return subcommands.ExitSuccess
}
