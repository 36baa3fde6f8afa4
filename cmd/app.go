// Package cmd implements the CLI application to track perishable goods.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/evdv/stockpile"
	"github.com/google/subcommands"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use a global flag for the config file.
var configFile = flag.String("config", "", "Path to the configuration file (JSON). Defaults to ./config.json when present.")

// Register the subcommands. A main package calls Register(), then Execute()
// on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&buyCmd{}, "transactions")
	c.Register(&sellCmd{}, "transactions")

	c.Register(&dateCmd{}, "time")

	c.Register(&reportCmd{}, "reports")
	c.Register(&txCmd{}, "reports")

	c.Register(&importCmd{}, "data")
	c.Register(&exportCmd{}, "data")
	c.Register(&fmtCmd{}, "data")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// Names lists the command names, for shell completion.
func Names() []string {
	return []string{
		"buy", "sell", "date", "report", "tx",
		"import", "export", "fmt", "topic", "assist",
	}
}

// openInventory loads the configuration and opens the ledgers.
func openInventory() (*stockpile.Inventory, error) {
	cfg, err := stockpile.LoadConfig(*configFile)
	if err != nil {
		return nil, err
	}
	return stockpile.NewInventory(cfg), nil
}

// fail prints the error and maps it to the failure exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}
