package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type dateCmd struct {
	set     string
	advance string
	reset   bool
}

func (*dateCmd) Name() string     { return "date" }
func (*dateCmd) Synopsis() string { return "show or move the simulated current date" }
func (*dateCmd) Usage() string {
	return `spl date [-set <date> | -advance <days> | -reset]

  Without flags, prints the simulated current date. Every transaction and
  report is anchored to it, so moving it lets you replay or project
  scenarios.

Usage Examples:
$ spl date
$ spl date -advance 2
$ spl date -advance -- -1
$ spl date -set 2024-01-01
$ spl date -reset

`
}

func (p *dateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.set, "set", "", "Set the simulated date to this day.")
	f.StringVar(&p.advance, "advance", "", "Move the simulated date by this many days, negative to go back.")
	f.BoolVar(&p.reset, "reset", false, "Put the simulated date back to the real today.")
}

func (p *dateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	inv, err := openInventory()
	if err != nil {
		return fail(err)
	}
	clock := inv.Clock()

	var day string
	switch {
	case p.set != "":
		if err := clock.Set(p.set); err != nil {
			return fail(err)
		}
		day = p.set
	case p.advance != "":
		if day, err = clock.AdvanceBy(p.advance); err != nil {
			return fail(err)
		}
	case p.reset:
		if day, err = clock.Reset(); err != nil {
			return fail(err)
		}
	default:
		if day, err = clock.Get(); err != nil {
			return fail(err)
		}
	}

	fmt.Println(day)
	return subcommands.ExitSuccess
}
