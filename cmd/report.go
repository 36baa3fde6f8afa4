package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/evdv/stockpile"
	"github.com/evdv/stockpile/renderer"
	"github.com/google/subcommands"
)

type reportCmd struct {
	name      string
	now       bool
	today     bool
	yesterday bool
	date      string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "derive a report from the ledgers" }
func (*reportCmd) Usage() string {
	return `spl report <inventory|expired|revenue|cost|profit|chart> [-name <product>] [-now | -today | -yesterday | -date <date>]

  inventory  lots on the shelf on the report date, with remaining quantities
  expired    lots that passed their expiration date without being sold
  revenue    total sale proceeds for the report date
  cost       total purchase cost for the report date
  profit     revenue minus cost for the report date
  chart      running totals for every day between the first and last transaction

  For the financial reports the date may be a day, a month (2024-01) or a
  year (2024). -now and -yesterday resolve against the simulated current
  date; -today always means the real today.

Usage Examples:
$ spl report inventory -now
$ spl report revenue -name mango -date 2024-01
$ spl report profit -yesterday

`
}

func (p *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.name, "name", "", "Restrict the report to one product.")
	f.BoolVar(&p.now, "now", false, "Report on the simulated current date.")
	f.BoolVar(&p.today, "today", false, "Report on the real today, whatever the simulated date.")
	f.BoolVar(&p.yesterday, "yesterday", false, "Report on the day before the simulated current date.")
	f.StringVar(&p.date, "date", "", "Report on this date, possibly a month or a year.")
}

// reportDate resolves the date flags against the simulated clock. An empty
// result means no date restriction.
func (p *reportCmd) reportDate(inv *stockpile.Inventory) (string, error) {
	switch {
	case p.now:
		return inv.Clock().Get()
	case p.today:
		return inv.Clock().Today(), nil
	case p.yesterday:
		current, err := inv.Clock().Get()
		if err != nil {
			return "", err
		}
		format := inv.Config().Format()
		day, err := format.ParseDay(current)
		if err != nil {
			return "", err
		}
		return day.Add(-1).Format(inv.Config().DateFormat), nil
	default:
		return p.date, nil
	}
}

func (p *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Println(p.Usage())
		return subcommands.ExitUsageError
	}

	inv, err := openInventory()
	if err != nil {
		return fail(err)
	}
	day, err := p.reportDate(inv)
	if err != nil {
		return fail(err)
	}
	cur := inv.Config().Currency
	reports := stockpile.NewReports(inv)

	switch kind := f.Arg(0); kind {
	case "inventory":
		lots, total, err := inv.Available(p.name, day)
		if err != nil {
			return fail(err)
		}
		printMarkdown(renderer.RenderProducts(renderer.ProductsView{
			Title: "Inventory on " + day, Lots: lots, Total: total, Currency: cur,
		}))

	case "expired":
		lots, err := inv.Expired(p.name, day)
		if err != nil {
			return fail(err)
		}
		total := 0
		for _, lot := range lots {
			total += lot.Quantity
		}
		printMarkdown(renderer.RenderProducts(renderer.ProductsView{
			Title: "Expired on " + day, Lots: lots, Total: total, Currency: cur,
		}))

	case "revenue":
		amount, err := reports.Revenue(p.name, day)
		if err != nil {
			return fail(err)
		}
		printMarkdown(renderer.RenderFigure(renderer.FigureView{
			Title: "Revenue", Amount: stockpile.M(amount, cur), Day: day,
		}))

	case "cost":
		amount, err := reports.Cost(p.name, day)
		if err != nil {
			return fail(err)
		}
		printMarkdown(renderer.RenderFigure(renderer.FigureView{
			Title: "Cost", Amount: stockpile.M(amount, cur), Day: day,
		}))

	case "profit":
		amount, err := reports.Profit(p.name, day)
		if err != nil {
			return fail(err)
		}
		printMarkdown(renderer.RenderFigure(renderer.FigureView{
			Title: "Profit", Amount: stockpile.M(amount, cur), Day: day,
		}))

	case "chart":
		series, err := reports.DailySeries(p.name)
		if err != nil {
			return fail(err)
		}
		printMarkdown(renderer.RenderChart(renderer.ChartView{
			Title: "Daily running totals", Series: series, Currency: cur,
		}))

	default:
		return fail(fmt.Errorf("unknown report %q", kind))
	}
	return subcommands.ExitSuccess
}
