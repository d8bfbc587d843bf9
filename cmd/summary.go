package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/zenithfin/zenith"
	"github.com/zenithfin/zenith/date"
	"github.com/zenithfin/zenith/renderer"
)

type summaryCmd struct {
	date string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display accounts, cards, investments and goals" }
func (*summaryCmd) Usage() string {
	return `zen summary [-d <date>]

  Displays the full ledger overview: balances, card invoices, positions
  with unrealized gains, goal progress and total net worth.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "date of the summary")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := loadApp()
	if err != nil {
		return fail(err)
	}
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Println("invalid date:", err)
		return subcommands.ExitUsageError
	}
	report := zenith.NewSummaryReport(a.ledger.State(), on)
	printMarkdown(renderer.SummaryMarkdown(report))
	return subcommands.ExitSuccess
}
