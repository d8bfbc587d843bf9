package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/zenithfin/zenith"
	"github.com/zenithfin/zenith/date"
	"github.com/zenithfin/zenith/renderer"
)

type historyCmd struct {
	days  int
	chart string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display net worth over time" }
func (*historyCmd) Usage() string {
	return `zen history [-days <n>] [-chart <file.png>]

  Reconstructs the net-worth series for the last n days by walking the
  transaction log backward from today, and prints it as a table. With
  -chart the series is also written as a PNG line chart.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.days, "days", 30, "number of days to reconstruct")
	f.StringVar(&c.chart, "chart", "", "write a PNG chart to this file")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.days < 1 {
		fmt.Println("-days must be at least 1")
		return subcommands.ExitUsageError
	}
	a, err := loadApp()
	if err != nil {
		return fail(err)
	}
	report := zenith.NewHistoryReport(a.ledger.State(), c.days, date.Today())
	printMarkdown(renderer.HistoryMarkdown(report))

	if c.chart != "" {
		png, err := renderer.HistoryChartPNG(report)
		if err != nil {
			return fail(err)
		}
		if err := os.WriteFile(c.chart, png, 0644); err != nil {
			return fail(err)
		}
		fmt.Printf("Chart written to %s\n", c.chart)
	}
	return subcommands.ExitSuccess
}
