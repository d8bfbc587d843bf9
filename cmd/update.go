package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/zenithfin/zenith"
	"github.com/zenithfin/zenith/date"
	"github.com/zenithfin/zenith/marketdata"
)

type updateCmd struct {
	simulated bool
	confirm   bool
	account   string
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "refresh market prices and collect dividends" }
func (*updateCmd) Usage() string {
	return `zen update [-offline] [-confirm -a <account>]

  Refreshes the current price of every held position and lists announced
  dividends awaiting confirmation. With -confirm, pending dividends are
  posted as income into the given account.
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.simulated, "offline", false, "use the offline simulated feed")
	f.BoolVar(&c.confirm, "confirm", false, "confirm pending dividends")
	f.StringVar(&c.account, "a", "", "account receiving confirmed dividends")
}

func (c *updateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := loadApp()
	if err != nil {
		return fail(err)
	}

	var quotes marketdata.Provider
	var actions marketdata.ActionSource
	if c.simulated || a.cfg.Market.APIKey == "" {
		sim := marketdata.NewSimulated()
		quotes, actions = sim, sim
	} else {
		quotes = marketdata.NewCached(
			marketdata.NewFeed(a.cfg.Market.BaseURL, a.cfg.Market.APIKey),
			a.cfg.Market.GetCacheTTL())
	}

	updater := marketdata.NewUpdater(a.ledger, quotes, actions, a.log)
	if err := updater.RefreshPrices(ctx); err != nil {
		fmt.Println("Some prices could not be refreshed:", err)
	}

	// Look a year back for unconfirmed dividends.
	pending, err := updater.PendingDividends(ctx, date.Today().AddMonths(-12))
	if err != nil {
		return fail(err)
	}
	if c.confirm && c.account != "" {
		acc, err := a.account(c.account)
		if err != nil {
			return fail(err)
		}
		for _, p := range pending {
			p.AccountID = acc.ID
			if err := a.ledger.ConfirmDividend(p); err != nil {
				return fail(err)
			}
			fmt.Printf("Dividend %s: %s credited to %s\n", p.Ticker, p.Amount.Format(a.cfg.Currency), acc.Name)
		}
	} else {
		for _, p := range pending {
			fmt.Printf("Pending dividend %s: %s paid %s (confirm with -confirm -a <account>)\n",
				p.Ticker, p.Amount.Format(a.cfg.Currency), p.On)
		}
	}

	for _, alert := range zenith.UpcomingInvoiceAlerts(a.ledger.State(), date.Today(), a.cfg.Alerts.InvoiceWindowDays) {
		fmt.Println(alert.Title)
	}

	if err := a.save(); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}
