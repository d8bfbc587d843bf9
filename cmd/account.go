package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/zenithfin/zenith"
	"github.com/zenithfin/zenith/date"
)

type addAccountCmd struct {
	name    string
	kind    string
	opening string
	date    string
}

func (*addAccountCmd) Name() string     { return "account" }
func (*addAccountCmd) Synopsis() string { return "create a cash account" }
func (*addAccountCmd) Usage() string {
	return `zen account -name <name> [-type checking|savings|wallet] [-opening <amount>] [-d <date>]

  Creates a cash account. A non-zero opening balance is recorded as an
  income transaction dated on the opening day.
`
}

func (c *addAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "account name")
	f.StringVar(&c.kind, "type", "checking", "account type: checking, savings or wallet")
	f.StringVar(&c.opening, "opening", "0", "opening balance")
	f.StringVar(&c.date, "d", date.Today().String(), "opening date")
}

func (c *addAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := loadApp()
	if err != nil {
		return fail(err)
	}
	on, err := date.Parse(c.date)
	if err != nil {
		return fail(err)
	}
	opening, err := zenith.ParseAmount(c.opening, a.cfg.Currency)
	if err != nil {
		return fail(err)
	}
	kind := zenith.AccountType(c.kind)
	switch kind {
	case zenith.AccountChecking, zenith.AccountSavings, zenith.AccountWallet:
	default:
		return fail(fmt.Errorf("unknown account type %q", c.kind))
	}

	acc, err := a.ledger.AddAccount(c.name, kind, a.cfg.Currency, opening, on)
	if err != nil {
		return fail(err)
	}
	if err := a.save(); err != nil {
		return fail(err)
	}
	fmt.Printf("Created account %q with balance %s\n", acc.Name, acc.Balance.Format(a.cfg.Currency))
	return subcommands.ExitSuccess
}
