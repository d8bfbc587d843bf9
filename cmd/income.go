package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/zenithfin/zenith"
	"github.com/zenithfin/zenith/date"
)

type incomeCmd struct {
	account     string
	description string
	category    string
	date        string
}

func (*incomeCmd) Name() string     { return "income" }
func (*incomeCmd) Synopsis() string { return "record money received into an account" }
func (*incomeCmd) Usage() string {
	return `zen income -a <account> -d <description> [-c <category>] [-on <date>] <amount>

  Records an income transaction.
`
}

func (c *incomeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "destination account name")
	f.StringVar(&c.description, "d", "", "description")
	f.StringVar(&c.category, "c", "other", "category")
	f.StringVar(&c.date, "on", date.Today().String(), "transaction date")
}

func (c *incomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := loadApp()
	if err != nil {
		return fail(err)
	}
	amount, err := a.amountArg(f)
	if err != nil {
		return fail(err)
	}
	acc, err := a.account(c.account)
	if err != nil {
		return fail(err)
	}
	on, err := date.Parse(c.date)
	if err != nil {
		return fail(err)
	}

	if err := a.ledger.Apply(zenith.NewIncome(on, acc.ID, c.description, c.category, amount)); err != nil {
		return fail(err)
	}
	if err := a.save(); err != nil {
		return fail(err)
	}
	fmt.Printf("Recorded income of %s on %s\n", amount.Format(a.cfg.Currency), acc.Name)
	return subcommands.ExitSuccess
}
