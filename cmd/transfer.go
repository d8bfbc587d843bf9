package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/zenithfin/zenith/date"
)

type transferCmd struct {
	from        string
	to          string
	description string
	date        string
}

func (*transferCmd) Name() string     { return "transfer" }
func (*transferCmd) Synopsis() string { return "move money between two accounts" }
func (*transferCmd) Usage() string {
	return `zen transfer -from <account> -to <account> [-d <description>] [-on <date>] <amount>

  Records a transfer as two linked postings. Deleting either posting later
  removes both.
`
}

func (c *transferCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "source account name")
	f.StringVar(&c.to, "to", "", "destination account name")
	f.StringVar(&c.description, "d", "Transfer", "description")
	f.StringVar(&c.date, "on", date.Today().String(), "transaction date")
}

func (c *transferCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := loadApp()
	if err != nil {
		return fail(err)
	}
	amount, err := a.amountArg(f)
	if err != nil {
		return fail(err)
	}
	from, err := a.account(c.from)
	if err != nil {
		return fail(err)
	}
	to, err := a.account(c.to)
	if err != nil {
		return fail(err)
	}
	on, err := date.Parse(c.date)
	if err != nil {
		return fail(err)
	}

	if _, _, err := a.ledger.Transfer(on, from.ID, to.ID, c.description, amount); err != nil {
		return fail(err)
	}
	if err := a.save(); err != nil {
		return fail(err)
	}
	fmt.Printf("Transferred %s from %s to %s\n", amount.Format(a.cfg.Currency), from.Name, to.Name)
	return subcommands.ExitSuccess
}
