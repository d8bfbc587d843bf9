package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/zenithfin/zenith"
	"github.com/zenithfin/zenith/date"
)

type expenseCmd struct {
	account     string
	card        string
	description string
	category    string
	date        string
}

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "record money spent from an account or on a card" }
func (*expenseCmd) Usage() string {
	return `zen expense (-a <account> | -card <card>) -d <description> [-c <category>] [-on <date>] <amount>

  Records an expense. With -card the expense lands on the card's next
  invoice and counts against its limit until cleared.
`
}

func (c *expenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "source account name")
	f.StringVar(&c.card, "card", "", "card name, for card purchases")
	f.StringVar(&c.description, "d", "", "description")
	f.StringVar(&c.category, "c", "other", "category")
	f.StringVar(&c.date, "on", date.Today().String(), "transaction date")
}

func (c *expenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if (c.account == "") == (c.card == "") {
		fmt.Println("either -a or -card must be provided")
		return subcommands.ExitUsageError
	}
	a, err := loadApp()
	if err != nil {
		return fail(err)
	}
	amount, err := a.amountArg(f)
	if err != nil {
		return fail(err)
	}
	on, err := date.Parse(c.date)
	if err != nil {
		return fail(err)
	}

	var tx zenith.Transaction
	if c.card != "" {
		card, err := a.card(c.card)
		if err != nil {
			return fail(err)
		}
		tx = zenith.NewCardExpense(on, card.ID, c.description, c.category, amount)
	} else {
		acc, err := a.account(c.account)
		if err != nil {
			return fail(err)
		}
		tx = zenith.NewExpense(on, acc.ID, c.description, c.category, amount)
	}

	if err := a.ledger.Apply(tx); err != nil {
		return fail(err)
	}
	if err := a.save(); err != nil {
		return fail(err)
	}
	fmt.Printf("Recorded expense of %s\n", amount.Format(a.cfg.Currency))
	return subcommands.ExitSuccess
}
