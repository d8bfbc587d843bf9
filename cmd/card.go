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

type addCardCmd struct {
	name    string
	brand   string
	limit   string
	closing int
	due     int
}

func (*addCardCmd) Name() string     { return "card" }
func (*addCardCmd) Synopsis() string { return "register a credit card" }
func (*addCardCmd) Usage() string {
	return `zen card -name <name> -limit <amount> -closing <day> -due <day> [-brand <brand>]

  Registers a credit card with its billing cycle.
`
}

func (c *addCardCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "card name")
	f.StringVar(&c.brand, "brand", "", "card brand")
	f.StringVar(&c.limit, "limit", "0", "credit limit")
	f.IntVar(&c.closing, "closing", 1, "closing day of the billing cycle, 1-31")
	f.IntVar(&c.due, "due", 10, "invoice due day, 1-31")
}

func (c *addCardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := loadApp()
	if err != nil {
		return fail(err)
	}
	limit, err := zenith.ParseAmount(c.limit, a.cfg.Currency)
	if err != nil {
		return fail(err)
	}
	card, err := a.ledger.AddCard(c.name, c.brand, limit, c.closing, c.due)
	if err != nil {
		return fail(err)
	}
	if err := a.save(); err != nil {
		return fail(err)
	}
	fmt.Printf("Created card %q with limit %s\n", card.Name, card.Limit.Format(a.cfg.Currency))
	return subcommands.ExitSuccess
}

type installmentsCmd struct {
	card        string
	n           int
	description string
	category    string
	date        string
}

func (*installmentsCmd) Name() string     { return "buy-installments" }
func (*installmentsCmd) Synopsis() string { return "split a card purchase into monthly installments" }
func (*installmentsCmd) Usage() string {
	return `zen buy-installments -card <card> -n <count> -d <description> [-c <category>] [-on <date>] <total>

  Splits a purchase into equal monthly installments, each one an
  independent expense due on its own invoice.
`
}

func (c *installmentsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.card, "card", "", "card name")
	f.IntVar(&c.n, "n", 1, "number of installments")
	f.StringVar(&c.description, "d", "", "description")
	f.StringVar(&c.category, "c", "other", "category")
	f.StringVar(&c.date, "on", date.Today().String(), "purchase date")
}

func (c *installmentsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := loadApp()
	if err != nil {
		return fail(err)
	}
	total, err := a.amountArg(f)
	if err != nil {
		return fail(err)
	}
	card, err := a.card(c.card)
	if err != nil {
		return fail(err)
	}
	on, err := date.Parse(c.date)
	if err != nil {
		return fail(err)
	}

	plan, err := a.ledger.PurchaseInInstallments(card.ID, total, c.n, c.description, c.category, on)
	if err != nil {
		return fail(err)
	}
	if err := a.save(); err != nil {
		return fail(err)
	}
	fmt.Printf("Recorded %d installments of %s, first due %s\n",
		len(plan), plan[0].Amount.Format(a.cfg.Currency), plan[0].Date)
	return subcommands.ExitSuccess
}

type invoiceCmd struct {
	card  string
	month int
}

func (*invoiceCmd) Name() string     { return "invoice" }
func (*invoiceCmd) Synopsis() string { return "display a card invoice" }
func (*invoiceCmd) Usage() string {
	return `zen invoice -card <card> [-month <offset>]

  Displays one card's invoice. -month shifts the billing month: 0 is the
  current one, -1 the previous, 1 the next.
`
}

func (c *invoiceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.card, "card", "", "card name")
	f.IntVar(&c.month, "month", 0, "billing month offset")
}

func (c *invoiceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := loadApp()
	if err != nil {
		return fail(err)
	}
	card, err := a.card(c.card)
	if err != nil {
		return fail(err)
	}
	report, err := zenith.NewInvoiceReport(a.ledger.State(), card.ID, c.month, date.Today())
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.InvoiceMarkdown(report))
	return subcommands.ExitSuccess
}
