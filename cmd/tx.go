package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/zenithfin/zenith"
	"github.com/zenithfin/zenith/date"
)

type buyCmd struct {
	account  string
	ticker   string
	quantity string
	date     string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "buy units of an asset" }
func (*buyCmd) Usage() string {
	return `zen buy -a <account> -t <ticker> -q <quantity> [-on <date>] <amount>

  Records a purchase. The amount is the total cash spent; the per-unit
  price is derived. A first buy opens the position.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "settlement account name")
	f.StringVar(&c.ticker, "t", "", "asset ticker")
	f.StringVar(&c.quantity, "q", "", "units bought, decimals allowed")
	f.StringVar(&c.date, "on", date.Today().String(), "transaction date")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return investment(c.account, c.ticker, c.quantity, c.date, f, zenith.NewBuy)
}

type sellCmd struct {
	account  string
	ticker   string
	quantity string
	date     string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "sell units of an asset" }
func (*sellCmd) Usage() string {
	return `zen sell -a <account> -t <ticker> -q <quantity> [-on <date>] <amount>

  Records a sale. The amount is the total cash received. Selling more
  than held floors the position at zero.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "settlement account name")
	f.StringVar(&c.ticker, "t", "", "asset ticker")
	f.StringVar(&c.quantity, "q", "", "units sold, decimals allowed")
	f.StringVar(&c.date, "on", date.Today().String(), "transaction date")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return investment(c.account, c.ticker, c.quantity, c.date, f, zenith.NewSell)
}

// investment is the shared execution path of buy and sell.
func investment(account, ticker, quantity, day string, f *flag.FlagSet,
	build func(date.Date, string, string, zenith.Quantity, zenith.Money) zenith.Transaction) subcommands.ExitStatus {
	a, err := loadApp()
	if err != nil {
		return fail(err)
	}
	amount, err := a.amountArg(f)
	if err != nil {
		return fail(err)
	}
	acc, err := a.account(account)
	if err != nil {
		return fail(err)
	}
	qty, err := zenith.ParseQuantity(quantity)
	if err != nil {
		return fail(fmt.Errorf("invalid quantity %q: %w", quantity, err))
	}
	on, err := date.Parse(day)
	if err != nil {
		return fail(err)
	}

	tx := build(on, acc.ID, ticker, qty, amount)
	if err := a.ledger.Apply(tx); err != nil {
		return fail(err)
	}
	if err := a.save(); err != nil {
		return fail(err)
	}
	fmt.Printf("%s (%s each)\n", tx.Description, tx.Price.Format(a.cfg.Currency))
	return subcommands.ExitSuccess
}

type deleteCmd struct{}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a transaction and reverse its effect" }
func (*deleteCmd) Usage() string {
	return `zen delete <transaction-id>

  Removes a transaction and reverses its effect on balances and positions.
  Both legs of a transfer are removed together.
`
}

func (*deleteCmd) SetFlags(_ *flag.FlagSet) {}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Println("expected exactly one transaction id")
		return subcommands.ExitUsageError
	}
	a, err := loadApp()
	if err != nil {
		return fail(err)
	}
	if err := a.ledger.Delete(f.Arg(0)); err != nil {
		return fail(err)
	}
	if err := a.save(); err != nil {
		return fail(err)
	}
	fmt.Println("Deleted.")
	return subcommands.ExitSuccess
}
