package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/zenithfin/zenith"
	"github.com/zenithfin/zenith/agent"
	"google.golang.org/genai"
)

type assistCmd struct {
	apply bool
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "draft a transaction from a sentence" }
func (*assistCmd) Usage() string {
	return `zen assist [-apply] <sentence>

  Asks the AI assistant to turn a sentence like "paid 42.50 for groceries
  on the Platinum card" into a transaction draft. The draft is printed for
  review; with -apply it is recorded immediately.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.apply, "apply", false, "record the drafted transaction")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Println("expected a sentence to draft from")
		return subcommands.ExitUsageError
	}
	a, err := loadApp()
	if err != nil {
		return fail(err)
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	drafter := agent.NewDrafter(client, a.cfg.Assist.Model)
	draft, err := drafter.Draft(ctx, strings.Join(f.Args(), " "))
	if err != nil {
		return fail(err)
	}

	txs, err := c.build(a, draft)
	if err != nil {
		return fail(err)
	}
	for _, tx := range txs {
		fmt.Printf("Draft: %s %s %s (%s)\n", tx.Type, tx.Date, tx.Amount.Format(a.cfg.Currency), tx.Description)
	}
	if !c.apply {
		fmt.Println("Re-run with -apply to record it.")
		return subcommands.ExitSuccess
	}

	if err := a.ledger.Apply(txs...); err != nil {
		return fail(err)
	}
	if err := a.save(); err != nil {
		return fail(err)
	}
	fmt.Println("Recorded.")
	return subcommands.ExitSuccess
}

// build resolves a draft against the ledger into concrete transactions.
func (c *assistCmd) build(a *app, d *agent.Draft) ([]zenith.Transaction, error) {
	on, err := d.On()
	if err != nil {
		return nil, err
	}
	amount, err := zenith.ParseAmount(d.Amount, a.cfg.Currency)
	if err != nil {
		return nil, err
	}

	switch d.Type {
	case "INCOME":
		acc, err := a.account(d.Account)
		if err != nil {
			return nil, err
		}
		return []zenith.Transaction{zenith.NewIncome(on, acc.ID, d.Description, d.Category, amount)}, nil
	case "EXPENSE":
		if d.Card != "" {
			card, err := a.card(d.Card)
			if err != nil {
				return nil, err
			}
			return []zenith.Transaction{zenith.NewCardExpense(on, card.ID, d.Description, d.Category, amount)}, nil
		}
		acc, err := a.account(d.Account)
		if err != nil {
			return nil, err
		}
		return []zenith.Transaction{zenith.NewExpense(on, acc.ID, d.Description, d.Category, amount)}, nil
	case "INVESTMENT":
		acc, err := a.account(d.Account)
		if err != nil {
			return nil, err
		}
		qty, err := zenith.ParseQuantity(d.Quantity)
		if err != nil {
			return nil, err
		}
		if d.Action == "SELL" {
			return []zenith.Transaction{zenith.NewSell(on, acc.ID, d.Ticker, qty, amount)}, nil
		}
		return []zenith.Transaction{zenith.NewBuy(on, acc.ID, d.Ticker, qty, amount)}, nil
	case "TRANSFER":
		from, err := a.account(d.FromAccount)
		if err != nil {
			return nil, err
		}
		to, err := a.account(d.ToAccount)
		if err != nil {
			return nil, err
		}
		out, in := zenith.NewTransferPair(on, from.ID, to.ID, d.Description, amount)
		return []zenith.Transaction{out, in}, nil
	}
	return nil, fmt.Errorf("unsupported draft type %q", d.Type)
}
