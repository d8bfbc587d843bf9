package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/zenithfin/zenith"
	"github.com/zenithfin/zenith/date"
)

type goalCmd struct {
	title    string
	kind     string
	target   string
	deadline string
	account  string
}

func (*goalCmd) Name() string     { return "goal" }
func (*goalCmd) Synopsis() string { return "create or update a savings goal" }
func (*goalCmd) Usage() string {
	return `zen goal -title <title> -type <type> -target <amount> [-deadline <date>] [-a <account>]

  Creates or replaces a goal. Types: NET_WORTH, INVESTMENTS, CRYPTO,
  ACCOUNT_TARGET, EMERGENCY_FUND, CUSTOM. ACCOUNT_TARGET requires -a.
`
}

func (c *goalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.title, "title", "", "goal title")
	f.StringVar(&c.kind, "type", "CUSTOM", "goal type")
	f.StringVar(&c.target, "target", "0", "target amount")
	f.StringVar(&c.deadline, "deadline", "", "deadline date")
	f.StringVar(&c.account, "a", "", "linked account, for ACCOUNT_TARGET goals")
}

func (c *goalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := loadApp()
	if err != nil {
		return fail(err)
	}
	target, err := zenith.ParseAmount(c.target, a.cfg.Currency)
	if err != nil {
		return fail(err)
	}
	g := zenith.FinancialGoal{
		Title:        c.title,
		Type:         zenith.GoalType(c.kind),
		TargetAmount: target,
	}
	if c.deadline != "" {
		if g.Deadline, err = date.Parse(c.deadline); err != nil {
			return fail(err)
		}
	}
	if c.account != "" {
		acc, err := a.account(c.account)
		if err != nil {
			return fail(err)
		}
		g.LinkedAccountID = acc.ID
	}
	// Replace an existing goal with the same title.
	for _, existing := range a.ledger.State().Goals {
		if existing.Title == g.Title {
			g.ID = existing.ID
			g.SavedAmount = existing.SavedAmount
		}
	}

	if err := a.ledger.SaveGoal(g); err != nil {
		return fail(err)
	}
	if err := a.save(); err != nil {
		return fail(err)
	}
	fmt.Printf("Saved goal %q targeting %s\n", g.Title, g.TargetAmount.Format(a.cfg.Currency))
	return subcommands.ExitSuccess
}

type goalFundCmd struct {
	title string
}

func (*goalFundCmd) Name() string     { return "goal-fund" }
func (*goalFundCmd) Synopsis() string { return "deposit into or withdraw from a manual goal" }
func (*goalFundCmd) Usage() string {
	return `zen goal-fund -title <title> <amount>

  Applies a manual deposit (positive amount) or withdrawal (negative) to a
  manually-tracked goal. The saved total never goes below zero.
`
}

func (c *goalFundCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.title, "title", "", "goal title")
}

func (c *goalFundCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := loadApp()
	if err != nil {
		return fail(err)
	}
	delta, err := a.amountArg(f)
	if err != nil {
		return fail(err)
	}
	var goal *zenith.FinancialGoal
	for i := range a.ledger.State().Goals {
		if a.ledger.State().Goals[i].Title == c.title {
			goal = &a.ledger.State().Goals[i]
		}
	}
	if goal == nil {
		return fail(fmt.Errorf("no goal titled %q", c.title))
	}

	if err := a.ledger.UpdateGoalAmount(goal.ID, delta); err != nil {
		return fail(err)
	}
	if err := a.save(); err != nil {
		return fail(err)
	}
	fmt.Printf("Goal %q now at %s\n", goal.Title, goal.SavedAmount.Format(a.cfg.Currency))
	return subcommands.ExitSuccess
}

type goalDeleteCmd struct{}

func (*goalDeleteCmd) Name() string     { return "goal-delete" }
func (*goalDeleteCmd) Synopsis() string { return "delete a goal" }
func (*goalDeleteCmd) Usage() string {
	return `zen goal-delete <title>

  Removes a goal. Ledger history is untouched.
`
}

func (*goalDeleteCmd) SetFlags(_ *flag.FlagSet) {}

func (c *goalDeleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Println("expected exactly one goal title")
		return subcommands.ExitUsageError
	}
	a, err := loadApp()
	if err != nil {
		return fail(err)
	}
	for _, g := range a.ledger.State().Goals {
		if g.Title == f.Arg(0) {
			a.ledger.DeleteGoal(g.ID)
			if err := a.save(); err != nil {
				return fail(err)
			}
			fmt.Println("Deleted.")
			return subcommands.ExitSuccess
		}
	}
	return fail(fmt.Errorf("no goal titled %q", f.Arg(0)))
}
