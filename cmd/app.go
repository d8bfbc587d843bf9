// Package cmd implements the CLI application to manage a personal ledger.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
	"github.com/zenithfin/zenith"
	"github.com/zenithfin/zenith/common"
)

// Commands is the list a main package registers on its commander.
var Commands = []subcommands.Command{
	&addAccountCmd{},
	&incomeCmd{},
	&expenseCmd{},
	&transferCmd{},
	&buyCmd{},
	&sellCmd{},
	&deleteCmd{},
	&addCardCmd{},
	&installmentsCmd{},
	&invoiceCmd{},
	&goalCmd{},
	&goalFundCmd{},
	&goalDeleteCmd{},
	&summaryCmd{},
	&historyCmd{},
	&updateCmd{},
	&assistCmd{},
	&exportCmd{},
	&importCmd{},
	&topicCmd{},
}

// As a CLI application the lifecycle is very short lived, so it is ok to use
// global variables.
var configFile = flag.String("config", "zenith.toml", "Path to the configuration file")

// app bundles what every command needs: configuration, logging and the
// loaded ledger.
type app struct {
	cfg    *common.Config
	log    zerolog.Logger
	ledger *zenith.Ledger
}

// loadApp loads the configuration and the persisted ledger. A missing state
// file yields a fresh empty ledger.
func loadApp() (*app, error) {
	cfg, err := common.LoadConfig(*configFile)
	if err != nil {
		return nil, err
	}
	log := common.NewLogger(cfg.Logging.Level)

	f, err := os.Open(cfg.StatePath())
	if errors.Is(err, fs.ErrNotExist) {
		log.Debug().Str("path", cfg.StatePath()).Msg("no ledger yet, starting empty")
		return &app{cfg: cfg, log: log, ledger: zenith.NewLedger(zenith.NewAppState(cfg.Currency), log)}, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	state, err := zenith.DecodeState(f)
	if err != nil {
		return nil, fmt.Errorf("could not load ledger %s: %w", cfg.StatePath(), err)
	}
	return &app{cfg: cfg, log: log, ledger: zenith.NewLedger(state, log)}, nil
}

// save writes the ledger back to its state file.
func (a *app) save() error {
	f, err := os.Create(a.cfg.StatePath())
	if err != nil {
		return err
	}
	defer f.Close()
	return zenith.EncodeState(f, a.ledger.State())
}

// account resolves an account by name or id.
func (a *app) account(nameOrID string) (zenith.Account, error) {
	for _, acc := range a.ledger.State().Accounts {
		if acc.Name == nameOrID || acc.ID == nameOrID {
			return acc, nil
		}
	}
	return zenith.Account{}, fmt.Errorf("no account named %q", nameOrID)
}

// card resolves a card by name or id.
func (a *app) card(nameOrID string) (zenith.CreditCard, error) {
	for _, c := range a.ledger.State().CreditCards {
		if c.Name == nameOrID || c.ID == nameOrID {
			return c, nil
		}
	}
	return zenith.CreditCard{}, fmt.Errorf("no card named %q", nameOrID)
}

// amountArg parses the single positional amount argument.
func (a *app) amountArg(f *flag.FlagSet) (zenith.Money, error) {
	if f.NArg() != 1 {
		return 0, fmt.Errorf("expected exactly one amount argument, got %d", f.NArg())
	}
	return zenith.ParseAmount(f.Arg(0), a.cfg.Currency)
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the renderer cannot run.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(strings.TrimLeft(out, "\n"))
}

// fail prints the error and maps it to an exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}
