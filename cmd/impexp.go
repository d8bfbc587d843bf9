package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/zenithfin/zenith"
	"github.com/zenithfin/zenith/date"
)

type exportCmd struct {
	out string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the full ledger as a backup file" }
func (*exportCmd) Usage() string {
	return `zen export [-o <file>]

  Writes the whole ledger as one JSON document. The default file name is
  dated, e.g. zenith_backup_2025-08-30.json.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.out, "o", "", "output file, defaults to a dated backup name")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := loadApp()
	if err != nil {
		return fail(err)
	}
	out := c.out
	if out == "" {
		out = zenith.BackupFilename(date.Today())
	}
	w, err := os.Create(out)
	if err != nil {
		return fail(err)
	}
	defer w.Close()
	if err := zenith.EncodeState(w, a.ledger.State()); err != nil {
		return fail(err)
	}
	fmt.Printf("Exported ledger to %s\n", out)
	return subcommands.ExitSuccess
}

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace the ledger with a backup file" }
func (*importCmd) Usage() string {
	return `zen import <file>

  Replaces the whole ledger with the given backup. The document must carry
  accounts and transactions arrays; anything else is rejected.
`
}

func (*importCmd) SetFlags(_ *flag.FlagSet) {}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Println("expected exactly one backup file")
		return subcommands.ExitUsageError
	}
	a, err := loadApp()
	if err != nil {
		return fail(err)
	}
	r, err := os.Open(f.Arg(0))
	if err != nil {
		return fail(err)
	}
	defer r.Close()
	state, err := zenith.DecodeState(r)
	if err != nil {
		return fail(err)
	}

	w, err := os.Create(a.cfg.StatePath())
	if err != nil {
		return fail(err)
	}
	defer w.Close()
	if err := zenith.EncodeState(w, state); err != nil {
		return fail(err)
	}
	fmt.Printf("Imported %d transactions across %d accounts\n", len(state.Transactions), len(state.Accounts))
	return subcommands.ExitSuccess
}
