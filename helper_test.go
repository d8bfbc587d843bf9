package zenith

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/zenithfin/zenith/date"
)

// newTestLedger creates an empty USD ledger with logging silenced.
func newTestLedger(t *testing.T) *Ledger {
	t.Helper()
	return NewLedger(NewAppState("USD"), zerolog.Nop())
}

// newFundedLedger creates a ledger with one checking account holding the
// given opening balance.
func newFundedLedger(t *testing.T, opening Money) (*Ledger, Account) {
	t.Helper()
	l := newTestLedger(t)
	acc, err := l.AddAccount("Checking", AccountChecking, "USD", opening, date.New(2025, time.January, 1))
	if err != nil {
		t.Fatalf("AddAccount() failed: %v", err)
	}
	return l, acc
}
