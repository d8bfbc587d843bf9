package zenith

import (
	"reflect"
	"testing"
	"time"

	"github.com/zenithfin/zenith/date"
)

// foldBalance recomputes an account balance straight from the log, the
// invariant every mutation must uphold.
func foldBalance(s *AppState, accountID string) Money {
	var balance Money
	for _, tx := range s.Transactions {
		if tx.AccountID == accountID {
			balance = balance.Add(tx.CashEffect())
		}
	}
	return balance
}

func TestBalanceInvariant(t *testing.T) {
	l, acc := newFundedLedger(t, Cents(100000))
	on := date.New(2025, time.March, 1)

	steps := []func() error{
		func() error { return l.Apply(NewIncome(on, acc.ID, "salary", "salary", Cents(500000))) },
		func() error { return l.Apply(NewExpense(on.Add(1), acc.ID, "rent", "housing", Cents(150000))) },
		func() error { return l.Apply(NewBuy(on.Add(2), acc.ID, "VTI", Q(3), Cents(30000))) },
		func() error { return l.Apply(NewSell(on.Add(3), acc.ID, "VTI", Q(1), Cents(11000))) },
		func() error {
			tx := l.State().Transactions[0]
			return l.Delete(tx.ID)
		},
	}
	for i, step := range steps {
		if err := step(); err != nil {
			t.Fatalf("step %d failed: %v", i, err)
		}
		got := l.State().Account(acc.ID).Balance
		want := foldBalance(l.State(), acc.ID)
		if got != want {
			t.Fatalf("after step %d: balance = %d, fold = %d", i, got, want)
		}
	}
}

func TestApplyRejectsBatchBeforeMutation(t *testing.T) {
	l, acc := newFundedLedger(t, Cents(100000))
	on := date.New(2025, time.March, 1)
	before := len(l.State().Transactions)

	good := NewIncome(on, acc.ID, "ok", "misc", Cents(1000))
	bad := NewExpense(on, "no-such-account", "broken", "misc", Cents(1000))

	if err := l.Apply(good, bad); err == nil {
		t.Fatal("Apply() should reject a batch containing an unknown account")
	}
	if len(l.State().Transactions) != before {
		t.Error("a rejected batch must not be partially applied")
	}
	if got := l.State().Account(acc.ID).Balance; got != Cents(100000) {
		t.Errorf("balance = %d, want untouched 100000", got)
	}
}

func TestRoundTripDelete(t *testing.T) {
	l, acc := newFundedLedger(t, Cents(100000))
	on := date.New(2025, time.March, 1)
	if err := l.Apply(NewBuy(on, acc.ID, "VTI", Q(10), Cents(10000))); err != nil {
		t.Fatalf("setup buy failed: %v", err)
	}

	beforeAccounts := append([]Account(nil), l.State().Accounts...)
	beforeAssets := append([]InvestmentAsset(nil), l.State().Assets...)

	tx := NewSell(on.Add(1), acc.ID, "VTI", Q(4), Cents(5000))
	if err := l.Apply(tx); err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if err := l.Delete(tx.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if !reflect.DeepEqual(l.State().Accounts, beforeAccounts) {
		t.Errorf("accounts after round trip = %+v, want %+v", l.State().Accounts, beforeAccounts)
	}
	if !reflect.DeepEqual(l.State().Assets, beforeAssets) {
		t.Errorf("assets after round trip = %+v, want %+v", l.State().Assets, beforeAssets)
	}
}

func TestRoundTripDelete_closedPositionLosesAverage(t *testing.T) {
	l, acc := newFundedLedger(t, Cents(100000))
	on := date.New(2025, time.March, 1)
	if err := l.Apply(NewBuy(on, acc.ID, "VTI", Q(10), Cents(10000))); err != nil {
		t.Fatalf("setup buy failed: %v", err)
	}

	// Selling everything closes the position; deleting the sell restores
	// the quantity but the original 10.00 average is gone. The sell's own
	// per-unit price is the best available approximation.
	sell := NewSell(on.Add(1), acc.ID, "VTI", Q(10), Cents(20000))
	if err := l.Apply(sell); err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if err := l.Delete(sell.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	pos := l.State().Asset("VTI")
	if pos == nil {
		t.Fatal("position VTI should be restored")
	}
	if !pos.Quantity.Equal(Q(10)) {
		t.Errorf("quantity = %s, want 10", pos.Quantity)
	}
	if pos.AveragePrice != Cents(2000) {
		t.Errorf("averagePrice = %d, want the sell price 2000 (known lossy reversal)", pos.AveragePrice)
	}
}

func TestTransferDeletesBothLegs(t *testing.T) {
	l, from := newFundedLedger(t, Cents(100000))
	to, err := l.AddAccount("Savings", AccountSavings, "USD", 0, date.New(2025, time.January, 1))
	if err != nil {
		t.Fatalf("AddAccount() failed: %v", err)
	}
	on := date.New(2025, time.March, 1)

	out, in, err := l.Transfer(on, from.ID, to.ID, "monthly savings", Cents(30000))
	if err != nil {
		t.Fatalf("Transfer() failed: %v", err)
	}
	if out.TransferID == "" || out.TransferID != in.TransferID {
		t.Fatalf("legs must share a transfer id, got %q and %q", out.TransferID, in.TransferID)
	}
	if got := l.State().Account(from.ID).Balance; got != Cents(70000) {
		t.Errorf("source balance = %d, want 70000", got)
	}
	if got := l.State().Account(to.ID).Balance; got != Cents(30000) {
		t.Errorf("destination balance = %d, want 30000", got)
	}

	// Deleting either leg removes both.
	if err := l.Delete(in.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if l.State().Transaction(out.ID) != nil || l.State().Transaction(in.ID) != nil {
		t.Error("both transfer legs should be deleted together")
	}
	if got := l.State().Account(from.ID).Balance; got != Cents(100000) {
		t.Errorf("source balance after delete = %d, want 100000", got)
	}
	if got := l.State().Account(to.ID).Balance; got != 0 {
		t.Errorf("destination balance after delete = %d, want 0", got)
	}
}

func TestTransferRejectsSameAccount(t *testing.T) {
	l, acc := newFundedLedger(t, Cents(100000))
	if _, _, err := l.Transfer(date.New(2025, time.March, 1), acc.ID, acc.ID, "oops", Cents(1000)); err == nil {
		t.Error("Transfer() to the same account should be rejected")
	}
}

func TestDeleteUnknownIsNoOp(t *testing.T) {
	l, acc := newFundedLedger(t, Cents(100000))
	if err := l.Delete("no-such-id"); err != nil {
		t.Fatalf("Delete() of unknown id should be a no-op, got %v", err)
	}
	if got := l.State().Account(acc.ID).Balance; got != Cents(100000) {
		t.Errorf("balance = %d, want 100000", got)
	}
}

func TestTransactionsPrependNewestFirst(t *testing.T) {
	l, acc := newFundedLedger(t, Cents(100000))
	on := date.New(2025, time.March, 1)
	a := NewExpense(on, acc.ID, "first", "misc", Cents(100))
	b := NewExpense(on.Add(1), acc.ID, "second", "misc", Cents(200))
	if err := l.Apply(a); err != nil {
		t.Fatal(err)
	}
	if err := l.Apply(b); err != nil {
		t.Fatal(err)
	}
	if l.State().Transactions[0].ID != b.ID {
		t.Error("the most recent batch should sit at the head of the log")
	}
}

func TestConfirmDividend(t *testing.T) {
	l, acc := newFundedLedger(t, Cents(100000))
	c := DividendConfirmation{
		ID:        "div-2025-06-VTI",
		AccountID: acc.ID,
		Amount:    Cents(4200),
		Ticker:    "VTI",
		On:        date.New(2025, time.June, 15),
	}
	if err := l.ConfirmDividend(c); err != nil {
		t.Fatalf("ConfirmDividend() failed: %v", err)
	}
	if got := l.State().Account(acc.ID).Balance; got != Cents(104200) {
		t.Errorf("balance = %d, want 104200", got)
	}
	if !l.State().ActionProcessed(c.ID) {
		t.Error("corporate action id should be marked processed")
	}

	// Confirming the same action twice must not double-post.
	if err := l.ConfirmDividend(c); err != nil {
		t.Fatalf("second ConfirmDividend() failed: %v", err)
	}
	if got := l.State().Account(acc.ID).Balance; got != Cents(104200) {
		t.Errorf("balance after duplicate = %d, want 104200", got)
	}
}

func TestResetReinvestmentCounter(t *testing.T) {
	l := newTestLedger(t)
	now := time.Date(2025, time.July, 1, 12, 0, 0, 0, time.UTC)
	l.ResetReinvestmentCounter(now)
	if !l.State().LastReinvestmentResetDate.Equal(now) {
		t.Errorf("LastReinvestmentResetDate = %v, want %v", l.State().LastReinvestmentResetDate, now)
	}
}
