package zenith

import (
	"testing"
	"time"

	"github.com/zenithfin/zenith/date"
)

func TestGoalProgressDispatch(t *testing.T) {
	s := NewAppState("USD")
	s.Accounts = []Account{
		{ID: "acc-1", Name: "Checking", Balance: Cents(50000)},
	}
	s.Assets = []InvestmentAsset{
		{Ticker: "VTI", Type: AssetETF, Quantity: Q(10), CurrentPrice: Cents(10000)},
		{Ticker: "BTC", Type: AssetCrypto, Quantity: Q(2), CurrentPrice: Cents(300000)},
	}

	testCases := []struct {
		name string
		goal FinancialGoal
		want Money
	}{
		{"linked account", FinancialGoal{Type: GoalAccountTarget, LinkedAccountID: "acc-1"}, Cents(50000)},
		{"linked account missing", FinancialGoal{Type: GoalAccountTarget, LinkedAccountID: "gone"}, 0},
		{"custom uses saved amount", FinancialGoal{Type: GoalCustom, SavedAmount: Cents(1234)}, Cents(1234)},
		{"emergency fund uses saved amount", FinancialGoal{Type: GoalEmergencyFund, SavedAmount: Cents(777)}, Cents(777)},
		{"net worth", FinancialGoal{Type: GoalNetWorth}, Cents(50000 + 100000 + 600000)},
		{"investments exclude crypto", FinancialGoal{Type: GoalInvestments}, Cents(100000)},
		{"crypto only", FinancialGoal{Type: GoalCrypto}, Cents(600000)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := GoalProgress(tc.goal, s); got != tc.want {
				t.Errorf("GoalProgress() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestUpdateGoalAmount_neverNegative(t *testing.T) {
	l := newTestLedger(t)
	g := FinancialGoal{ID: "g1", Title: "Vacation", Type: GoalCustom, TargetAmount: Cents(100000)}
	if err := l.SaveGoal(g); err != nil {
		t.Fatalf("SaveGoal() failed: %v", err)
	}
	if err := l.UpdateGoalAmount("g1", Cents(30000)); err != nil {
		t.Fatalf("deposit failed: %v", err)
	}
	// Withdraw more than saved, repeatedly: the total clamps at zero and
	// never goes negative.
	for i := 0; i < 3; i++ {
		if err := l.UpdateGoalAmount("g1", Cents(-50000)); err != nil {
			t.Fatalf("withdrawal %d failed: %v", i, err)
		}
		if got := l.State().Goal("g1").SavedAmount; got.IsNegative() {
			t.Fatalf("savedAmount went negative: %d", got)
		}
	}
	if got := l.State().Goal("g1").SavedAmount; got != 0 {
		t.Errorf("savedAmount = %d, want 0", got)
	}
}

func TestUpdateGoalAmount_derivedRejected(t *testing.T) {
	l := newTestLedger(t)
	if err := l.SaveGoal(FinancialGoal{ID: "g2", Title: "Retire", Type: GoalNetWorth, TargetAmount: Cents(1)}); err != nil {
		t.Fatalf("SaveGoal() failed: %v", err)
	}
	if err := l.UpdateGoalAmount("g2", Cents(100)); err == nil {
		t.Error("manual adjustment of a derived goal should be rejected")
	}
	if err := l.UpdateGoalAmount("missing", Cents(100)); err == nil {
		t.Error("adjusting an unknown goal should fail")
	}
}

func TestUpdateGoalAmount_reachedNotification(t *testing.T) {
	l := newTestLedger(t)
	g := FinancialGoal{ID: "g3", Title: "Laptop", Type: GoalCustom, TargetAmount: Cents(10000), Deadline: date.New(2025, time.December, 31)}
	if err := l.SaveGoal(g); err != nil {
		t.Fatalf("SaveGoal() failed: %v", err)
	}
	if err := l.UpdateGoalAmount("g3", Cents(10000)); err != nil {
		t.Fatalf("deposit failed: %v", err)
	}
	var found bool
	for _, n := range l.State().Notifications {
		if n.Kind == NotifyGoalReached {
			found = true
		}
	}
	if !found {
		t.Error("crossing the target should record a goal-reached notification")
	}

	// Crossing again must not duplicate the notification.
	if err := l.UpdateGoalAmount("g3", Cents(100)); err != nil {
		t.Fatalf("second deposit failed: %v", err)
	}
	var count int
	for _, n := range l.State().Notifications {
		if n.Kind == NotifyGoalReached {
			count++
		}
	}
	if count != 1 {
		t.Errorf("goal-reached notifications = %d, want 1", count)
	}
}

func TestSaveGoalUpsert(t *testing.T) {
	l := newTestLedger(t)
	if err := l.SaveGoal(FinancialGoal{ID: "g4", Title: "Old", Type: GoalCustom}); err != nil {
		t.Fatal(err)
	}
	if err := l.SaveGoal(FinancialGoal{ID: "g4", Title: "New", Type: GoalCustom}); err != nil {
		t.Fatal(err)
	}
	if n := len(l.State().Goals); n != 1 {
		t.Fatalf("goals = %d, want 1", n)
	}
	if got := l.State().Goal("g4").Title; got != "New" {
		t.Errorf("title = %q, want %q", got, "New")
	}

	l.DeleteGoal("g4")
	if len(l.State().Goals) != 0 {
		t.Error("goal should be deleted")
	}
	l.DeleteGoal("g4") // unknown id, no-op
}
