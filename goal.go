package zenith

import "github.com/zenithfin/zenith/date"

// GoalType selects how a goal's progress is computed.
type GoalType string

// The closed set of goal types.
const (
	GoalNetWorth      GoalType = "NET_WORTH"      // whole-portfolio net worth
	GoalInvestments   GoalType = "INVESTMENTS"    // market value of non-crypto positions
	GoalCrypto        GoalType = "CRYPTO"         // market value of crypto positions
	GoalEmergencyFund GoalType = "EMERGENCY_FUND" // manually tracked
	GoalCustom        GoalType = "CUSTOM"         // manually tracked
	GoalAccountTarget GoalType = "ACCOUNT_TARGET" // tracks one account's balance
)

// FinancialGoal is a savings target. Progress is either derived from ledger
// state or, for manually-tracked types, accumulated in SavedAmount through
// explicit deposit/withdraw operations.
type FinancialGoal struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	TargetAmount    Money     `json:"targetAmount"`
	Deadline        date.Date `json:"deadline"`
	Type            GoalType  `json:"type"`
	LinkedAccountID string    `json:"linkedAccountId,omitempty"`
	SavedAmount     Money     `json:"savedAmount"` // manual types only, never negative
}

// ManuallyTracked reports whether progress comes from SavedAmount rather
// than being derived. Derived goals have their deposit/withdraw operations
// disabled.
func (g FinancialGoal) ManuallyTracked() bool {
	if g.LinkedAccountID != "" || g.Type == GoalAccountTarget {
		return false
	}
	return g.Type == GoalCustom || g.Type == GoalEmergencyFund
}

// GoalProgress computes the goal's current progress in cents, dispatching
// on the goal type.
func GoalProgress(g FinancialGoal, s *AppState) Money {
	if g.LinkedAccountID != "" || g.Type == GoalAccountTarget {
		for _, acc := range s.Accounts {
			if acc.ID == g.LinkedAccountID {
				return acc.Balance
			}
		}
		return 0
	}
	switch g.Type {
	case GoalCustom, GoalEmergencyFund:
		return g.SavedAmount
	case GoalNetWorth:
		return NetWorth(s.Accounts, s.Assets)
	case GoalInvestments:
		var total Money
		for _, a := range s.Assets {
			if a.Type != AssetCrypto {
				total = total.Add(a.MarketValue())
			}
		}
		return total
	case GoalCrypto:
		var total Money
		for _, a := range s.Assets {
			if a.Type == AssetCrypto {
				total = total.Add(a.MarketValue())
			}
		}
		return total
	default:
		return 0
	}
}

// adjustSaved applies a signed manual deposit or withdrawal, clamped so the
// running total never goes negative.
func (g *FinancialGoal) adjustSaved(delta Money) {
	next := g.SavedAmount.Add(delta)
	if next.IsNegative() {
		next = 0
	}
	g.SavedAmount = next
}
