package zenith

import "github.com/zenithfin/zenith/date"

// NetWorth is the point-in-time total: every account balance plus every
// position valued at its current price.
func NetWorth(accounts []Account, assets []InvestmentAsset) Money {
	var total Money
	for _, acc := range accounts {
		total = total.Add(acc.Balance)
	}
	for _, a := range assets {
		total = total.Add(a.MarketValue())
	}
	return total
}

// NetWorthHistory reconstructs a net-worth series of exactly `days` values,
// oldest first, ending at today's net worth.
//
// The walk starts from the current state and steps backward one day at a
// time, undoing each day's transactions' cash-flow contribution: income and
// sells had increased net worth going forward, so they are subtracted going
// backward; expenses and buys are added back. This assumes current prices
// held throughout the window; it is a cash-flow reconstruction, not a
// historical mark-to-market.
func NetWorthHistory(s *AppState, days int, today date.Date) []Money {
	if days <= 0 {
		return nil
	}
	values := make([]Money, days)
	running := NetWorth(s.Accounts, s.Assets)
	values[days-1] = running

	for step := 0; step < days-1; step++ {
		day := today.Add(-step)
		for _, tx := range s.Transactions {
			if tx.Date != day {
				continue
			}
			running = running.Sub(forwardDelta(tx))
		}
		values[days-2-step] = running
	}
	return values
}

// forwardDelta is the signed net-worth contribution a transaction made on
// its day: positive for inflows (income, sells), negative for outflows
// (expenses, buys). Every dated transaction participates, card expenses
// included, matching the symmetric treatment the forward apply uses.
func forwardDelta(tx Transaction) Money {
	switch tx.Type {
	case TxIncome:
		return tx.Amount
	case TxExpense:
		return tx.Amount.Neg()
	case TxInvestment:
		if tx.Action == ActionSell {
			return tx.Amount
		}
		return tx.Amount.Neg()
	default:
		return 0
	}
}
