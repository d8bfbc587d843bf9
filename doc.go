// Package zenith implements a personal finance ledger: cash accounts,
// credit cards, an append-only transaction log, investment holdings and
// savings goals, with every derived value (balances, invoice totals, net
// worth history, goal progress) recomputed from the log.
//
// The Ledger service object owns the whole application state and is the
// only writer; collaborators such as the market data feed or the AI
// drafting assistant produce inputs that are handed to it, never mutate
// state themselves.
package zenith
