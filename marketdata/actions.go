package marketdata

import "github.com/zenithfin/zenith/date"

// ActionType identifies the kind of a corporate action.
type ActionType string

const (
	ActionDividend ActionType = "DIVIDEND"
)

// CorporateAction is one announced event on a held ticker. The ID is stable
// across fetches so the ledger can deduplicate confirmations.
type CorporateAction struct {
	ID            string
	Ticker        string
	Type          ActionType
	AmountPerUnit float64 // major units per held unit
	PaymentDate   date.Date
}
