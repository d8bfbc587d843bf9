// Package marketdata fetches quotes and corporate actions for the positions
// held in a ledger. Providers return prices in major currency units; the
// updater converts them to cents before they touch the ledger.
package marketdata

import (
	"context"
	"time"

	"github.com/zenithfin/zenith/date"
)

// Quote is the latest known price for one ticker.
type Quote struct {
	Ticker  string
	Price   float64 // major units
	Updated time.Time
}

// Provider serves the latest quote for a ticker.
type Provider interface {
	Quote(ctx context.Context, ticker string) (Quote, error)
}

// ActionSource serves the corporate actions announced for a ticker since a
// given date.
type ActionSource interface {
	Actions(ctx context.Context, ticker string, from date.Date) ([]CorporateAction, error)
}
