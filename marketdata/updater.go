package marketdata

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/zenithfin/zenith"
	"github.com/zenithfin/zenith/date"
)

// Updater refreshes the ledger's market-facing state: current prices on the
// open positions and the corporate actions awaiting user confirmation.
type Updater struct {
	ledger  *zenith.Ledger
	quotes  Provider
	actions ActionSource
	log     zerolog.Logger
	history map[string]*date.History[float64]
}

// NewUpdater wires a quote provider and an action source to a ledger. The
// action source may be nil when the provider has no corporate action data.
func NewUpdater(ledger *zenith.Ledger, quotes Provider, actions ActionSource, log zerolog.Logger) *Updater {
	return &Updater{
		ledger:  ledger,
		quotes:  quotes,
		actions: actions,
		log:     log,
		history: make(map[string]*date.History[float64]),
	}
}

// RefreshPrices fetches a quote for every held ticker and records it on the
// position. A failing ticker does not stop the others; all failures are
// reported together.
func (u *Updater) RefreshPrices(ctx context.Context) error {
	var errs error
	for _, a := range u.ledger.State().Assets {
		q, err := u.quotes.Quote(ctx, a.Ticker)
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("refresh %s: %w", a.Ticker, err))
			continue
		}
		u.ledger.SetAssetPrice(a.Ticker, toCents(q.Price))

		h := u.history[a.Ticker]
		if h == nil {
			h = &date.History[float64]{}
			u.history[a.Ticker] = h
		}
		ev := u.log.Debug().Str("ticker", a.Ticker).Float64("price", q.Price)
		if _, prev, ok := latest(h); ok {
			ev = ev.Float64("previous", prev)
		}
		h.Append(date.FromTime(q.Updated), q.Price)
		ev.Msg("price refreshed")
	}
	return errs
}

// PriceHistory returns the quotes recorded for a ticker since this updater
// was created, or nil when the ticker was never refreshed.
func (u *Updater) PriceHistory(ticker string) *date.History[float64] {
	return u.history[ticker]
}

func latest(h *date.History[float64]) (date.Date, float64, bool) {
	if h.Len() == 0 {
		return date.Date{}, 0, false
	}
	d, v := h.Latest()
	return d, v, true
}

// PendingDividends returns the dividends announced on held positions since
// `from` that the user has not confirmed yet, valued for the held quantity.
func (u *Updater) PendingDividends(ctx context.Context, from date.Date) ([]zenith.DividendConfirmation, error) {
	if u.actions == nil {
		return nil, nil
	}
	var pending []zenith.DividendConfirmation
	for _, asset := range u.ledger.State().Assets {
		actions, err := u.actions.Actions(ctx, asset.Ticker, from)
		if err != nil {
			return nil, fmt.Errorf("actions for %s: %w", asset.Ticker, err)
		}
		for _, a := range actions {
			if a.Type != ActionDividend || u.ledger.State().ActionProcessed(a.ID) {
				continue
			}
			pending = append(pending, zenith.DividendConfirmation{
				ID:     a.ID,
				Amount: toCents(a.AmountPerUnit).MulQty(asset.Quantity),
				Ticker: a.Ticker,
				On:     a.PaymentDate,
			})
		}
	}
	return pending, nil
}

// toCents converts a major-unit price to cents, rounding to the nearest.
func toCents(price float64) zenith.Money {
	return zenith.Cents(decimal.NewFromFloat(price).Shift(2).Round(0).IntPart())
}
