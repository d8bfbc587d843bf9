package zenith

import (
	"github.com/rs/zerolog"
)

// AssetType classifies a holding; CRYPTO drives its own goal bucket.
type AssetType string

const (
	AssetStock  AssetType = "stock"
	AssetETF    AssetType = "etf"
	AssetFund   AssetType = "fund"
	AssetCrypto AssetType = "crypto"
)

// InvestmentAsset is an open position: a ticker's running quantity with its
// weighted-average cost basis. A position is created on the first buy of a
// ticker and removed entirely once the quantity reaches zero, so a later
// re-entry restarts cost-basis tracking from scratch instead of carrying a
// stale average across a fully-closed position.
type InvestmentAsset struct {
	ID           string    `json:"id"`
	Ticker       string    `json:"ticker"`
	Quantity     Quantity  `json:"quantity"`
	AveragePrice Money     `json:"averagePrice"` // cents per unit, updated only on buys
	CurrentPrice Money     `json:"currentPrice"` // cents per unit, refreshed by the market feed
	Type         AssetType `json:"type"`
}

// MarketValue is the position's value at the current price.
func (a InvestmentAsset) MarketValue() Money { return a.CurrentPrice.MulQty(a.Quantity) }

// CostBasis is the position's value at the average purchase price.
func (a InvestmentAsset) CostBasis() Money { return a.AveragePrice.MulQty(a.Quantity) }

// UnrealizedGain is the paper profit or loss on the position.
func (a InvestmentAsset) UnrealizedGain() Money { return a.MarketValue().Sub(a.CostBasis()) }

// applyInvestment folds one INVESTMENT transaction into the position list
// and returns the updated list.
//
//   - first BUY of a ticker creates the position at the purchase price.
//   - BUY on an open position re-weights the average cost:
//     newAvg = round((oldQty×oldAvg + amount) / newQty).
//   - SELL reduces the quantity, clamped at zero when selling more than
//     held; the average price is never touched on a sell, so realized
//     gains are not tracked separately.
//   - a position whose quantity reaches zero is removed.
//   - SELL with no open position records the transaction but changes no
//     position.
func applyInvestment(assets []InvestmentAsset, tx Transaction, newAsset func(Transaction) InvestmentAsset, log zerolog.Logger) []InvestmentAsset {
	idx := -1
	for i := range assets {
		if assets[i].Ticker == tx.Ticker {
			idx = i
			break
		}
	}

	if idx < 0 {
		if tx.Action == ActionSell {
			// Nothing held: the cash leg still applies, the position does not.
			log.Warn().Str("ticker", tx.Ticker).Msg("sell of an asset not held, position unchanged")
			return assets
		}
		return append(assets, newAsset(tx))
	}

	pos := assets[idx]
	switch tx.Action {
	case ActionBuy:
		newQty := pos.Quantity.Add(tx.Quantity)
		totalCost := pos.AveragePrice.MulQty(pos.Quantity).Add(tx.Amount)
		pos.AveragePrice = totalCost.DivQty(newQty)
		pos.Quantity = newQty
	case ActionSell:
		newQty := pos.Quantity.Sub(tx.Quantity)
		if newQty.IsNegative() {
			log.Warn().Str("ticker", tx.Ticker).
				Stringer("held", pos.Quantity).Stringer("sold", tx.Quantity).
				Msg("sell exceeds held quantity, clamping position at zero")
			newQty = Q(0)
		}
		pos.Quantity = newQty
	}

	if pos.Quantity.IsZero() {
		// Closing the position drops its cost basis on purpose.
		return append(assets[:idx], assets[idx+1:]...)
	}
	assets[idx] = pos
	return assets
}

// reverseInvestment undoes one INVESTMENT transaction's effect on the
// position list. The reversal is exact for quantities and deliberately
// lossy for prices: undoing a buy does not roll the average price back,
// and undoing the sell that closed a position cannot resurrect the
// original cost basis.
func reverseInvestment(assets []InvestmentAsset, tx Transaction, newAsset func(Transaction) InvestmentAsset, log zerolog.Logger) []InvestmentAsset {
	idx := -1
	for i := range assets {
		if assets[i].Ticker == tx.Ticker {
			idx = i
			break
		}
	}

	switch tx.Action {
	case ActionBuy:
		if idx < 0 {
			// The position this buy fed was closed since; nothing to undo.
			log.Warn().Str("ticker", tx.Ticker).Msg("reversing a buy of a closed position, no position to adjust")
			return assets
		}
		pos := assets[idx]
		newQty := pos.Quantity.Sub(tx.Quantity)
		if newQty.IsNegative() {
			newQty = Q(0)
		}
		pos.Quantity = newQty
		if pos.Quantity.IsZero() {
			return append(assets[:idx], assets[idx+1:]...)
		}
		assets[idx] = pos
		return assets
	case ActionSell:
		if idx < 0 {
			// The sell had closed the position: restore the quantity, but the
			// original average price is gone. The transaction's own per-unit
			// price is the best approximation available.
			log.Warn().Str("ticker", tx.Ticker).Msg("reversing a sell that closed a position, original average price is lost")
			restored := newAsset(tx)
			return append(assets, restored)
		}
		pos := assets[idx]
		pos.Quantity = pos.Quantity.Add(tx.Quantity)
		assets[idx] = pos
		return assets
	}
	return assets
}
