package marketdata

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"time"

	"github.com/zenithfin/zenith/date"
)

// Simulated is an offline Provider and ActionSource. Prices follow a
// deterministic daily walk seeded by the ticker, so runs are reproducible
// without network access. Non-crypto tickers pay a small quarterly dividend.
type Simulated struct {
	// Now is the clock; overridable for tests. Defaults to time.Now.
	Now func() time.Time
}

// NewSimulated creates a deterministic offline provider.
func NewSimulated() *Simulated {
	return &Simulated{Now: time.Now}
}

// Quote implements Provider.
func (s *Simulated) Quote(_ context.Context, ticker string) (Quote, error) {
	now := s.Now()
	return Quote{Ticker: ticker, Price: s.priceOn(ticker, date.FromTime(now)), Updated: now}, nil
}

// priceOn derives the day's simulated price from the ticker hash: a base
// between 10 and 500 drifting a few percent over the year.
func (s *Simulated) priceOn(ticker string, on date.Date) float64 {
	seed := hash(ticker)
	base := 10 + float64(seed%491)
	phase := float64(seed % 360)
	drift := 0.05 * math.Sin(2*math.Pi*(float64(on.YearDay())+phase)/365)
	return math.Round(base*(1+drift)*100) / 100
}

// Actions implements ActionSource: one dividend per elapsed quarter since
// `from`, paid on the first day of the quarter, 0.5% of the base price per
// unit. Crypto tickers pay nothing.
func (s *Simulated) Actions(_ context.Context, ticker string, from date.Date) ([]CorporateAction, error) {
	if isCryptoTicker(ticker) {
		return nil, nil
	}
	today := date.FromTime(s.Now())
	perUnit := math.Round(0.005*(10+float64(hash(ticker)%491))*100) / 100

	var actions []CorporateAction
	for q := quarterStart(from); !q.After(today); q = q.AddMonths(3) {
		if q.Before(from) {
			continue
		}
		actions = append(actions, CorporateAction{
			ID:            fmt.Sprintf("div-%s-%d-q%d", ticker, q.Year(), (int(q.Month())-1)/3+1),
			Ticker:        ticker,
			Type:          ActionDividend,
			AmountPerUnit: perUnit,
			PaymentDate:   q,
		})
	}
	return actions, nil
}

func quarterStart(d date.Date) date.Date {
	m := time.Month((int(d.Month())-1)/3*3 + 1)
	return date.New(d.Year(), m, 1)
}

func isCryptoTicker(ticker string) bool {
	switch ticker {
	case "BTC", "ETH", "SOL", "ADA", "XRP", "DOGE":
		return true
	}
	return false
}

func hash(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}
