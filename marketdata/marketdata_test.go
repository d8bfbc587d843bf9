package marketdata

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/zenithfin/zenith"
	"github.com/zenithfin/zenith/date"
)

// countingProvider counts how often the inner provider is actually hit.
type countingProvider struct {
	calls int
	price float64
}

func (p *countingProvider) Quote(_ context.Context, ticker string) (Quote, error) {
	p.calls++
	return Quote{Ticker: ticker, Price: p.price, Updated: time.Now()}, nil
}

func TestCachedProvider(t *testing.T) {
	inner := &countingProvider{price: 42.5}
	c := NewCached(inner, time.Minute)

	for i := 0; i < 5; i++ {
		q, err := c.Quote(context.Background(), "VTI")
		if err != nil {
			t.Fatalf("Quote() failed: %v", err)
		}
		if q.Price != 42.5 {
			t.Errorf("price = %v, want 42.5", q.Price)
		}
	}
	if inner.calls != 1 {
		t.Errorf("inner provider hit %d times, want 1", inner.calls)
	}

	// A different ticker misses the cache.
	if _, err := c.Quote(context.Background(), "BTC"); err != nil {
		t.Fatal(err)
	}
	if inner.calls != 2 {
		t.Errorf("inner provider hit %d times, want 2", inner.calls)
	}
}

func TestSimulatedDeterminism(t *testing.T) {
	fixed := time.Date(2025, time.June, 5, 10, 0, 0, 0, time.UTC)
	a := NewSimulated()
	a.Now = func() time.Time { return fixed }
	b := NewSimulated()
	b.Now = func() time.Time { return fixed }

	qa, err := a.Quote(context.Background(), "VTI")
	if err != nil {
		t.Fatal(err)
	}
	qb, err := b.Quote(context.Background(), "VTI")
	if err != nil {
		t.Fatal(err)
	}
	if qa.Price != qb.Price {
		t.Errorf("same day, same ticker: %v != %v", qa.Price, qb.Price)
	}
	if qa.Price < 9.5 || qa.Price > 526 {
		t.Errorf("price %v outside the simulated band", qa.Price)
	}

	other, err := a.Quote(context.Background(), "GOOG")
	if err != nil {
		t.Fatal(err)
	}
	if other.Price == qa.Price {
		t.Error("different tickers should not collide on the same price")
	}
}

func TestSimulatedActions(t *testing.T) {
	s := NewSimulated()
	s.Now = func() time.Time { return time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC) }

	actions, err := s.Actions(context.Background(), "VTI", date.New(2025, time.January, 1))
	if err != nil {
		t.Fatal(err)
	}
	// Q1, Q2 and Q3 2025 have started by July 15.
	if len(actions) != 3 {
		t.Fatalf("actions = %d, want 3", len(actions))
	}
	seen := map[string]bool{}
	for _, a := range actions {
		if a.Type != ActionDividend {
			t.Errorf("type = %q, want DIVIDEND", a.Type)
		}
		if a.AmountPerUnit <= 0 {
			t.Errorf("amount per unit = %v, want positive", a.AmountPerUnit)
		}
		if seen[a.ID] {
			t.Errorf("duplicate action id %q", a.ID)
		}
		seen[a.ID] = true
	}

	crypto, err := s.Actions(context.Background(), "BTC", date.New(2025, time.January, 1))
	if err != nil {
		t.Fatal(err)
	}
	if len(crypto) != 0 {
		t.Errorf("crypto dividends = %d, want 0", len(crypto))
	}
}

func newUpdaterFixture(t *testing.T, provider Provider, actions ActionSource) (*Updater, *zenith.Ledger) {
	t.Helper()
	l := zenith.NewLedger(zenith.NewAppState("USD"), zerolog.Nop())
	acc, err := l.AddAccount("Checking", zenith.AccountChecking, "USD", zenith.Cents(1_000_00), date.New(2025, time.January, 1))
	if err != nil {
		t.Fatalf("AddAccount() failed: %v", err)
	}
	if err := l.Apply(zenith.NewBuy(date.New(2025, time.February, 1), acc.ID, "VTI", zenith.Q(10), zenith.Cents(50000))); err != nil {
		t.Fatalf("buy failed: %v", err)
	}
	return NewUpdater(l, provider, actions, zerolog.Nop()), l
}

func TestRefreshPrices(t *testing.T) {
	u, l := newUpdaterFixture(t, &countingProvider{price: 61.27}, nil)
	if err := u.RefreshPrices(context.Background()); err != nil {
		t.Fatalf("RefreshPrices() failed: %v", err)
	}
	if got := l.State().Asset("VTI").CurrentPrice; got != zenith.Cents(6127) {
		t.Errorf("current price = %d, want 6127", got)
	}
}

func TestPriceHistoryAccumulates(t *testing.T) {
	u, _ := newUpdaterFixture(t, &countingProvider{price: 61.27}, nil)
	if err := u.RefreshPrices(context.Background()); err != nil {
		t.Fatalf("RefreshPrices() failed: %v", err)
	}

	h := u.PriceHistory("VTI")
	if h == nil || h.Len() != 1 {
		t.Fatalf("history = %v, want one recorded quote", h)
	}
	if _, v := h.Latest(); v != 61.27 {
		t.Errorf("latest recorded price = %v, want 61.27", v)
	}
	if u.PriceHistory("GOOG") != nil {
		t.Error("never-refreshed ticker should have no history")
	}
}

func TestPendingDividends(t *testing.T) {
	s := NewSimulated()
	s.Now = func() time.Time { return time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC) }
	u, l := newUpdaterFixture(t, s, s)

	pending, err := u.PendingDividends(context.Background(), date.New(2025, time.April, 1))
	if err != nil {
		t.Fatalf("PendingDividends() failed: %v", err)
	}
	if len(pending) != 2 { // Q2 and Q3
		t.Fatalf("pending = %d, want 2", len(pending))
	}
	for _, p := range pending {
		if !p.Amount.IsPositive() {
			t.Errorf("pending amount = %d, want positive", p.Amount)
		}
	}

	// Confirming one removes it from the next fetch.
	first := pending[0]
	first.AccountID = l.State().Accounts[0].ID
	if err := l.ConfirmDividend(first); err != nil {
		t.Fatalf("ConfirmDividend() failed: %v", err)
	}
	pending, err = u.PendingDividends(context.Background(), date.New(2025, time.April, 1))
	if err != nil {
		t.Fatal(err)
	}
	if len(pending) != 1 {
		t.Errorf("pending after confirm = %d, want 1", len(pending))
	}
}
