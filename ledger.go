package zenith

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/zenithfin/zenith/date"
)

// ErrNotFound is returned when an id does not resolve to anything.
var ErrNotFound = errors.New("not found")

// Ledger is the service object that owns the application state. It is the
// single writer: every mutation goes through it and is serialized by a
// mutex, because the full-recomputation balance strategy below is not safe
// under concurrent interleaving. Collaborators (market feed, AI drafting)
// only ever hand inputs to these methods.
type Ledger struct {
	mu       sync.Mutex
	state    *AppState
	log      zerolog.Logger
	classify func(ticker string) AssetType
}

// NewLedger wraps an application state in its owning service.
func NewLedger(state *AppState, log zerolog.Logger) *Ledger {
	return &Ledger{state: state, log: log, classify: DefaultAssetType}
}

// SetClassifier overrides how tickers are mapped to asset types when a
// first buy opens a position.
func (l *Ledger) SetClassifier(f func(ticker string) AssetType) { l.classify = f }

// State exposes the owned state for read-side derivations. Callers must not
// mutate it; all writes go through Ledger methods.
func (l *Ledger) State() *AppState { return l.state }

// DefaultAssetType classifies well-known crypto tickers; everything else is
// treated as a stock.
func DefaultAssetType(ticker string) AssetType {
	switch ticker {
	case "BTC", "ETH", "SOL", "ADA", "XRP", "DOGE":
		return AssetCrypto
	default:
		return AssetStock
	}
}

// Apply validates and applies a batch of new transactions: recompute every
// account balance from scratch over new++existing, run the position
// transitions in batch order, then prepend the batch to the log so display
// order stays newest-first. Validation failures reject the whole batch
// before any state is touched.
func (l *Ledger) Apply(txs ...Transaction) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	var errs error
	for _, tx := range txs {
		if err := tx.Validate(); err != nil {
			errs = errors.Join(errs, fmt.Errorf("invalid %s transaction %q: %w", tx.Type, tx.Description, err))
			continue
		}
		if tx.AccountID != "" && l.state.Account(tx.AccountID) == nil {
			errs = errors.Join(errs, fmt.Errorf("transaction %q references unknown account %q", tx.Description, tx.AccountID))
		}
		if tx.CardID != "" && l.state.Card(tx.CardID) == nil {
			errs = errors.Join(errs, fmt.Errorf("transaction %q references unknown card %q", tx.Description, tx.CardID))
		}
	}
	if errs != nil {
		return errs
	}

	for _, tx := range txs {
		if tx.Type == TxInvestment {
			l.state.Assets = applyInvestment(l.state.Assets, tx, l.newPosition, l.log)
		}
	}

	// Prepend, newest-first. The log keeps insertion order; dates are not
	// re-sorted here, display sorts by date elsewhere.
	l.state.Transactions = append(txs, l.state.Transactions...)
	l.recomputeBalances()
	return nil
}

// Transfer creates and applies the two linked postings of a transfer
// between accounts, returning both legs.
func (l *Ledger) Transfer(on date.Date, fromID, toID, description string, amount Money) (Transaction, Transaction, error) {
	if fromID == toID {
		return Transaction{}, Transaction{}, errors.New("transfer source and destination must differ")
	}
	if !amount.IsPositive() {
		return Transaction{}, Transaction{}, errors.New("transfer amount must be positive")
	}
	out, in := NewTransferPair(on, fromID, toID, description, amount)
	if err := l.Apply(out, in); err != nil {
		return Transaction{}, Transaction{}, err
	}
	return out, in, nil
}

// Delete removes a transaction and reverses its recorded effect: the cash
// leg by the inverse sign rule, the position leg by the inverse transition.
// This is a targeted point-reversal, not a replay; apply and reverse share
// the same sign rules. Both legs of a transfer are
// removed together. An unknown id is a no-op.
func (l *Ledger) Delete(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	tx := l.state.Transaction(id)
	if tx == nil {
		l.log.Warn().Str("id", id).Msg("delete of unknown transaction, ignoring")
		return nil
	}
	victims := []Transaction{*tx}
	if tx.TransferID != "" {
		for _, other := range l.state.Transactions {
			if other.TransferID == tx.TransferID && other.ID != tx.ID {
				victims = append(victims, other)
			}
		}
	}

	for _, v := range victims {
		if v.Type == TxInvestment {
			l.state.Assets = reverseInvestment(l.state.Assets, v, l.newPosition, l.log)
		}
		if v.AccountID != "" && l.state.Account(v.AccountID) == nil {
			// The account was removed since; the balance fold below will
			// simply no longer see this transaction.
			l.log.Warn().Str("id", v.ID).Str("account", v.AccountID).
				Msg("deleting a transaction whose account no longer exists")
		}
	}

	kept := l.state.Transactions[:0:0]
	for _, t := range l.state.Transactions {
		doomed := false
		for _, v := range victims {
			if t.ID == v.ID {
				doomed = true
				break
			}
		}
		if !doomed {
			kept = append(kept, t)
		}
	}
	l.state.Transactions = kept
	l.recomputeBalances()
	return nil
}

// recomputeBalances rebuilds every account balance as the fold of the
// current log. Full recomputation trades O(accounts × transactions) work
// for immunity to call-order bugs; the balance invariant must hold before
// any mutation returns.
func (l *Ledger) recomputeBalances() {
	for i := range l.state.Accounts {
		var balance Money
		for _, tx := range l.state.Transactions {
			if tx.AccountID == l.state.Accounts[i].ID {
				balance = balance.Add(tx.CashEffect())
			}
		}
		l.state.Accounts[i].Balance = balance
	}
}

// newPosition opens a position from the transaction that creates it.
func (l *Ledger) newPosition(tx Transaction) InvestmentAsset {
	return InvestmentAsset{
		ID:           uuid.NewString(),
		Ticker:       tx.Ticker,
		Quantity:     tx.Quantity,
		AveragePrice: tx.Price,
		CurrentPrice: tx.Price,
		Type:         l.classify(tx.Ticker),
	}
}

// AddAccount registers a cash account. A non-zero opening balance is posted
// as an ordinary income transaction so the balance stays a pure fold of the
// log.
func (l *Ledger) AddAccount(name string, kind AccountType, currency string, opening Money, on date.Date) (Account, error) {
	if name == "" {
		return Account{}, errors.New("account name is missing")
	}
	acc := Account{ID: uuid.NewString(), Name: name, Type: kind, Currency: currency}
	l.mu.Lock()
	l.state.Accounts = append(l.state.Accounts, acc)
	l.mu.Unlock()
	if !opening.IsZero() {
		tx := NewIncome(on, acc.ID, "Opening balance", "opening balance", opening)
		if err := l.Apply(tx); err != nil {
			return acc, err
		}
	}
	return acc, nil
}

// AddCard registers a credit card.
func (l *Ledger) AddCard(name, brand string, limit Money, closingDay, dueDay int) (CreditCard, error) {
	var errs error
	if name == "" {
		errs = errors.Join(errs, errors.New("card name is missing"))
	}
	if closingDay < 1 || closingDay > 31 {
		errs = errors.Join(errs, fmt.Errorf("closing day %d out of range 1-31", closingDay))
	}
	if dueDay < 1 || dueDay > 31 {
		errs = errors.Join(errs, fmt.Errorf("due day %d out of range 1-31", dueDay))
	}
	if errs != nil {
		return CreditCard{}, errs
	}
	card := CreditCard{ID: uuid.NewString(), Name: name, Brand: brand, Limit: limit, ClosingDay: closingDay, DueDay: dueDay}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state.CreditCards = append(l.state.CreditCards, card)
	return card, nil
}

// PurchaseInInstallments generates and applies an installment plan on a card.
func (l *Ledger) PurchaseInInstallments(cardID string, total Money, n int, description, category string, purchase date.Date) ([]Transaction, error) {
	card := l.state.Card(cardID)
	if card == nil {
		return nil, fmt.Errorf("card %q: %w", cardID, ErrNotFound)
	}
	if n < 1 {
		return nil, fmt.Errorf("installment count must be at least 1, got %d", n)
	}
	plan := GenerateInstallmentPlan(*card, total, n, description, category, purchase)
	if err := l.Apply(plan...); err != nil {
		return nil, err
	}
	return plan, nil
}

// SaveGoal inserts or replaces a goal by id.
func (l *Ledger) SaveGoal(g FinancialGoal) error {
	if g.Title == "" {
		return errors.New("goal title is missing")
	}
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.state.Goals {
		if l.state.Goals[i].ID == g.ID {
			l.state.Goals[i] = g
			return nil
		}
	}
	l.state.Goals = append(l.state.Goals, g)
	return nil
}

// DeleteGoal removes a goal. An unknown id is a no-op.
func (l *Ledger) DeleteGoal(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.state.Goals {
		if l.state.Goals[i].ID == id {
			l.state.Goals = append(l.state.Goals[:i], l.state.Goals[i+1:]...)
			return
		}
	}
	l.log.Warn().Str("id", id).Msg("delete of unknown goal, ignoring")
}

// UpdateGoalAmount applies a signed manual deposit (positive) or withdrawal
// (negative) to a manually-tracked goal. The running total is clamped at
// zero. Derived goals reject the operation.
func (l *Ledger) UpdateGoalAmount(id string, delta Money) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	g := l.state.Goal(id)
	if g == nil {
		return fmt.Errorf("goal %q: %w", id, ErrNotFound)
	}
	if !g.ManuallyTracked() {
		return fmt.Errorf("goal %q progress is derived, manual adjustments are disabled", g.Title)
	}
	before := g.SavedAmount
	g.adjustSaved(delta)
	if before.Add(delta).IsNegative() {
		l.log.Warn().Str("goal", g.Title).Msg("withdrawal exceeds saved amount, clamping at zero")
	}
	if g.SavedAmount >= g.TargetAmount && before < g.TargetAmount {
		l.state.Notifications = append(l.state.Notifications, newNotification(NotifyGoalReached,
			fmt.Sprintf("Goal %q reached", g.Title),
			fmt.Sprintf("Saved %s of %s.", g.SavedAmount.Format(l.state.Settings.Currency), g.TargetAmount.Format(l.state.Settings.Currency)),
			date.Today()))
	}
	return nil
}

// DividendConfirmation is the user's approval of one corporate action.
type DividendConfirmation struct {
	ID        string // corporate action id
	AccountID string // destination for the cash
	Amount    Money  // total payout in cents
	Ticker    string
	On        date.Date
}

// ConfirmDividend posts the payout as income and marks the corporate action
// processed so the feed cannot deliver it twice.
func (l *Ledger) ConfirmDividend(c DividendConfirmation) error {
	if l.state.ActionProcessed(c.ID) {
		l.log.Info().Str("action", c.ID).Msg("corporate action already processed, ignoring")
		return nil
	}
	tx := NewIncome(c.On, c.AccountID, fmt.Sprintf("Dividend %s", c.Ticker), "dividends", c.Amount)
	if err := l.Apply(tx); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state.ProcessedCorporateActionIDs = append(l.state.ProcessedCorporateActionIDs, c.ID)
	l.state.Notifications = append(l.state.Notifications, newNotification(NotifyDividend,
		fmt.Sprintf("Dividend received: %s", c.Ticker),
		fmt.Sprintf("%s credited as income.", c.Amount.Format(l.state.Settings.Currency)),
		c.On))
	return nil
}

// ResetReinvestmentCounter stamps the start of a new reinvestment window.
func (l *Ledger) ResetReinvestmentCounter(now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state.LastReinvestmentResetDate = now
}

// SetAssetPrice records a refreshed market price on an open position. A
// price for a ticker not held is ignored: the feed must never create
// positions.
func (l *Ledger) SetAssetPrice(ticker string, price Money) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.state.Assets {
		if l.state.Assets[i].Ticker == ticker {
			l.state.Assets[i].CurrentPrice = price
			return
		}
	}
	l.log.Debug().Str("ticker", ticker).Msg("price update for a ticker not held, ignoring")
}
