package zenith

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/zenithfin/zenith/date"
)

// TxType is a typed string identifying the kind of a transaction.
type TxType string

// The closed set of transaction types.
const (
	TxIncome     TxType = "INCOME"
	TxExpense    TxType = "EXPENSE"
	TxInvestment TxType = "INVESTMENT"
	// TxTransfer only appears in drafts: the ledger expands a transfer
	// into two linked INCOME/EXPENSE postings, one per account.
	TxTransfer TxType = "TRANSFER"
)

// InvestmentAction distinguishes buys from sells on INVESTMENT transactions.
type InvestmentAction string

const (
	ActionBuy  InvestmentAction = "BUY"
	ActionSell InvestmentAction = "SELL"
)

// Installment describes one slice of an installment plan, for display only.
// Each slice is its own independent transaction with its own due date.
type Installment struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

// Transaction is a single immutable row in the ledger log. There are no
// in-place edits: an amendment is a delete followed by a recreate.
type Transaction struct {
	ID          string           `json:"id"`
	Description string           `json:"description"`
	Amount      Money            `json:"amount"` // non-negative magnitude in cents
	Date        date.Date        `json:"date"`
	Type        TxType           `json:"type"`
	Action      InvestmentAction `json:"investmentType,omitempty"`
	Category    string           `json:"category,omitempty"`
	AccountID   string           `json:"accountId,omitempty"`
	CardID      string           `json:"cardId,omitempty"`
	TransferID  string           `json:"transferId,omitempty"` // shared by both legs of a transfer
	Installment *Installment     `json:"installment,omitempty"`
	IsCleared   bool             `json:"isCleared"`

	// Investment fields, set only when Type is INVESTMENT.
	Ticker   string   `json:"assetTicker,omitempty"`
	Quantity Quantity `json:"assetQuantity,omitempty"`
	Price    Money    `json:"assetPrice,omitempty"` // per-unit price, Amount / Quantity
}

// NewIncome records money received into an account.
func NewIncome(on date.Date, accountID, description, category string, amount Money) Transaction {
	return Transaction{
		ID:          uuid.NewString(),
		Description: description,
		Amount:      amount,
		Date:        on,
		Type:        TxIncome,
		Category:    category,
		AccountID:   accountID,
		IsCleared:   true,
	}
}

// NewExpense records money spent from an account.
func NewExpense(on date.Date, accountID, description, category string, amount Money) Transaction {
	return Transaction{
		ID:          uuid.NewString(),
		Description: description,
		Amount:      amount,
		Date:        on,
		Type:        TxExpense,
		Category:    category,
		AccountID:   accountID,
		IsCleared:   true,
	}
}

// NewCardExpense records a single cleared-pending expense against a card.
func NewCardExpense(on date.Date, cardID, description, category string, amount Money) Transaction {
	return Transaction{
		ID:          uuid.NewString(),
		Description: description,
		Amount:      amount,
		Date:        on,
		Type:        TxExpense,
		Category:    category,
		CardID:      cardID,
		IsCleared:   false,
	}
}

// NewBuy records the purchase of quantity units of ticker for a total cash
// amount taken from the account. The per-unit price is derived.
func NewBuy(on date.Date, accountID, ticker string, quantity Quantity, amount Money) Transaction {
	return Transaction{
		ID:          uuid.NewString(),
		Description: fmt.Sprintf("Buy %s %s", quantity, ticker),
		Amount:      amount,
		Date:        on,
		Type:        TxInvestment,
		Action:      ActionBuy,
		Category:    "investments",
		AccountID:   accountID,
		IsCleared:   true,
		Ticker:      ticker,
		Quantity:    quantity,
		Price:       amount.DivQty(quantity),
	}
}

// NewSell records the sale of quantity units of ticker for a total cash
// amount credited to the account.
func NewSell(on date.Date, accountID, ticker string, quantity Quantity, amount Money) Transaction {
	return Transaction{
		ID:          uuid.NewString(),
		Description: fmt.Sprintf("Sell %s %s", quantity, ticker),
		Amount:      amount,
		Date:        on,
		Type:        TxInvestment,
		Action:      ActionSell,
		Category:    "investments",
		AccountID:   accountID,
		IsCleared:   true,
		Ticker:      ticker,
		Quantity:    quantity,
		Price:       amount.DivQty(quantity),
	}
}

// NewTransferPair creates the two linked postings of a transfer: an expense
// on the source account and an income on the destination, sharing a
// TransferID so deletion can remove both legs atomically.
func NewTransferPair(on date.Date, fromID, toID, description string, amount Money) (Transaction, Transaction) {
	transferID := uuid.NewString()
	out := NewExpense(on, fromID, description, "transfer", amount)
	in := NewIncome(on, toID, description, "transfer", amount)
	out.TransferID = transferID
	in.TransferID = transferID
	return out, in
}

// CashEffect returns the signed effect this transaction has on its linked
// account's balance: INCOME adds, EXPENSE subtracts, INVESTMENT subtracts
// unless it is a SELL. Card transactions have no account effect.
func (t Transaction) CashEffect() Money {
	if t.AccountID == "" {
		return 0
	}
	switch t.Type {
	case TxIncome:
		return t.Amount
	case TxExpense:
		return t.Amount.Neg()
	case TxInvestment:
		if t.Action == ActionSell {
			return t.Amount
		}
		return t.Amount.Neg()
	default:
		return 0
	}
}

// Validate rejects a transaction before it can touch any state.
// All failures are reported at once.
func (t Transaction) Validate() error {
	var errs error
	if t.ID == "" {
		errs = errors.Join(errs, errors.New("transaction id is missing"))
	}
	if t.Amount.IsNegative() {
		errs = errors.Join(errs, fmt.Errorf("amount must be a non-negative magnitude, got %d", t.Amount))
	}
	if t.Date == (date.Date{}) {
		errs = errors.Join(errs, errors.New("date is missing"))
	}
	switch t.Type {
	case TxIncome, TxExpense:
		if t.AccountID == "" && t.CardID == "" {
			errs = errors.Join(errs, errors.New("either an account or a card must be set"))
		}
		if t.AccountID != "" && t.CardID != "" {
			errs = errors.Join(errs, errors.New("account and card are mutually exclusive"))
		}
	case TxInvestment:
		if t.Action != ActionBuy && t.Action != ActionSell {
			errs = errors.Join(errs, fmt.Errorf("investment action must be BUY or SELL, got %q", t.Action))
		}
		if t.AccountID == "" {
			errs = errors.Join(errs, errors.New("investment transactions settle against an account"))
		}
		if t.Ticker == "" {
			errs = errors.Join(errs, errors.New("asset ticker is missing"))
		}
		if !t.Quantity.IsPositive() {
			errs = errors.Join(errs, fmt.Errorf("asset quantity must be positive, got %s", t.Quantity))
		}
	case TxTransfer:
		errs = errors.Join(errs, errors.New("transfer drafts must be expanded into two postings before apply"))
	default:
		errs = errors.Join(errs, fmt.Errorf("unknown transaction type %q", t.Type))
	}
	return errs
}
