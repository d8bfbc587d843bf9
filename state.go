package zenith

import "time"

// UserProfile carries display-only identity settings.
type UserProfile struct {
	Name string `json:"name,omitempty"`
}

// Settings holds user preferences the engines consult.
type Settings struct {
	Currency string `json:"currency"` // ISO code used for formatting and net worth display
}

// AppState is the single unit of persistence: the whole ledger lives in one
// in-memory snapshot, serialized as one JSON document. Transactions are kept
// newest-first (insertion at head); every derived value is recomputed on
// read except Account.Balance, which is eagerly refreshed on each mutation.
type AppState struct {
	Accounts                    []Account          `json:"accounts"`
	CreditCards                 []CreditCard       `json:"creditCards"`
	Transactions                []Transaction      `json:"transactions"`
	Assets                      []InvestmentAsset  `json:"assets"`
	Goals                       []FinancialGoal    `json:"goals"`
	Notifications               []NotificationItem `json:"notifications"`
	UserProfile                 UserProfile        `json:"userProfile"`
	Settings                    Settings           `json:"settings"`
	ProcessedCorporateActionIDs []string           `json:"processedCorporateActionIds"`
	LastReinvestmentResetDate   time.Time          `json:"lastReinvestmentResetDate"`
}

// NewAppState returns an empty state ready for use.
func NewAppState(currency string) *AppState {
	return &AppState{
		Accounts:                    []Account{},
		CreditCards:                 []CreditCard{},
		Transactions:                []Transaction{},
		Assets:                      []InvestmentAsset{},
		Goals:                       []FinancialGoal{},
		Notifications:               []NotificationItem{},
		ProcessedCorporateActionIDs: []string{},
		Settings:                    Settings{Currency: currency},
	}
}

// Account returns the account with the given id, or nil if unknown.
func (s *AppState) Account(id string) *Account {
	for i := range s.Accounts {
		if s.Accounts[i].ID == id {
			return &s.Accounts[i]
		}
	}
	return nil
}

// Card returns the credit card with the given id, or nil if unknown.
func (s *AppState) Card(id string) *CreditCard {
	for i := range s.CreditCards {
		if s.CreditCards[i].ID == id {
			return &s.CreditCards[i]
		}
	}
	return nil
}

// Asset returns the open position for the ticker, or nil when none is held.
func (s *AppState) Asset(ticker string) *InvestmentAsset {
	for i := range s.Assets {
		if s.Assets[i].Ticker == ticker {
			return &s.Assets[i]
		}
	}
	return nil
}

// Goal returns the goal with the given id, or nil if unknown.
func (s *AppState) Goal(id string) *FinancialGoal {
	for i := range s.Goals {
		if s.Goals[i].ID == id {
			return &s.Goals[i]
		}
	}
	return nil
}

// Transaction returns the transaction with the given id, or nil if unknown.
func (s *AppState) Transaction(id string) *Transaction {
	for i := range s.Transactions {
		if s.Transactions[i].ID == id {
			return &s.Transactions[i]
		}
	}
	return nil
}

// ActionProcessed reports whether a corporate action id has already been
// confirmed, to deduplicate the dividend feed.
func (s *AppState) ActionProcessed(id string) bool {
	for _, p := range s.ProcessedCorporateActionIDs {
		if p == id {
			return true
		}
	}
	return false
}
