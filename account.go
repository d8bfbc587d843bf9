package zenith

// AccountType classifies a cash account.
type AccountType string

const (
	AccountChecking AccountType = "checking"
	AccountSavings  AccountType = "savings"
	AccountWallet   AccountType = "wallet"
)

// Account is a cash account. Balance is derived, never authoritative: after
// every ledger mutation it equals the fold of all transactions referencing
// this account, and is eagerly recomputed before control returns to the
// caller. Opening balances are posted as ordinary income transactions so the
// fold needs no separate initial term.
type Account struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Type     AccountType `json:"type"`
	Balance  Money       `json:"balance"`
	Currency string      `json:"currency"`
}
