package agent

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/zenithfin/zenith/date"
)

// Draft is the model's proposal for one transaction. String fields keep the
// draft decoupled from ledger identifiers: names are resolved to IDs at
// confirmation time, when the user can still correct them.
type Draft struct {
	Type        string `json:"type"` // INCOME, EXPENSE, INVESTMENT or TRANSFER
	Description string `json:"description"`
	Amount      string `json:"amount"` // decimal string, major units
	Date        string `json:"date"`   // YYYY-MM-DD, empty means today
	Category    string `json:"category"`
	Account     string `json:"account"`
	Card        string `json:"card"`
	Ticker      string `json:"ticker"`
	Quantity    string `json:"quantity"`
	Action      string `json:"action"` // BUY or SELL
	FromAccount string `json:"fromAccount"`
	ToAccount   string `json:"toAccount"`
}

// On returns the draft date, defaulting to today.
func (d *Draft) On() (date.Date, error) {
	if d.Date == "" {
		return date.Today(), nil
	}
	return date.Parse(d.Date)
}

// parseDraft decodes and validates the model's JSON answer. Anything the
// model left ambiguous is an error, never a guess.
func parseDraft(jsonText string) (*Draft, error) {
	var d Draft
	if err := json.Unmarshal([]byte(stripFences(jsonText)), &d); err != nil {
		return nil, fmt.Errorf("model returned invalid JSON: %w", err)
	}

	switch d.Type {
	case "INCOME", "EXPENSE", "INVESTMENT", "TRANSFER":
	case "":
		return nil, fmt.Errorf("model could not extract a transaction")
	default:
		return nil, fmt.Errorf("model returned unknown transaction type %q", d.Type)
	}

	amount, err := decimal.NewFromString(d.Amount)
	if err != nil {
		return nil, fmt.Errorf("model returned invalid amount %q: %w", d.Amount, err)
	}
	if amount.IsNegative() {
		return nil, fmt.Errorf("model returned negative amount %q", d.Amount)
	}

	if d.Date != "" {
		if _, err := date.Parse(d.Date); err != nil {
			return nil, fmt.Errorf("model returned invalid date: %w", err)
		}
	}

	if d.Type == "INVESTMENT" {
		if d.Action != "BUY" && d.Action != "SELL" {
			return nil, fmt.Errorf("model returned invalid investment action %q", d.Action)
		}
		if d.Ticker == "" {
			return nil, fmt.Errorf("model returned an investment without a ticker")
		}
		if _, err := decimal.NewFromString(d.Quantity); err != nil {
			return nil, fmt.Errorf("model returned invalid quantity %q: %w", d.Quantity, err)
		}
	}
	if d.Type == "TRANSFER" && (d.FromAccount == "" || d.ToAccount == "") {
		return nil, fmt.Errorf("model returned a transfer without both accounts")
	}

	return &d, nil
}
