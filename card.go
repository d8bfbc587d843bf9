package zenith

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/zenithfin/zenith/date"
)

// CreditCard is a credit card definition. Cards hold no balance of their
// own: all usage is computed from the transactions tagged with the card id.
type CreditCard struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Limit       Money  `json:"limit"`
	ClosingDay  int    `json:"closingDay"` // 1-31, day the invoice closes
	DueDay      int    `json:"dueDay"`     // 1-31, day the invoice is payable
	Brand       string `json:"brand"`
}

// billingMonth returns the first day of the billing month a purchase
// belongs to: a purchase on or after the closing day rolls into the next
// month's cycle.
func (c CreditCard) billingMonth(purchase date.Date) date.Date {
	if purchase.Day() >= c.ClosingDay {
		return purchase.MonthStart().AddMonths(1)
	}
	return purchase.MonthStart()
}

// GenerateInstallmentPlan splits a card purchase into n expense
// transactions, one per monthly invoice.
//
// Each installment is round(total/n) cents. The remainder is deliberately
// not redistributed, so the plan total can differ from the requested total
// by up to n-1 cents. The k-th installment (0-indexed) falls due on the
// card's due day one full month after the billing month, plus k months.
func GenerateInstallmentPlan(card CreditCard, total Money, n int, description, category string, purchase date.Date) []Transaction {
	if n < 1 {
		return nil
	}
	per := Money(total.Decimal().Div(decimal.NewFromInt(int64(n))).Round(0).IntPart())

	billing := card.billingMonth(purchase)
	plan := make([]Transaction, 0, n)
	for k := 0; k < n; k++ {
		due := date.New(billing.Year(), billing.Month()+time.Month(1+k), card.DueDay)
		tx := NewCardExpense(due, card.ID, description, category, per)
		tx.Installment = &Installment{Current: k + 1, Total: n}
		plan = append(plan, tx)
	}
	return plan
}

// InvoiceTotal sums the card's expenses billed in the calendar month at the
// given offset from today (0 current, 1 next, -1 previous). Month
// arithmetic rolls over year boundaries.
func InvoiceTotal(txns []Transaction, cardID string, monthOffset int, today date.Date) Money {
	target := today.MonthStart().AddMonths(monthOffset)
	var total Money
	for _, tx := range txns {
		if tx.CardID != cardID || tx.Type != TxExpense {
			continue
		}
		if tx.Date.SameMonth(target) {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// UsedLimit sums every uncleared card expense, i.e. the entire remaining
// unpaid installment stream, not just the current invoice. This is the
// denominator for available-limit display.
func UsedLimit(txns []Transaction, cardID string) Money {
	var total Money
	for _, tx := range txns {
		if tx.CardID != cardID || tx.Type != TxExpense || tx.IsCleared {
			continue
		}
		total = total.Add(tx.Amount)
	}
	return total
}

// AvailableLimit is the card limit minus all uncleared expenses.
func AvailableLimit(card CreditCard, txns []Transaction) Money {
	return card.Limit.Sub(UsedLimit(txns, card.ID))
}

// Utilization returns the used fraction of the card limit (0..1+).
func Utilization(card CreditCard, txns []Transaction) float64 {
	if card.Limit.IsZero() {
		return 0
	}
	used := UsedLimit(txns, card.ID)
	f, _ := used.Decimal().Div(card.Limit.Decimal()).Float64()
	return f
}
