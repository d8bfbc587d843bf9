package zenith

import "github.com/zenithfin/zenith/date"

// SummaryReport is an at-a-glance overview of the whole ledger on a day.
type SummaryReport struct {
	Date     date.Date
	Currency string
	NetWorth Money
	Accounts []AccountLine
	Cards    []CardLine
	Assets   []AssetLine
	Goals    []GoalLine
}

// AccountLine is one account row in the summary.
type AccountLine struct {
	Name    string
	Type    AccountType
	Balance Money
}

// CardLine is one card row: current invoice and remaining limit.
type CardLine struct {
	Name      string
	Invoice   Money
	Used      Money
	Available Money
}

// AssetLine is one position row with its valuation.
type AssetLine struct {
	Ticker       string
	Type         AssetType
	Quantity     Quantity
	AveragePrice Money
	CurrentPrice Money
	MarketValue  Money
	Gain         Money
}

// GoalLine is one goal row with computed progress.
type GoalLine struct {
	Title    string
	Type     GoalType
	Target   Money
	Progress Money
	Deadline date.Date
}

// NewSummaryReport derives the full overview from current state.
func NewSummaryReport(s *AppState, today date.Date) *SummaryReport {
	r := &SummaryReport{
		Date:     today,
		Currency: s.Settings.Currency,
		NetWorth: NetWorth(s.Accounts, s.Assets),
	}
	for _, acc := range s.Accounts {
		r.Accounts = append(r.Accounts, AccountLine{Name: acc.Name, Type: acc.Type, Balance: acc.Balance})
	}
	for _, card := range s.CreditCards {
		r.Cards = append(r.Cards, CardLine{
			Name:      card.Name,
			Invoice:   InvoiceTotal(s.Transactions, card.ID, 0, today),
			Used:      UsedLimit(s.Transactions, card.ID),
			Available: AvailableLimit(card, s.Transactions),
		})
	}
	for _, a := range s.Assets {
		r.Assets = append(r.Assets, AssetLine{
			Ticker:       a.Ticker,
			Type:         a.Type,
			Quantity:     a.Quantity,
			AveragePrice: a.AveragePrice,
			CurrentPrice: a.CurrentPrice,
			MarketValue:  a.MarketValue(),
			Gain:         a.UnrealizedGain(),
		})
	}
	for _, g := range s.Goals {
		r.Goals = append(r.Goals, GoalLine{
			Title:    g.Title,
			Type:     g.Type,
			Target:   g.TargetAmount,
			Progress: GoalProgress(g, s),
			Deadline: g.Deadline,
		})
	}
	return r
}

// InvoiceReport lists one card's expenses for a billing month.
type InvoiceReport struct {
	Card     CreditCard
	Month    date.Date // first day of the invoice month
	Currency string
	Total    Money
	Used     Money
	Lines    []Transaction
}

// NewInvoiceReport derives a card's invoice at the given month offset.
func NewInvoiceReport(s *AppState, cardID string, monthOffset int, today date.Date) (*InvoiceReport, error) {
	card := s.Card(cardID)
	if card == nil {
		return nil, ErrNotFound
	}
	target := today.MonthStart().AddMonths(monthOffset)
	r := &InvoiceReport{
		Card:     *card,
		Month:    target,
		Currency: s.Settings.Currency,
		Total:    InvoiceTotal(s.Transactions, cardID, monthOffset, today),
		Used:     UsedLimit(s.Transactions, cardID),
	}
	for _, tx := range s.Transactions {
		if tx.CardID == cardID && tx.Type == TxExpense && tx.Date.SameMonth(target) {
			r.Lines = append(r.Lines, tx)
		}
	}
	return r, nil
}

// HistoryReport is the reconstructed net-worth series.
type HistoryReport struct {
	Currency string
	Days     []date.Date
	Values   []Money
}

// NewHistoryReport derives the last `days` days of net worth, oldest first.
func NewHistoryReport(s *AppState, days int, today date.Date) *HistoryReport {
	values := NetWorthHistory(s, days, today)
	r := &HistoryReport{Currency: s.Settings.Currency}
	for i, v := range values {
		r.Days = append(r.Days, today.Add(i-len(values)+1))
		r.Values = append(r.Values, v)
	}
	return r
}
