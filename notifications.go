package zenith

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/zenithfin/zenith/date"
)

// NotificationKind identifies what a notification is about.
type NotificationKind string

const (
	NotifyDividend    NotificationKind = "dividend"
	NotifyGoalReached NotificationKind = "goal_reached"
	NotifyInvoiceDue  NotificationKind = "invoice_due"
)

// NotificationItem is an in-app message. Delivery is out of scope; the
// ledger only records them on the state.
type NotificationItem struct {
	ID      string           `json:"id"`
	Kind    NotificationKind `json:"kind"`
	Title   string           `json:"title"`
	Message string           `json:"message"`
	Date    date.Date        `json:"date"`
	Read    bool             `json:"read"`
}

func newNotification(kind NotificationKind, title, message string, on date.Date) NotificationItem {
	return NotificationItem{
		ID:      uuid.NewString(),
		Kind:    kind,
		Title:   title,
		Message: message,
		Date:    on,
	}
}

// UpcomingInvoiceAlerts builds one alert per card whose current-month
// invoice is non-zero and falls due within the given number of days.
func UpcomingInvoiceAlerts(s *AppState, today date.Date, withinDays int) []NotificationItem {
	var alerts []NotificationItem
	for _, card := range s.CreditCards {
		total := InvoiceTotal(s.Transactions, card.ID, 0, today)
		if total.IsZero() {
			continue
		}
		due := date.New(today.Year(), today.Month(), card.DueDay)
		if due.Before(today) || due.After(today.Add(withinDays)) {
			continue
		}
		alerts = append(alerts, newNotification(NotifyInvoiceDue,
			fmt.Sprintf("%s invoice due %s", card.Name, due),
			fmt.Sprintf("Invoice of %s closes on day %d and is due on %s.",
				total.Format(s.Settings.Currency), card.ClosingDay, due),
			today))
	}
	return alerts
}
