// Package notifications keeps the alert inbox and its read state.
package notifications

import "github.com/odyssey-erp/odyssey-admin/internal/i18n"

// Type is the source of a notification.
type Type string

const (
	TypeOrder   Type = "order"
	TypeUser    Type = "user"
	TypeSystem  Type = "system"
	TypePayment Type = "payment"
)

// Inbox filters.
const (
	FilterAll    = "all"
	FilterUnread = "unread"
	FilterOrders = "orders"
	FilterSystem = "system"
)

// Filters lists the inbox tabs in display order.
var Filters = []string{FilterAll, FilterUnread, FilterOrders, FilterSystem}

// Notification is an inbox entry. Read only ever moves from false to true.
type Notification struct {
	ID        int64  `json:"id"`
	Type      Type   `json:"type"`
	Title     string `json:"title"`
	TitleAr   string `json:"titleAr"`
	Message   string `json:"message"`
	MessageAr string `json:"messageAr"`
	Time      string `json:"time"`
	Read      bool   `json:"read"`
}

// LocalTitle returns the title in lang.
func (n Notification) LocalTitle(lang string) string {
	if lang == i18n.Arabic && n.TitleAr != "" {
		return n.TitleAr
	}
	return n.Title
}

// LocalMessage returns the message in lang.
func (n Notification) LocalMessage(lang string) string {
	if lang == i18n.Arabic && n.MessageAr != "" {
		return n.MessageAr
	}
	return n.Message
}

func matches(n Notification, filter string) bool {
	switch filter {
	case FilterUnread:
		return !n.Read
	case FilterOrders:
		return n.Type == TypeOrder || n.Type == TypePayment
	case FilterSystem:
		return n.Type == TypeSystem || n.Type == TypeUser
	default:
		return true
	}
}
