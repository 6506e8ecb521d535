// Package orders holds the read-only order book, its listing state and the
// order pages.
package orders

// Status is an order's payment state.
type Status string

const (
	StatusPaid      Status = "Paid"
	StatusPending   Status = "Pending"
	StatusCancelled Status = "Cancelled"
)

// Statuses lists the filter options in display order.
var Statuses = []Status{StatusPaid, StatusPending, StatusCancelled}

// statusRank orders statuses for sorting; anything else ranks last.
var statusRank = map[string]int{
	string(StatusPaid):      1,
	string(StatusPending):   2,
	string(StatusCancelled): 3,
}

// Item is one order line.
type Item struct {
	Name  string  `json:"name"`
	Qty   int     `json:"qty"`
	Price float64 `json:"price"`
}

// Total is Qty × Price.
func (i Item) Total() float64 {
	return float64(i.Qty) * i.Price
}

// Event is one timeline entry.
type Event struct {
	Label string `json:"label"`
	Date  string `json:"date"`
}

// Order is a customer order.
type Order struct {
	ID            string  `json:"id"`
	Customer      string  `json:"customer"`
	Amount        float64 `json:"amount"`
	Status        Status  `json:"status"`
	Date          string  `json:"date"`
	Items         []Item  `json:"items"`
	PaymentMethod string  `json:"paymentMethod"`
	Timeline      []Event `json:"timeline"`
}

// Badge is the colour of the status pill.
func (o Order) Badge() string {
	switch o.Status {
	case StatusPaid:
		return "green"
	case StatusPending:
		return "yellow"
	case StatusCancelled:
		return "red"
	default:
		return "gray"
	}
}

// Stats are the KPI cards above the table, computed over every order.
type Stats struct {
	Total   int
	Revenue float64
	Paid    int
}
