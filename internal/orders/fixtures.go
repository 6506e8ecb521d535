package orders

// Seed returns the orders a new workspace starts with.
func Seed() []Order {
	return []Order{
		{
			ID: "ORD-1001", Customer: "Ahmed Ali", Amount: 250, Status: StatusPaid, Date: "2024-11-20",
			Items:         []Item{{Name: "Product A", Qty: 1, Price: 150}, {Name: "Product B", Qty: 2, Price: 50}},
			PaymentMethod: "Credit Card",
			Timeline: []Event{
				{Label: "Order Placed", Date: "2024-11-20 10:00"},
				{Label: "Processing", Date: "2024-11-20 11:30"},
				{Label: "Shipped", Date: "2024-11-21 09:00"},
			},
		},
		{
			ID: "ORD-1002", Customer: "Sara Mohamed", Amount: 120, Status: StatusPending, Date: "2024-11-22",
			Items:         []Item{{Name: "Product C", Qty: 3, Price: 40}},
			PaymentMethod: "PayPal",
			Timeline:      []Event{{Label: "Order Placed", Date: "2024-11-22 14:10"}},
		},
		{
			ID: "ORD-1003", Customer: "Omar Hassan", Amount: 90, Status: StatusCancelled, Date: "2024-11-18",
			Items:         []Item{{Name: "Product D", Qty: 1, Price: 90}},
			PaymentMethod: "Cash",
			Timeline: []Event{
				{Label: "Order Placed", Date: "2024-11-18 09:15"},
				{Label: "Cancelled", Date: "2024-11-18 10:00"},
			},
		},
		{
			ID: "ORD-1004", Customer: "Laila Youssef", Amount: 310, Status: StatusPaid, Date: "2024-11-25",
			Items:         []Item{{Name: "Product E", Qty: 2, Price: 100}, {Name: "Product F", Qty: 1, Price: 110}},
			PaymentMethod: "Credit Card",
			Timeline: []Event{
				{Label: "Order Placed", Date: "2024-11-25 08:00"},
				{Label: "Processing", Date: "2024-11-25 09:15"},
			},
		},
		{
			ID: "ORD-1005", Customer: "Khaled Ibrahim", Amount: 560, Status: StatusPaid, Date: "2024-11-26",
			Items:         []Item{{Name: "Product G", Qty: 4, Price: 80}, {Name: "Product H", Qty: 2, Price: 70}},
			PaymentMethod: "Bank Transfer",
			Timeline: []Event{
				{Label: "Order Placed", Date: "2024-11-26 11:30"},
				{Label: "Processing", Date: "2024-11-26 12:00"},
				{Label: "Shipped", Date: "2024-11-27 09:30"},
			},
		},
		{
			ID: "ORD-1006", Customer: "Mona Adel", Amount: 75, Status: StatusPending, Date: "2024-11-27",
			Items:         []Item{{Name: "Product B", Qty: 1, Price: 75}},
			PaymentMethod: "Cash",
			Timeline:      []Event{{Label: "Order Placed", Date: "2024-11-27 16:45"}},
		},
		{
			ID: "ORD-1007", Customer: "Nour Khalil", Amount: 640, Status: StatusPaid, Date: "2024-11-28",
			Items:         []Item{{Name: "Product I", Qty: 2, Price: 220}, {Name: "Product J", Qty: 1, Price: 200}},
			PaymentMethod: "Credit Card",
			Timeline: []Event{
				{Label: "Order Placed", Date: "2024-11-28 09:05"},
				{Label: "Processing", Date: "2024-11-28 10:20"},
				{Label: "Shipped", Date: "2024-11-29 08:40"},
			},
		},
		{
			ID: "ORD-1008", Customer: "Tarek Fawzy", Amount: 180, Status: StatusCancelled, Date: "2024-11-29",
			Items:         []Item{{Name: "Product C", Qty: 2, Price: 90}},
			PaymentMethod: "PayPal",
			Timeline: []Event{
				{Label: "Order Placed", Date: "2024-11-29 13:00"},
				{Label: "Cancelled", Date: "2024-11-29 17:30"},
			},
		},
	}
}
