package products

// Seed returns the catalogue a new workspace starts with.
func Seed() []Product {
	return []Product{
		{ID: 1, SKU: "EL-1001", Name: "Wireless Mouse", Category: "Electronics", Price: 25, InStock: true, Rating: 4.5},
		{ID: 2, SKU: "EL-1002", Name: "Mechanical Keyboard", Category: "Electronics", Price: 89, InStock: true, Rating: 4.7},
		{ID: 3, SKU: "EL-1003", Name: "USB-C Hub", Category: "Electronics", Price: 45, InStock: false, Rating: 4.1},
		{ID: 4, SKU: "HM-2001", Name: "Desk Lamp", Category: "Home", Price: 32, InStock: true, Rating: 4.3},
		{ID: 5, SKU: "HM-2002", Name: "Coffee Mug", Category: "Home", Price: 12, InStock: true, Rating: 4.8},
		{ID: 6, SKU: "OF-3001", Name: "Notebook A5", Category: "Office", Price: 6, InStock: true, Rating: 4.2},
		{ID: 7, SKU: "OF-3002", Name: "Gel Pens (10 pack)", Category: "Office", Price: 9, InStock: false, Rating: 3.9},
		{ID: 8, SKU: "EL-1004", Name: "Noise Cancelling Headphones", Category: "Electronics", Price: 199, InStock: true, Rating: 4.6},
		{ID: 9, SKU: "SP-4001", Name: "Yoga Mat", Category: "Sports", Price: 28, InStock: true, Rating: 4.4},
		{ID: 10, SKU: "SP-4002", Name: "Water Bottle", Category: "Sports", Price: 15, InStock: false, Rating: 4.0},
		{ID: 11, SKU: "HM-2003", Name: "Throw Pillow", Category: "Home", Price: 22, InStock: true, Rating: 3.8},
		{ID: 12, SKU: "OF-3003", Name: "Ergonomic Chair", Category: "Office", Price: 240, InStock: true, Rating: 4.5},
		{ID: 13, SKU: "SP-4003", Name: "Resistance Bands", Category: "Sports", Price: 18, InStock: true, Rating: 4.1},
		{ID: 14, SKU: "EL-1005", Name: "Webcam 1080p", Category: "Electronics", Price: 59, InStock: false, Rating: 3.7},
	}
}
