// Package products is the read-only catalogue browser.
package products

// Stock filter values.
const (
	StockIn  = "In"
	StockOut = "Out"
)

// View modes of the catalogue page.
const (
	ViewGrid  = "grid"
	ViewTable = "table"
)

// Product is a catalogue entry.
type Product struct {
	ID       int64   `json:"id"`
	SKU      string  `json:"sku"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	InStock  bool    `json:"inStock"`
	Rating   float64 `json:"rating"`
}

// Stats are the KPI cards above the catalogue.
type Stats struct {
	Total    int
	InStock  int
	AvgPrice float64
}
