package orders

import (
	"encoding/csv"
	"io"
	"strconv"
)

// ExportFilename is the download name of the orders CSV.
const ExportFilename = "orders.csv"

// WriteCSV writes the header id,customer,amount,status,date and one line per
// order.
func WriteCSV(w io.Writer, rows []Order) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "customer", "amount", "status", "date"}); err != nil {
		return err
	}
	for _, o := range rows {
		if err := cw.Write([]string{
			o.ID,
			o.Customer,
			strconv.FormatFloat(o.Amount, 'f', -1, 64),
			string(o.Status),
			o.Date,
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
