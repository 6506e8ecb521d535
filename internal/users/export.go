package users

import (
	"encoding/csv"
	"io"
	"strconv"
)

// ExportFilename is the download name of the users CSV.
const ExportFilename = "users.csv"

var exportHeader = []string{"id", "name", "email", "role", "status", "createdAt"}

// WriteCSV writes rows with a header line. Fields containing commas, quotes
// or newlines are quoted.
func WriteCSV(w io.Writer, rows []User) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return err
	}
	for _, u := range rows {
		record := []string{
			strconv.FormatInt(u.ID, 10),
			u.Name,
			u.Email,
			string(u.Role),
			string(u.Status),
			u.CreatedAt,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
