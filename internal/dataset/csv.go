package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
)

// CSVReader reads comma-separated exports.
type CSVReader struct{}

// Format returns the reader name.
func (c *CSVReader) Format() string { return "csv" }

// ReadTable reads every row. Rows may be shorter or longer than the header.
func (c *CSVReader) ReadTable(r io.Reader, _ Options) (Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("reading CSV: %w", err)
	}
	return Table{Rows: records}, nil
}
