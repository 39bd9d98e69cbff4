package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/fuelview/fuelview/internal/model"
)

// TimestampFormat is used when writing CreatedAt.
const TimestampFormat = "2006-01-02 15:04:05"

const (
	numFields    = 4
	colVehicle   = 0
	colKmpl      = 1
	colConsumed  = 2
	colCreatedAt = 3
)

// WriteCSV writes records with the default column names as header.
func WriteCSV(w io.Writer, records []model.FuelRecord) error {
	cw := csv.NewWriter(w)

	cols := DefaultColumns()
	if err := cw.Write([]string{cols.Vehicle, cols.Kmpl, cols.Consumed, cols.CreatedAt}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, r := range records {
		if err := cw.Write(MarshalRecord(r)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalRecord converts a FuelRecord to a CSV row ([]string).
func MarshalRecord(r model.FuelRecord) []string {
	row := make([]string, numFields)
	row[colVehicle] = r.VehicleNo
	row[colKmpl] = r.Kmpl.String()
	row[colConsumed] = r.Consumed.String()
	if r.HasCreatedAt() {
		row[colCreatedAt] = r.CreatedAt.Format(TimestampFormat)
	}
	return row
}

// FormatCreatedAt renders a timestamp for display; empty when absent.
func FormatCreatedAt(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(TimestampFormat)
}
