package dataset

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fuelview/fuelview/internal/model"
)

// Options controls how a source is read.
type Options struct {
	Columns  Columns
	Sheet    string    // xlsx only
	Registry *Registry // nil means DefaultRegistry
}

// Load reads all fuel records from the file at path. The format is chosen
// from the file extension.
func Load(path string, opts Options) (*RecordSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DataSourceError{Source: path, Op: "open", Err: err}
	}
	defer f.Close()

	format := strings.TrimPrefix(filepath.Ext(path), ".")
	return read(path, f, format, opts)
}

// Read reads all fuel records from r in the given format ("csv", "xlsx").
func Read(r io.Reader, format string, opts Options) (*RecordSet, error) {
	return read(format, r, format, opts)
}

func read(source string, r io.Reader, format string, opts Options) (*RecordSet, error) {
	reg := opts.Registry
	if reg == nil {
		reg = DefaultRegistry()
	}
	rd := reg.Get(format)
	if rd == nil {
		return nil, &DataSourceError{Source: source, Op: "open", Err: fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)}
	}

	table, err := rd.ReadTable(r, opts)
	if err != nil {
		return nil, &DataSourceError{Source: source, Op: "read", Err: err}
	}

	records, hasCreatedAt, err := decode(table, opts.Columns.withDefaults())
	if err != nil {
		return nil, &DataSourceError{Source: source, Op: "header", Err: err}
	}
	rs := NewRecordSet(source, records)
	rs.hasCreatedAtColumn = hasCreatedAt
	return rs, nil
}

// decode coerces table rows into records, dropping rows without a vehicle
// number or with a missing or non-numeric efficiency or consumed value.
func decode(t Table, cols Columns) ([]model.FuelRecord, bool, error) {
	if len(t.Rows) == 0 {
		return nil, false, fmt.Errorf("%w: source has no header row", ErrMissingColumn)
	}

	idx, err := cols.resolve(t.Rows[0])
	if err != nil {
		return nil, false, err
	}

	var records []model.FuelRecord
	for i, rec := range t.Rows[1:] {
		vehicle := cell(rec, idx.vehicle)
		if vehicle == "" {
			continue
		}
		kmpl, ok := parseNumber(cell(rec, idx.kmpl))
		if !ok {
			continue
		}
		consumed, ok := parseNumber(cell(rec, idx.consumed))
		if !ok {
			continue
		}

		r := model.FuelRecord{
			Row:       i + 2,
			VehicleNo: vehicle,
			Kmpl:      kmpl,
			Consumed:  consumed,
		}
		if idx.createdAt >= 0 {
			if ts, ok := parseTimestamp(cell(rec, idx.createdAt), t.SerialDates); ok {
				r.CreatedAt = ts
			}
		}
		records = append(records, r)
	}
	return records, idx.createdAt >= 0, nil
}
