package dataset

import (
	"strings"

	"github.com/fuelview/fuelview/internal/model"
)

// RecordSet is a loaded, read-only set of fuel records. It is safe for
// concurrent use once constructed.
type RecordSet struct {
	source             string
	records            []model.FuelRecord
	byVehicle          map[string][]int // upper-cased vehicle number -> positions
	hasCreatedAtColumn bool
}

// NewRecordSet builds a RecordSet over a copy of records.
func NewRecordSet(source string, records []model.FuelRecord) *RecordSet {
	own := make([]model.FuelRecord, len(records))
	copy(own, records)

	byVehicle := make(map[string][]int)
	for i, r := range own {
		key := VehicleKey(r.VehicleNo)
		byVehicle[key] = append(byVehicle[key], i)
	}
	return &RecordSet{source: source, records: own, byVehicle: byVehicle}
}

// VehicleKey is the case-folded form of a vehicle number used for lookups.
func VehicleKey(vehicleNo string) string {
	return strings.ToUpper(strings.TrimSpace(vehicleNo))
}

// Source names where the records were loaded from.
func (s *RecordSet) Source() string { return s.source }

// Len returns the number of retained records.
func (s *RecordSet) Len() int { return len(s.records) }

// HasCreatedAtColumn reports whether the source carried a timestamp column.
func (s *RecordSet) HasCreatedAtColumn() bool { return s.hasCreatedAtColumn }

// All returns a copy of every record in source order.
func (s *RecordSet) All() []model.FuelRecord {
	out := make([]model.FuelRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Lookup returns copies of the records whose vehicle number equals
// vehicleNo ignoring case, in source order.
func (s *RecordSet) Lookup(vehicleNo string) []model.FuelRecord {
	positions := s.byVehicle[VehicleKey(vehicleNo)]
	if len(positions) == 0 {
		return nil
	}
	out := make([]model.FuelRecord, len(positions))
	for i, p := range positions {
		out[i] = s.records[p]
	}
	return out
}
