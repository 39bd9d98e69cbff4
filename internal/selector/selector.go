// Package selector picks the records of one vehicle out of a loaded
// dataset, ready for charting and display.
package selector

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/fuelview/fuelview/internal/dataset"
	"github.com/fuelview/fuelview/internal/model"
)

// Options configures a query.
type Options struct {
	CaseInsensitive bool                // false requires an exact vehicle number match
	MaxConsumed     decimal.NullDecimal // records consuming more are excluded
	MaxKmpl         decimal.NullDecimal // records with higher efficiency are excluded
}

// DefaultOptions matches vehicle numbers ignoring case, with no ceilings.
func DefaultOptions() Options {
	return Options{CaseInsensitive: true}
}

// Query returns the records for vehicleID. When every matched record has a
// creation timestamp the result is ordered by it, oldest first; otherwise
// source order is kept. No match yields an empty result.
func Query(rs *dataset.RecordSet, vehicleID string, opts Options) []model.FuelRecord {
	vehicleID = strings.TrimSpace(vehicleID)
	if rs == nil || vehicleID == "" {
		return nil
	}

	var out []model.FuelRecord
	for _, r := range rs.Lookup(vehicleID) {
		if !opts.CaseInsensitive && r.VehicleNo != vehicleID {
			continue
		}
		if opts.MaxConsumed.Valid && r.Consumed.GreaterThan(opts.MaxConsumed.Decimal) {
			continue
		}
		if opts.MaxKmpl.Valid && r.Kmpl.GreaterThan(opts.MaxKmpl.Decimal) {
			continue
		}
		out = append(out, r)
	}

	if len(out) > 1 && allTimestamped(out) {
		slices.SortStableFunc(out, func(a, b model.FuelRecord) int {
			return a.CreatedAt.Compare(b.CreatedAt)
		})
	}
	return out
}

func allTimestamped(records []model.FuelRecord) bool {
	for _, r := range records {
		if !r.HasCreatedAt() {
			return false
		}
	}
	return true
}

// Vehicles lists distinct vehicle numbers in first-seen order. With
// caseInsensitive the numbers are upper-cased and merged.
func Vehicles(rs *dataset.RecordSet, caseInsensitive bool) []string {
	if rs == nil {
		return nil
	}
	seen := make(map[string]bool)
	var out []string
	for _, r := range rs.All() {
		v := r.VehicleNo
		if caseInsensitive {
			v = dataset.VehicleKey(v)
		}
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// NormalizeInput cleans a typed vehicle number: trimmed, and upper-cased
// when matching ignores case.
func NormalizeInput(s string, caseInsensitive bool) string {
	s = strings.TrimSpace(s)
	if caseInsensitive {
		s = strings.ToUpper(s)
	}
	return s
}
