package dataset

import (
	"fmt"
	"strings"
)

// Columns names the source headers read into a FuelRecord.
type Columns struct {
	Vehicle   string `yaml:"vehicle"`
	Kmpl      string `yaml:"kmpl"`
	Consumed  string `yaml:"consumed"`
	CreatedAt string `yaml:"created_at"` // optional
}

// DefaultColumns returns the header names used by the fuel transaction export.
func DefaultColumns() Columns {
	return Columns{
		Vehicle:   "Vehicle_no",
		Kmpl:      "Last_Tnx_Kmpl",
		Consumed:  "Est_fuel_Consumed",
		CreatedAt: "Created_date",
	}
}

// withDefaults fills empty names from DefaultColumns. CreatedAt is only
// defaulted when every other name is unset, so it can be switched off.
func (c Columns) withDefaults() Columns {
	d := DefaultColumns()
	if c == (Columns{}) {
		return d
	}
	if c.Vehicle == "" {
		c.Vehicle = d.Vehicle
	}
	if c.Kmpl == "" {
		c.Kmpl = d.Kmpl
	}
	if c.Consumed == "" {
		c.Consumed = d.Consumed
	}
	return c
}

// columnIndex holds resolved header positions; createdAt is -1 when absent.
type columnIndex struct {
	vehicle   int
	kmpl      int
	consumed  int
	createdAt int
}

// resolve maps names onto header positions, trimming and ignoring case.
func (c Columns) resolve(header []string) (columnIndex, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		key := normalizeHeader(h)
		if _, ok := pos[key]; !ok {
			pos[key] = i
		}
	}

	idx := columnIndex{createdAt: -1}
	var missing []string
	find := func(name string) int {
		i, ok := pos[normalizeHeader(name)]
		if !ok {
			missing = append(missing, name)
			return -1
		}
		return i
	}
	idx.vehicle = find(c.Vehicle)
	idx.kmpl = find(c.Kmpl)
	idx.consumed = find(c.Consumed)
	if len(missing) > 0 {
		return columnIndex{}, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}

	if c.CreatedAt != "" {
		if i, ok := pos[normalizeHeader(c.CreatedAt)]; ok {
			idx.createdAt = i
		}
	}
	return idx, nil
}

func normalizeHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	return strings.ToLower(strings.TrimSpace(h))
}

// cell returns rec[i], or "" when the row is shorter than the header.
func cell(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}
