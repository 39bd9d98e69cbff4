package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/fuelview/fuelview/internal/dataset"
	"github.com/fuelview/fuelview/internal/model"
)

// TableHeaders are the column titles of the record listing.
var TableHeaders = []string{"Vehicle_no", "Last_Tnx_Kmpl", "Est_fuel_Consumed", "Created_date"}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
)

// Row formats a record as table cells, numbers at two decimals.
func Row(r model.FuelRecord) []string {
	return []string{
		r.VehicleNo,
		r.Kmpl.StringFixed(2),
		r.Consumed.StringFixed(2),
		dataset.FormatCreatedAt(r.CreatedAt),
	}
}

// Table renders records as a bordered terminal table.
func Table(records []model.FuelRecord) string {
	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = Row(r)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(TableHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 1 || col == 2:
				return numberStyle
			default:
				return cellStyle
			}
		})
	return t.Render()
}
