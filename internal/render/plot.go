package render

import (
	"fmt"
	"strings"

	"github.com/fuelview/fuelview/internal/model"
)

// Plot draws records on a width x height character grid, efficiency on the
// horizontal axis and consumed fuel on the vertical one.
func Plot(records []model.FuelRecord, width, height int) string {
	if len(records) == 0 || width < 2 || height < 2 {
		return ""
	}

	xs := make([]float64, len(records))
	ys := make([]float64, len(records))
	for i, r := range records {
		xs[i] = r.Kmpl.InexactFloat64()
		ys[i] = r.Consumed.InexactFloat64()
	}
	xr := paddedRange(xs)
	yr := paddedRange(ys)

	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", width))
	}
	for i := range xs {
		col := scale(xs[i], xr.Min, xr.Max, width)
		row := height - 1 - scale(ys[i], yr.Min, yr.Max, height)
		grid[row][col] = '*'
	}

	yTop := fmt.Sprintf("%.2f", yr.Max)
	yBottom := fmt.Sprintf("%.2f", yr.Min)
	margin := max(len(yTop), len(yBottom))

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", ConsumedLabel)
	for i, line := range grid {
		label := ""
		switch i {
		case 0:
			label = yTop
		case height - 1:
			label = yBottom
		}
		fmt.Fprintf(&b, "%*s |%s\n", margin, label, string(line))
	}
	fmt.Fprintf(&b, "%*s +%s\n", margin, "", strings.Repeat("-", width))

	xLeft := fmt.Sprintf("%.2f", xr.Min)
	xRight := fmt.Sprintf("%.2f", xr.Max)
	gap := max(width-len(xLeft)-len(xRight), 1)
	fmt.Fprintf(&b, "%*s  %s%s%s\n", margin, "", xLeft, strings.Repeat(" ", gap), xRight)
	fmt.Fprintf(&b, "%*s  %s", margin, "", KmplLabel)
	return b.String()
}

// scale maps v in [lo, hi] onto 0..n-1.
func scale(v, lo, hi float64, n int) int {
	i := int((v - lo) / (hi - lo) * float64(n-1))
	return min(max(i, 0), n-1)
}
