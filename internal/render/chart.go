// Package render turns selected fuel records into charts and tables.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/fuelview/fuelview/internal/model"
)

// Axis labels used by every chart and plot.
const (
	KmplLabel     = "Last Transaction (KMPL)"
	ConsumedLabel = "Estimated Fuel Consumed"
)

// ErrNoPoints is returned when asked to chart an empty result.
var ErrNoPoints = errors.New("no records to chart")

// Format is an image encoding supported by Chart.
type Format string

const (
	PNG Format = "png"
	SVG Format = "svg"
)

// ParseFormat accepts "png", "svg" or a file name ending in either.
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(s)
	switch {
	case strings.HasSuffix(s, "png"):
		return PNG, nil
	case strings.HasSuffix(s, "svg"):
		return SVG, nil
	}
	return "", fmt.Errorf("unsupported chart format %q", s)
}

// ContentType returns the MIME type of f.
func (f Format) ContentType() string {
	if f == SVG {
		return "image/svg+xml"
	}
	return "image/png"
}

// ChartTitle is the chart title for a vehicle.
func ChartTitle(vehicle string) string {
	return fmt.Sprintf("Vehicle %s: KMPL vs Estimated Fuel Consumed", vehicle)
}

// ChartOptions controls chart size and encoding.
type ChartOptions struct {
	Title  string
	Width  int
	Height int
	Format Format
}

func (o ChartOptions) withDefaults() ChartOptions {
	if o.Width <= 0 {
		o.Width = 960
	}
	if o.Height <= 0 {
		o.Height = 540
	}
	if o.Format == "" {
		o.Format = PNG
	}
	return o
}

// Chart draws efficiency (x) against consumed fuel (y) as a line with dot
// markers, in record order.
func Chart(w io.Writer, records []model.FuelRecord, opts ChartOptions) error {
	if len(records) == 0 {
		return ErrNoPoints
	}
	opts = opts.withDefaults()

	xs := make([]float64, len(records))
	ys := make([]float64, len(records))
	for i, r := range records {
		xs[i] = r.Kmpl.InexactFloat64()
		ys[i] = r.Consumed.InexactFloat64()
	}
	// go-chart needs at least two values per series.
	if len(xs) == 1 {
		xs = append(xs, xs[0])
		ys = append(ys, ys[0])
	}

	graph := chart.Chart{
		Title:      opts.Title,
		Width:      opts.Width,
		Height:     opts.Height,
		Background: chart.Style{Padding: chart.Box{Top: 48, Left: 24, Right: 24, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:           KmplLabel,
			Range:          paddedRange(xs),
			ValueFormatter: twoDecimals,
		},
		YAxis: chart.YAxis{
			Name:           ConsumedLabel,
			Range:          paddedRange(ys),
			ValueFormatter: twoDecimals,
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    opts.Title,
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: chart.ColorBlue,
					StrokeWidth: 2,
					DotColor:    chart.ColorBlue,
					DotWidth:    4,
				},
			},
		},
	}

	renderer := chart.PNG
	if opts.Format == SVG {
		renderer = chart.SVG
	}
	if err := graph.Render(renderer, w); err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}
	return nil
}

// paddedRange widens the data range by 5% per side, and by 1 when all
// values are equal, so the axis never collapses.
func paddedRange(vs []float64) *chart.ContinuousRange {
	lo, hi := vs[0], vs[0]
	for _, v := range vs[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	pad := (hi - lo) * 0.05
	if pad == 0 {
		pad = 1
	}
	return &chart.ContinuousRange{Min: lo - pad, Max: hi + pad}
}

func twoDecimals(v any) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%.2f", f)
	}
	return ""
}
