package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fuelview/fuelview/internal/dataset"
	"github.com/fuelview/fuelview/internal/model"
	"github.com/fuelview/fuelview/internal/render"
	"github.com/fuelview/fuelview/internal/selector"
)

type queryFlags struct {
	exact       bool
	maxConsumed float64
	maxKmpl     float64
	chartPath   string
	csvPath     string
}

func newQueryCommand(g *globalFlags) *cobra.Command {
	var f queryFlags

	cmd := &cobra.Command{
		Use:   "query <vehicle>",
		Short: "Show the fuel records of one vehicle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(g, false)
			if err != nil {
				return err
			}
			defer s.close()

			opts := s.cfg.SelectorOptions()
			flags := cmd.Flags()
			if flags.Changed("exact") {
				opts.CaseInsensitive = !f.exact
			}
			if flags.Changed("max-consumed") {
				opts.MaxConsumed = decimal.NewNullDecimal(decimal.NewFromFloat(f.maxConsumed))
			}
			if flags.Changed("max-kmpl") {
				opts.MaxKmpl = decimal.NewNullDecimal(decimal.NewFromFloat(f.maxKmpl))
			}

			return runQuery(cmd.OutOrStdout(), s, args[0], opts, f)
		},
	}

	cmd.Flags().BoolVar(&f.exact, "exact", false, "match the vehicle number exactly (case-sensitive)")
	cmd.Flags().Float64Var(&f.maxConsumed, "max-consumed", 0, "exclude records consuming more fuel than this")
	cmd.Flags().Float64Var(&f.maxKmpl, "max-kmpl", 0, "exclude records with a higher KMPL than this")
	cmd.Flags().StringVar(&f.chartPath, "chart", "", "write the chart to this .png or .svg file")
	cmd.Flags().StringVar(&f.csvPath, "csv", "", "write the selected records to this CSV file")

	return cmd
}

func runQuery(out io.Writer, s *session, input string, opts selector.Options, f queryFlags) error {
	vehicle := selector.NormalizeInput(input, opts.CaseInsensitive)
	records := selector.Query(s.records, vehicle, opts)
	s.logger.Debug("query", zap.String("vehicle", vehicle), zap.Int("matched", len(records)))

	if len(records) == 0 {
		fmt.Fprintf(out, "No records found for vehicle %s.\n", vehicle)
		return nil
	}

	fmt.Fprintln(out, render.ChartTitle(vehicle))
	fmt.Fprintln(out, render.Table(records))

	if f.chartPath != "" {
		if err := writeChart(f.chartPath, vehicle, records); err != nil {
			return err
		}
		fmt.Fprintf(out, "Chart written to %s\n", f.chartPath)
	}
	if f.csvPath != "" {
		if err := writeCSV(f.csvPath, records); err != nil {
			return err
		}
		fmt.Fprintf(out, "Records written to %s\n", f.csvPath)
	}
	return nil
}

func writeChart(path, vehicle string, records []model.FuelRecord) error {
	format, err := render.ParseFormat(path)
	if err != nil {
		return err
	}
	return writeFile(path, "chart", func(w io.Writer) error {
		return render.Chart(w, records, render.ChartOptions{Title: render.ChartTitle(vehicle), Format: format})
	})
}

func writeCSV(path string, records []model.FuelRecord) error {
	return writeFile(path, "CSV", func(w io.Writer) error {
		return dataset.WriteCSV(w, records)
	})
}

// writeFile creates path and fills it with write. A failed write removes the
// partial file.
func writeFile(path, kind string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s file: %w", kind, err)
	}
	if err := write(f); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("writing %s: %w", kind, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("closing %s file: %w", kind, err)
	}
	return nil
}
