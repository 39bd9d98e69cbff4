package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fuelview/fuelview/internal/selector"
)

func newVehiclesCommand(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "vehicles",
		Short: "List vehicle numbers in the dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(g, false)
			if err != nil {
				return err
			}
			defer s.close()

			for _, v := range selector.Vehicles(s.records, s.cfg.Query.CaseInsensitive) {
				fmt.Fprintln(cmd.OutOrStdout(), v)
			}
			return nil
		},
	}
}
