package commands

import (
	"github.com/spf13/cobra"

	"github.com/fuelview/fuelview/internal/explorer"
)

func newExploreCommand(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "explore",
		Short: "Look up vehicles interactively in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(g, false)
			if err != nil {
				return err
			}
			defer s.close()

			return explorer.Run(cmd.Context(), s.records, s.cfg.SelectorOptions(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}
