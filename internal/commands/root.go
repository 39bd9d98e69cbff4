package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fuelview/fuelview/internal/buildinfo"
	"github.com/fuelview/fuelview/internal/config"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	envFile    string
	dataPath   string
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var g globalFlags

	rootCmd := &cobra.Command{
		Use:     "fuelview",
		Short:   "Explore vehicle fuel efficiency against estimated fuel consumed",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&g.configPath, "config", config.FileName, "config file")
	pf.StringVar(&g.envFile, "env-file", ".env", "dotenv file with FUELVIEW_* overrides")
	pf.StringVar(&g.dataPath, "data", "", "fuel records spreadsheet (.xlsx or .csv); overrides the config")

	rootCmd.AddCommand(
		newInitCommand(&g),
		newVehiclesCommand(&g),
		newQueryCommand(&g),
		newServeCommand(&g),
		newExploreCommand(&g),
	)

	return rootCmd
}

// resolveConfig loads the config file, environment and --data override.
func resolveConfig(g *globalFlags) (*config.Config, error) {
	cfg, err := config.Resolve(g.configPath, g.envFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if g.dataPath != "" {
		cfg.Data.Path = g.dataPath
	}
	return cfg, nil
}
