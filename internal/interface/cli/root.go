package cli

import (
	"encoding/json"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ecolife/ecolife-api/pkg/logger"
)

// NewRootCmd creates the ecoctl root command with every estimator attached.
func NewRootCmd(ver string) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "ecoctl",
		Short:        "Offline ecolife estimators",
		Long:         "ecoctl runs the ecolife estimators locally and prints the same JSON the HTTP API returns.",
		Version:      ver,
		Example:      rootCmdExample,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().Bool("pretty", false, "indent JSON output")
	cmd.AddCommand(newAQICmd(), newPlantsCmd(), newSolarCmd(), newBrandCmd(), newHeatmapCmd())

	return cmd
}

const rootCmdExample = `  # Estimate air quality for a zip code
  ecoctl aqi 90210

  # Low-light plants that help with respiratory issues
  ecoctl plants --weather hot --sunlight low --disease respiratory

  # Size a rooftop system for 25 kWh a day
  ecoctl solar 25

  # Score a brand
  ecoctl brand Patagonia`

// commandLogger writes diagnostics to stderr so stdout stays machine readable.
func commandLogger(cmd *cobra.Command) *slog.Logger {
	return logger.NewTo(cmd.ErrOrStderr()).With("component", "cli."+cmd.Name())
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	if pretty, _ := cmd.Flags().GetBool("pretty"); pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
