package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/starhash/starhash/cmd/starhash/commands"
	"github.com/starhash/starhash/logger"
)

var rootCmd = &cobra.Command{
	Use:   "starhash",
	Short: "starhash - three-word names for points on the sky",
	Long: `starhash - memorable three-word names for sky coordinates.

Every ~3 arcsecond patch of the celestial sphere gets a stable, unique
three-word name. Encoding quantizes a coordinate to its patch; decoding
returns the patch center. Names only round-trip between installations
sharing the same vocabulary, grid resolution, and cipher constants.

Examples:
  starhash encode --ra 321.4214 --dec -54.21231   # Name for a coordinate
  starhash decode gathering-equinox-approach      # Coordinate for a name
  starhash info                                   # Grid and vocabulary properties`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		if err := logger.Initialize(verbosity, false); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")

	rootCmd.AddCommand(commands.EncodeCmd)
	rootCmd.AddCommand(commands.DecodeCmd)
	rootCmd.AddCommand(commands.InfoCmd)
	rootCmd.AddCommand(commands.WordlistCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
