package commands

import (
	"encoding/json"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/starhash/starhash/version"
)

// VersionCmd represents the version command
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Display version, build, and platform information.

Examples:
  starhash version
  starhash version --json`,
	RunE: runVersion,
}

func init() {
	VersionCmd.Flags().BoolP("json", "j", false, "Output as JSON")
}

func runVersion(cmd *cobra.Command, args []string) error {
	info := version.Get()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		out, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	pterm.Printf("%s\n", pterm.LightGreen(info.String()))
	pterm.Printf("  %s %s\n", pterm.Gray("go:"), pterm.White(info.GoVersion))
	pterm.Printf("  %s %s\n", pterm.Gray("platform:"), pterm.White(info.Platform))
	return nil
}
