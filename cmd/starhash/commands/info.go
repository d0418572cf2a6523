package commands

import (
	"encoding/json"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// InfoCmd represents the info command
var InfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show grid, vocabulary, and epoch properties",
	Long: `Display the properties of the active naming scheme: grid resolution,
patch count, vocabulary size, coverage factor, and the epoch descriptor
that determines name compatibility between installations.

Examples:
  starhash info
  starhash info --json`,
	RunE: runInfo,
}

func init() {
	InfoCmd.Flags().BoolP("json", "j", false, "Output as JSON")
}

func runInfo(cmd *cobra.Command, args []string) error {
	sh, err := newInstance()
	if err != nil {
		return err
	}

	grid := sh.Grid()
	epoch := sh.Epoch()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		out, err := json.MarshalIndent(map[string]interface{}{
			"nside":             grid.Nside(),
			"npix":              grid.Npix(),
			"resolution_arcsec": grid.ResolutionArcsec(),
			"words":             sh.Vocabulary().Size(),
			"coverage":          sh.Coverage(),
			"epoch":             epoch,
		}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	pterm.Printf("%s\n", pterm.White("Grid"))
	pterm.Printf("  %s %s\n", pterm.Gray("nside:"), pterm.White(fmt.Sprintf("%d", grid.Nside())))
	pterm.Printf("  %s %s\n", pterm.Gray("patches:"), pterm.White(fmt.Sprintf("%d", grid.Npix())))
	pterm.Printf("  %s %s\n", pterm.Gray("resolution:"), pterm.White(fmt.Sprintf("%.3f arcsec", grid.ResolutionArcsec())))

	pterm.Printf("%s\n", pterm.White("Vocabulary"))
	pterm.Printf("  %s %s\n", pterm.Gray("words:"), pterm.White(fmt.Sprintf("%d", sh.Vocabulary().Size())))
	pterm.Printf("  %s %s\n", pterm.Gray("coverage:"), pterm.White(fmt.Sprintf("%.3fx", sh.Coverage())))
	pterm.Printf("  %s %s\n", pterm.Gray("checksum:"), pterm.White(epoch.VocabChecksum[:16]))

	pterm.Printf("%s\n", pterm.White("Epoch"))
	pterm.Printf("  %s\n", pterm.LightGreen(epoch.String()))
	return nil
}
