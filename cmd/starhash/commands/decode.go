package commands

import (
	"encoding/json"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/starhash/starhash/errors"
)

// DecodeCmd represents the decode command
var DecodeCmd = &cobra.Command{
	Use:   "decode NAME",
	Short: "Recover the coordinate a three-word name refers to",
	Long: `Decode a three-word name back to the center of its sky patch.

Word lookup is case-insensitive. A name only decodes correctly under the
vocabulary, grid resolution, and cipher constants it was issued with.

Examples:
  starhash decode gathering-equinox-approach
  starhash decode gathering-equinox-approach --json`,
	Args: cobra.ExactArgs(1),
	RunE: runDecode,
}

func init() {
	DecodeCmd.Flags().BoolP("json", "j", false, "Output as JSON")
}

func runDecode(cmd *cobra.Command, args []string) error {
	sh, err := newInstance()
	if err != nil {
		return err
	}

	ra, dec, err := sh.DecodeName(args[0])
	if err != nil {
		if errors.Is(err, errors.ErrPermutedIDOutOfRange) {
			return errors.WithHint(err, "the name may have been issued under a different vocabulary or resolution")
		}
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		out, err := json.Marshal(map[string]interface{}{
			"name": args[0],
			"ra":   ra,
			"dec":  dec,
		})
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	pterm.Printf("%s %s %s\n",
		pterm.Gray("→"),
		pterm.LightGreen(fmt.Sprintf("%.6f", ra)),
		pterm.LightGreen(fmt.Sprintf("%.6f", dec)))
	return nil
}
