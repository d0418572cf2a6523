package commands

import (
	"encoding/json"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/starhash/starhash/errors"
)

// EncodeCmd represents the encode command
var EncodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Name the sky patch containing a coordinate",
	Long: `Quantize a coordinate to its ~3 arcsecond sky patch and print the
patch's three-word name.

Right ascension outside [0, 360) is wrapped; declination must lie in
[-90, 90].

Examples:
  starhash encode --ra 321.4214 --dec -54.21231
  starhash encode -r 83.822 -d -5.391 --json`,
	RunE: runEncode,
}

var (
	encodeRaFlag  float64
	encodeDecFlag float64
)

func init() {
	EncodeCmd.Flags().Float64VarP(&encodeRaFlag, "ra", "r", 0, "Right ascension in degrees")
	EncodeCmd.Flags().Float64VarP(&encodeDecFlag, "dec", "d", 0, "Declination in degrees")
	EncodeCmd.Flags().BoolP("json", "j", false, "Output as JSON")
	EncodeCmd.MarkFlagRequired("ra")
	EncodeCmd.MarkFlagRequired("dec")
}

func runEncode(cmd *cobra.Command, args []string) error {
	sh, err := newInstance()
	if err != nil {
		return err
	}

	name, err := sh.EncodeCoordinate(encodeRaFlag, encodeDecFlag)
	if err != nil {
		if errors.IsInvalidCoordinateError(err) {
			return errors.WithHint(err, "declination must be within [-90, 90] degrees")
		}
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		out, err := json.Marshal(map[string]interface{}{
			"name": name,
			"ra":   encodeRaFlag,
			"dec":  encodeDecFlag,
		})
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	pterm.Printf("%s %s\n", pterm.Gray("→"), pterm.LightGreen(name))
	return nil
}
