package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/starhash/starhash/config"
	"github.com/starhash/starhash/errors"
)

// ConfigCmd represents the config command
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and manage configuration",
	Long: `Inspect the merged configuration or write a starting config file.

Configuration merges system, user, and project TOML files, with
STARHASH_* environment variables taking precedence.

Examples:
  starhash config show
  starhash config init`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the merged configuration",
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration to the user config file",
	RunE:  runConfigInit,
}

func init() {
	configShowCmd.Flags().BoolP("json", "j", false, "Output as JSON")
	ConfigCmd.AddCommand(configShowCmd)
	ConfigCmd.AddCommand(configInitCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		out, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	pterm.Printf("%s %s\n", pterm.Gray("grid.nside:"), pterm.White(fmt.Sprintf("%d", cfg.Grid.Nside)))
	pterm.Printf("%s %s\n", pterm.Gray("cipher.key:"), pterm.White(cfg.Cipher.Key))
	pterm.Printf("%s %s\n", pterm.Gray("cipher.tweak:"), pterm.White(cfg.Cipher.Tweak))
	if cfg.Vocabulary.Path != "" {
		pterm.Printf("%s %s\n", pterm.Gray("vocabulary.path:"), pterm.White(cfg.Vocabulary.Path))
	} else {
		pterm.Printf("%s %s\n", pterm.Gray("vocabulary.path:"), pterm.Gray("(embedded)"))
	}
	pterm.Printf("%s %s\n", pterm.Gray("name.separator:"), pterm.White(fmt.Sprintf("%q", cfg.Name.Separator)))
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := config.UserConfigPath()
	if path == "" {
		return errors.New("could not determine user config path")
	}

	if _, err := os.Stat(path); err == nil {
		return errors.Newf("config file already exists at %s", path)
	}

	if err := config.WriteDefault(path); err != nil {
		return err
	}

	pterm.Printf("%s %s\n", pterm.LightGreen("✓"), pterm.White(fmt.Sprintf("Wrote default config to %s", path)))
	return nil
}
