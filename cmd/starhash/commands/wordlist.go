package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/starhash/starhash/errors"
	"github.com/starhash/starhash/vocab"
)

// WordlistCmd represents the wordlist command
var WordlistCmd = &cobra.Command{
	Use:   "wordlist",
	Short: "Work with vocabulary word lists",
	Long: `Build and inspect vocabulary word lists.

Word list files carry one word per line. Blank lines and lines starting
with '#' are skipped, and diceware-style lines keep only the field after
the last tab.

Examples:
  starhash wordlist collate merged.txt base.txt extra.txt
  starhash wordlist check mylist.txt`,
}

var wordlistCollateCmd = &cobra.Command{
	Use:   "collate OUT IN...",
	Short: "Merge word lists into one sorted, deduplicated file",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runWordlistCollate,
}

var wordlistCheckCmd = &cobra.Command{
	Use:   "check FILE",
	Short: "Validate a word list and report its size and checksum",
	Args:  cobra.ExactArgs(1),
	RunE:  runWordlistCheck,
}

func init() {
	WordlistCmd.AddCommand(wordlistCollateCmd)
	WordlistCmd.AddCommand(wordlistCheckCmd)
}

func runWordlistCollate(cmd *cobra.Command, args []string) error {
	out := args[0]
	words, err := vocab.Collate(args[1:]...)
	if err != nil {
		return err
	}

	content := strings.Join(words, "\n") + "\n"
	if err := os.WriteFile(out, []byte(content), 0644); err != nil {
		return errors.Wrapf(err, "failed to write word list to %s", out)
	}

	pterm.Printf("%s %s\n", pterm.LightGreen("✓"),
		pterm.White(fmt.Sprintf("Wrote %d words to %s", len(words), out)))
	return nil
}

func runWordlistCheck(cmd *cobra.Command, args []string) error {
	v, err := vocab.LoadFile(args[0])
	if err != nil {
		return err
	}

	pterm.Printf("%s %s\n", pterm.Gray("words:"), pterm.White(fmt.Sprintf("%d", v.Size())))
	pterm.Printf("%s %s\n", pterm.Gray("checksum:"), pterm.White(v.Checksum()))
	return nil
}
