package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/textkit/foundation/core/errors"
)

var caseStyles = []string{"snake", "kebab", "camel", "pascal", "title"}

var caseCmd = &cobra.Command{
	Use:   "case <snake|kebab|camel|pascal|title> [text]",
	Short: "Schreibweise umwandeln",
	Long: `Wandelt Bezeichner oder Sätze in eine andere Schreibweise um.

Beispiele:
  textkit case snake "HelloWorld"
  textkit case camel "user_account_id"
  echo "the lord of the rings" | textkit case title`,
	Args:      cobra.MinimumNArgs(1),
	ValidArgs: caseStyles,
	RunE: func(cmd *cobra.Command, args []string) error {
		style := args[0]
		if !contains(caseStyles, style) {
			return errors.InvalidInput(errors.ModuleCLI, "case", style, "snake, kebab, camel, pascal or title")
		}
		text, err := readInput(cmd, args[1:])
		if err != nil {
			return err
		}
		out, err := app.registry.Call(style, text, nil)
		if err != nil {
			return err
		}
		return writeOutput(cmd, out)
	},
}

func init() {
	rootCmd.AddCommand(caseCmd)
}
