package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var opsCmd = &cobra.Command{
	Use:   "ops",
	Short: "Verfügbare Operationen und Makros anzeigen",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()

		fmt.Fprintln(w, "Operationen:")
		for _, def := range app.registry.Definitions() {
			fmt.Fprintf(w, "  %-12s %-8s %s\n", def.Name, def.Kind, def.Summary)
		}

		aliases := app.registry.Aliases()
		if len(aliases) == 0 {
			return nil
		}
		names := make([]string, 0, len(aliases))
		for alias := range aliases {
			names = append(names, alias)
		}
		sort.Strings(names)

		fmt.Fprintln(w, "\nAliase:")
		for _, alias := range names {
			fmt.Fprintf(w, "  %-12s → %s\n", alias, aliases[alias])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(opsCmd)
}
