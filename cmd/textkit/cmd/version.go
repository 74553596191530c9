package cmd

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/msto63/textkit/pkg/core/version"
)

var versionJSON bool

var versionCmd = &cobra.Command{
	Use:         "version",
	Short:       "Zeigt die Version an",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipSetup: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		info := version.Current()
		w := cmd.OutOrStdout()

		if versionJSON {
			out, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(w, string(out))
			return nil
		}

		fmt.Fprintf(w, "textkit v%s\n", info.Release)
		fmt.Fprintf(w, "  Git Commit: %s\n", info.GitCommit)
		fmt.Fprintf(w, "  Build Date: %s\n", info.BuildDate)
		fmt.Fprintf(w, "  Go Version: %s\n", info.GoVersion)
		fmt.Fprintf(w, "  OS/Arch:    %s\n", info.Platform)

		parts := make([]string, 0, len(info.Parts))
		for name := range info.Parts {
			parts = append(parts, name)
		}
		sort.Strings(parts)
		for _, name := range parts {
			fmt.Fprintf(w, "  %-11s %s\n", name+":", info.Parts[name])
		}
		return nil
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Ausgabe als JSON")
	rootCmd.AddCommand(versionCmd)
}
