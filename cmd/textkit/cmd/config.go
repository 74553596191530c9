package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/textkit/foundation/core/config"

	"github.com/msto63/textkit/internal/settings"
)

var configFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Konfiguration anzeigen und prüfen",
	Long: `Zeigt die wirksame Konfiguration, das JSON-Schema der
Konfigurationsdatei und die gesuchten Pfade an.

Beispiele:
  textkit config show
  textkit config show --format yaml
  textkit config schema > textkit.schema.json
  textkit config validate textkit.toml`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Wirksame Einstellungen ausgeben (Datei, Umgebung, Standardwerte)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := settings.Encode(app.store.Get(), configFormat)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

var configSchemaCmd = &cobra.Command{
	Use:         "schema",
	Short:       "JSON-Schema der Konfigurationsdatei ausgeben",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipSetup: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := settings.Schema()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Verwendete und gesuchte Konfigurationsdateien anzeigen",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		if path := app.config.FilePath(); path != "" {
			fmt.Fprintf(w, "Verwendet: %s\n", path)
		} else {
			fmt.Fprintln(w, "Verwendet: keine Datei, nur Standardwerte")
		}

		fmt.Fprintln(w, "Gesucht:")
		for _, path := range config.ListPossibleConfigFiles(config.DefaultDiscoveryOptions(settings.AppName)) {
			fmt.Fprintf(w, "  %s\n", path)
		}
		return nil
	},
}

var configValidateCmd = &cobra.Command{
	Use:         "validate [datei]",
	Short:       "Konfigurationsdatei prüfen",
	Args:        cobra.MaximumNArgs(1),
	Annotations: map[string]string{skipSetup: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if len(args) > 0 {
			path = args[0]
		}

		cfg, err := settings.Load(settings.LoadOptions{Path: path})
		if err != nil {
			return err
		}
		s, err := settings.FromConfig(cfg)
		if err != nil {
			return err
		}

		name := cfg.FilePath()
		if name == "" {
			name = "Standardwerte"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Konfiguration gültig: %s (%d Makros, %d Aliase)\n",
			name, len(s.Macros), len(s.Aliases))
		return nil
	},
}

func init() {
	configShowCmd.Flags().StringVarP(&configFormat, "format", "f", "toml", "Ausgabeformat: toml, yaml oder json")

	configCmd.AddCommand(configShowCmd, configSchemaCmd, configPathCmd, configValidateCmd)
	rootCmd.AddCommand(configCmd)
}
