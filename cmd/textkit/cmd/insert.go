package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/textkit/foundation/core/errors"
	"github.com/msto63/textkit/foundation/utils/stringx"

	"github.com/msto63/textkit/internal/registry"
	"github.com/msto63/textkit/internal/settings"
)

var (
	insertSet    []string
	insertValues []string
	insertClean  string
)

var insertCmd = &cobra.Command{
	Use:   "insert [vorlage|datei]",
	Short: "Platzhalter in einer Vorlage füllen",
	Long: `Ersetzt benannte Platzhalter (:name) mit --set oder
Fragezeichen der Reihe nach mit --values. Marker, Escape-Zeichen und die
Bereinigung kommen aus dem Abschnitt [placeholder] der Konfiguration.

Beispiele:
  textkit insert ":name is :age years old." --set name=Bob --set age=65
  textkit insert "? + ? = ?" --values 1,2,3
  textkit insert "Dear :title :name" --set name=Smith --clean text`,
	RunE: runInsert,
}

var cleanCmd = &cobra.Command{
	Use:   "clean [text|datei]",
	Short: "Übrig gebliebene Platzhalter entfernen",
	Long: `Entfernt Platzhalter, die nicht gefüllt wurden, samt
verbindender Wörter (and/or). Mit --method html werden auch Attribute
entfernt, die nur aus Platzhaltern bestehen.

Beispiele:
  textkit clean "Hello :name and :other"
  textkit clean --method html '<img src=":src" alt="Bild">'`,
	RunE: runOperation("clean-insert"),
}

func init() {
	insertCmd.Flags().StringArrayVarP(&insertSet, "set", "s", nil, "Wert für einen Platzhalter (name=wert)")
	insertCmd.Flags().StringSliceVar(&insertValues, "values", nil, "Werte für ?-Platzhalter (kommagetrennt)")
	insertCmd.Flags().StringVar(&insertClean, "clean", "", "Reste entfernen: none, text oder html")

	cleanCmd.Flags().String("method", string(stringx.CleanText), "Methode: text oder html")
	cleanCmd.Flags().String("replacement", "", "Ersatz für entfernte Platzhalter")

	rootCmd.AddCommand(insertCmd, cleanCmd)
}

func runInsert(cmd *cobra.Command, args []string) error {
	template, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	opts := app.store.Get().PlaceholderOptions()
	switch insertClean {
	case "":
	case settings.CleanNone:
		opts.Clean = nil
	case settings.CleanText, settings.CleanHTML:
		opts.Clean = &stringx.CleanOptions{Method: stringx.CleanMethod(insertClean)}
	default:
		return errors.InvalidInput(errors.ModuleCLI, "insert", insertClean, "none, text or html")
	}

	var data any
	switch {
	case len(insertValues) > 0 && len(insertSet) > 0:
		return errors.InvalidInput(errors.ModuleCLI, "insert", "--set/--values", "either --set or --values")
	case len(insertValues) > 0:
		data = insertValues
	default:
		values, err := registry.ParseArgs(insertSet)
		if err != nil {
			return err
		}
		data = map[string]string(values)
	}

	out, err := stringx.Insert(template, data, opts)
	if err != nil {
		return err
	}
	return writeOutput(cmd, out)
}
