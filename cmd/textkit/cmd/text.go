package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/textkit/foundation/utils/stringx"
)

var wrapCmd = &cobra.Command{
	Use:   "wrap [text|datei]",
	Short: "Text auf eine Zeilenbreite umbrechen",
	Long: `Bricht Text auf eine maximale Zeilenbreite um. Vorhandene
Zeilenumbrüche bleiben erhalten, jeder Absatz wird einzeln umbrochen.

Beispiele:
  textkit wrap --width 10 "The quick brown fox jumps"
  textkit wrap --indent "  " --indent-at 1 notizen.txt
  textkit wrap --word-wrap=false -w 4 "abcdefghij"
  cat README.md | textkit wrap -w 60`,
	RunE: runOperation("wrap"),
}

var wrapBlockCmd = &cobra.Command{
	Use:   "wrap-block [text|datei]",
	Short: "Text als Block umbrechen, Einrückung zählt zur Breite",
	Long: `Wie wrap, aber Zeilen ab --indent-at werden als ein Block neu
umbrochen und die Einrückung wird von der Breite abgezogen.

Beispiele:
  textkit wrap-block -w 20 --indent "    " --indent-at 1 "Titel und ein langer Absatz"`,
	RunE: runOperation("wrap-block"),
}

var truncateCmd = &cobra.Command{
	Use:   "truncate [text|datei]",
	Short: "Text am Ende kürzen",
	Long: `Kürzt Text auf eine maximale Länge in Zeichen und hängt die
Auslassung an. Mit --html werden Tags nicht mitgezählt und offene Tags
wieder geschlossen.

Beispiele:
  textkit truncate -l 8 "Hello World"
  textkit truncate -l 8 --html "<p>Hello <b>World</b></p>"
  textkit truncate -l 12 --exact=false --ellipsis " …" artikel.txt`,
	RunE: runOperation("truncate"),
}

var tailCmd = &cobra.Command{
	Use:   "tail [text|datei]",
	Short: "Text am Anfang kürzen",
	Long: `Kürzt Text von vorne und behält das Ende.

Beispiele:
  textkit tail -l 8 "Hello World"
  textkit tail -l 12 --exact=false "Once upon a time in a land far away"`,
	RunE: runOperation("tail"),
}

var excerptCmd = &cobra.Command{
	Use:   "excerpt [text|datei]",
	Short: "Auszug um eine Fundstelle",
	Long: `Sucht eine Phrase (ohne Groß-/Kleinschreibung) und gibt sie mit
--radius Zeichen Kontext auf beiden Seiten aus. Wird die Phrase nicht
gefunden, wird der Anfang des Texts ausgegeben.

Beispiele:
  textkit excerpt --phrase brown --radius 5 "The quick brown fox jumps over the lazy dog"
  textkit excerpt -p Fehler server.log`,
	RunE: runOperation("excerpt"),
}

var highlightCmd = &cobra.Command{
	Use:   "highlight [text|datei]",
	Short: "Phrasen im Text markieren",
	Long: `Markiert alle Vorkommen der Phrasen. Das Format enthält $1 für
den gefundenen Text.

Beispiele:
  textkit highlight --phrases fox,dog "The quick brown fox jumps over the lazy dog"
  textkit highlight -p Fehler --format '**$1**' --html bericht.html`,
	RunE: runOperation("highlight"),
}

var slugCmd = &cobra.Command{
	Use:   "slug [text]",
	Short: "URL-Slug erzeugen",
	Long: `Erzeugt aus einem Titel einen URL-tauglichen Slug.

Beispiele:
  textkit slug "Über Straßen & Brücken"
  textkit slug --separator _ "Hello World"`,
	RunE: runOperation("slug"),
}

func init() {
	for _, c := range []*cobra.Command{wrapCmd, wrapBlockCmd} {
		c.Flags().IntP("width", "w", stringx.DefaultWrapWidth, "Maximale Zeilenbreite")
		c.Flags().Bool("word-wrap", true, "Nur an Wortgrenzen umbrechen")
		c.Flags().String("indent", "", "Einrückung für Zeilen ab --indent-at")
		c.Flags().Int("indent-at", 0, "Erste eingerückte Zeile (0-basiert)")
	}

	truncateCmd.Flags().Bool("html", false, "HTML-Tags berücksichtigen")
	for _, c := range []*cobra.Command{truncateCmd, tailCmd} {
		c.Flags().IntP("length", "l", 100, "Maximale Länge in Zeichen")
		c.Flags().String("ellipsis", stringx.DefaultEllipsis, "Auslassungszeichen")
		c.Flags().Bool("exact", true, "Exakt kürzen statt an Wortgrenzen")
	}

	excerptCmd.Flags().StringP("phrase", "p", "", "Gesuchte Phrase")
	excerptCmd.Flags().IntP("radius", "r", 100, "Zeichen Kontext pro Seite")
	excerptCmd.Flags().String("ellipsis", stringx.DefaultEllipsis, "Auslassungszeichen")
	_ = excerptCmd.MarkFlagRequired("phrase")

	highlightCmd.Flags().StringSliceP("phrases", "p", nil, "Phrasen (kommagetrennt)")
	highlightCmd.Flags().String("format", stringx.DefaultHighlightFormat, "Markierung, $1 steht für den Fund")
	highlightCmd.Flags().Bool("html", false, "Nur Text außerhalb von Tags markieren")
	_ = highlightCmd.MarkFlagRequired("phrases")

	slugCmd.Flags().String("separator", "-", "Trennzeichen")

	rootCmd.AddCommand(wrapCmd, wrapBlockCmd, truncateCmd, tailCmd, excerptCmd, highlightCmd, slugCmd)
}
