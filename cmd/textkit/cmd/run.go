package cmd

import (
	"bufio"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/textkit/foundation/core/errors"

	"github.com/msto63/textkit/internal/registry"
)

var (
	runArgs  []string
	runLines bool
)

// maxLineSize bounds a single stdin line in --lines mode
const maxLineSize = 1 << 20

var runCmd = &cobra.Command{
	Use:   "run <operation[,operation...]> [text|datei]",
	Short: "Operation oder Kette von Operationen ausführen",
	Long: `Führt eine registrierte Operation, ein Makro oder einen Alias
aus. Mehrere Operationen durch Komma getrennt werden nacheinander
angewendet, die Ausgabe einer Operation ist die Eingabe der nächsten.
Eindeutige Abkürzungen werden akzeptiert (z.B. "trunc").

Parameter werden mit --arg übergeben und gelten für alle Schritte.
Verfügbare Operationen: textkit ops

Beispiele:
  textkit run truncate --arg length=8 "Hello World"
  textkit run strip-tags,truncate --arg length=20 seite.html
  textkit run greet "World"          # Makro aus [macros]
  tail -f app.log | textkit run --watch --lines truncate -a length=80`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringArrayVarP(&runArgs, "arg", "a", nil, "Parameter für die Operation (name=wert)")
	runCmd.Flags().BoolVar(&runLines, "lines", false, "Stdin zeilenweise verarbeiten, eine Ausgabezeile je Eingabezeile")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	var names []string
	for _, name := range strings.Split(args[0], ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}

	opArgs, err := registry.ParseArgs(runArgs)
	if err != nil {
		return err
	}
	if runLines {
		if len(args) > 1 {
			return errors.InvalidInput(errors.ModuleCLI, "run", args[1:], "no text arguments with --lines")
		}
		return runEachLine(cmd, names, opArgs)
	}

	text, err := readInput(cmd, args[1:])
	if err != nil {
		return err
	}
	out, err := callOperations(names, text, opArgs)
	if err != nil {
		return err
	}
	return writeOutput(cmd, out)
}

// runEachLine applies the operations to every stdin line as it arrives.
// Settings reloaded in between (--watch) apply from the next line on.
func runEachLine(cmd *cobra.Command, names []string, opArgs registry.Args) error {
	scanner := bufio.NewScanner(cmd.InOrStdin())
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		out, err := callOperations(names, trimNewline(scanner.Text()), opArgs)
		if err != nil {
			return err
		}
		if err := writeOutput(cmd, out); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.OperationFailed(errors.ModuleCLI, "read_input", err)
	}
	return nil
}

func callOperations(names []string, text string, opArgs registry.Args) (string, error) {
	if len(names) == 1 {
		return app.registry.Call(names[0], text, opArgs)
	}
	return app.registry.Chain(names, text, opArgs)
}
