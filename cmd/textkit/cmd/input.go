package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/msto63/textkit/foundation/core/errors"

	"github.com/msto63/textkit/internal/registry"
)

// readInput takes the text from the arguments (a file name or literal
// words) or, without arguments, from piped stdin. One trailing newline is
// dropped so `echo text | textkit ...` behaves like an argument.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		if info, err := os.Stat(args[0]); err == nil && !info.IsDir() && len(args) == 1 {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return "", errors.OperationFailed(errors.ModuleCLI, "read_input", err)
			}
			return trimNewline(string(data)), nil
		}
		return strings.Join(args, " "), nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok {
		stat, err := f.Stat()
		if err != nil || stat.Mode()&os.ModeCharDevice != 0 {
			return "", errors.InvalidInput(errors.ModuleCLI, "read_input", nil, "text argument, file or piped input")
		}
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", errors.OperationFailed(errors.ModuleCLI, "read_input", err)
	}
	return trimNewline(string(data)), nil
}

func trimNewline(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}

func writeOutput(cmd *cobra.Command, text string) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), text)
	return err
}

// flagArgs turns the flags set on the command line into operation args.
// Dashes become underscores (--word-wrap → word_wrap), slices are joined
// with commas.
func flagArgs(cmd *cobra.Command) registry.Args {
	args := registry.Args{}
	cmd.LocalNonPersistentFlags().VisitAll(func(f *pflag.Flag) {
		if !f.Changed {
			return
		}
		key := strings.ReplaceAll(f.Name, "-", "_")
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			args[key] = strings.Join(sv.GetSlice(), ",")
			return
		}
		args[key] = f.Value.String()
	})
	return args
}

// runOperation returns a RunE that calls the registry operation name with
// the command's flags as args
func runOperation(name string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		text, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		out, err := app.registry.Call(name, text, flagArgs(cmd))
		if err != nil {
			return err
		}
		return writeOutput(cmd, out)
	}
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
