package cmd

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tkerror "github.com/msto63/textkit/foundation/core/error"
	"github.com/msto63/textkit/foundation/core/errors"

	"github.com/msto63/textkit/pkg/core/version"
)

const baseConfig = `
[log]
level = "error"

[macros]
greet = "Hello :input!"

[aliases]
shorten = "truncate"
`

// resetFlags restores every flag to its default so runs do not leak into
// each other through the package-level command tree
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "textkit.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// executeCommand runs the CLI with a config file and stdin and captures
// both output streams
func executeCommand(t *testing.T, configContent, stdin string, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd)
	app = nil

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append(append([]string{}, args...), "--config", writeConfig(t, configContent)))

	err := Execute()
	return stdout.String(), stderr.String(), err
}

func TestTextCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"wrap", []string{"wrap", "--width", "10", "The quick brown fox jumps"}, "The quick\nbrown fox\njumps"},
		{"truncate", []string{"truncate", "-l", "8", "Hello World"}, "Hello..."},
		{"truncate html", []string{"truncate", "-l", "8", "--html", "<p>Hello <b>World</b></p>"}, "<p>Hello...</p>"},
		{"truncate words", []string{"truncate", "Hello", "World"}, "Hello World"},
		{"excerpt", []string{"excerpt", "--phrase", "brown", "--radius", "5", "The quick brown fox jumps over the lazy dog"}, "...ck brown fo..."},
		{"highlight", []string{"highlight", "--phrases", "fox,dog", "--format", "[$1]", "The quick brown fox jumps over the lazy dog"}, "The quick brown [fox] jumps over the lazy [dog]"},
		{"slug", []string{"slug", "Hello, World & Friends!"}, "hello-world-friends"},
		{"insert named", []string{"insert", ":name is :age years old.", "--set", "name=Bob", "--set", "age=65"}, "Bob is 65 years old."},
		{"insert positional", []string{"insert", "? + ? = ?", "--values", "1,2,3"}, "1 + 2 = 3"},
		{"clean", []string{"clean", "Dear :title Smith"}, "Dear Smith"},
		{"case", []string{"case", "snake", "HelloWorld"}, "hello_world"},
		{"run", []string{"run", "truncate", "--arg", "length=8", "Hello World"}, "Hello..."},
		{"run chain", []string{"run", "strip-tags,truncate", "--arg", "length=8", "<b>Hello World</b>"}, "Hello..."},
		{"run macro", []string{"run", "greet", "World"}, "Hello World!"},
		{"run alias", []string{"run", "shorten", "-a", "length=8", "Hello World"}, "Hello..."},
		{"run abbreviation", []string{"run", "trunc", "-a", "length=8", "Hello World"}, "Hello..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := executeCommand(t, baseConfig, "", tt.args...)
			require.NoError(t, err, stderr)
			assert.Equal(t, tt.want+"\n", stdout)
		})
	}
}

func TestInputFromStdin(t *testing.T) {
	stdout, _, err := executeCommand(t, baseConfig, "The quick brown fox jumps\n", "wrap", "-w", "10")
	require.NoError(t, err)
	assert.Equal(t, "The quick\nbrown fox\njumps\n", stdout)
}

func TestInputFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("Hello World\n"), 0644))

	stdout, _, err := executeCommand(t, baseConfig, "", "truncate", "-l", "8", path)
	require.NoError(t, err)
	assert.Equal(t, "Hello...\n", stdout)
}

func TestSettingsApplyToCommands(t *testing.T) {
	config := baseConfig + `
[wrap]
width = 10

[truncate]
length = 8
ellipsis = "~"
`
	stdout, _, err := executeCommand(t, config, "", "wrap", "The quick brown fox jumps")
	require.NoError(t, err)
	assert.Equal(t, "The quick\nbrown fox\njumps\n", stdout)

	stdout, _, err = executeCommand(t, config, "", "truncate", "Hello World")
	require.NoError(t, err)
	assert.Equal(t, "Hello W~\n", stdout)

	stdout, _, err = executeCommand(t, config, "", "truncate", "--ellipsis", "...", "Hello World")
	require.NoError(t, err)
	assert.Equal(t, "Hello...\n", stdout, "flags override settings")
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code tkerror.Code
	}{
		{"unknown operation", []string{"run", "nope", "text"}, tkerror.CodeNotFound},
		{"ambiguous abbreviation", []string{"run", "wr", "text"}, tkerror.CodeInvalidInput},
		{"bad arg", []string{"run", "truncate", "--arg", "length", "text"}, tkerror.CodeInvalidInput},
		{"bad number", []string{"run", "truncate", "--arg", "length=many", "text"}, tkerror.CodeInvalidInput},
		{"set and values", []string{"insert", "? :a", "--set", "a=1", "--values", "2"}, tkerror.CodeInvalidInput},
		{"clean mode", []string{"insert", ":a", "--clean", "pdf"}, tkerror.CodeInvalidInput},
		{"case style", []string{"case", "shout", "text"}, tkerror.CodeInvalidInput},
		{"tail html", []string{"run", "tail", "-a", "html=true", "-a", "length=3", "<b>Hello</b>"}, tkerror.CodeUnsupportedMode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, stderr, err := executeCommand(t, baseConfig, "", tt.args...)
			require.Error(t, err)
			assert.True(t, tkerror.HasCode(err, tt.code), "got %v", err)
			assert.Equal(t, 2, ExitCode(err))
			assert.Contains(t, stderr, "Fehler:")
		})
	}
}

func TestRequiredFlags(t *testing.T) {
	_, _, err := executeCommand(t, baseConfig, "", "excerpt", "some text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "phrase")
}

func TestInvalidConfig(t *testing.T) {
	_, stderr, err := executeCommand(t, "[wrap]\nwidth = 0\n", "", "wrap", "text")
	require.Error(t, err)
	assert.Contains(t, stderr, "Fehler:")
}

func TestOpsCommand(t *testing.T) {
	stdout, _, err := executeCommand(t, baseConfig, "", "ops")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Operationen:")
	assert.Contains(t, stdout, "wrap")
	assert.Contains(t, stdout, "builtin")
	assert.Contains(t, stdout, "greet")
	assert.Contains(t, stdout, "macro")
	assert.Contains(t, stdout, "Aliase:")
	assert.Contains(t, stdout, "shorten")
}

func TestMacroCannotShadowBuiltin(t *testing.T) {
	config := "[log]\nlevel = \"error\"\n\n[macros]\nwrap = \"nope :input\"\n"
	stdout, _, err := executeCommand(t, config, "", "wrap", "-w", "10", "The quick brown fox jumps")
	require.NoError(t, err)
	assert.Equal(t, "The quick\nbrown fox\njumps\n", stdout)
}

func TestConfigShow(t *testing.T) {
	stdout, _, err := executeCommand(t, baseConfig+"\n[wrap]\nwidth = 60\n", "", "config", "show", "--format", "json")
	require.NoError(t, err)

	var shown map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(stdout), &shown))
	wrap, ok := shown["wrap"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(60), wrap["width"])
	assert.Equal(t, map[string]interface{}{"greet": "Hello :input!"}, shown["macros"])

	stdout, _, err = executeCommand(t, baseConfig, "", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "[wrap]")

	_, _, err = executeCommand(t, baseConfig, "", "config", "show", "--format", "ini")
	assert.True(t, tkerror.HasCode(err, tkerror.CodeInvalidInput))
}

func TestConfigSchema(t *testing.T) {
	stdout, _, err := executeCommand(t, baseConfig, "", "config", "schema")
	require.NoError(t, err)

	var schema map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(stdout), &schema))
	assert.Equal(t, "textkit configuration", schema["title"])
}

func TestConfigPath(t *testing.T) {
	stdout, _, err := executeCommand(t, baseConfig, "", "config", "path")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Verwendet: ")
	assert.Contains(t, stdout, "textkit.toml")
	assert.Contains(t, stdout, "Gesucht:")
}

func TestConfigValidate(t *testing.T) {
	path := writeConfig(t, baseConfig)
	stdout, _, err := executeCommand(t, baseConfig, "", "config", "validate", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Konfiguration gültig")
	assert.Contains(t, stdout, "1 Makros, 1 Aliase")

	bad := writeConfig(t, "[placeholder]\nformat = \"no marker\"\n")
	_, _, err = executeCommand(t, baseConfig, "", "config", "validate", bad)
	assert.True(t, tkerror.HasCode(err, tkerror.CodeValidationFailed), "got %v", err)
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := executeCommand(t, baseConfig, "", "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "textkit v"+version.Release)
	assert.Contains(t, stdout, "Go Version:")
	assert.Contains(t, stdout, "engine:")

	stdout, _, err = executeCommand(t, baseConfig, "", "version", "--json")
	require.NoError(t, err)
	var info version.Info
	require.NoError(t, json.Unmarshal([]byte(stdout), &info))
	assert.Equal(t, version.Release, info.Release)
	assert.Equal(t, version.Engine, info.Parts["engine"])
}

func TestVersionSkipsBrokenConfig(t *testing.T) {
	_, _, err := executeCommand(t, "[wrap]\nwidth = 0\n", "", "version")
	assert.NoError(t, err)
}

func TestFlagArgs(t *testing.T) {
	c := &cobra.Command{Use: "probe", Run: func(*cobra.Command, []string) {}}
	c.Flags().Bool("word-wrap", true, "")
	c.Flags().Int("width", 72, "")
	c.Flags().StringSlice("phrases", nil, "")
	c.Flags().String("indent", "", "")
	require.NoError(t, c.ParseFlags([]string{"--word-wrap=false", "--phrases", "a,b", "--phrases", "c"}))

	args := flagArgs(c)
	assert.Equal(t, "false", args["word_wrap"])
	assert.Equal(t, "a,b,c", args["phrases"])
	assert.NotContains(t, args, "width", "unset flags leave the settings in charge")
	assert.NotContains(t, args, "indent")
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 1, ExitCode(stderrors.New("plain")))
	assert.Equal(t, 2, ExitCode(errors.InvalidInput(errors.ModuleCLI, "test", "x", "y")))
	assert.Equal(t, 3, ExitCode(errors.ConfigInvalid("wrap.width", 0, "too small")))
}

func TestRunLines(t *testing.T) {
	stdout, stderr, err := executeCommand(t, baseConfig, "Hello World\nfoo\nHello again and again\n",
		"run", "--lines", "truncate", "-a", "length=8")
	require.NoError(t, err, stderr)
	assert.Equal(t, "Hello...\nfoo\nHello...\n", stdout)
}

func TestRunLinesRejectsTextArguments(t *testing.T) {
	_, _, err := executeCommand(t, baseConfig, "", "run", "--lines", "truncate", "Hello")
	assert.True(t, tkerror.HasCode(err, tkerror.CodeInvalidInput), "got %v", err)
}

func TestWatchFlag(t *testing.T) {
	stdout, stderr, err := executeCommand(t, baseConfig, "World\n", "run", "--watch", "--lines", "greet")
	require.NoError(t, err, stderr)
	assert.Equal(t, "Hello World!\n", stdout)

	require.NotNil(t, app)
	assert.NotEmpty(t, app.config.FilePath())
	assert.False(t, app.config.IsWatching(), "watcher still running after the command")
}
