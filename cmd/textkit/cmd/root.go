package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/msto63/textkit/foundation/core/config"
	tkerror "github.com/msto63/textkit/foundation/core/error"
	"github.com/msto63/textkit/foundation/core/log"
	"github.com/msto63/textkit/foundation/utils/stringx"

	"github.com/msto63/textkit/internal/registry"
	"github.com/msto63/textkit/internal/settings"
	"github.com/msto63/textkit/pkg/core/cache"
)

var (
	cfgFile     string
	verbose     bool
	watchConfig bool
	app     *appContext
)

// skipSetup marks commands that run without loading the configuration
const skipSetup = "textkit/skip-setup"

type appContext struct {
	config   *config.Config
	store    *settings.Store
	registry *registry.Registry
	results  *cache.Cache[string]
	logger   *log.Logger
}

var rootCmd = &cobra.Command{
	Use:   "textkit",
	Short: "textkit - Textwerkzeuge für die Kommandozeile",
	Long: `textkit bricht Text um, kürzt ihn, erzeugt Auszüge und füllt
Platzhalter in Vorlagen.

Operationen:
  wrap, wrap-block  - Text auf eine Zeilenbreite umbrechen
  truncate, tail    - Text vorne oder hinten kürzen (auch HTML)
  excerpt           - Auszug um eine Fundstelle
  insert, clean     - Platzhalter füllen und Reste entfernen
  highlight, slug   - Markieren, URL-Slugs
  run               - Beliebige Operation oder Kette ausführen

Konfiguration: ./textkit.toml oder ~/.config/textkit/textkit.toml,
Umgebungsvariablen mit dem Präfix TEXTKIT_ (z.B. TEXTKIT_WRAP_WIDTH=60).
Mit --watch werden Änderungen an der Datei während eines laufenden
Aufrufs (z.B. run --lines) übernommen.`,
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

// Execute runs the root command and prints a failure to stderr
func Execute() error {
	err := rootCmd.Execute()
	if app != nil {
		// post-run hooks are skipped when a command fails
		app.config.StopWatching()
	}
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

// ExitCode maps an error to the process exit status
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return tkerror.GetCode(err).ExitCode()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (default: textkit.toml suchen)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output")
	rootCmd.PersistentFlags().BoolVar(&watchConfig, "watch", false, "Config-Datei überwachen und Änderungen sofort übernehmen")
}

func setup(cmd *cobra.Command, _ []string) error {
	if cmd.Annotations[skipSetup] == "true" {
		return nil
	}

	bootstrap := log.NewWithConfig(log.Config{
		Level:  log.LevelWarn,
		Format: log.FormatText,
		Output: cmd.ErrOrStderr(),
		Name:   settings.AppName,
	})
	if verbose {
		bootstrap = bootstrap.WithLevel(log.LevelDebug)
	}

	cfg, err := settings.Load(settings.LoadOptions{Path: cfgFile, Watch: watchConfig, Logger: bootstrap})
	if err != nil {
		return err
	}
	store, err := settings.NewStore(cfg, bootstrap)
	if err != nil {
		cfg.StopWatching()
		return err
	}

	s := store.Get()
	logger, err := s.Logger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	if verbose {
		logger = logger.WithLevel(log.LevelDebug)
	}
	logger = logger.WithField("run_id", stringx.UUID())

	var results *cache.Cache[string]
	if cacheConfig, ok := s.CacheConfig(); ok {
		results = cache.New[string](cacheConfig)
	}

	reg := registry.New(registry.Options{
		Logger:              logger,
		EnableAliases:       true,
		EnableAbbreviations: true,
		Cache:               results,
	})
	if err := registry.RegisterBuiltins(reg, store); err != nil {
		return err
	}
	applyUserOperations(reg, store, s, logger)
	store.OnUpdate(func(updated settings.Settings) {
		applyUserOperations(reg, store, updated, logger)
	})

	app = &appContext{config: cfg, store: store, registry: reg, results: results, logger: logger}
	logger.Debug("textkit ready", log.Fields{
		"config":     cfg.FilePath(),
		"operations": len(reg.Names()),
	})
	return nil
}

func teardown(_ *cobra.Command, _ []string) error {
	if app == nil {
		return nil
	}
	app.config.StopWatching()
	if app.results == nil {
		return nil
	}
	hits, misses, rate := app.results.Stats()
	app.logger.Debug("result cache", log.Fields{"hits": hits, "misses": misses, "hitRate": rate})
	return nil
}

// applyUserOperations registers the configured macros and aliases. Entries
// that clash with built-ins are reported and skipped.
func applyUserOperations(reg *registry.Registry, src registry.SettingsSource, s settings.Settings, logger *log.Logger) {
	if err := reg.SyncTemplates(s.Macros, src); err != nil {
		logger.WarnWithErr("some macros were not registered", err)
	}
	for alias, target := range s.Aliases {
		if existing, ok := reg.Aliases()[alias]; ok && existing == target {
			continue
		}
		if err := reg.RegisterAlias(alias, target); err != nil {
			logger.WarnWithErr("alias not registered", err, log.Fields{"alias": alias, "target": target})
		}
	}
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Fehler: %v\n", err)
}
