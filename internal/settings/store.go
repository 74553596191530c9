package settings

import (
	"slices"
	"sync"

	"github.com/msto63/textkit/foundation/core/config"
	"github.com/msto63/textkit/foundation/core/log"
)

// LoadOptions controls how the configuration file is found
type LoadOptions struct {
	Path   string      // Explicit file; empty searches the default locations
	Watch  bool        // Reload when the file changes
	Logger *log.Logger // Receives load, reload and rejection events
}

// Load reads the configuration file (or discovers it) with the textkit
// defaults and environment prefix applied
func Load(opts LoadOptions) (*config.Config, error) {
	loadOpts := config.LoadOptions{
		Format:    config.FormatAuto,
		EnvPrefix: EnvPrefix,
		Defaults:  DefaultValues(),
		Watch:     opts.Watch,
		Logger:    opts.Logger,
	}

	if opts.Path != "" {
		return config.LoadWithOptions(opts.Path, loadOpts)
	}

	discovery := config.DefaultDiscoveryOptions(AppName)
	discovery.Load = loadOpts
	return config.Discover(discovery)
}

// Store holds the current Settings and swaps them when the watched
// configuration reloads. A reload that fails validation is logged and the
// previous settings stay active.
type Store struct {
	mu       sync.RWMutex
	current  Settings
	logger   *log.Logger
	handlers []func(Settings)
}

// NewStore builds settings from cfg and follows its reloads
func NewStore(cfg *config.Config, logger *log.Logger) (*Store, error) {
	if logger == nil {
		logger = log.Discard()
	}
	s, err := FromConfig(cfg)
	if err != nil {
		return nil, err
	}

	store := &Store{current: s, logger: logger.WithName("settings")}
	if cfg != nil {
		cfg.OnChange(func(_, newConfig *config.Config) {
			store.apply(newConfig)
		})
	}
	return store, nil
}

// Get returns a copy of the current settings
func (st *Store) Get() Settings {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.current
}

// OnUpdate registers fn to run after new settings were accepted
func (st *Store) OnUpdate(fn func(Settings)) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.handlers = append(st.handlers, fn)
}

func (st *Store) apply(cfg *config.Config) {
	s, err := FromConfig(cfg)
	if err != nil {
		st.logger.WarnWithErr("rejected configuration update", err)
		return
	}

	st.mu.Lock()
	st.current = s
	handlers := slices.Clone(st.handlers)
	st.mu.Unlock()

	st.logger.Info("settings updated", log.Fields{
		"wrapWidth": s.Wrap.Width,
		"macros":    len(s.Macros),
	})
	for _, fn := range handlers {
		fn(s)
	}
}
