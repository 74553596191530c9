// ============================================================================
// textkit - Text Engine
// ============================================================================
//
// Package:     settings
// Description: Typed settings built from the foundation configuration
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package settings

import (
	"io"
	"strings"
	"time"

	"github.com/msto63/textkit/foundation/core/config"
	"github.com/msto63/textkit/foundation/core/errors"
	"github.com/msto63/textkit/foundation/core/log"
	"github.com/msto63/textkit/foundation/utils/stringx"

	"github.com/msto63/textkit/pkg/core/cache"
)

const (
	// AppName is used for config discovery (textkit.toml, textkit.yaml)
	AppName = "textkit"

	// EnvPrefix prefixes environment overrides, e.g. TEXTKIT_WRAP_WIDTH
	EnvPrefix = "TEXTKIT"
)

// Clean modes for the placeholder section
const (
	CleanNone = "none"
	CleanText = "text"
	CleanHTML = "html"
)

// Settings holds everything the CLI and the operation registry read from
// configuration
type Settings struct {
	Wrap        WrapSettings        `json:"wrap" yaml:"wrap" toml:"wrap" jsonschema:"title=Wrapping"`
	Truncate    TruncateSettings    `json:"truncate" yaml:"truncate" toml:"truncate" jsonschema:"title=Truncation"`
	Excerpt     ExcerptSettings     `json:"excerpt" yaml:"excerpt" toml:"excerpt" jsonschema:"title=Excerpts"`
	Highlight   HighlightSettings   `json:"highlight" yaml:"highlight" toml:"highlight" jsonschema:"title=Highlighting"`
	Placeholder PlaceholderSettings `json:"placeholder" yaml:"placeholder" toml:"placeholder" jsonschema:"title=Placeholders"`
	Log         LogSettings         `json:"log" yaml:"log" toml:"log" jsonschema:"title=Logging"`
	Cache       CacheSettings       `json:"cache" yaml:"cache" toml:"cache" jsonschema:"title=Result cache"`
	Macros      map[string]string   `json:"macros,omitempty" yaml:"macros,omitempty" toml:"macros,omitempty" jsonschema:"title=Macros,description=Named insert templates. :input is replaced by the text"`
	Aliases     map[string]string   `json:"aliases,omitempty" yaml:"aliases,omitempty" toml:"aliases,omitempty" jsonschema:"title=Aliases,description=Alternative names for operations and macros"`
}

// WrapSettings configures wrap and wrap-block
type WrapSettings struct {
	Width    int    `json:"width" yaml:"width" toml:"width" jsonschema:"minimum=1,default=72"`
	WordWrap bool   `json:"word_wrap" yaml:"word_wrap" toml:"word_wrap" jsonschema:"default=true"`
	Indent   string `json:"indent" yaml:"indent" toml:"indent"`
	IndentAt int    `json:"indent_at" yaml:"indent_at" toml:"indent_at" jsonschema:"minimum=0,default=0"`
}

// TruncateSettings configures truncate and tail
type TruncateSettings struct {
	Length   int    `json:"length" yaml:"length" toml:"length" jsonschema:"minimum=1,default=100"`
	Ellipsis string `json:"ellipsis" yaml:"ellipsis" toml:"ellipsis" jsonschema:"default=..."`
	Exact    bool   `json:"exact" yaml:"exact" toml:"exact" jsonschema:"default=true"`
	HTML     bool   `json:"html" yaml:"html" toml:"html" jsonschema:"default=false"`
}

// ExcerptSettings configures excerpt
type ExcerptSettings struct {
	Radius   int    `json:"radius" yaml:"radius" toml:"radius" jsonschema:"minimum=0,default=100"`
	Ellipsis string `json:"ellipsis" yaml:"ellipsis" toml:"ellipsis" jsonschema:"default=..."`
}

// HighlightSettings configures highlight
type HighlightSettings struct {
	Format string `json:"format" yaml:"format" toml:"format"`
	HTML   bool   `json:"html" yaml:"html" toml:"html" jsonschema:"default=false"`
}

// PlaceholderSettings configures insert and clean
type PlaceholderSettings struct {
	Before string `json:"before" yaml:"before" toml:"before" jsonschema:"default=:"`
	After  string `json:"after" yaml:"after" toml:"after"`
	Escape string `json:"escape" yaml:"escape" toml:"escape"`
	Format string `json:"format,omitempty" yaml:"format,omitempty" toml:"format,omitempty"`
	Clean  string `json:"clean" yaml:"clean" toml:"clean" jsonschema:"enum=none,enum=text,enum=html,default=none"`
}

// LogSettings configures the CLI logger
type LogSettings struct {
	Level  string `json:"level" yaml:"level" toml:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=audit,default=warn"`
	Format string `json:"format" yaml:"format" toml:"format" jsonschema:"enum=text,enum=json,enum=console,enum=logfmt,default=text"`
}

// CacheSettings bounds the result cache of pure operations. Size 0 turns
// the cache off.
type CacheSettings struct {
	Size int    `json:"size" yaml:"size" toml:"size" jsonschema:"minimum=0,default=256"`
	TTL  string `json:"ttl" yaml:"ttl" toml:"ttl" jsonschema:"description=Duration such as 90s or 5m,default=5m0s"`
}

const defaultCacheTTL = 5 * time.Minute

// Defaults returns the settings used when nothing is configured
func Defaults() Settings {
	wrap := stringx.DefaultWrapOptions()
	truncate := stringx.DefaultTruncateOptions()
	placeholder := stringx.DefaultPlaceholderOptions()
	highlight := stringx.DefaultHighlightOptions()

	return Settings{
		Wrap: WrapSettings{
			Width:    wrap.Width,
			WordWrap: wrap.WordWrap,
			Indent:   wrap.Indent,
			IndentAt: wrap.IndentAt,
		},
		Truncate: TruncateSettings{
			Length:   100,
			Ellipsis: truncate.Ellipsis,
			Exact:    truncate.Exact,
			HTML:     truncate.HTML,
		},
		Excerpt: ExcerptSettings{
			Radius:   100,
			Ellipsis: stringx.DefaultEllipsis,
		},
		Highlight: HighlightSettings{
			Format: highlight.Format,
			HTML:   highlight.HTML,
		},
		Placeholder: PlaceholderSettings{
			Before: placeholder.Before,
			After:  placeholder.After,
			Escape: placeholder.Escape,
			Clean:  CleanNone,
		},
		Log: LogSettings{
			Level:  log.DefaultLevel().String(),
			Format: log.FormatText.String(),
		},
		Cache: CacheSettings{
			Size: 256,
			TTL:  defaultCacheTTL.String(),
		},
	}
}

// DefaultValues returns Defaults in dot notation for config.LoadOptions
func DefaultValues() map[string]interface{} {
	d := Defaults()
	return map[string]interface{}{
		"wrap.width":         d.Wrap.Width,
		"wrap.word_wrap":     d.Wrap.WordWrap,
		"wrap.indent":        d.Wrap.Indent,
		"wrap.indent_at":     d.Wrap.IndentAt,
		"truncate.length":    d.Truncate.Length,
		"truncate.ellipsis":  d.Truncate.Ellipsis,
		"truncate.exact":     d.Truncate.Exact,
		"truncate.html":      d.Truncate.HTML,
		"excerpt.radius":     d.Excerpt.Radius,
		"excerpt.ellipsis":   d.Excerpt.Ellipsis,
		"highlight.format":   d.Highlight.Format,
		"highlight.html":     d.Highlight.HTML,
		"placeholder.before": d.Placeholder.Before,
		"placeholder.after":  d.Placeholder.After,
		"placeholder.escape": d.Placeholder.Escape,
		"placeholder.clean":  d.Placeholder.Clean,
		"log.level":          d.Log.Level,
		"log.format":         d.Log.Format,
		"cache.size":         d.Cache.Size,
		"cache.ttl":          d.Cache.TTL,
	}
}

// Rules returns the validation rules applied before settings are built
func Rules() config.ValidationRules {
	return config.ValidationRules{
		"wrap.width":        {Type: "int", Min: config.IntPtr(1)},
		"wrap.word_wrap":    {Type: "bool"},
		"wrap.indent_at":    {Type: "int", Min: config.IntPtr(0)},
		"truncate.length":   {Type: "int", Min: config.IntPtr(1)},
		"truncate.exact":    {Type: "bool"},
		"truncate.html":     {Type: "bool"},
		"excerpt.radius":    {Type: "int", Min: config.IntPtr(0)},
		"highlight.html":    {Type: "bool"},
		"placeholder.clean": {Type: "string", OneOf: []string{CleanNone, CleanText, CleanHTML}},
		"log.level":         {Type: "string", OneOf: []string{"trace", "debug", "info", "warn", "error", "audit"}},
		"log.format":        {Type: "string", OneOf: []string{"text", "json", "console", "logfmt"}},
		"cache.size":        {Type: "int", Min: config.IntPtr(0)},
		"cache.ttl":         {Type: "duration"},
	}
}

// FromConfig validates cfg and converts it into Settings
func FromConfig(cfg *config.Config) (Settings, error) {
	if cfg == nil {
		return Defaults(), nil
	}
	if err := cfg.Validate(Rules()).Err(); err != nil {
		return Settings{}, err
	}

	d := Defaults()
	s := Settings{
		Wrap: WrapSettings{
			Width:    cfg.GetInt("wrap.width", d.Wrap.Width),
			WordWrap: cfg.GetBool("wrap.word_wrap", d.Wrap.WordWrap),
			Indent:   cfg.GetString("wrap.indent", d.Wrap.Indent),
			IndentAt: cfg.GetInt("wrap.indent_at", d.Wrap.IndentAt),
		},
		Truncate: TruncateSettings{
			Length:   cfg.GetInt("truncate.length", d.Truncate.Length),
			Ellipsis: cfg.GetString("truncate.ellipsis", d.Truncate.Ellipsis),
			Exact:    cfg.GetBool("truncate.exact", d.Truncate.Exact),
			HTML:     cfg.GetBool("truncate.html", d.Truncate.HTML),
		},
		Excerpt: ExcerptSettings{
			Radius:   cfg.GetInt("excerpt.radius", d.Excerpt.Radius),
			Ellipsis: cfg.GetString("excerpt.ellipsis", d.Excerpt.Ellipsis),
		},
		Highlight: HighlightSettings{
			Format: cfg.GetString("highlight.format", d.Highlight.Format),
			HTML:   cfg.GetBool("highlight.html", d.Highlight.HTML),
		},
		Placeholder: PlaceholderSettings{
			Before: cfg.GetString("placeholder.before", d.Placeholder.Before),
			After:  cfg.GetString("placeholder.after", d.Placeholder.After),
			Escape: cfg.GetString("placeholder.escape", d.Placeholder.Escape),
			Format: cfg.GetString("placeholder.format", d.Placeholder.Format),
			Clean:  strings.ToLower(cfg.GetString("placeholder.clean", d.Placeholder.Clean)),
		},
		Log: LogSettings{
			Level:  strings.ToLower(cfg.GetString("log.level", d.Log.Level)),
			Format: strings.ToLower(cfg.GetString("log.format", d.Log.Format)),
		},
		Cache: CacheSettings{
			Size: cfg.GetInt("cache.size", d.Cache.Size),
			TTL:  cfg.GetDuration("cache.ttl", defaultCacheTTL).String(),
		},
		Macros:  cfg.GetStringMap("macros"),
		Aliases: cfg.GetStringMap("aliases"),
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks the rules that span more than one key
func (s Settings) Validate() error {
	if s.Placeholder.Before == "" && s.Placeholder.Format == "" {
		return errors.ValidationFailed(errors.ModuleSettings, "placeholder.before", s.Placeholder.Before,
			"either before or format must be set")
	}
	if s.Placeholder.Format != "" && !strings.Contains(s.Placeholder.Format, "%s") {
		return errors.ValidationFailed(errors.ModuleSettings, "placeholder.format", s.Placeholder.Format,
			"format must contain %s")
	}
	for name, template := range s.Macros {
		if stringx.IsBlank(name) {
			return errors.ValidationFailed(errors.ModuleSettings, "macros", name, "macro name cannot be blank")
		}
		if stringx.IsBlank(template) {
			return errors.ValidationFailed(errors.ModuleSettings, "macros."+name, template, "template cannot be blank")
		}
	}
	for alias, target := range s.Aliases {
		if stringx.IsBlank(alias) || stringx.IsBlank(target) {
			return errors.ValidationFailed(errors.ModuleSettings, "aliases", alias, "alias and target cannot be blank")
		}
	}
	return nil
}

// WrapOptions converts the wrap section for the engine
func (s Settings) WrapOptions() stringx.WrapOptions {
	return stringx.WrapOptions{
		Width:    s.Wrap.Width,
		WordWrap: s.Wrap.WordWrap,
		Indent:   s.Wrap.Indent,
		IndentAt: s.Wrap.IndentAt,
	}
}

// TruncateOptions converts the truncate section for the engine
func (s Settings) TruncateOptions() stringx.TruncateOptions {
	return stringx.TruncateOptions{
		Ellipsis: s.Truncate.Ellipsis,
		Exact:    s.Truncate.Exact,
		HTML:     s.Truncate.HTML,
	}
}

// HighlightOptions converts the highlight section for the engine
func (s Settings) HighlightOptions() stringx.HighlightOptions {
	return stringx.HighlightOptions{Format: s.Highlight.Format, HTML: s.Highlight.HTML}
}

// PlaceholderOptions converts the placeholder section for the engine. Clean
// mode "none" disables cleaning.
func (s Settings) PlaceholderOptions() stringx.PlaceholderOptions {
	opts := stringx.PlaceholderOptions{
		Before: s.Placeholder.Before,
		After:  s.Placeholder.After,
		Escape: s.Placeholder.Escape,
		Format: s.Placeholder.Format,
	}
	switch s.Placeholder.Clean {
	case CleanText:
		opts.Clean = &stringx.CleanOptions{Method: stringx.CleanText}
	case CleanHTML:
		opts.Clean = &stringx.CleanOptions{Method: stringx.CleanHTML}
	}
	return opts
}

// CacheConfig converts the cache section. ok is false when caching is off.
func (s Settings) CacheConfig() (cfg cache.Config, ok bool) {
	if s.Cache.Size <= 0 {
		return cache.Config{}, false
	}
	ttl, err := time.ParseDuration(s.Cache.TTL)
	if err != nil {
		ttl = defaultCacheTTL
	}
	return cache.Config{MaxItems: s.Cache.Size, TTL: ttl}, true
}

// Logger builds the logger described by the log section
func (s Settings) Logger(output io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(s.Log.Level)
	if err != nil {
		return nil, errors.ConfigInvalid("log.level", s.Log.Level, err.Error())
	}
	format, err := log.ParseFormat(s.Log.Format)
	if err != nil {
		return nil, errors.ConfigInvalid("log.format", s.Log.Format, err.Error())
	}
	return log.NewWithConfig(log.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   AppName,
	}), nil
}
